// SPDX-License-Identifier: Apache-2.0
// Copyright 2024-present Open Networking Foundation

package metrics

import "time"

const (
	DirectionEncode = "encode"
	DirectionDecode = "decode"

	ResultSuccess = "success"
)

type Message struct {
	MsgType   string
	Direction string
	Result    string
	Bytes     int

	StartedAt time.Time
	Duration  float64
}

func NewMessage(msgType, direction string) *Message {
	return &Message{
		MsgType:   msgType,
		Direction: direction,

		StartedAt: time.Now(),
	}
}

func (m *Message) Finish(result string, bytes int) {
	m.Result = result
	m.Bytes = bytes
	m.Duration = time.Since(m.StartedAt).Seconds()
}

type InstrumentNAS interface {
	SaveMessages(m *Message)
	Stop() error
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2024-present Open Networking Foundation

// Package message implements EPS mobility management messages on top of the
// IE-sequence codec. The codecs cover the IE part of a plain NAS message, the
// header and security protection are handled by the caller.
package message

import "github.com/omec-project/emm-codec/nas/codec"

// MessageType definitions, TS 24.301 9.8.
const (
	MsgTypeAttachReject             uint8 = 0x44
	MsgTypeTrackingAreaUpdateReject uint8 = 0x4b
	MsgTypeServiceReject            uint8 = 0x4e
)

// IEI definitions, TS 24.301 8.2.
const (
	IEIT3402Value          uint8 = 0x16
	IEIT3442Value          uint8 = 0x5b
	IEIT3346Value          uint8 = 0x5f
	IEIT3448Value          uint8 = 0x6b
	IEIESMMessageContainer uint8 = 0x78
	IEIExtendedEMMCause    uint8 = 0xa0
)

// Message is an interface that defines EMM messages.
type Message interface {
	MarshalTo([]byte) (int, error)
	Unmarshal([]byte) (int, error)
	MarshalLen() int
	MessageType() uint8
	MessageTypeName() string
	Sequence() codec.Sequence
}

// Marshal returns the byte sequence generated from m.
func Marshal(m Message) ([]byte, error) {
	b := make([]byte, m.MarshalLen())

	n, err := m.MarshalTo(b)
	if err != nil {
		return nil, err
	}

	return b[:n], nil
}

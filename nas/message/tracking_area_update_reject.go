// SPDX-License-Identifier: Apache-2.0
// Copyright 2024-present Open Networking Foundation

package message

import (
	"github.com/omec-project/emm-codec/nas/codec"
	"github.com/omec-project/emm-codec/nas/ie"
)

// TrackingAreaUpdateReject is sent by the network to the UE to reject a tracking
// area updating procedure, TS 24.301 8.2.29.
type TrackingAreaUpdateReject struct {
	EMMCause         ie.EMMCause          `json:"emm_cause"`
	T3346Value       *ie.GPRSTimer2       `json:"t3346_value,omitempty"`
	ExtendedEMMCause *ie.ExtendedEMMCause `json:"extended_emm_cause,omitempty"`
}

// NewTrackingAreaUpdateReject creates a new TrackingAreaUpdateReject.
func NewTrackingAreaUpdateReject(cause uint8) *TrackingAreaUpdateReject {
	return &TrackingAreaUpdateReject{EMMCause: ie.EMMCause(cause)}
}

func (m *TrackingAreaUpdateReject) Sequence() codec.Sequence {
	return codec.New(m.MessageTypeName(),
		codec.MandatoryIE("EMM cause", ie.FormatV, &m.EMMCause),
		codec.OptionalIE("T3346 value", IEIT3346Value, ie.FormatTLV, &m.T3346Value),
		codec.OptionalIE("Extended EMM cause", IEIExtendedEMMCause, ie.FormatTV1, &m.ExtendedEMMCause),
	)
}

func (m *TrackingAreaUpdateReject) MarshalTo(b []byte) (int, error) {
	return m.Sequence().Encode(b)
}

func (m *TrackingAreaUpdateReject) Unmarshal(b []byte) (int, error) {
	return m.Sequence().Decode(b)
}

func (m *TrackingAreaUpdateReject) MarshalLen() int {
	return m.Sequence().Len()
}

func (m *TrackingAreaUpdateReject) MessageType() uint8 {
	return MsgTypeTrackingAreaUpdateReject
}

func (m *TrackingAreaUpdateReject) MessageTypeName() string {
	return "Tracking Area Update Reject"
}

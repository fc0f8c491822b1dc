// SPDX-License-Identifier: Apache-2.0
// Copyright 2024-present Open Networking Foundation

package message

import (
	"github.com/omec-project/emm-codec/nas/codec"
	"github.com/omec-project/emm-codec/nas/ie"
)

// AttachReject is sent by the network to the UE to indicate that the attach request
// has been rejected, TS 24.301 8.2.3.
type AttachReject struct {
	EMMCause            ie.EMMCause             `json:"emm_cause"`
	ESMMessageContainer *ie.ESMMessageContainer `json:"esm_message_container,omitempty"`
	T3346Value          *ie.GPRSTimer2          `json:"t3346_value,omitempty"`
	T3402Value          *ie.GPRSTimer2          `json:"t3402_value,omitempty"`
	ExtendedEMMCause    *ie.ExtendedEMMCause    `json:"extended_emm_cause,omitempty"`
}

// NewAttachReject creates a new AttachReject.
func NewAttachReject(cause uint8) *AttachReject {
	return &AttachReject{EMMCause: ie.EMMCause(cause)}
}

func (m *AttachReject) Sequence() codec.Sequence {
	return codec.New(m.MessageTypeName(),
		codec.MandatoryIE("EMM cause", ie.FormatV, &m.EMMCause),
		codec.OptionalIE("ESM message container", IEIESMMessageContainer, ie.FormatTLVE, &m.ESMMessageContainer),
		codec.OptionalIE("T3346 value", IEIT3346Value, ie.FormatTLV, &m.T3346Value),
		codec.OptionalIE("T3402 value", IEIT3402Value, ie.FormatTLV, &m.T3402Value),
		codec.OptionalIE("Extended EMM cause", IEIExtendedEMMCause, ie.FormatTV1, &m.ExtendedEMMCause),
	)
}

func (m *AttachReject) MarshalTo(b []byte) (int, error) {
	return m.Sequence().Encode(b)
}

func (m *AttachReject) Unmarshal(b []byte) (int, error) {
	return m.Sequence().Decode(b)
}

func (m *AttachReject) MarshalLen() int {
	return m.Sequence().Len()
}

func (m *AttachReject) MessageType() uint8 {
	return MsgTypeAttachReject
}

func (m *AttachReject) MessageTypeName() string {
	return "Attach Reject"
}

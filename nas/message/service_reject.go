// SPDX-License-Identifier: Apache-2.0
// Copyright 2024-present Open Networking Foundation

package message

import (
	"github.com/omec-project/emm-codec/nas/codec"
	"github.com/omec-project/emm-codec/nas/ie"
)

// ServiceReject is sent by the network to the UE to reject a service request,
// TS 24.301 8.2.24.
type ServiceReject struct {
	EMMCause   ie.EMMCause    `json:"emm_cause"`
	T3442Value *ie.GPRSTimer  `json:"t3442_value,omitempty"`
	T3346Value *ie.GPRSTimer2 `json:"t3346_value,omitempty"`
	T3448Value *ie.GPRSTimer2 `json:"t3448_value,omitempty"`
}

// NewServiceReject creates a new ServiceReject.
func NewServiceReject(cause uint8) *ServiceReject {
	return &ServiceReject{EMMCause: ie.EMMCause(cause)}
}

func (m *ServiceReject) Sequence() codec.Sequence {
	return codec.New(m.MessageTypeName(),
		codec.MandatoryIE("EMM cause", ie.FormatV, &m.EMMCause),
		codec.OptionalIE("T3442 value", IEIT3442Value, ie.FormatTV, &m.T3442Value),
		codec.OptionalIE("T3346 value", IEIT3346Value, ie.FormatTLV, &m.T3346Value),
		codec.OptionalIE("T3448 value", IEIT3448Value, ie.FormatTLV, &m.T3448Value),
	)
}

// MarshalTo puts the byte sequence in the byte array given as b.
func (m *ServiceReject) MarshalTo(b []byte) (int, error) {
	return m.Sequence().Encode(b)
}

// Unmarshal decodes a given byte sequence as a ServiceReject.
func (m *ServiceReject) Unmarshal(b []byte) (int, error) {
	return m.Sequence().Decode(b)
}

// MarshalLen returns the serial length of the message.
func (m *ServiceReject) MarshalLen() int {
	return m.Sequence().Len()
}

func (m *ServiceReject) MessageType() uint8 {
	return MsgTypeServiceReject
}

func (m *ServiceReject) MessageTypeName() string {
	return "Service Reject"
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2024-present Open Networking Foundation

package codec

import (
	"fmt"

	"github.com/omec-project/emm-codec/nas/ie"
)

// Presence tells whether a slot is always part of the encoding.
type Presence uint8

// Presence definitions.
const (
	Mandatory Presence = iota
	Optional
)

func (p Presence) String() string {
	switch p {
	case Mandatory:
		return "M"
	case Optional:
		return "O"
	default:
		return fmt.Sprintf("Presence(%d)", uint8(p))
	}
}

// Slot is one IE position of a message, bound to the field that holds the IE value.
type Slot struct {
	Name     string
	Presence Presence
	IEI      uint8
	Format   ie.Format

	minLen int
	length func() int
	encode func(b []byte) (int, error)
	decode func(b []byte) (int, error)
}

// MandatoryIE binds a mandatory, untagged slot to field.
func MandatoryIE(name string, format ie.Format, field ie.Codec) Slot {
	return Slot{
		Name:     name,
		Presence: Mandatory,
		Format:   format,
		minLen:   field.MinLen(0),
		length: func() int {
			return field.MarshalLen(0)
		},
		encode: func(b []byte) (int, error) {
			return field.MarshalTo(b, 0)
		},
		decode: func(b []byte) (int, error) {
			return field.Unmarshal(b, 0)
		},
	}
}

// OptionalIE binds an optional slot tagged iei to the pointer held in field. A nil
// pointer is an absent IE. Decoding allocates a fresh value and stores it in field
// only when the IE decodes successfully.
func OptionalIE[T any, P interface {
	*T
	ie.Codec
}](name string, iei uint8, format ie.Format, field *P) Slot {
	return Slot{
		Name:     name,
		Presence: Optional,
		IEI:      iei,
		Format:   format,
		length: func() int {
			if *field == nil {
				return 0
			}

			return (*field).MarshalLen(iei)
		},
		encode: func(b []byte) (int, error) {
			if *field == nil {
				return 0, nil
			}

			return (*field).MarshalTo(b, iei)
		},
		decode: func(b []byte) (int, error) {
			v := P(new(T))

			n, err := v.Unmarshal(b, iei)
			if err != nil {
				return 0, err
			}

			*field = v

			return n, nil
		},
	}
}

// Present reports whether the slot's first octet in b announces this slot. Mandatory
// slots are always present.
func (s *Slot) Present(b []byte) bool {
	if s.Presence == Mandatory {
		return true
	}

	return len(b) > 0 && s.Format.MatchIEI(b[0], s.IEI)
}

func (s *Slot) String() string {
	if s.Presence == Optional {
		return fmt.Sprintf("%s (%s %s 0x%02x)", s.Name, s.Presence, s.Format, s.IEI)
	}

	return fmt.Sprintf("%s (%s %s)", s.Name, s.Presence, s.Format)
}

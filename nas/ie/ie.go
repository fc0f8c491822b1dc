// SPDX-License-Identifier: Apache-2.0
// Copyright 2024-present Open Networking Foundation

// Package ie implements the information elements carried by EPS mobility management
// messages (3GPP TS 24.301 clause 9.9 and TS 24.008 clause 10.5).
//
// Every IE encodes into and decodes from a caller supplied buffer whose length is the
// capacity (encode) or the declared length (decode). Nothing is read or written past
// len(b). A non-zero IEI selects the tagged form of the IE (TV, TLV, TLV-E), zero
// selects the untagged form used in mandatory positions (V, LV, LV-E).
package ie

import (
	"fmt"

	"github.com/omec-project/emm-codec/pkg/utils"
)

// Format is the format of an IE within a message, TS 24.007 11.2.1.1.
type Format uint8

// Format definitions.
const (
	FormatV Format = iota
	FormatTV
	FormatTV1
	FormatTLV
	FormatTLVE
)

func (f Format) String() string {
	switch f {
	case FormatV:
		return "V"
	case FormatTV:
		return "TV"
	case FormatTV1:
		return "TV1"
	case FormatTLV:
		return "TLV"
	case FormatTLVE:
		return "TLV-E"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// MatchIEI reports whether octet o starts an IE tagged iei. Type 1 IEs carry the
// IEI in the high nibble only.
func (f Format) MatchIEI(o, iei uint8) bool {
	if f == FormatTV1 {
		return utils.HighNibble(o) == utils.HighNibble(iei)
	}

	return o == iei
}

// Codec is implemented by every IE value.
type Codec interface {
	// MarshalTo writes the IE into b and returns the number of bytes written.
	MarshalTo(b []byte, iei uint8) (int, error)
	// Unmarshal reads the IE from b and returns the number of bytes consumed.
	// The receiver is left untouched when an error is returned.
	Unmarshal(b []byte, iei uint8) (int, error)
	// MarshalLen returns the encoded length of the current value.
	MarshalLen(iei uint8) int
	// MinLen returns the smallest length any value of the IE encodes to.
	MinLen(iei uint8) int
}

func tagLen(iei uint8) int {
	if iei != 0 {
		return 1
	}

	return 0
}

func checkMarshal(name string, b []byte, n int) error {
	if b == nil {
		return fmt.Errorf("%s: %w", name, ErrNullBuffer)
	}

	if len(b) < n {
		return ErrOverflow(name, len(b), n)
	}

	return nil
}

func checkUnmarshal(name string, b []byte, n int, iei uint8, f Format) error {
	if b == nil {
		return fmt.Errorf("%s: %w", name, ErrNullBuffer)
	}

	if len(b) < n {
		return ErrTooShort(name, len(b), n)
	}

	if iei != 0 && !f.MatchIEI(b[0], iei) {
		return ErrIEI(name, b[0], iei)
	}

	return nil
}

// marshalOctet encodes a single octet value in V or TV format.
func marshalOctet(name string, b []byte, iei, v uint8) (int, error) {
	n := tagLen(iei) + 1
	if err := checkMarshal(name, b, n); err != nil {
		return 0, err
	}

	if iei != 0 {
		b[0] = iei
	}

	b[n-1] = v

	return n, nil
}

// unmarshalOctet decodes a single octet value in V or TV format.
func unmarshalOctet(name string, b []byte, iei uint8) (uint8, int, error) {
	n := tagLen(iei) + 1
	if err := checkUnmarshal(name, b, n, iei, FormatTV); err != nil {
		return 0, 0, err
	}

	return b[n-1], n, nil
}

// marshalHalfOctet encodes a type 1 IE: IEI in the high nibble, value in the low one.
// In a mandatory position the high nibble is spare.
func marshalHalfOctet(name string, b []byte, iei, v uint8) (int, error) {
	if v > 0x0f {
		return 0, ErrMalformed(name, fmt.Sprintf("value 0x%x does not fit a half octet", v))
	}

	if err := checkMarshal(name, b, 1); err != nil {
		return 0, err
	}

	b[0] = utils.HighNibble(iei) | v

	return 1, nil
}

func unmarshalHalfOctet(name string, b []byte, iei uint8) (uint8, int, error) {
	if err := checkUnmarshal(name, b, 1, iei, FormatTV1); err != nil {
		return 0, 0, err
	}

	return utils.LowNibble(b[0]), 1, nil
}

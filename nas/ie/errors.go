// SPDX-License-Identifier: Apache-2.0
// Copyright 2024-present Open Networking Foundation

package ie

import (
	"errors"
	"fmt"
)

// Error kinds returned by the IE codecs and the IE-sequence codec built on them.
// Errors carry context and wrap one of these, match them with errors.Is.
var (
	ErrNullBuffer          = errors.New("null buffer")
	ErrBufferTooShort      = errors.New("buffer too short")
	ErrMalformedField      = errors.New("malformed field")
	ErrFieldEncodeOverflow = errors.New("field encode overflow")
	ErrUnexpectedIEI       = errors.New("unexpected IEI")
)

func ErrTooShort(name string, have, want int) error {
	return fmt.Errorf("%s: %w (%d < %d)", name, ErrBufferTooShort, have, want)
}

func ErrOverflow(name string, have, want int) error {
	return fmt.Errorf("%s: %w (capacity %d, need %d)", name, ErrFieldEncodeOverflow, have, want)
}

func ErrMalformed(name string, reason string) error {
	return fmt.Errorf("%s: %w: %s", name, ErrMalformedField, reason)
}

func ErrIEI(name string, got, want uint8) error {
	return fmt.Errorf("%s: %w 0x%02x, expected 0x%02x", name, ErrUnexpectedIEI, got, want)
}

// Kind returns the error kind err wraps, or nil when it wraps none of them.
func Kind(err error) error {
	for _, k := range []error{
		ErrNullBuffer,
		ErrBufferTooShort,
		ErrMalformedField,
		ErrFieldEncodeOverflow,
		ErrUnexpectedIEI,
	} {
		if errors.Is(err, k) {
			return k
		}
	}

	return nil
}

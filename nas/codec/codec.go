// SPDX-License-Identifier: Apache-2.0
// Copyright 2024-present Open Networking Foundation

// Package codec encodes and decodes the ordered IE sequence of a NAS message.
//
// A message describes itself as a Sequence of slots bound to its fields. The walk
// over the slots is the same for every message: check the buffer against the
// message minimum length, visit each slot in declaration order while advancing a
// cursor, and stop at the first error, returning it unchanged.
//
// The codec holds no state between calls. Concurrent calls on distinct messages and
// buffers are safe; callers serialize access to a shared message or buffer.
package codec

import (
	"errors"
	"fmt"

	mapset "github.com/deckarep/golang-set"

	"github.com/omec-project/emm-codec/nas/ie"
	"github.com/omec-project/emm-codec/pkg/utils"
)

var ErrInvalidSequence = errors.New("invalid IE sequence")

// Observer is called after every visited slot with the cursor before the slot and
// the number of bytes the slot produced or consumed.
type Observer func(slot *Slot, offset, n int)

// Sequence is the ordered slot table of one message.
type Sequence struct {
	Name  string
	Slots []Slot

	observer Observer
}

// New creates a Sequence from slots in wire order.
func New(name string, slots ...Slot) Sequence {
	return Sequence{Name: name, Slots: slots}
}

// WithObserver returns a copy of s that reports every visited slot to o.
func (s Sequence) WithObserver(o Observer) Sequence {
	s.observer = o
	return s
}

// CheckBuffer is the precondition of every encode and decode: b must be non-nil and
// at least minLen bytes long.
func CheckBuffer(b []byte, minLen int) error {
	if b == nil {
		return ie.ErrNullBuffer
	}

	if len(b) < minLen {
		return fmt.Errorf("%w (%d < %d)", ie.ErrBufferTooShort, len(b), minLen)
	}

	return nil
}

// MinLen returns the sum of the minimum lengths of the mandatory slots.
func (s Sequence) MinLen() int {
	l := 0

	for i := range s.Slots {
		if s.Slots[i].Presence == Mandatory {
			l += s.Slots[i].minLen
		}
	}

	return l
}

// Len returns the encoded length of the values currently bound to the slots.
func (s Sequence) Len() int {
	l := 0
	for i := range s.Slots {
		l += s.Slots[i].length()
	}

	return l
}

// Validate checks the slot table: mandatory slots are untagged and precede every
// optional slot, optional slots carry an IEI that no other slot can be confused with.
func (s Sequence) Validate() error {
	octets := mapset.NewSet()
	nibbles := mapset.NewSet()
	seenOptional := false

	for i := range s.Slots {
		slot := &s.Slots[i]

		switch slot.Presence {
		case Mandatory:
			if seenOptional {
				return fmt.Errorf("%s: %w: mandatory %q after optional slots", s.Name, ErrInvalidSequence, slot.Name)
			}

			if slot.IEI != 0 {
				return fmt.Errorf("%s: %w: mandatory %q is tagged", s.Name, ErrInvalidSequence, slot.Name)
			}
		case Optional:
			seenOptional = true

			if slot.IEI == 0 {
				return fmt.Errorf("%s: %w: optional %q has no IEI", s.Name, ErrInvalidSequence, slot.Name)
			}

			if err := s.claimIEI(slot, octets, nibbles); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%s: %w: %q has presence %v", s.Name, ErrInvalidSequence, slot.Name, slot.Presence)
		}
	}

	return nil
}

func (s Sequence) claimIEI(slot *Slot, octets, nibbles mapset.Set) error {
	dup := fmt.Errorf("%s: %w: IEI 0x%02x of %q already used", s.Name, ErrInvalidSequence, slot.IEI, slot.Name)

	if slot.Format == ie.FormatTV1 {
		nibble := utils.HighNibble(slot.IEI)
		if !nibbles.Add(nibble) {
			return dup
		}

		for _, o := range octets.ToSlice() {
			if utils.HighNibble(o.(uint8)) == nibble {
				return dup
			}
		}

		return nil
	}

	if nibbles.Contains(utils.HighNibble(slot.IEI)) || !octets.Add(slot.IEI) {
		return dup
	}

	return nil
}

// Encode writes every slot into b in order and returns the number of bytes
// produced. Absent optional slots are visited and produce nothing. On error the
// content of b past the failing slot is undefined.
func (s Sequence) Encode(b []byte) (int, error) {
	if err := CheckBuffer(b, s.MinLen()); err != nil {
		return 0, err
	}

	encoded := 0

	for i := range s.Slots {
		slot := &s.Slots[i]

		n, err := slot.encode(b[encoded:])
		if err != nil {
			return 0, err
		}

		if n < 0 || n > len(b)-encoded {
			return 0, fmt.Errorf("%s: %w: %d bytes reported, %d left", slot.Name, ie.ErrFieldEncodeOverflow, n, len(b)-encoded)
		}

		s.observe(slot, encoded, n)
		encoded += n
	}

	return encoded, nil
}

// Decode reads the slots from b in order and returns the number of bytes consumed.
// An optional slot is decoded only when the next octet carries its IEI. Bytes that
// match no remaining slot are left unconsumed. Slots decoded before a failure keep
// their values.
func (s Sequence) Decode(b []byte) (int, error) {
	if err := CheckBuffer(b, s.MinLen()); err != nil {
		return 0, err
	}

	decoded := 0

	for i := range s.Slots {
		slot := &s.Slots[i]

		if !slot.Present(b[decoded:]) {
			s.observe(slot, decoded, 0)
			continue
		}

		n, err := slot.decode(b[decoded:])
		if err != nil {
			return 0, err
		}

		if n < 0 || n > len(b)-decoded {
			return 0, fmt.Errorf("%s: %w: %d bytes reported, %d left", slot.Name, ie.ErrBufferTooShort, n, len(b)-decoded)
		}

		s.observe(slot, decoded, n)
		decoded += n
	}

	return decoded, nil
}

func (s Sequence) observe(slot *Slot, offset, n int) {
	if s.observer != nil {
		s.observer(slot, offset, n)
	}
}

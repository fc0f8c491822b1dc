// SPDX-License-Identifier: Apache-2.0
// Copyright 2024-present Open Networking Foundation

package ie

import (
	"fmt"
	"time"
)

// TimerUnit is the unit field of a GPRS timer octet, bits 8 to 6.
type TimerUnit uint8

// TimerUnit definitions, TS 24.008 10.5.7.3.
const (
	TimerUnit2Seconds    TimerUnit = 0x00
	TimerUnit1Minute     TimerUnit = 0x01
	TimerUnitDecihours   TimerUnit = 0x02
	TimerUnitDeactivated TimerUnit = 0x07
)

const maxTimerValue = 0x1f

// GPRSTimer is the GPRS timer IE: one octet holding a unit and a 5 bit value.
type GPRSTimer struct {
	Unit  TimerUnit `json:"unit"`
	Value uint8     `json:"value"`
}

// NewGPRSTimer creates a GPRSTimer for d using the finest unit that represents d
// exactly. Durations that no unit represents yield a deactivated timer.
func NewGPRSTimer(d time.Duration) *GPRSTimer {
	t := timerFromDuration(d)
	return &t
}

func timerFromDuration(d time.Duration) GPRSTimer {
	for _, u := range []struct {
		unit TimerUnit
		step time.Duration
	}{
		{TimerUnit2Seconds, 2 * time.Second},
		{TimerUnit1Minute, time.Minute},
		{TimerUnitDecihours, 6 * time.Minute},
	} {
		if d >= 0 && d%u.step == 0 && d/u.step <= maxTimerValue {
			return GPRSTimer{Unit: u.unit, Value: uint8(d / u.step)}
		}
	}

	return GPRSTimer{Unit: TimerUnitDeactivated}
}

// Duration returns the timer value. ok is false when the timer is deactivated.
// Unit values not defined by TS 24.008 are read as multiples of one minute.
func (t GPRSTimer) Duration() (d time.Duration, ok bool) {
	v := time.Duration(t.Value & maxTimerValue)

	switch t.Unit {
	case TimerUnitDeactivated:
		return 0, false
	case TimerUnit2Seconds:
		return v * 2 * time.Second, true
	case TimerUnitDecihours:
		return v * 6 * time.Minute, true
	default:
		return v * time.Minute, true
	}
}

func (t GPRSTimer) String() string {
	d, ok := t.Duration()
	if !ok {
		return "deactivated"
	}

	return d.String()
}

func (t GPRSTimer) octet() (uint8, error) {
	if t.Unit > 0x07 || t.Value > maxTimerValue {
		return 0, fmt.Errorf("unit %d value %d out of range", t.Unit, t.Value)
	}

	return uint8(t.Unit)<<5 | t.Value, nil
}

func timerFromOctet(o uint8) GPRSTimer {
	return GPRSTimer{Unit: TimerUnit(o >> 5), Value: o & maxTimerValue}
}

func (t *GPRSTimer) MarshalTo(b []byte, iei uint8) (int, error) {
	o, err := t.octet()
	if err != nil {
		return 0, ErrMalformed("GPRS timer", err.Error())
	}

	return marshalOctet("GPRS timer", b, iei, o)
}

func (t *GPRSTimer) Unmarshal(b []byte, iei uint8) (int, error) {
	o, n, err := unmarshalOctet("GPRS timer", b, iei)
	if err != nil {
		return 0, err
	}

	*t = timerFromOctet(o)

	return n, nil
}

func (t *GPRSTimer) MarshalLen(iei uint8) int {
	return tagLen(iei) + 1
}

func (t *GPRSTimer) MinLen(iei uint8) int {
	return tagLen(iei) + 1
}

// GPRSTimer2 is the GPRS timer 2 IE, TS 24.008 10.5.7.4. It carries the same octet
// as GPRSTimer behind a length octet.
type GPRSTimer2 struct {
	GPRSTimer
}

// NewGPRSTimer2 creates a GPRSTimer2 for d, see NewGPRSTimer.
func NewGPRSTimer2(d time.Duration) *GPRSTimer2 {
	return &GPRSTimer2{GPRSTimer: timerFromDuration(d)}
}

func (t *GPRSTimer2) MarshalTo(b []byte, iei uint8) (int, error) {
	o, err := t.octet()
	if err != nil {
		return 0, ErrMalformed("GPRS timer 2", err.Error())
	}

	n := t.MarshalLen(iei)
	if err := checkMarshal("GPRS timer 2", b, n); err != nil {
		return 0, err
	}

	offset := 0
	if iei != 0 {
		b[offset] = iei
		offset++
	}

	b[offset] = 1
	b[offset+1] = o

	return n, nil
}

// Unmarshal decodes the IE. Octets beyond the first one of the value part are
// consumed and ignored.
func (t *GPRSTimer2) Unmarshal(b []byte, iei uint8) (int, error) {
	hdr := tagLen(iei) + 1
	if err := checkUnmarshal("GPRS timer 2", b, hdr, iei, FormatTLV); err != nil {
		return 0, err
	}

	l := int(b[hdr-1])
	if l < 1 {
		return 0, ErrMalformed("GPRS timer 2", "zero length")
	}

	if len(b) < hdr+l {
		return 0, ErrTooShort("GPRS timer 2", len(b), hdr+l)
	}

	t.GPRSTimer = timerFromOctet(b[hdr])

	return hdr + l, nil
}

func (t *GPRSTimer2) MarshalLen(iei uint8) int {
	return tagLen(iei) + 2
}

func (t *GPRSTimer2) MinLen(iei uint8) int {
	return tagLen(iei) + 2
}

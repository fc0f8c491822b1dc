// SPDX-License-Identifier: Apache-2.0
// Copyright 2024-present Open Networking Foundation

package ie

import "github.com/omec-project/emm-codec/pkg/utils"

// Extended EMM cause flags, TS 24.301 9.9.3.26.
const (
	ExtCauseEUTRANNotAllowed    uint8 = 0x01
	ExtCauseEPSOptimizationInfo uint8 = 0x02
	ExtCauseNBIoTNotAllowed     uint8 = 0x04
)

// ExtendedEMMCause is a type 1 IE, its value occupies the low nibble.
type ExtendedEMMCause uint8

// NewExtendedEMMCause creates a new ExtendedEMMCause.
func NewExtendedEMMCause(flags uint8) *ExtendedEMMCause {
	c := ExtendedEMMCause(flags)
	return &c
}

func (c *ExtendedEMMCause) MarshalTo(b []byte, iei uint8) (int, error) {
	return marshalHalfOctet("Extended EMM cause", b, iei, uint8(*c))
}

func (c *ExtendedEMMCause) Unmarshal(b []byte, iei uint8) (int, error) {
	v, n, err := unmarshalHalfOctet("Extended EMM cause", b, iei)
	if err != nil {
		return 0, err
	}

	*c = ExtendedEMMCause(v)

	return n, nil
}

func (c *ExtendedEMMCause) MarshalLen(uint8) int {
	return 1
}

func (c *ExtendedEMMCause) MinLen(uint8) int {
	return 1
}

func (c ExtendedEMMCause) Has(flag uint8) bool {
	return uint8(c)&flag != 0
}

// EUTRANNotAllowed reports the E-UTRAN allowed bit.
func (c ExtendedEMMCause) EUTRANNotAllowed() bool {
	return utils.Uint8Has1stBit(uint8(c))
}

// EPSOptimizationInfo reports the EPS optimization info bit.
func (c ExtendedEMMCause) EPSOptimizationInfo() bool {
	return utils.Uint8Has2ndBit(uint8(c))
}

// NBIoTNotAllowed reports the NB-IoT allowed bit.
func (c ExtendedEMMCause) NBIoTNotAllowed() bool {
	return utils.Uint8Has3rdBit(uint8(c))
}

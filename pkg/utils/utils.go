// SPDX-License-Identifier: Apache-2.0
// Copyright 2020 Intel Corporation
// Copyright 2022 Open Networking Foundation

package utils

import "encoding/binary"

func HighNibble(o uint8) uint8 {
	return o & 0xf0
}

func LowNibble(o uint8) uint8 {
	return o & 0x0f
}

// PutUint16Length writes a TLV-E length field. It returns false when l does not fit.
func PutUint16Length(b []byte, l int) bool {
	if l < 0 || l > 0xffff {
		return false
	}

	binary.BigEndian.PutUint16(b, uint16(l))

	return true
}

func Uint16Length(b []byte) int {
	return int(binary.BigEndian.Uint16(b))
}

func Uint8Has3rdBit(f uint8) bool {
	return (f&0x04)>>2 == 1
}

func Uint8Has2ndBit(f uint8) bool {
	return (f&0x02)>>1 == 1
}

func Uint8Has1stBit(f uint8) bool {
	return (f & 0x01) == 1
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2022 Open Networking Foundation

package utils

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNibbles(t *testing.T) {
	tests := []struct {
		octet uint8
		high  uint8
		low   uint8
	}{
		{octet: 0x00, high: 0x00, low: 0x00},
		{octet: 0xa1, high: 0xa0, low: 0x01},
		{octet: 0x5f, high: 0x50, low: 0x0f},
		{octet: 0xff, high: 0xf0, low: 0x0f},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("0x%02x", tt.octet), func(t *testing.T) {
			require.Equal(t, tt.high, HighNibble(tt.octet))
			require.Equal(t, tt.low, LowNibble(tt.octet))
			require.Equal(t, tt.octet, HighNibble(tt.octet)|LowNibble(tt.octet))
		})
	}
}

func TestUint16LengthTransitive(t *testing.T) {
	tests := []int{
		0,
		1,
		0x0100,
		math.MaxUint16,
	}
	for _, l := range tests {
		t.Run(fmt.Sprint(l), func(t *testing.T) {
			b := make([]byte, 2)
			require.True(t, PutUint16Length(b, l))
			require.Equal(t, l, Uint16Length(b), "value %v failed transitive conversion with intermediate %x", l, b)
		})
	}
}

func TestPutUint16LengthOverflow(t *testing.T) {
	b := []byte{0xaa, 0xbb}

	require.False(t, PutUint16Length(b, math.MaxUint16+1))
	require.False(t, PutUint16Length(b, -1))
	require.Equal(t, []byte{0xaa, 0xbb}, b)
}

func TestUint8HasBit(t *testing.T) {
	require.True(t, Uint8Has1stBit(0x01))
	require.False(t, Uint8Has1stBit(0x06))
	require.True(t, Uint8Has2ndBit(0x02))
	require.False(t, Uint8Has2ndBit(0x05))
	require.True(t, Uint8Has3rdBit(0x04))
	require.False(t, Uint8Has3rdBit(0x03))
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2024-present Open Networking Foundation

package ie

import (
	"fmt"

	"github.com/omec-project/emm-codec/pkg/utils"
)

// ESMMessageContainer carries a complete ESM message, TS 24.301 9.9.3.15. It is a
// TLV-E IE, the length field is two octets.
type ESMMessageContainer []byte

// NewESMMessageContainer creates a new ESMMessageContainer holding a copy of msg.
func NewESMMessageContainer(msg []byte) *ESMMessageContainer {
	c := make(ESMMessageContainer, len(msg))
	copy(c, msg)

	return &c
}

func (c *ESMMessageContainer) MarshalTo(b []byte, iei uint8) (int, error) {
	n := c.MarshalLen(iei)
	if err := checkMarshal("ESM message container", b, n); err != nil {
		return 0, err
	}

	offset := 0
	if iei != 0 {
		b[offset] = iei
		offset++
	}

	if !utils.PutUint16Length(b[offset:offset+2], len(*c)) {
		return 0, ErrMalformed("ESM message container", fmt.Sprintf("length %d exceeds 65535", len(*c)))
	}
	offset += 2
	copy(b[offset:n], *c)

	return n, nil
}

func (c *ESMMessageContainer) Unmarshal(b []byte, iei uint8) (int, error) {
	hdr := tagLen(iei) + 2
	if err := checkUnmarshal("ESM message container", b, hdr, iei, FormatTLVE); err != nil {
		return 0, err
	}

	l := utils.Uint16Length(b[hdr-2 : hdr])
	if len(b) < hdr+l {
		return 0, ErrTooShort("ESM message container", len(b), hdr+l)
	}

	v := make(ESMMessageContainer, l)
	copy(v, b[hdr:hdr+l])
	*c = v

	return hdr + l, nil
}

func (c *ESMMessageContainer) MarshalLen(iei uint8) int {
	return tagLen(iei) + 2 + len(*c)
}

func (c *ESMMessageContainer) MinLen(iei uint8) int {
	return tagLen(iei) + 2
}

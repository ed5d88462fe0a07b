// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"fmt"
	"strings"
)

// A ChannelOrder gives the order in which the four 8-bit channels of
// a packed pixel are laid out in memory.
//
// Packed pixels are always little-endian: the first channel of the
// order is the low byte of the uint32. This makes a []uint32 of
// packed RGBA pixels byte-for-byte identical to the Pix slice of an
// image.NRGBA, and to the buffers consumed by raster surfaces that
// expect 8-bit RGBA, regardless of the host's byte order.
//
// Back ends disagree on the order they want. Cairo and Windows DIBs
// use BGRA, for example, so the order is a parameter of the Mapper
// rather than a fixed convention.
type ChannelOrder uint8

const (
	RGBA ChannelOrder = iota
	BGRA
	ARGB
	ABGR
)

var orderNames = [...]string{RGBA: "RGBA", BGRA: "BGRA", ARGB: "ARGB", ABGR: "ABGR"}

func (o ChannelOrder) String() string {
	if o.Valid() {
		return orderNames[o]
	}
	return fmt.Sprintf("ChannelOrder(%d)", o)
}

// Valid reports whether o is one of the defined channel orders.
func (o ChannelOrder) Valid() bool {
	return int(o) < len(orderNames)
}

// ParseChannelOrder parses a channel order name, ignoring case.
func ParseChannelOrder(s string) (ChannelOrder, error) {
	for i, name := range orderNames {
		if strings.EqualFold(s, name) {
			return ChannelOrder(i), nil
		}
	}
	return 0, fmt.Errorf("unknown channel order %q", s)
}

// Pack packs r, g, b, and a into a pixel.
func (o ChannelOrder) Pack(r, g, b, a uint8) uint32 {
	var b0, b1, b2, b3 uint8
	switch o {
	case RGBA:
		b0, b1, b2, b3 = r, g, b, a
	case BGRA:
		b0, b1, b2, b3 = b, g, r, a
	case ARGB:
		b0, b1, b2, b3 = a, r, g, b
	case ABGR:
		b0, b1, b2, b3 = a, b, g, r
	default:
		panic("invalid channel order " + o.String())
	}
	return uint32(b0) | uint32(b1)<<8 | uint32(b2)<<16 | uint32(b3)<<24
}

// Unpack is the inverse of Pack.
func (o ChannelOrder) Unpack(p uint32) (r, g, b, a uint8) {
	b0, b1, b2, b3 := uint8(p), uint8(p>>8), uint8(p>>16), uint8(p>>24)
	switch o {
	case RGBA:
		return b0, b1, b2, b3
	case BGRA:
		return b2, b1, b0, b3
	case ARGB:
		return b1, b2, b3, b0
	case ABGR:
		return b3, b2, b1, b0
	}
	panic("invalid channel order " + o.String())
}

// ClampAlpha clamps alpha into the range of an 8-bit channel.
//
// Pixels are packed from 8-bit channels, so an out-of-range alpha
// can never spill into a neighboring channel.
func ClampAlpha(alpha int) uint8 {
	if alpha < 0 {
		return 0
	} else if alpha > 255 {
		return 255
	}
	return uint8(alpha)
}

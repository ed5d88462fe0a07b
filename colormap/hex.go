// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPalette is matched (with errors.Is) by every
// *InvalidPaletteError.
var ErrInvalidPalette = errors.New("invalid palette")

// InvalidPaletteError reports a palette that cannot be used to build
// a Mapper.
type InvalidPaletteError struct {
	// Index is the index of the offending swatch, or -1 if the
	// palette as a whole is invalid.
	Index int

	// Value is the offending swatch, if any.
	Value string

	Reason string
}

func (e *InvalidPaletteError) Error() string {
	if e.Index < 0 {
		return "invalid palette: " + e.Reason
	}
	return fmt.Sprintf("invalid palette entry %d %q: %s", e.Index, e.Value, e.Reason)
}

func (e *InvalidPaletteError) Is(target error) bool {
	return target == ErrInvalidPalette
}

// ParseHex decodes a hexadecimal RGB color such as "#3288bd".
//
// The leading "#" is optional. The remaining digits are split into
// three equal groups giving the red, green, and blue components, so
// both "#fff" and "#ffffff" are accepted, though they denote
// different colors: "f" is 15, not 255.
func ParseHex(s string) (r, g, b uint8, err error) {
	digits := strings.TrimPrefix(s, "#")
	if digits == "" || len(digits)%3 != 0 {
		return 0, 0, 0, fmt.Errorf("hex color %q: length of %q is not a multiple of 3", s, digits)
	}
	n := len(digits) / 3
	var c [3]uint8
	for i := range c {
		v, err := strconv.ParseUint(digits[i*n:(i+1)*n], 16, 8)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("hex color %q: bad component %q", s, digits[i*n:(i+1)*n])
		}
		c[i] = uint8(v)
	}
	return c[0], c[1], c[2], nil
}

// FormatHex is the inverse of ParseHex for 8-bit components.
func FormatHex(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// parseSwatch decodes one palette entry, which must have exactly six
// hex digits.
func parseSwatch(i int, s string) (r, g, b uint8, err error) {
	if len(strings.TrimPrefix(s, "#")) != 6 {
		return 0, 0, 0, &InvalidPaletteError{i, s, "want 6 hex digits"}
	}
	r, g, b, err = ParseHex(s)
	if err != nil {
		return 0, 0, 0, &InvalidPaletteError{i, s, err.Error()}
	}
	return r, g, b, nil
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/palette/brewer"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultPalette is the palette used for decision surfaces when none
// is given.
const DefaultPalette = "Spectral9"

// Named returns a ColorBrewer palette as hex colors.
//
// name is a ColorBrewer palette name with an optional number of
// levels, written either "Spectral9" or "Spectral_9". Without a
// number of levels, Named returns the variant with the most levels.
//
// Sequential and diverging palettes are returned in the reverse of
// the ColorBrewer order, so Spectral starts at its blue end and Blues
// at its darkest blue. Qualitative palettes such as Set1 keep the
// ColorBrewer order.
func Named(name string) ([]string, error) {
	base, n, err := splitName(name)
	if err != nil {
		return nil, err
	}
	variants := brewer.ByName[base]
	if n == 0 {
		for k := range variants {
			if k > n {
				n = k
			}
		}
	}
	colors, ok := variants[n]
	if !ok {
		return nil, fmt.Errorf("unknown palette %q", name)
	}

	hex := make([]string, len(colors))
	for i, c := range colors {
		cf, ok := colorful.MakeColor(c)
		if !ok {
			return nil, fmt.Errorf("palette %q: color %d is transparent", name, i)
		}
		if !qualitative[base] {
			i = len(colors) - 1 - i
		}
		hex[i] = cf.Hex()
	}
	return hex, nil
}

// qualitative is the set of ColorBrewer palettes for nominal data.
var qualitative = map[string]bool{
	"Accent":  true,
	"Dark2":   true,
	"Paired":  true,
	"Pastel1": true,
	"Pastel2": true,
	"Set1":    true,
	"Set2":    true,
	"Set3":    true,
}

// splitName splits a palette name into its ColorBrewer name and
// number of levels. n is 0 if name does not specify the levels.
func splitName(name string) (base string, n int, err error) {
	if _, ok := brewer.ByName[name]; ok {
		return name, 0, nil
	}
	if i := strings.LastIndexByte(name, '_'); i >= 0 {
		base = name[:i]
		n, err = strconv.Atoi(name[i+1:])
	} else {
		i := len(name)
		for i > 0 && '0' <= name[i-1] && name[i-1] <= '9' {
			i--
		}
		base = name[:i]
		n, err = strconv.Atoi(name[i:])
	}
	if err != nil || n <= 0 {
		return "", 0, fmt.Errorf("unknown palette %q", name)
	}
	if _, ok := brewer.ByName[base]; !ok {
		return "", 0, fmt.Errorf("unknown palette %q", name)
	}
	return base, n, nil
}

// LabelColors returns the colors for points labeled positive and
// negative: the last and first colors of palette, the two ends of the
// surface's color scale.
func LabelColors(palette []string) (pos, neg string) {
	return palette[len(palette)-1], palette[0]
}

// Reverse returns a reversed copy of palette.
func Reverse(palette []string) []string {
	out := make([]string, len(palette))
	for i, c := range palette {
		out[len(palette)-1-i] = c
	}
	return out
}

// ParsePalette parses a palette given either as a name understood by
// Named or as a comma-separated list of hex colors.
func ParsePalette(s string) ([]string, error) {
	if !strings.Contains(s, ",") && !strings.HasPrefix(s, "#") {
		return Named(s)
	}
	var pal []string
	for _, c := range strings.Split(s, ",") {
		pal = append(pal, strings.TrimSpace(c))
	}
	return pal, nil
}

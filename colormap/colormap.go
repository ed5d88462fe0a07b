// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colormap maps scalar values to colors by linear
// interpolation over a palette, producing packed pixels for raster
// display of heatmaps.
package colormap

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/aclements/checkerboard/surface"
	"github.com/aclements/go-moremath/vec"
)

// NaNColor is the color of NaN values unless overridden with
// WithNaNColor.
var NaNColor = color.RGBA{240, 240, 240, 255}

// A Mapper maps float64 values in a range [low, high] to colors.
//
// The palette's colors are placed at evenly spaced points across
// the range, and values between two points are linearly
// interpolated, channel by channel. Values outside the range clamp
// to the first or last color.
//
// A Mapper is immutable, so it may be used from multiple goroutines.
type Mapper struct {
	low, high float64

	// xs are the sample points, one per palette entry. r, g, and
	// b are the palette's channels at each sample point.
	xs      []float64
	r, g, b []float64

	order ChannelOrder
	nan   color.RGBA
}

// New returns a Mapper that spreads palette across [low, high].
//
// palette must have at least two entries, each a hex color of the
// form "#rrggbb" (the "#" is optional). Otherwise New returns an
// *InvalidPaletteError.
//
// If low == high, every non-NaN value maps to palette[0].
//
// The returned Mapper packs pixels in RGBA order.
func New(low, high float64, palette []string) (*Mapper, error) {
	if math.IsNaN(low) || math.IsInf(low, 0) || math.IsNaN(high) || math.IsInf(high, 0) || low > high {
		return nil, fmt.Errorf("invalid color map range [%g, %g]", low, high)
	}
	if len(palette) < 2 {
		return nil, &InvalidPaletteError{-1, "", fmt.Sprintf("need at least 2 colors, got %d", len(palette))}
	}

	m := &Mapper{
		low:   low,
		high:  high,
		xs:    samplePoints(low, high, len(palette)),
		r:     make([]float64, len(palette)),
		g:     make([]float64, len(palette)),
		b:     make([]float64, len(palette)),
		order: RGBA,
		nan:   NaNColor,
	}
	for i, s := range palette {
		r, g, b, err := parseSwatch(i, s)
		if err != nil {
			return nil, err
		}
		m.r[i], m.g[i], m.b[i] = float64(r), float64(g), float64(b)
	}
	return m, nil
}

// samplePoints returns n evenly spaced points from low to high. The
// last point is exactly high.
func samplePoints(low, high float64, n int) []float64 {
	if !math.IsInf(high-low, 0) {
		xs := vec.Linspace(low, high, n)
		xs[n-1] = high
		return xs
	}
	// high-low overflows, so weight the endpoints instead.
	xs := make([]float64, n)
	for i := range xs {
		t := float64(i) / float64(n-1)
		xs[i] = low*(1-t) + high*t
	}
	xs[0], xs[n-1] = low, high
	return xs
}

// WithOrder returns a copy of m that packs pixels in channel order o.
// It panics if o is not valid.
func (m *Mapper) WithOrder(o ChannelOrder) *Mapper {
	if !o.Valid() {
		panic("invalid channel order " + o.String())
	}
	m2 := *m
	m2.order = o
	return &m2
}

// WithNaNColor returns a copy of m that maps NaN to c. The alpha of
// c is ignored; NaN pixels get the alpha passed to Color.
func (m *Mapper) WithNaNColor(c color.RGBA) *Mapper {
	m2 := *m
	m2.nan = c
	return &m2
}

// Range returns the range of values spanned by m's palette.
func (m *Mapper) Range() (low, high float64) {
	return m.low, m.high
}

// Len returns the number of colors in m's palette.
func (m *Mapper) Len() int {
	return len(m.xs)
}

// Order returns the channel order of pixels packed by m.
func (m *Mapper) Order() ChannelOrder {
	return m.order
}

// segment locates v among the sample points. The interpolated value
// of channel ys at v is ys[i] + t*(ys[i+1]-ys[i]).
func (m *Mapper) segment(v float64) (i int, t float64) {
	n := len(m.xs)
	if v <= m.xs[0] || m.low == m.high {
		return 0, 0
	}
	if v >= m.xs[n-1] {
		return n - 2, 1
	}
	// xs[j-1] < v <= xs[j]
	j := sort.SearchFloat64s(m.xs, v)
	i = j - 1
	d, dv := m.xs[j]-m.xs[i], v-m.xs[i]
	if math.IsInf(d, 0) {
		d, dv = m.xs[j]/2-m.xs[i]/2, v/2-m.xs[i]/2
	}
	if d > 0 {
		t = dv / d
	} else {
		t = 1
	}
	return i, t
}

func channel(ys []float64, i int, t float64) uint8 {
	y := math.Round(ys[i] + t*(ys[i+1]-ys[i]))
	if y <= 0 {
		return 0
	} else if y >= 255 {
		return 255
	}
	return uint8(y)
}

func (m *Mapper) rgb(v float64) (r, g, b uint8) {
	if math.IsNaN(v) {
		return m.nan.R, m.nan.G, m.nan.B
	}
	i, t := m.segment(v)
	return channel(m.r, i, t), channel(m.g, i, t), channel(m.b, i, t)
}

// Map returns the color of v with the given alpha.
func (m *Mapper) Map(v float64, alpha int) color.NRGBA {
	r, g, b := m.rgb(v)
	return color.NRGBA{r, g, b, ClampAlpha(alpha)}
}

// Color maps each value in data to a packed pixel with the given
// alpha. The result has the same length as data, so a row-major 2D
// array maps to a row-major 2D array of the same shape.
//
// NaN values map to a neutral grey, (240, 240, 240), by default.
// alpha is clamped to [0, 255].
func (m *Mapper) Color(data []float64, alpha int) []uint32 {
	out := make([]uint32, len(data))
	m.ColorInto(out, data, alpha)
	return out
}

// ColorInto is like Color, but stores the pixels in dst, which must
// have the same length as data.
func (m *Mapper) ColorInto(dst []uint32, data []float64, alpha int) {
	if len(dst) != len(data) {
		panic(fmt.Sprintf("colormap: destination has %d pixels, data has %d values", len(dst), len(data)))
	}
	a := ClampAlpha(alpha)
	for k, v := range data {
		r, g, b := m.rgb(v)
		dst[k] = m.order.Pack(r, g, b, a)
	}
}

// ColorGrid maps every value of grid to a pixel. The result is in the
// grid's row-major order.
func (m *Mapper) ColorGrid(grid *surface.Grid, alpha int) []uint32 {
	return m.Color(grid.Values, alpha)
}

// Image renders grid as an image, one pixel per cell.
//
// Grid rows run upward, so row 0 of grid is the bottom row of the
// image.
func (m *Mapper) Image(grid *surface.Grid, alpha int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, grid.Cols, grid.Rows))
	a := ClampAlpha(alpha)
	for row := 0; row < grid.Rows; row++ {
		pix := img.Pix[(grid.Rows-1-row)*img.Stride:]
		for c, v := range grid.Row(row) {
			r, g, b := m.rgb(v)
			pix[4*c+0], pix[4*c+1], pix[4*c+2], pix[4*c+3] = r, g, b, a
		}
	}
	return img
}

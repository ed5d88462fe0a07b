// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package surface represents decision surfaces: a classifier's
// output evaluated over a regular 2D coordinate grid.
//
// A Grid stores its values in row-major order. Row 0 is the row with
// the smallest y coordinate, so when drawn, rows run upward. Cells
// where the surface is undefined hold NaN.
package surface

import (
	"fmt"
	"math"
)

// Grid is a rectangular array of float64 values.
type Grid struct {
	Rows, Cols int

	// Values holds Rows*Cols values in row-major order. The value
	// at row r, column c is Values[r*Cols+c].
	Values []float64
}

// New returns a zero-filled rows x cols grid.
func New(rows, cols int) *Grid {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("invalid grid size %dx%d", rows, cols))
	}
	return &Grid{rows, cols, make([]float64, rows*cols)}
}

// FromRows returns a grid holding a copy of rows. All rows must have
// the same length.
func FromRows(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 {
		return &Grid{}, nil
	}
	g := New(len(rows), len(rows[0]))
	for r, row := range rows {
		if len(row) != g.Cols {
			return nil, fmt.Errorf("row %d has %d values, want %d", r, len(row), g.Cols)
		}
		copy(g.Values[r*g.Cols:], row)
	}
	return g, nil
}

func (g *Grid) index(r, c int) int {
	if r < 0 || r >= g.Rows {
		panic(fmt.Sprintf("row index %d out of range [0,%d)", r, g.Rows))
	}
	if c < 0 || c >= g.Cols {
		panic(fmt.Sprintf("column index %d out of range [0,%d)", c, g.Cols))
	}
	return r*g.Cols + c
}

// At returns the value at row r, column c.
func (g *Grid) At(r, c int) float64 {
	return g.Values[g.index(r, c)]
}

// Set sets the value at row r, column c.
func (g *Grid) Set(r, c int, v float64) {
	g.Values[g.index(r, c)] = v
}

// Row returns row r. The result aliases the grid's storage.
func (g *Grid) Row(r int) []float64 {
	if r < 0 || r >= g.Rows {
		panic(fmt.Sprintf("row index %d out of range [0,%d)", r, g.Rows))
	}
	i := r * g.Cols
	return g.Values[i : i+g.Cols : i+g.Cols]
}

// Bounds returns the minimum and maximum of the finite values in g.
// NaNs and infinities are skipped. If g has no finite values, ok is
// false.
func (g *Grid) Bounds() (min, max float64, ok bool) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, v := range g.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		ok = true
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if !ok {
		return 0, 0, false
	}
	return min, max, true
}

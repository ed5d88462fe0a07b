// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Parse reads a grid in text form from r.
//
// Each non-blank line is one grid row, starting with row 0. Values
// are separated by spaces, tabs, or commas. "nan" (in any case)
// denotes an undefined cell. Lines starting with "#" are comments.
// Every row must have the same number of values.
func Parse(r io.Reader) (*Grid, error) {
	g := new(Grid)
	scanner := bufio.NewScanner(r)
	// Rows of a fine surface can be long.
	scanner.Buffer(nil, 16<<20)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		f := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		if len(f) == 0 {
			return nil, fmt.Errorf("line %d: no values", lineNo)
		}
		if g.Rows == 0 {
			g.Cols = len(f)
		} else if len(f) != g.Cols {
			return nil, fmt.Errorf("line %d: got %d values, want %d", lineNo, len(f), g.Cols)
		}
		for _, field := range f {
			v, err := parseValue(field)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			g.Values = append(g.Values, v)
		}
		g.Rows++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

func parseValue(s string) (float64, error) {
	if strings.EqualFold(s, "nan") {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bad value %q", s)
	}
	return v, nil
}

// Format writes g to w in the form read by Parse.
func (g *Grid) Format(w io.Writer) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	for r := 0; r < g.Rows; r++ {
		for c, v := range g.Row(r) {
			if c > 0 {
				bw.WriteByte(' ')
			}
			buf = strconv.AppendFloat(buf[:0], v, 'g', -1, 64)
			bw.Write(buf)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/aclements/checkerboard/surface"
)

// jsonSnapshot is the JSON form of a Snapshot. Points are arrays of
// [x, y, label] or [x, y, label, predicted]. A null in the surface is
// NaN.
type jsonSnapshot struct {
	Surface      [][]*float64 `json:"surface"`
	Train        [][]float64  `json:"train"`
	Test         [][]float64  `json:"test"`
	TrainErr     *float64     `json:"train_err"`
	TestErr      *float64     `json:"test_err"`
	SampleWeight []float64    `json:"sample_weight"`
}

// ReadSnapshot reads a JSON-encoded model snapshot from r.
func ReadSnapshot(r io.Reader) (*Snapshot, error) {
	var js jsonSnapshot
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&js); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}

	s := &Snapshot{
		TrainErr:     js.TrainErr,
		TestErr:      js.TestErr,
		SampleWeight: js.SampleWeight,
	}
	if js.Surface != nil {
		rows := make([][]float64, len(js.Surface))
		for i, jrow := range js.Surface {
			rows[i] = make([]float64, len(jrow))
			for j, v := range jrow {
				if v == nil {
					rows[i][j] = math.NaN()
				} else {
					rows[i][j] = *v
				}
			}
		}
		g, err := surface.FromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("snapshot surface: %w", err)
		}
		s.Surface = g
	}

	var err error
	if s.Train, err = points("train", js.Train); err != nil {
		return nil, err
	}
	if s.Test, err = points("test", js.Test); err != nil {
		return nil, err
	}
	return s, nil
}

func points(set string, rows [][]float64) ([]Point, error) {
	pts := make([]Point, len(rows))
	for i, row := range rows {
		switch len(row) {
		case 4:
			pred := row[3]
			pts[i].Predicted = &pred
			fallthrough
		case 3:
			pts[i].X, pts[i].Y, pts[i].Label = row[0], row[1], row[2]
		default:
			return nil, fmt.Errorf("%s point %d has %d values, want 3 or 4", set, i, len(row))
		}
	}
	return pts, nil
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render builds render descriptions of the covariate shift
// demo: a training figure and a test figure, each showing the
// classifier's decision surface as a heatmap under the sample points.
//
// Update computes a fresh Scene from a Snapshot of the model every
// time the model changes. Scenes are plain values; WriteSVG and
// WritePNG draw them.
package render

import (
	"fmt"
	"image"
	"math"
	"strconv"
	"strings"

	"github.com/aclements/checkerboard/colormap"
	"github.com/aclements/checkerboard/surface"
	"github.com/aclements/go-moremath/stats"
)

// A Point is a labeled sample point.
type Point struct {
	X, Y float64

	// Label is the point's class. Points labeled 1 are positive;
	// everything else is negative.
	Label float64

	// Predicted is the classifier's label for this point, or nil
	// if the point has not been classified.
	Predicted *float64
}

// A Snapshot is the state of the model at one moment.
type Snapshot struct {
	// Surface is the classifier's decision function evaluated over
	// a grid covering the plot area. It is nil before the first
	// classification.
	Surface *surface.Grid

	Train, Test []Point

	// TrainErr and TestErr are the classifier's error rates, or
	// nil if unknown. If nil and every point of the corresponding
	// set has a prediction, Update computes the rate itself.
	TrainErr, TestErr *float64

	// SampleWeight gives a weight for each training point, as
	// assigned by reweighting. nil means every weight is 1.
	SampleWeight []float64
}

// An Extent places an image in data coordinates. (X, Y) is the
// bottom-left corner.
type Extent struct {
	X, Y   float64
	DW, DH float64
}

// Options control the appearance of a Scene.
type Options struct {
	// Palette is the color scale of the decision surface. The
	// ends of the palette also color the points by label. nil
	// means colormap.DefaultPalette.
	Palette []string

	// ImageAlpha is the opacity of the surface, in [0, 255].
	ImageAlpha int

	FillAlpha, LineAlpha float64

	// PointSize is the diameter of a point of weight 1, in screen
	// pixels.
	PointSize float64

	LineColor string

	XRange, YRange [2]float64

	// Extent is where the surface image is placed.
	Extent Extent

	// Order is the channel order of the surface's packed pixels.
	Order colormap.ChannelOrder
}

// DefaultOptions returns the options of the covariate shift demo.
func DefaultOptions() Options {
	return Options{
		ImageAlpha: 210,
		FillAlpha:  0.9,
		LineAlpha:  0.8,
		PointSize:  10,
		LineColor:  "#7c7e71",
		XRange:     [2]float64{0, 100},
		YRange:     [2]float64{-50, 50},
		Extent:     Extent{X: 0, Y: -50, DW: 100, DH: 100},
		Order:      colormap.RGBA,
	}
}

// A Scene is a render description of the whole demo.
type Scene struct {
	Train, Test Figure
}

// A Figure is one plot.
type Figure struct {
	Title          string
	XRange, YRange [2]float64

	// Image is the decision surface, or nil. The training and
	// test figures share the same Image.
	Image *Image

	Circles []Circle
}

// An Image is a raster of packed pixels placed in data coordinates.
type Image struct {
	// Pixels holds Rows*Cols pixels in row-major order. Row 0 is
	// at the bottom of the image.
	Pixels     []uint32
	Rows, Cols int
	Order      colormap.ChannelOrder
	Extent
}

// A Circle marks one sample point.
type Circle struct {
	X, Y float64

	// Size is the diameter in screen pixels.
	Size float64

	Fill, Line           string
	FillAlpha, LineAlpha float64
}

// Update computes the Scene for model state s.
func Update(s *Snapshot, opts Options) (*Scene, error) {
	pal := opts.Palette
	if pal == nil {
		var err error
		pal, err = colormap.Named(colormap.DefaultPalette)
		if err != nil {
			return nil, err
		}
	}
	// Check the palette even if there's no surface to color, since
	// the points need it too.
	if _, err := colormap.New(0, 1, pal); err != nil {
		return nil, err
	}

	if !opts.Order.Valid() {
		return nil, fmt.Errorf("invalid channel order %v", opts.Order)
	}

	weights := s.SampleWeight
	if weights == nil {
		weights = make([]float64, len(s.Train))
		for i := range weights {
			weights[i] = 1
		}
	} else if len(weights) != len(s.Train) {
		return nil, fmt.Errorf("got %d sample weights for %d training points", len(weights), len(s.Train))
	}

	sc := &Scene{
		Train: Figure{
			Title:  Title("train", errorRate(s.TrainErr, s.Train)),
			XRange: opts.XRange,
			YRange: opts.YRange,
		},
		Test: Figure{
			Title:  Title("test", errorRate(s.TestErr, s.Test)),
			XRange: opts.XRange,
			YRange: opts.YRange,
		},
	}

	if s.Surface != nil {
		low, high, ok := s.Surface.Bounds()
		if !ok {
			// Nothing to color; every cell will be NaN grey.
			low, high = 0, 0
		}
		m, err := colormap.New(low, high, pal)
		if err != nil {
			return nil, err
		}
		m = m.WithOrder(opts.Order)
		img := &Image{
			Pixels: m.ColorGrid(s.Surface, opts.ImageAlpha),
			Rows:   s.Surface.Rows,
			Cols:   s.Surface.Cols,
			Order:  opts.Order,
			Extent: opts.Extent,
		}
		sc.Train.Image, sc.Test.Image = img, img
	}

	pos, neg := colormap.LabelColors(pal)
	circle := func(p Point, size float64) Circle {
		fill := neg
		if p.Label == 1 {
			fill = pos
		}
		return Circle{
			X: p.X, Y: p.Y,
			Size:      size,
			Fill:      fill,
			Line:      opts.LineColor,
			FillAlpha: opts.FillAlpha,
			LineAlpha: opts.LineAlpha,
		}
	}
	for i, p := range s.Train {
		w := weights[i]
		if !(w >= 0) {
			return nil, fmt.Errorf("sample weight %d is %v; weights must be non-negative", i, w)
		}
		sc.Train.Circles = append(sc.Train.Circles, circle(p, math.Sqrt(w)*opts.PointSize))
	}
	for _, p := range s.Test {
		sc.Test.Circles = append(sc.Test.Circles, circle(p, opts.PointSize))
	}
	return sc, nil
}

// errorRate returns err if known, or else the fraction of
// misclassified points if every point has a prediction.
func errorRate(err *float64, pts []Point) *float64 {
	if err != nil || len(pts) == 0 {
		return err
	}
	miss := make([]float64, len(pts))
	for i, p := range pts {
		if p.Predicted == nil {
			return nil
		}
		if *p.Predicted != p.Label {
			miss[i] = 1
		}
	}
	rate := stats.Mean(miss)
	return &rate
}

// Title returns the title of the figure for distribution dist
// ("train" or "test") with error rate err.
func Title(dist string, err *float64) string {
	if dist != "" {
		dist = strings.ToUpper(dist[:1]) + strings.ToLower(dist[1:])
	}
	return dist + " Distribution        Err: " + FormatErr(err)
}

// FormatErr formats an error rate, or "-" if err is nil.
func FormatErr(err *float64) string {
	if err == nil {
		return "-"
	}
	return strconv.FormatFloat(*err, 'g', -1, 64)
}

// NRGBA unpacks img into a Go image. Unlike img.Pixels, the rows of
// the result run top to bottom.
func (img *Image) NRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, img.Cols, img.Rows))
	for row := 0; row < img.Rows; row++ {
		pix := out.Pix[(img.Rows-1-row)*out.Stride:]
		for c, p := range img.Pixels[row*img.Cols : (row+1)*img.Cols] {
			pix[4*c+0], pix[4*c+1], pix[4*c+2], pix[4*c+3] = img.Order.Unpack(p)
		}
	}
	return out
}

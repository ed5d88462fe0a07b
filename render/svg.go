// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"io"
	"math"

	"github.com/ajstarks/svgo"
)

const (
	titleHeight = 28
	margin      = 10
	fontSize    = 13
)

// WriteSVG draws sc to w as an SVG image of the given size, with the
// training and test figures side by side.
func WriteSVG(w io.Writer, sc *Scene, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("bad SVG size %dx%d", width, height)
	}
	canvas := svg.New(w)
	canvas.Start(width, height, fmt.Sprintf(`font-size="%dpx" font-family="Helvetica,Arial,sans-serif"`, fontSize))
	canvas.Rect(0, 0, width, height, "fill:#fff")

	fw := width / 2
	for i, fig := range []*Figure{&sc.Train, &sc.Test} {
		if err := renderFigure(canvas, fig, i, i*fw, 0, fw, height); err != nil {
			return err
		}
	}
	canvas.End()
	return nil
}

// A frame maps data coordinates into a pixel rectangle.
type frame struct {
	x, y, w, h     int
	xrange, yrange [2]float64
}

func (f *frame) px(x float64) float64 {
	return float64(f.x) + (x-f.xrange[0])/(f.xrange[1]-f.xrange[0])*float64(f.w)
}

func (f *frame) py(y float64) float64 {
	return float64(f.y+f.h) - (y-f.yrange[0])/(f.yrange[1]-f.yrange[0])*float64(f.h)
}

func renderFigure(canvas *svg.SVG, fig *Figure, id, x, y, w, h int) error {
	canvas.Text(x+margin, y+titleHeight-margin, fig.Title, `fill="#444"`)

	f := &frame{x + margin, y + titleHeight, w - 2*margin, h - titleHeight - margin, fig.XRange, fig.YRange}
	if f.w <= 0 || f.h <= 0 {
		return fmt.Errorf("SVG too small for figure %q", fig.Title)
	}
	if !(f.xrange[1] > f.xrange[0]) || !(f.yrange[1] > f.yrange[0]) {
		return fmt.Errorf("figure %q has empty range x=%v y=%v", fig.Title, f.xrange, f.yrange)
	}

	clipID := fmt.Sprintf("clip%d", id)
	canvas.ClipPath(`id="` + clipID + `"`)
	canvas.Rect(f.x, f.y, f.w, f.h)
	canvas.ClipEnd()
	canvas.Group(`clip-path="url(#` + clipID + `)"`)
	canvas.Rect(f.x, f.y, f.w, f.h, "fill:#eee")

	if img := fig.Image; img != nil && img.Rows > 0 && img.Cols > 0 {
		uri, err := dataURI(img)
		if err != nil {
			return err
		}
		x0, x1 := f.px(img.X), f.px(img.X+img.DW)
		y0, y1 := f.py(img.Y+img.DH), f.py(img.Y)
		canvas.Image(round(x0), round(y0), round(x1-x0), round(y1-y0), uri,
			`preserveAspectRatio="none" style="image-rendering:optimizeSpeed;image-rendering:pixelated"`)
	}

	for _, c := range fig.Circles {
		if !isFinite(c.X) || !isFinite(c.Y) {
			continue
		}
		style := fmt.Sprintf("fill:%s;fill-opacity:%.6g;stroke:%s;stroke-opacity:%.6g",
			c.Fill, c.FillAlpha, c.Line, c.LineAlpha)
		canvas.Circle(round(f.px(c.X)), round(f.py(c.Y)), round(c.Size/2), style)
	}
	canvas.Gend()

	canvas.Rect(f.x, f.y, f.w, f.h, "fill:none;stroke:#888")
	return nil
}

// dataURI encodes img as a PNG data URI.
func dataURI(img *Image) (string, error) {
	uri := bytes.NewBufferString("data:image/png;base64,")
	w := base64.NewEncoder(base64.StdEncoding, uri)
	if err := png.Encode(w, img.NRGBA()); err != nil {
		return "", fmt.Errorf("encoding surface image: %w", err)
	}
	w.Close()
	return uri.String(), nil
}

func round(x float64) int {
	return int(math.Floor(x + 0.5))
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// WritePNG writes img to w as a PNG of the given size. If width or
// height is 0, that dimension is the image's own.
//
// Enlarging uses nearest-neighbor scaling so each cell stays a crisp
// block; shrinking uses bilinear scaling.
func WritePNG(w io.Writer, img *Image, width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("bad PNG size %dx%d", width, height)
	}
	if img.Rows == 0 || img.Cols == 0 {
		return fmt.Errorf("empty image")
	}
	src := img.NRGBA()
	if width == 0 {
		width = img.Cols
	}
	if height == 0 {
		height = img.Rows
	}
	if width == img.Cols && height == img.Rows {
		return png.Encode(w, src)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	var scaler draw.Scaler = draw.BiLinear
	if width >= img.Cols && height >= img.Rows {
		scaler = draw.NearestNeighbor
	}
	scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return png.Encode(w, dst)
}

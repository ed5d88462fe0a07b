// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command heatmap renders a decision surface as a PNG heatmap.
//
// Usage:
//
//	heatmap [flags] [grid-file]
//
// heatmap reads a grid of values, one row per line (see
// surface.Parse), from grid-file or standard input. Row 0 of the grid
// is drawn at the bottom of the image. Values are colored by linear
// interpolation over a palette spread evenly across [low, high],
// which defaults to the range of the grid's finite values. NaN cells
// are drawn grey.
//
// The palette is either a ColorBrewer name such as "Spectral9" or a
// comma-separated list of hex colors, such as "#000000,#ffffff".
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/aclements/checkerboard/colormap"
	"github.com/aclements/checkerboard/render"
	"github.com/aclements/checkerboard/surface"
)

// optFloat is a float64 flag that records whether it was set.
type optFloat struct {
	v   float64
	set bool
}

func (f *optFloat) String() string {
	if !f.set {
		return ""
	}
	return strconv.FormatFloat(f.v, 'g', -1, 64)
}

func (f *optFloat) Set(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	f.v, f.set = v, true
	return nil
}

func main() {
	log.SetPrefix("heatmap: ")
	log.SetFlags(0)

	var low, high optFloat
	var (
		flagPalette = flag.String("palette", colormap.DefaultPalette, "color the surface with `palette` (a name or hex colors)")
		flagAlpha   = flag.Int("alpha", 255, "opacity `alpha` of the image, 0 to 255")
		flagOrder   = flag.String("order", "rgba", "channel `order` of packed pixels: rgba, bgra, argb, or abgr")
		flagSize    = flag.String("size", "", "scale the image to `WxH` pixels (default: one pixel per cell)")
		flagOut     = flag.String("o", "", "write output to `file` (default: stdout)")
	)
	flag.Var(&low, "low", "map `value` to the first color (default: grid minimum)")
	flag.Var(&high, "high", "map `value` to the last color (default: grid maximum)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [grid-file]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	pal, err := colormap.ParsePalette(*flagPalette)
	if err != nil {
		log.Fatal(err)
	}
	order, err := colormap.ParseChannelOrder(*flagOrder)
	if err != nil {
		log.Fatal(err)
	}
	width, height, err := parseSize(*flagSize)
	if err != nil {
		log.Fatal(err)
	}

	// Read the grid.
	f := os.Stdin
	if path := flag.Arg(0); path != "" && path != "-" {
		f, err = os.Open(path)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}
	g, err := surface.Parse(f)
	if err != nil {
		log.Fatal(err)
	}
	if g.Rows == 0 {
		log.Fatal("empty grid")
	}

	lo, hi, ok := g.Bounds()
	if !ok {
		lo, hi = 0, 0
	}
	if low.set {
		lo = low.v
	}
	if high.set {
		hi = high.v
	}
	m, err := colormap.New(lo, hi, pal)
	if err != nil {
		log.Fatal(err)
	}
	m = m.WithOrder(order)

	img := &render.Image{
		Pixels: m.ColorGrid(g, *flagAlpha),
		Rows:   g.Rows,
		Cols:   g.Cols,
		Order:  order,
	}

	// Write the image.
	out := os.Stdout
	if *flagOut != "" {
		out, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
	}
	if err := render.WritePNG(out, img, width, height); err != nil {
		log.Fatal(err)
	}
	if err := out.Close(); err != nil {
		log.Fatal(err)
	}
}

// parseSize parses a "WxH" image size. The empty string is 0x0.
func parseSize(s string) (w, h int, err error) {
	if s == "" {
		return 0, 0, nil
	}
	ws, hs, ok := strings.Cut(s, "x")
	if ok {
		w, err = strconv.Atoi(ws)
		if err == nil {
			h, err = strconv.Atoi(hs)
		}
	}
	if !ok || err != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("bad size %q: want WxH", s)
	}
	return w, h, nil
}

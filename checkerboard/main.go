// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command checkerboard draws the covariate shift demo for one model
// snapshot.
//
// Usage:
//
//	checkerboard [flags] [snapshot.json]
//
// checkerboard reads a JSON model snapshot from snapshot.json or
// standard input and writes an SVG with the training distribution on
// the left and the test distribution on the right. Both figures show
// the classifier's decision surface as a heatmap, with the sample
// points colored by label and the error rate in the title.
//
// The snapshot has the form
//
//	{
//		"surface": [[z, ...], ...],
//		"train": [[x, y, label], [x, y, label, predicted], ...],
//		"test": [[x, y, label], ...],
//		"train_err": 0.12,
//		"test_err": null,
//		"sample_weight": [w, ...]
//	}
//
// where surface row 0 is the bottom of the plot, null surface values
// are undefined, and a null (or missing) error rate is unknown. Every
// field is optional.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aclements/checkerboard/colormap"
	"github.com/aclements/checkerboard/render"
)

func main() {
	log.SetPrefix("checkerboard: ")
	log.SetFlags(0)

	opts := render.DefaultOptions()
	var (
		flagPalette = flag.String("palette", colormap.DefaultPalette, "color the surface with `palette` (a name or hex colors)")
		flagAlpha   = flag.Int("alpha", opts.ImageAlpha, "opacity `alpha` of the surface, 0 to 255")
		flagWidth   = flag.Int("w", 800, "SVG `width` in pixels")
		flagHeight  = flag.Int("h", 400, "SVG `height` in pixels")
		flagOut     = flag.String("o", "", "write output to `file` (default: stdout)")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [snapshot.json]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	var err error
	opts.Palette, err = colormap.ParsePalette(*flagPalette)
	if err != nil {
		log.Fatal(err)
	}
	opts.ImageAlpha = *flagAlpha

	f := os.Stdin
	if path := flag.Arg(0); path != "" && path != "-" {
		f, err = os.Open(path)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}
	snap, err := render.ReadSnapshot(f)
	if err != nil {
		log.Fatal(err)
	}

	sc, err := render.Update(snap, opts)
	if err != nil {
		log.Fatal(err)
	}

	out := os.Stdout
	if *flagOut != "" {
		out, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
	}
	w := bufio.NewWriter(out)
	if err := render.WriteSVG(w, sc, *flagWidth, *flagHeight); err != nil {
		log.Fatal(err)
	}
	if err := w.Flush(); err != nil {
		log.Fatal(err)
	}
	if err := out.Close(); err != nil {
		log.Fatal(err)
	}
}

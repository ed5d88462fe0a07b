// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"reflect"
	"testing"
)

func TestParseHex(t *testing.T) {
	for _, test := range []struct {
		in      string
		r, g, b uint8
		ok      bool
	}{
		{"#3288bd", 0x32, 0x88, 0xbd, true},
		{"3288BD", 0x32, 0x88, 0xbd, true},
		{"#fff", 15, 15, 15, true},
		{"#000000", 0, 0, 0, true},
		{"#12345", 0, 0, 0, false},
		{"#", 0, 0, 0, false},
		{"", 0, 0, 0, false},
		{"#xyzxyz", 0, 0, 0, false},
		{"#fffffffff", 0, 0, 0, false}, // 0xfff overflows a channel
	} {
		r, g, b, err := ParseHex(test.in)
		if ok := err == nil; ok != test.ok {
			t.Errorf("ParseHex(%q): got error %v, want ok=%v", test.in, err, test.ok)
			continue
		}
		if r != test.r || g != test.g || b != test.b {
			t.Errorf("ParseHex(%q) = %d, %d, %d, want %d, %d, %d", test.in, r, g, b, test.r, test.g, test.b)
		}
	}

	if got := FormatHex(0x32, 0x88, 0xbd); got != "#3288bd" {
		t.Errorf("FormatHex = %q, want #3288bd", got)
	}
}

func TestNamed(t *testing.T) {
	for _, name := range []string{"Spectral9", "Spectral_9"} {
		got, err := Named(name)
		if err != nil {
			t.Errorf("Named(%q): %v", name, err)
			continue
		}
		if !reflect.DeepEqual(got, spectral9) {
			t.Errorf("Named(%q) = %v, want %v", name, got, spectral9)
		}
	}

	all, err := Named("Spectral")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 11 {
		t.Errorf("Named(\"Spectral\") has %d colors, want 11", len(all))
	}

	if _, err := New(0, 1, all); err != nil {
		t.Errorf("named palette rejected by New: %v", err)
	}

	for _, test := range []struct {
		name        string
		first, last string
	}{
		{"Blues3", "#3182bd", "#deebf7"},
		{"Set1_9", "#e41a1c", "#999999"},
		{"Dark2_3", "#1b9e77", "#7570b3"},
	} {
		got, err := Named(test.name)
		if err != nil {
			t.Errorf("Named(%q): %v", test.name, err)
			continue
		}
		if got[0] != test.first || got[len(got)-1] != test.last {
			t.Errorf("Named(%q) = %v, want %s first and %s last", test.name, got, test.first, test.last)
		}
	}

	for _, name := range []string{"Nope9", "Spectral99", "Spectral_x", "", "9"} {
		if _, err := Named(name); err == nil {
			t.Errorf("Named(%q): want error", name)
		}
	}
}

func TestParsePalette(t *testing.T) {
	got, err := ParsePalette("#000000, #ffffff")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"#000000", "#ffffff"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	got, err = ParsePalette(DefaultPalette)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, spectral9) {
		t.Errorf("default palette = %v, want %v", got, spectral9)
	}
}

func TestLabelColors(t *testing.T) {
	pos, neg := LabelColors(spectral9)
	if pos != "#d53e4f" || neg != "#3288bd" {
		t.Errorf("LabelColors = %q, %q, want #d53e4f, #3288bd", pos, neg)
	}

	set1, err := Named("Set1_9")
	if err != nil {
		t.Fatal(err)
	}
	if pos, neg := LabelColors(set1); pos != "#999999" || neg != "#e41a1c" {
		t.Errorf("LabelColors(Set1_9) = %q, %q, want #999999, #e41a1c", pos, neg)
	}

	rev := Reverse(spectral9)
	if rev[0] != "#d53e4f" || rev[8] != "#3288bd" || spectral9[0] != "#3288bd" {
		t.Errorf("Reverse = %v", rev)
	}
}

// seehuhn.de/go/lut - convert colour grading LUTs
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/anthonynsimon/bild/imgio"

	"seehuhn.de/go/lut"
)

func writeScreenshotFile(t *testing.T, fname string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 320, 200))
	for y := range 200 {
		for x := range 320 {
			img.SetRGBA(x, y, color.RGBA{uint8(x), uint8(y), 80, 255})
		}
	}
	if err := imgio.Save(fname, img, imgio.PNGEncoder()); err != nil {
		t.Fatal(err)
	}
}

func TestScreenshotPipeline(t *testing.T) {
	dir := t.TempDir()
	opt := &options{}

	shot := filepath.Join(dir, "shot.png")
	writeScreenshotFile(t, shot)

	lutShot, err := convert(shot, "", opt)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "shot.lut.png"); lutShot != want {
		t.Errorf("output = %q, want %q", lutShot, want)
	}

	tex, err := convert(lutShot, "", opt)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, nutexbName); tex != want {
		t.Errorf("output = %q, want %q", tex, want)
	}

	l, err := readNutexb(tex)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(l.Data, lut.Neutral().Data) {
		t.Error("texture does not contain the neutral LUT")
	}

	// and back to an image
	strip, err := convert(tex, "", opt)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "color_grading_lut.png"); strip != want {
		t.Errorf("output = %q, want %q", strip, want)
	}
	l, err = readStrip(strip)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(l.Data, lut.Neutral().Data) {
		t.Error("image does not contain the neutral LUT")
	}
}

func TestCubeConversion(t *testing.T) {
	dir := t.TempDir()

	// an 8³ CUBE file is resampled to the game's LUT size
	cube := filepath.Join(dir, "grade.cube")
	c := lut.FloatToCube("grade", lut.Identity(8))
	err := createFile(cube, func(w io.Writer) error {
		_, err := c.WriteTo(w)
		return err
	})
	if err != nil {
		t.Fatal(err)
	}

	tex, err := convert(cube, "", &options{})
	if err != nil {
		t.Fatal(err)
	}
	l, err := readNutexb(tex)
	if err != nil {
		t.Fatal(err)
	}
	if l.Size != lut.NeutralSize {
		t.Errorf("size = %d, want %d", l.Size, lut.NeutralSize)
	}
	for i := 3; i < len(l.Data); i += 4 {
		if l.Data[i] != 255 {
			t.Fatalf("alpha[%d] = %d", i/4, l.Data[i])
		}
	}
}

func TestNutexbToCube(t *testing.T) {
	dir := t.TempDir()
	tex := filepath.Join(dir, "in.nutexb")
	if err := writeLinear(lut.Neutral(), tex, &options{}); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "out.cube")
	got, err := convert(tex, out, &options{title: "neutral"})
	if err != nil {
		t.Fatal(err)
	}
	if got != out {
		t.Errorf("output = %q, want %q", got, out)
	}

	f, err := readCube(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(f.Linear().Data, lut.Neutral().Data) {
		t.Error("wrong LUT data")
	}
}

func TestStageOption(t *testing.T) {
	dir := t.TempDir()
	stage := filepath.Join(dir, "stage.nutexb")
	if err := writeLinear(lut.Neutral(), stage, &options{}); err != nil {
		t.Fatal(err)
	}
	l, err := readLinear(stage)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(l.Data, lut.Neutral().Data) {
		t.Error("wrong stage LUT")
	}
}

func TestConvertErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := convert(filepath.Join(dir, "notes.txt"), "", &options{})
	if !errors.Is(err, errUnsupported) {
		t.Errorf("err = %v, want errUnsupported", err)
	}

	_, err = convert(filepath.Join(dir, "missing.cube"), "", &options{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want os.ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.cube")
	if err := os.WriteFile(bad, []byte("bad cube file"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = convert(bad, "", &options{})
	var cubeErr *lut.CubeError
	if !errors.As(err, &cubeErr) {
		t.Errorf("err = %v, want *lut.CubeError", err)
	}
}

func TestSupportedInputs(t *testing.T) {
	exts := supportedInputs()
	if len(exts) != len(inputKinds) {
		t.Fatalf("got %d extensions, want %d", len(exts), len(inputKinds))
	}
	for i := 1; i < len(exts); i++ {
		if exts[i-1] >= exts[i] {
			t.Errorf("extensions not sorted: %v", exts)
		}
	}
}

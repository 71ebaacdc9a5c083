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

package lut

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNeutral(t *testing.T) {
	l := Neutral()
	if l.Size != NeutralSize || len(l.Data) != dataLen(NeutralSize) {
		t.Fatalf("size = %d, len = %d", l.Size, len(l.Data))
	}
	f := l.Float()
	tests := []struct {
		x, y, z int
		want    [4]float32
	}{
		{0, 0, 0, [4]float32{0, 0, 0, 1}},
		{15, 0, 0, [4]float32{1, 0, 0, 1}},
		{0, 15, 0, [4]float32{0, 1, 0, 1}},
		{0, 0, 15, [4]float32{0, 0, 1, 1}},
		{4, 8, 12, [4]float32{64.0 / 255, 140.0 / 255, 209.0 / 255, 1}},
	}
	for _, tt := range tests {
		if got := f.At(tt.x, tt.y, tt.z); got != tt.want {
			t.Errorf("At(%d, %d, %d) = %v, want %v", tt.x, tt.y, tt.z, got, tt.want)
		}
	}
}

func TestIdentity(t *testing.T) {
	f := Identity(3)
	want := [4]float32{0.5, 1, 0, 1}
	if got := f.At(1, 2, 0); got != want {
		t.Errorf("At(1, 2, 0) = %v, want %v", got, want)
	}
}

func grayImage(w, h int, v uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = v
		if i%4 == 3 {
			img.Pix[i] = 255
		}
	}
	return img
}

func TestWriteNeutral(t *testing.T) {
	img := grayImage(300, 40, 200)
	res := WriteNeutral(img, nil)

	if res.Bounds() != img.Bounds() {
		t.Fatalf("bounds = %v, want %v", res.Bounds(), img.Bounds())
	}

	// the strip is pasted without darkening
	strip := Neutral().Image()
	for y := range NeutralSize {
		for x := range NeutralSize * NeutralSize {
			if got, want := res.RGBAAt(x, y), strip.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}

	// 200 / 1.4 = 142.86
	want := color.RGBA{142, 142, 142, 255}
	for _, p := range []image.Point{{299, 39}, {256, 0}, {0, 16}} {
		if got := res.RGBAAt(p.X, p.Y); got != want {
			t.Errorf("pixel %v = %v, want %v", p, got, want)
		}
	}

	// the input is not modified
	if img.RGBAAt(0, 0) != (color.RGBA{200, 200, 200, 255}) {
		t.Error("input image was modified")
	}
}

func TestWriteNeutralProfile(t *testing.T) {
	p := DefaultProfile
	p.Brightness = 2
	res := WriteNeutral(grayImage(256, 17, 100), &p)
	if got := res.RGBAAt(0, 16); got != (color.RGBA{50, 50, 50, 255}) {
		t.Errorf("pixel = %v", got)
	}
}

func TestCutNeutral(t *testing.T) {
	res := WriteNeutral(grayImage(320, 200, 90), nil)
	l, err := CutNeutral(res)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(Neutral(), l); d != "" {
		t.Errorf("(-want +got)\n%s", d)
	}

	_, err = CutNeutral(grayImage(255, 16, 0))
	if !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("small image: err = %v, want ErrInvalidDimensions", err)
	}
}

func TestCutNeutralOffset(t *testing.T) {
	// images with a non-zero origin are cut at their top left corner
	img := grayImage(400, 50, 0)
	strip := Neutral().Image()
	for y := range NeutralSize {
		copy(img.Pix[img.PixOffset(20, 10+y):], strip.Pix[strip.PixOffset(0, y):strip.PixOffset(0, y+1)])
	}
	sub := img.SubImage(image.Rect(20, 10, 400, 50))

	l, err := CutNeutral(sub)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(l.Data, Neutral().Data) {
		t.Error("wrong LUT data")
	}
}

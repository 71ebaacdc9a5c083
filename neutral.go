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
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/adjust"
)

// NeutralSize is the edge length of the game's colour grading LUT.
const NeutralSize = 16

// neutralSteps are the grid values of the game's default stage LUT.
// They are not evenly spaced.
var neutralSteps = [NeutralSize]byte{
	0, 15, 30, 46, 64, 82, 101, 121, 140, 158, 176, 193, 209, 224, 240, 255,
}

// Neutral returns the default stage LUT of the game.
func Neutral() *Linear {
	data := make([]byte, dataLen(NeutralSize))
	pos := 0
	for z := range NeutralSize {
		for y := range NeutralSize {
			for x := range NeutralSize {
				data[pos] = neutralSteps[x]
				data[pos+1] = neutralSteps[y]
				data[pos+2] = neutralSteps[z]
				data[pos+3] = 255
				pos += channels
			}
		}
	}
	return &Linear{Size: NeutralSize, Data: data}
}

// Identity returns a LUT which maps every colour to itself.
func Identity(size int) *Float {
	f := NewFloat(size)
	scale := float32(size - 1)
	for z := range size {
		for y := range size {
			for x := range size {
				f.Set(x, y, z, [4]float32{float32(x) / scale, float32(y) / scale, float32(z) / scale, 1})
			}
		}
	}
	return f
}

// WriteNeutral prepares a screenshot for colour grading in an image editor.
//
// The colours are divided by the brightness of the game's post-processing,
// so that the screenshot matches the input of the stage LUT.  The image
// of the neutral LUT is then placed in the top left corner.  After editing,
// the top left 256×16 pixels hold the edited LUT, see [FromRaster].
// If p is nil, [DefaultProfile] is used.
func WriteNeutral(img image.Image, p *Profile) *image.RGBA {
	if p == nil {
		p = &DefaultProfile
	}
	darken := func(v uint8) uint8 {
		return uint8(float32(v) / p.Brightness)
	}
	res := adjust.Apply(img, func(c color.RGBA) color.RGBA {
		return color.RGBA{R: darken(c.R), G: darken(c.G), B: darken(c.B), A: c.A}
	})

	strip := Neutral().Image()
	r := strip.Bounds().Add(res.Bounds().Min)
	draw.Draw(res, r, strip, image.Point{}, draw.Src)
	return res
}

// CutNeutral extracts the LUT strip from the top left corner of an edited
// screenshot made by [WriteNeutral].
func CutNeutral(img image.Image) (*Linear, error) {
	b := img.Bounds()
	r := image.Rect(0, 0, NeutralSize*NeutralSize, NeutralSize).Add(b.Min)
	if !r.In(b) {
		return nil, ErrInvalidDimensions
	}
	strip := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(strip, strip.Bounds(), img, r.Min, draw.Src)
	return FromRaster(NewImageRaster(strip))
}

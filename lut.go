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

// Package lut converts 3D colour grading LUTs between the representations
// used by a game's post-processing pipeline.
//
// A LUT is a cubic grid of RGBA samples.  In memory, samples are stored in
// row-major order with X varying fastest, then Y, then Z.  Three
// representations are supported:
//   - [Linear] stores 8 bits per channel in row-major order,
//   - [Swizzled] stores the same bytes in the tiled order of the game's
//     texture (see [Layout]),
//   - [Float] stores normalised float32 values in row-major order.
//
// # Converting
//
// LUTs are read from CUBE files with [ParseCube], from images with
// [FromRaster] and from texture data via [Swizzled.Deswizzle]:
//
//	c, err := lut.ParseCube(r)
//	if err != nil {
//	    // handle error
//	}
//	edit, err := c.Float()
//
// # Colour Correction
//
// The game applies its own "stage" LUT after a non-linear post-processing
// step.  [Correct] combines an artist's edit LUT with the stage LUT into a
// single LUT which, when used by the game, reproduces the edit:
//
//	final, err := lut.Correct(edit, lut.Neutral().Float(), nil)
//	s, err := final.Linear().Swizzle()
package lut

import "fmt"

// Linear is a 3D LUT with 8 bits per channel in row-major order.
type Linear struct {
	Size int
	Data []byte // Size³ RGBA samples, X varying fastest
}

// Swizzled is a 3D LUT with 8 bits per channel in the tiled order
// described by [NewLayout].
type Swizzled struct {
	Size int
	Data []byte
}

// Float is a 3D LUT with normalised float32 channels in row-major order.
type Float struct {
	Size int
	Data []float32 // Size³ RGBA samples, X varying fastest
}

// dataLen returns the number of channel values in a LUT with the given edge
// length.
func dataLen(size int) int {
	return size * size * size * channels
}

// FromRGBA creates a LUT from 8-bit RGBA data in row-major order.
// The LUT takes ownership of data.
func FromRGBA(size int, data []byte) (*Linear, error) {
	if size < 1 || len(data) != dataLen(size) {
		return nil, fmt.Errorf("lut: %d bytes for size %d: %w", len(data), size, ErrSizeMismatch)
	}
	return &Linear{Size: size, Data: data}, nil
}

// Swizzle converts the LUT into the tiled layout of the game's texture.
func (l *Linear) Swizzle() (*Swizzled, error) {
	layout, err := NewLayout(l.Size)
	if err != nil {
		return nil, err
	}
	if len(l.Data) != layout.Len() {
		return nil, ErrSizeMismatch
	}
	data := make([]byte, len(l.Data))
	layout.Swizzle(data, l.Data, false)
	return &Swizzled{Size: l.Size, Data: data}, nil
}

// Deswizzle converts the LUT back into row-major order.
func (s *Swizzled) Deswizzle() (*Linear, error) {
	layout, err := NewLayout(s.Size)
	if err != nil {
		return nil, err
	}
	if len(s.Data) != layout.Len() {
		return nil, ErrSizeMismatch
	}
	data := make([]byte, len(s.Data))
	layout.Swizzle(data, s.Data, true)
	return &Linear{Size: s.Size, Data: data}, nil
}

// Float converts the LUT to normalised floating point values.
func (l *Linear) Float() *Float {
	data := make([]float32, len(l.Data))
	for i, b := range l.Data {
		data[i] = float32(b) / 255
	}
	return &Float{Size: l.Size, Data: data}
}

// SampleTrilinear evaluates the LUT at the point (x, y, z) of the unit cube,
// see [Float.SampleTrilinear].  The result is normalised to [0, 1].
func (l *Linear) SampleTrilinear(x, y, z float32) [4]float32 {
	return sampleTrilinear(l.Size, l.Data, 1.0/255, x, y, z)
}

// NewFloat allocates a LUT with all channels set to zero.
func NewFloat(size int) *Float {
	return &Float{Size: size, Data: make([]float32, dataLen(size))}
}

func (f *Float) offset(x, y, z int) int {
	return ((z*f.Size+y)*f.Size + x) * channels
}

// At returns the RGBA sample at grid point (x, y, z).
func (f *Float) At(x, y, z int) [4]float32 {
	i := f.offset(x, y, z)
	return [4]float32(f.Data[i : i+channels])
}

// Set changes the RGBA sample at grid point (x, y, z).
func (f *Float) Set(x, y, z int, rgba [4]float32) {
	i := f.offset(x, y, z)
	copy(f.Data[i:i+channels], rgba[:])
}

// Linear converts the LUT to 8 bits per channel.
// Values are clamped to [0, 1] and rounded to the nearest integer step.
func (f *Float) Linear() *Linear {
	data := make([]byte, len(f.Data))
	for i, v := range f.Data {
		data[i] = quantize(v)
	}
	return &Linear{Size: f.Size, Data: data}
}

// SampleTrilinear evaluates the LUT at the point (x, y, z) of the unit cube.
//
// Coordinates outside [0, 1] are clamped to the boundary of the volume.
// Points on grid lines are evaluated using the cell above the line (or
// below, at the upper boundary), so that the result there is the stored
// sample value.
func (f *Float) SampleTrilinear(x, y, z float32) [4]float32 {
	return sampleTrilinear(f.Size, f.Data, 1, x, y, z)
}

// Resample evaluates the LUT on a grid with the given edge length.
func (f *Float) Resample(size int) *Float {
	res := NewFloat(size)
	scale := float32(max(size-1, 1))
	for z := range size {
		for y := range size {
			for x := range size {
				res.Set(x, y, z, f.SampleTrilinear(float32(x)/scale, float32(y)/scale, float32(z)/scale))
			}
		}
	}
	return res
}

func (f *Float) check() error {
	if f == nil || f.Size < 2 || len(f.Data) != dataLen(f.Size) {
		return ErrSizeMismatch
	}
	return nil
}

func quantize(v float32) byte {
	v *= 255
	if !(v > 0) {
		return 0
	} else if v >= 255 {
		return 255
	}
	return byte(v + 0.5)
}

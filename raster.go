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
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/clone"
)

// Raster is an RGBA image with 8 bits per channel.
type Raster interface {
	Width() int
	Height() int

	// RGBA returns the pixel data in row-major order, top to bottom,
	// with 4 bytes per pixel and no padding between rows.
	RGBA() []byte
}

// ImageRaster adapts an [image.RGBA] to the [Raster] interface.
type ImageRaster struct {
	img *image.RGBA
}

// NewImageRaster converts img to 8-bit RGBA and wraps the result.
func NewImageRaster(img image.Image) *ImageRaster {
	rgba, ok := img.(*image.RGBA)
	if !ok {
		rgba = clone.AsRGBA(img)
	}
	return &ImageRaster{img: rgba}
}

// Width implements the [Raster] interface.
func (r *ImageRaster) Width() int { return r.img.Rect.Dx() }

// Height implements the [Raster] interface.
func (r *ImageRaster) Height() int { return r.img.Rect.Dy() }

// RGBA implements the [Raster] interface.
func (r *ImageRaster) RGBA() []byte {
	w, h := r.Width(), r.Height()
	rowLen := 4 * w
	if r.img.Stride == rowLen {
		start := r.img.PixOffset(r.img.Rect.Min.X, r.img.Rect.Min.Y)
		return r.img.Pix[start : start+rowLen*h]
	}

	pix := make([]byte, rowLen*h)
	for y := range h {
		start := r.img.PixOffset(r.img.Rect.Min.X, r.img.Rect.Min.Y+y)
		copy(pix[y*rowLen:(y+1)*rowLen], r.img.Pix[start:start+rowLen])
	}
	return pix
}

// FromRaster reads a LUT from an image.
//
// The image must have width size² and height size.  The Z slices of the
// volume are placed next to each other, from left to right: pixel
// (x + z·size, y) holds the LUT sample (x, y, z).
func FromRaster(r Raster) (*Linear, error) {
	width, size := r.Width(), r.Height()
	if size < 1 || width != size*size {
		return nil, fmt.Errorf("lut: %d×%d image: %w", width, size, ErrInvalidDimensions)
	}
	pix := r.RGBA()
	if len(pix) != width*size*4 {
		return nil, ErrSizeMismatch
	}

	data := make([]byte, dataLen(size))
	for z := range size {
		for y := range size {
			src := (y*width + z*size) * 4
			dst := (z*size + y) * size * channels
			copy(data[dst:dst+size*channels], pix[src:src+size*4])
		}
	}
	return &Linear{Size: size, Data: data}, nil
}

// Image converts the LUT into the image layout described at [FromRaster].
func (l *Linear) Image() *image.RGBA {
	size := l.Size
	img := image.NewRGBA(image.Rect(0, 0, size*size, size))
	for z := range size {
		for y := range size {
			src := (z*size + y) * size * channels
			dst := img.PixOffset(z*size, y)
			copy(img.Pix[dst:dst+size*4], l.Data[src:src+size*channels])
		}
	}
	return img
}

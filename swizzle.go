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
	"errors"
	"fmt"
	"math/bits"
)

// channels is the number of values stored per LUT sample (RGBA).
const channels = 4

// maxLayoutSize is the largest edge length accepted by [NewLayout].
const maxLayoutSize = 256

// Layout describes the tiled ("swizzled") memory layout of a cubic RGBA
// volume.
//
// Each of the masks selects the bits of a tiled byte offset which belong to
// one axis.  The masks are disjoint and together cover all offsets of the
// volume, so that the layout is a permutation of the samples.
//
// A Layout is immutable and safe for concurrent use.
type Layout struct {
	size  int
	xMask int
	yMask int
	zMask int
}

// tiled16 is the layout used by the game for the 16×16×16 colour grading
// texture.  The first row of the volume, for example, lives at the byte
// offsets 0, 4, 8, 12, 32, 36, 40, 44, 256, 260, ..., 296, 300.
var tiled16 = Layout{
	size:  16,
	xMask: 0b0000_0001_0010_1100,
	yMask: 0b0010_0000_1101_0000,
	zMask: 0b0001_1110_0000_0000,
}

// NewLayout returns the tiled layout for a volume with the given edge
// length.  The size must be a power of two between 2 and 256.
//
// For size 16 this is the layout of the game's colour grading texture.
// For all other sizes the address bits of the three axes are interleaved
// in x, y, z order, starting with the least significant bit.
func NewLayout(size int) (*Layout, error) {
	if size < 2 || size > maxLayoutSize || size&(size-1) != 0 {
		return nil, fmt.Errorf("lut: layout size %d: %w", size, ErrNotPowerOfTwo)
	}
	if size == tiled16.size {
		l := tiled16
		return &l, nil
	}

	n := bits.TrailingZeros(uint(size))
	l := &Layout{size: size}
	pos := bits.TrailingZeros(channels)
	for range n {
		l.xMask |= 1 << pos
		l.yMask |= 1 << (pos + 1)
		l.zMask |= 1 << (pos + 2)
		pos += 3
	}
	if err := l.check(); err != nil {
		return nil, err
	}
	return l, nil
}

// check verifies that the masks describe a permutation of the volume.
func (l *Layout) check() error {
	n := bits.TrailingZeros(uint(l.size))
	for _, m := range []int{l.xMask, l.yMask, l.zMask} {
		if bits.OnesCount(uint(m)) != n {
			return errInvalidLayout
		}
	}
	if l.xMask&l.yMask != 0 || l.xMask&l.zMask != 0 || l.yMask&l.zMask != 0 {
		return errInvalidLayout
	}
	all := l.xMask | l.yMask | l.zMask
	if all != (l.Len()-1)&^(channels-1) {
		return errInvalidLayout
	}
	return nil
}

// Size returns the edge length of the volume.
func (l *Layout) Size() int {
	return l.size
}

// Len returns the number of bytes in a volume with one byte per channel.
func (l *Layout) Len() int {
	return l.size * l.size * l.size * channels
}

// Swizzle converts between the linear and the tiled layout.
//
// If deswizzle is false, src is in linear order and the tiled data is
// written to dst.  If deswizzle is true, src is tiled and dst receives the
// linear data.  Both slices must have length l.Len().
func (l *Layout) Swizzle(dst, src []byte, deswizzle bool) {
	permute(l, dst, src, deswizzle)
}

// SwizzleFloat is like [Layout.Swizzle], but for volumes with one float32
// per channel.
func (l *Layout) SwizzleFloat(dst, src []float32, deswizzle bool) {
	permute(l, dst, src, deswizzle)
}

// Swizzle converts a 16×16×16 RGBA8 volume between the linear and the
// tiled layout of the game's colour grading texture.
// Both slices must have length 16384.
func Swizzle(dst, src []byte, deswizzle bool) {
	permute(&tiled16, dst, src, deswizzle)
}

// permute walks the volume in linear order and copies every sample between
// its linear and its tiled offset.  Offsets are measured in units of T,
// with [channels] values per sample.
func permute[T any](l *Layout, dst, src []T, deswizzle bool) {
	size := l.size

	// Subtracting the mask sets all bits outside the mask, so that the
	// carry of the following increment skips over them.  The offsets wrap
	// around to zero after size steps.
	var offsetX, offsetY, offsetZ int
	for z := range size {
		for y := range size {
			for x := range size {
				tiled := offsetX + offsetY + offsetZ
				pos := ((z*size+y)*size + x) * channels

				if deswizzle {
					copy(dst[pos:pos+channels], src[tiled:tiled+channels])
				} else {
					copy(dst[tiled:tiled+channels], src[pos:pos+channels])
				}

				offsetX = (offsetX - l.xMask) & l.xMask
			}
			offsetY = (offsetY - l.yMask) & l.yMask
		}
		offsetZ = (offsetZ - l.zMask) & l.zMask
	}
}

var errInvalidLayout = errors.New("lut: invalid swizzle layout")

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

import "github.com/goki/mat32"

type channelValue interface {
	~uint8 | ~float32
}

// sampleTrilinear evaluates a LUT with the given edge length at a point of
// the unit cube.  Channel values are multiplied by scale.
// If data is too short for the given size, the result is zero.
func sampleTrilinear[T channelValue](size int, data []T, scale float32, x, y, z float32) [4]float32 {
	var out [4]float32
	if len(data) < channels || size > 1 && len(data) < dataLen(size) {
		return out
	}
	if size < 2 {
		for c := range channels {
			out[c] = float32(data[c]) * scale
		}
		return out
	}

	x0, xPos := gridCell(size, x)
	y0, yPos := gridCell(size, y)
	z0, zPos := gridCell(size, z)

	// compute base offset for cube corner (x0, y0, z0)
	xStride := channels
	yStride := size * xStride
	zStride := size * yStride
	base := z0*zStride + y0*yStride + x0*xStride

	var corner [8]int
	for i := range corner {
		corner[i] = base
		if i&0b001 != 0 {
			corner[i] += xStride
		}
		if i&0b010 != 0 {
			corner[i] += yStride
		}
		if i&0b100 != 0 {
			corner[i] += zStride
		}
	}

	fx0, fy0, fz0 := float32(x0), float32(y0), float32(z0)
	for c := range channels {
		var f [8]float32
		for i, idx := range corner {
			f[i] = float32(data[idx+c]) * scale
		}
		out[c] = Trilinear(xPos, yPos, zPos, fx0, fx0+1, fy0, fy0+1, fz0, fz0+1, f)
	}
	return out
}

// gridCell maps a coordinate from [0, 1] to grid space.  It returns the
// index of the lower end of the enclosing grid cell, and the position
// inside the grid, clamped to [0, size-1].
func gridCell(size int, v float32) (int, float32) {
	maxPos := float32(size - 1)

	pos := v * maxPos
	if !(pos > 0) { // also catches NaN
		pos = 0
	} else if pos > maxPos {
		pos = maxPos
	}

	idx := int(mat32.Floor(pos))
	if idx > size-2 {
		idx = size - 2
	}
	return idx, pos
}

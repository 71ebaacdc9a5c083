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

// linear interpolates between (x0, f0) and (x1, f1).
// Values of x outside [x0, x1] are extrapolated.  If x0 == x1, the result
// is NaN or infinite.
func linear(x, x0, x1, f0, f1 float32) float32 {
	factor := (x - x0) / (x1 - x0)
	return (1-factor)*f0 + factor*f1
}

// bilinear interpolates on the rectangle [x0, x1] × [y0, y1].
// The corner values are indexed as f[yx], i.e. bit 0 selects x1 and bit 1
// selects y1.
func bilinear(x, y, x0, x1, y0, y1 float32, f [4]float32) float32 {
	r0 := linear(x, x0, x1, f[0b00], f[0b01])
	r1 := linear(x, x0, x1, f[0b10], f[0b11])
	return linear(y, y0, y1, r0, r1)
}

// Trilinear interpolates a scalar field given at the 8 corners of the
// cuboid [x0, x1] × [y0, y1] × [z0, z1].
//
// The corner values are indexed as f[zyx]: bit 0 of the index selects x1
// over x0, bit 1 selects y1 over y0 and bit 2 selects z1 over z0.
// No clamping is performed.  The caller must make sure that the cuboid is
// not degenerate.
func Trilinear(x, y, z, x0, x1, y0, y1, z0, z1 float32, f [8]float32) float32 {
	face0 := bilinear(x, y, x0, x1, y0, y1, [4]float32{f[0b000], f[0b001], f[0b010], f[0b011]})
	face1 := bilinear(x, y, x0, x1, y0, y1, [4]float32{f[0b100], f[0b101], f[0b110], f[0b111]})
	return linear(z, z0, z1, face0, face1)
}

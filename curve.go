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

// SRGBFromLinear applies the sRGB transfer function to a linear value.
// The result is not clamped.
func SRGBFromLinear(v float32) float32 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*mat32.Pow(v, 1/2.4) - 0.055
}

// LinearFromSRGB is the inverse of [SRGBFromLinear].
func LinearFromSRGB(v float32) float32 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return mat32.Pow((v+0.055)/1.055, 2.4)
}

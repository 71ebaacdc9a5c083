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

import "fmt"

// Correct computes the LUT which the game must use in place of the stage
// LUT, so that the final image looks as if the edit LUT had been applied to
// a screenshot taken with the stage LUT.
//
// The edit LUT works on sRGB colours, the stage LUT is the LUT shipped with
// the game.  The result has the size of the edit LUT.  If p is nil,
// [DefaultProfile] is used.
func Correct(edit, stage *Float, p *Profile) (*Float, error) {
	if err := edit.check(); err != nil {
		return nil, fmt.Errorf("lut: edit LUT: %w", err)
	}
	if err := stage.check(); err != nil {
		return nil, fmt.Errorf("lut: stage LUT: %w", err)
	}
	if p == nil {
		p = &DefaultProfile
	} else if err := p.Validate(); err != nil {
		return nil, err
	}

	size := edit.Size
	final := NewFloat(size)
	scale := float32(size - 1)
	for z := range size {
		for y := range size {
			for x := range size {
				// fx is the grid point as seen by the stage LUT,
				// in is the colour before the headroom map.
				fx := [3]float32{float32(x) / scale, float32(y) / scale, float32(z) / scale}
				var in [3]float32
				for c := range 3 {
					in[c] = p.HeadroomInv(fx[c])
				}

				result := stage.SampleTrilinear(fx[0], fx[1], fx[2])
				for c := range 3 {
					result[c] = SRGBFromLinear(p.Unbake(result[c], in[c]))
				}

				result = edit.SampleTrilinear(result[0], result[1], result[2])
				for c := range 3 {
					result[c] = p.UnbakeInv(LinearFromSRGB(result[c]), in[c])
				}
				result[3] = 1

				final.Set(x, y, z, result)
			}
		}
	}
	return final, nil
}

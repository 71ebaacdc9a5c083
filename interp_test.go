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
	"math"
	"testing"
)

func TestLinear(t *testing.T) {
	tests := []struct {
		x, want float32
	}{
		{-1, -1},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{2, 2},
	}
	for _, tt := range tests {
		got := linear(tt.x, 0, 1, 0, 1)
		if got != tt.want {
			t.Errorf("linear(%g) = %g, want %g", tt.x, got, tt.want)
		}
	}
}

func TestLinearDegenerate(t *testing.T) {
	got := linear(0.5, 1, 1, 2, 3)
	if !math.IsNaN(float64(got)) && !math.IsInf(float64(got), 0) {
		t.Errorf("degenerate interval: got %g, want NaN or Inf", got)
	}
}

func TestBilinear(t *testing.T) {
	corners := [][2]float32{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	values := [4]float32{1, 2, 3, 4}

	for i, c := range corners {
		got := bilinear(c[0], c[1], 0, 1, 0, 1, values)
		if got != values[i] {
			t.Errorf("corner %v: got %g, want %g", c, got, values[i])
		}
	}

	got := bilinear(0.5, 0.5, 0, 1, 0, 1, values)
	if got != 2.5 {
		t.Errorf("centre: got %g, want 2.5", got)
	}
}

func TestTrilinearCorners(t *testing.T) {
	values := [8]float32{1, 2, 3, 4, 5, 6, 7, 8}
	for i := range 8 {
		x := float32(i & 1)
		y := float32(i >> 1 & 1)
		z := float32(i >> 2 & 1)
		got := Trilinear(x, y, z, 0, 1, 0, 1, 0, 1, values)
		if got != values[i] {
			t.Errorf("corner (%g,%g,%g): got %g, want %g", x, y, z, got, values[i])
		}
	}
}

func TestTrilinearCentre(t *testing.T) {
	values := [8]float32{1, 2, 3, 4, 5, 6, 7, 8}
	var sum float32
	for _, v := range values {
		sum += v
	}

	got := Trilinear(0.5, 0.5, 0.5, 0, 1, 0, 1, 0, 1, values)
	if want := sum / 8; got != want {
		t.Errorf("centre: got %g, want %g", got, want)
	}
}

func TestTrilinearShiftedCell(t *testing.T) {
	// f(x,y,z) = x + 10y + 100z is reproduced exactly on any cell
	var f [8]float32
	for i := range 8 {
		x := float32(3 + i&1)
		y := float32(7 + i>>1&1)
		z := float32(1 + i>>2&1)
		f[i] = x + 10*y + 100*z
	}

	got := Trilinear(3.25, 7.5, 1.75, 3, 4, 7, 8, 1, 2, f)
	want := float32(3.25 + 75 + 175)
	if math.Abs(float64(got-want)) > 1e-4 {
		t.Errorf("got %g, want %g", got, want)
	}
}

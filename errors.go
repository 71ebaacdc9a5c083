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
)

var (
	// ErrInvalidDimensions is returned when an image cannot hold a 3D LUT,
	// i.e. when its width is not the square of its height.
	ErrInvalidDimensions = errors.New("invalid LUT image dimensions")

	// ErrSizeMismatch is returned when the length of LUT data does not
	// match the LUT size.
	ErrSizeMismatch = errors.New("LUT data does not match LUT size")

	// ErrNotPowerOfTwo is returned when a swizzle layout is requested for an
	// unsupported volume size.
	ErrNotPowerOfTwo = errors.New("size is not a power of two between 2 and 256")
)

// CubeError is returned when a CUBE file cannot be parsed.
type CubeError struct {
	Line   int // 1-based line number, or 0 if the error is not tied to a line
	Reason string
}

func cubeError(line int, reason string) error {
	return &CubeError{Line: line, Reason: reason}
}

func (e *CubeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("lut: invalid CUBE file (line %d): %s", e.Line, e.Reason)
	}
	return "lut: invalid CUBE file: " + e.Reason
}

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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxCubeSize is the largest LUT_3D_SIZE accepted by [ParseCube].
const maxCubeSize = 256

// maxDataLines limits the number of data lines buffered by [ParseCube].
var maxDataLines = maxCubeSize * maxCubeSize * maxCubeSize

// Cube is a 3D LUT in the CUBE text format.
type Cube struct {
	Title     string
	Size      int
	DomainMin [3]float32
	DomainMax [3]float32

	// Data holds Size³ RGB triples, with the red input varying fastest.
	Data [][3]float32
}

// NewCube creates a CUBE document with the default domain [0, 1]³.
func NewCube(title string, size int, data [][3]float32) *Cube {
	return &Cube{
		Title:     title,
		Size:      size,
		DomainMin: [3]float32{0, 0, 0},
		DomainMax: [3]float32{1, 1, 1},
		Data:      data,
	}
}

// ParseCube reads a CUBE file.
//
// Keyword lines (TITLE, LUT_3D_SIZE, DOMAIN_MIN, DOMAIN_MAX) may appear in
// any order before the data.  If a keyword is repeated, the last
// occurrence is used.  The first line which is not a keyword line starts
// the data block.  Blank lines and lines starting with '#' are ignored.
func ParseCube(r io.Reader) (*Cube, error) {
	c := NewCube("", 0, nil)

	type dataLine struct {
		no   int
		text string
	}
	var data []dataLine

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		if data != nil {
			if len(data) >= maxDataLines {
				return nil, cubeError(lineNo, "too many data lines")
			}
			data = append(data, dataLine{lineNo, line})
			continue
		}

		keyword, rest := line, ""
		if i := strings.IndexAny(line, " \t"); i >= 0 {
			keyword, rest = line[:i], line[i+1:]
		}
		switch keyword {
		case "TITLE":
			title, err := parseTitle(rest)
			if err != nil {
				return nil, cubeError(lineNo, err.Error())
			}
			c.Title = title
		case "LUT_3D_SIZE":
			size, err := strconv.ParseUint(strings.TrimSpace(rest), 10, 32)
			if err != nil || size < 2 || size > maxCubeSize {
				return nil, cubeError(lineNo, "invalid LUT_3D_SIZE")
			}
			c.Size = int(size)
		case "DOMAIN_MIN", "DOMAIN_MAX":
			v, err := parseTriple(rest)
			if err != nil {
				return nil, cubeError(lineNo, "invalid "+keyword)
			}
			if keyword == "DOMAIN_MIN" {
				c.DomainMin = v
			} else {
				c.DomainMax = v
			}
		default:
			data = append(data, dataLine{lineNo, line})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if c.Size == 0 {
		return nil, cubeError(0, "missing LUT_3D_SIZE")
	}
	if len(data) == 0 {
		return nil, cubeError(0, "missing data")
	}
	if want := c.Size * c.Size * c.Size; len(data) != want {
		return nil, cubeError(0,
			fmt.Sprintf("expected %d data lines for LUT_3D_SIZE %d, found %d", want, c.Size, len(data)))
	}

	c.Data = make([][3]float32, len(data))
	for i, d := range data {
		v, err := parseTriple(d.text)
		if err != nil {
			return nil, cubeError(d.no, "invalid data line")
		}
		c.Data[i] = v
	}
	return c, nil
}

// parseTitle returns the text between the first pair of double quotes.
func parseTitle(s string) (string, error) {
	_, rest, ok := strings.Cut(s, `"`)
	if !ok {
		return "", errMissingTitle
	}
	title, _, ok := strings.Cut(rest, `"`)
	if !ok {
		return "", errUnterminatedTitle
	}
	return title, nil
}

func parseTriple(s string) ([3]float32, error) {
	var res [3]float32
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return res, errInvalidTriple
	}
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return res, err
		}
		res[i] = float32(x)
	}
	return res, nil
}

// WriteTo writes the LUT in CUBE format.
//
// The domain is always written as [0, 1]³.  Titles containing double
// quotes or line breaks cannot be represented and give an error.
func (c *Cube) WriteTo(w io.Writer) (int64, error) {
	if strings.ContainsAny(c.Title, "\"\r\n") {
		return 0, errInvalidTitle
	}
	bw := bufio.NewWriter(w)

	var n int64
	k, err := fmt.Fprintf(bw, "# Created by seehuhn.de/go/lut\nTITLE \"%s\"\n\n# LUT size\nLUT_3D_SIZE %d\n\n",
		c.Title, c.Size)
	n += int64(k)
	if err != nil {
		return n, err
	}
	k, err = io.WriteString(bw, "# Data domain\nDOMAIN_MIN 0.0 0.0 0.0\nDOMAIN_MAX 1.0 1.0 1.0\n\n# LUT data points\n")
	n += int64(k)
	if err != nil {
		return n, err
	}

	var buf []byte
	for _, rgb := range c.Data {
		buf = buf[:0]
		for i, v := range rgb {
			if i > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendFloat(buf, float64(v), 'f', -1, 32)
		}
		buf = append(buf, '\n')
		k, err = bw.Write(buf)
		n += int64(k)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}

// Float converts the CUBE data to a LUT.  The alpha channel is set to 1.
func (c *Cube) Float() (*Float, error) {
	if c.Size < 1 || len(c.Data) != c.Size*c.Size*c.Size {
		return nil, ErrSizeMismatch
	}
	f := NewFloat(c.Size)
	for i, rgb := range c.Data {
		copy(f.Data[i*channels:], rgb[:])
		f.Data[i*channels+3] = 1
	}
	return f, nil
}

// FloatToCube converts a LUT to CUBE format.  The alpha channel is dropped.
func FloatToCube(title string, f *Float) *Cube {
	data := make([][3]float32, len(f.Data)/channels)
	for i := range data {
		copy(data[i][:], f.Data[i*channels:i*channels+3])
	}
	return NewCube(title, f.Size, data)
}

var (
	errMissingTitle      = errors.New("TITLE without quoted text")
	errUnterminatedTitle = errors.New("TITLE without closing quote")
	errInvalidTriple     = errors.New("expected three numbers")
	errInvalidTitle      = errors.New("lut: CUBE title contains a quote or line break")
)

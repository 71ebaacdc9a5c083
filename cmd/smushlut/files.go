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

package main

import (
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"seehuhn.de/go/lut"
	"seehuhn.de/go/lut/nutexb"
)

// nutexbName is the file name the game expects for the colour grading LUT.
const nutexbName = nutexb.DefaultName + ".nutexb"

type options struct {
	stage   *lut.Linear // nil means lut.Neutral()
	profile *lut.Profile
	title   string
}

func readNutexb(fname string) (*lut.Linear, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	s, err := nutexb.Read(fd)
	if err != nil {
		return nil, err
	}
	return s.Deswizzle()
}

func readCube(fname string) (*lut.Float, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	c, err := lut.ParseCube(fd)
	if err != nil {
		return nil, err
	}
	return c.Float()
}

// readStrip reads a LUT from an image.  The image is either the LUT strip
// itself, or a screenshot with the strip in the top left corner.
func readStrip(fname string) (*lut.Linear, error) {
	img, err := imgio.Open(fname)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	if b.Dx() == b.Dy()*b.Dy() {
		return lut.FromRaster(lut.NewImageRaster(img))
	}
	return lut.CutNeutral(img)
}

// readLinear reads a LUT from any of the supported file formats.
func readLinear(fname string) (*lut.Linear, error) {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".nutexb":
		return readNutexb(fname)
	case ".cube":
		f, err := readCube(fname)
		if err != nil {
			return nil, err
		}
		return f.Linear(), nil
	default:
		return readStrip(fname)
	}
}

// correctCube reads an edit LUT and combines it with the stage LUT.
func correctCube(fname string, opt *options) (*lut.Linear, error) {
	edit, err := readCube(fname)
	if err != nil {
		return nil, err
	}
	stage := opt.stage
	if stage == nil {
		stage = lut.Neutral()
	}
	final, err := lut.Correct(edit, stage.Float(), opt.profile)
	if err != nil {
		return nil, err
	}
	return final.Linear(), nil
}

// writeLinear writes a LUT.  The format is chosen by the extension of out.
func writeLinear(l *lut.Linear, out string, opt *options) error {
	switch strings.ToLower(filepath.Ext(out)) {
	case ".nutexb":
		if l.Size != lut.NeutralSize {
			l = l.Float().Resample(lut.NeutralSize).Linear()
		}
		s, err := l.Swizzle()
		if err != nil {
			return err
		}
		return createFile(out, func(w io.Writer) error {
			return nutexb.Write(w, s, nutexb.DefaultName)
		})
	case ".cube":
		c := lut.FloatToCube(opt.title, l.Float())
		return createFile(out, func(w io.Writer) error {
			_, err := c.WriteTo(w)
			return err
		})
	default:
		return saveImage(out, l.Image())
	}
}

func writeScreenshot(fname, out string, opt *options) error {
	img, err := imgio.Open(fname)
	if err != nil {
		return err
	}
	return saveImage(out, lut.WriteNeutral(img, opt.profile))
}

func saveImage(out string, img image.Image) error {
	enc := imgio.PNGEncoder()
	if strings.ToLower(filepath.Ext(out)) == ".bmp" {
		enc = imgio.BMPEncoder()
	}
	return imgio.Save(out, img, enc)
}

func createFile(fname string, write func(w io.Writer) error) error {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = write(fd)
	if err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}

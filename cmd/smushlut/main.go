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

// Smushlut converts colour grading LUTs for the game.
//
// The conversion is chosen from the input file name, so that files can be
// dropped onto the executable:
//
//	screenshot.png       ->  screenshot.lut.png (neutral LUT pasted in)
//	screenshot.lut.png   ->  color_grading_lut.nutexb
//	grading.cube         ->  color_grading_lut.nutexb (colour corrected)
//	some.nutexb          ->  some.png
//
// Use -o to choose a different output file.  The output format follows the
// extension of the output file name (.nutexb, .cube or an image).
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/lut"
)

var (
	output      = flag.String("o", "", "output file (only with a single input)")
	stageFile   = flag.String("stage", "", "stage LUT (.nutexb, .cube or image), default: the game's neutral LUT")
	profileFile = flag.String("profile", "", "JSON file with pipeline parameters")
	title       = flag.String("title", "", "title for .cube output")
	verbose     = flag.Bool("v", false, "verbose output")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("smushlut: ")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [options] file...\n\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), "supported inputs: %s\n\n", strings.Join(supportedInputs(), ", "))
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if *output != "" && flag.NArg() > 1 {
		log.Fatal("-o can only be used with a single input file")
	}

	opt, err := loadOptions()
	if err != nil {
		log.Fatal(err)
	}

	failed := false
	for _, fname := range flag.Args() {
		out, err := convert(fname, *output, opt)
		if err != nil {
			log.Printf("%s: %v", fname, err)
			failed = true
			continue
		}
		if *verbose {
			log.Printf("%s -> %s", fname, out)
		}
	}
	if failed {
		os.Exit(1)
	}
}

func loadOptions() (*options, error) {
	opt := &options{title: *title}
	if *profileFile != "" {
		fd, err := os.Open(*profileFile)
		if err != nil {
			return nil, err
		}
		defer fd.Close()
		opt.profile, err = lut.LoadProfile(fd)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", *profileFile, err)
		}
	}
	if *stageFile != "" {
		stage, err := readLinear(*stageFile)
		if err != nil {
			return nil, fmt.Errorf("stage LUT: %w", err)
		}
		opt.stage = stage
	}
	return opt, nil
}

// inputKinds maps file extensions to a description of the conversion.
var inputKinds = map[string]string{
	".nutexb": "texture to image",
	".cube":   "CUBE file to texture",
	".png":    "screenshot to LUT screenshot",
	".jpg":    "screenshot to LUT screenshot",
	".jpeg":   "screenshot to LUT screenshot",
	".bmp":    "screenshot to LUT screenshot",
	".tif":    "screenshot to LUT screenshot",
	".tiff":   "screenshot to LUT screenshot",
}

func supportedInputs() []string {
	exts := maps.Keys(inputKinds)
	slices.Sort(exts)
	return exts
}

var errUnsupported = errors.New("unsupported file type")

// convert converts a single file and returns the name of the output file.
func convert(fname, out string, opt *options) (string, error) {
	base := filepath.Base(fname)
	ext := strings.ToLower(filepath.Ext(fname))
	dir := filepath.Dir(fname)

	if _, ok := inputKinds[ext]; !ok {
		return "", fmt.Errorf("%w %q (supported: %s)",
			errUnsupported, ext, strings.Join(supportedInputs(), ", "))
	}

	switch {
	case ext == ".nutexb":
		if out == "" {
			out = strings.TrimSuffix(fname, filepath.Ext(fname)) + ".png"
		}
		l, err := readNutexb(fname)
		if err != nil {
			return "", err
		}
		return out, writeLinear(l, out, opt)

	case ext == ".cube":
		if out == "" {
			out = filepath.Join(dir, nutexbName)
		}
		l, err := correctCube(fname, opt)
		if err != nil {
			return "", err
		}
		return out, writeLinear(l, out, opt)

	case strings.Contains(strings.ToLower(base), ".lut."):
		if out == "" {
			out = filepath.Join(dir, nutexbName)
		}
		l, err := readStrip(fname)
		if err != nil {
			return "", err
		}
		return out, writeLinear(l, out, opt)

	default:
		if out == "" {
			out = strings.TrimSuffix(fname, filepath.Ext(fname)) + ".lut.png"
		}
		return out, writeScreenshot(fname, out, opt)
	}
}

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

// Package nutexb reads and writes the texture container used for the
// game's colour grading LUT.
//
// A file consists of the swizzled texture data, followed by a fixed size
// footer which describes the texture.  Only uncompressed 3D textures in
// R8G8B8A8 format with a single mipmap and a single layer are supported.
package nutexb

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"seehuhn.de/go/lut"
)

// FooterSize is the length of the encoded footer in bytes.
const FooterSize = 0xB0

// FormatRGBA8 is the image format code for R8G8B8A8 unorm data.
const FormatRGBA8 = 0x00

// DefaultName is the texture name used by the game for the colour
// grading LUT.
const DefaultName = "color_grading_lut"

var (
	footerMagic  = [4]byte{' ', 'X', 'N', 'T'}
	textureMagic = [4]byte{' ', 'X', 'E', 'T'}
)

// Footer describes the texture data in a nutexb file.
// The layout of the struct matches the binary encoding.
type Footer struct {
	MipSizes     [16]uint32 // data size of each mipmap
	Magic        [4]byte
	Name         [64]byte // NUL padded
	Width        uint32
	Height       uint32
	Depth        uint32
	Format       uint8
	Unknown1     uint8
	Unknown2     uint16
	Unknown3     uint32
	MipCount     uint32
	Alignment    uint32
	LayerCount   uint32
	DataSize     uint32
	TexMagic     [4]byte
	VersionMajor uint16
	VersionMinor uint16
}

// NewFooter returns the footer for a cubic RGBA8 texture with a single
// mipmap.
func NewFooter(name string, size int, dataSize int) *Footer {
	f := &Footer{
		Magic:        footerMagic,
		Width:        uint32(size),
		Height:       uint32(size),
		Depth:        uint32(size),
		Format:       FormatRGBA8,
		Unknown1:     4,
		MipCount:     1,
		Alignment:    0x1000,
		LayerCount:   1,
		DataSize:     uint32(dataSize),
		TexMagic:     textureMagic,
		VersionMajor: 1,
		VersionMinor: 2,
	}
	f.MipSizes[0] = uint32(dataSize)
	copy(f.Name[:len(f.Name)-1], name)
	return f
}

// TextureName returns the name stored in the footer.
func (f *Footer) TextureName() string {
	name, _, _ := bytes.Cut(f.Name[:], []byte{0})
	return string(name)
}

// Encode converts the footer to binary form.
func (f *Footer) Encode() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, FooterSize))
	// writes to a bytes.Buffer cannot fail
	_ = binary.Write(buf, binary.LittleEndian, f)
	return buf.Bytes()
}

// DecodeFooter decodes a footer from the last [FooterSize] bytes of data.
func DecodeFooter(data []byte) (*Footer, error) {
	if len(data) < FooterSize {
		return nil, ErrTruncated
	}
	f := &Footer{}
	err := binary.Read(bytes.NewReader(data[len(data)-FooterSize:]), binary.LittleEndian, f)
	if err != nil {
		return nil, err
	}
	if f.Magic != footerMagic || f.TexMagic != textureMagic {
		return nil, ErrBadMagic
	}
	return f, nil
}

// Write writes a nutexb file containing the given LUT.
// If name is empty, [DefaultName] is used.
func Write(w io.Writer, s *lut.Swizzled, name string) error {
	if name == "" {
		name = DefaultName
	}
	if _, err := w.Write(s.Data); err != nil {
		return err
	}
	_, err := w.Write(NewFooter(name, s.Size, len(s.Data)).Encode())
	return err
}

// Read reads the LUT from a nutexb file.
func Read(r io.Reader) (*lut.Swizzled, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	f, err := DecodeFooter(body)
	if err != nil {
		return nil, err
	}

	if f.Format != FormatRGBA8 {
		return nil, fmt.Errorf("nutexb: image format 0x%02x: %w", f.Format, ErrUnsupported)
	}
	if f.Width != f.Height || f.Width != f.Depth || f.Width < 2 || f.Width > 256 || f.LayerCount > 1 {
		return nil, fmt.Errorf("nutexb: %d×%d×%d texture: %w", f.Width, f.Height, f.Depth, ErrUnsupported)
	}
	size := int(f.Width)
	n := size * size * size * 4
	if int(f.DataSize) != n || n > len(body)-FooterSize {
		return nil, ErrTruncated
	}

	return &lut.Swizzled{Size: size, Data: body[:n]}, nil
}

var (
	// ErrTruncated is returned when a file is too short for the texture
	// described in its footer.
	ErrTruncated = errors.New("nutexb: truncated file")

	// ErrBadMagic is returned when the footer signatures are missing.
	ErrBadMagic = errors.New("nutexb: missing footer signature")

	// ErrUnsupported is returned for textures which cannot hold a 3D LUT.
	ErrUnsupported = errors.New("nutexb: unsupported texture")
)

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
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/goki/mat32"
)

// Profile describes the post-processing pipeline of the renderer around
// the stage LUT.
//
// The renderer maps a colour x into the domain of the stage LUT using the
// affine "headroom" map x ↦ HeadroomScale·x + HeadroomBias.  After the
// stage LUT, the result v is "baked" by
//
//	v ↦ max((UnbakeBlend·(v − x) + x)·UnbakeScale, 0)^Gamma
//
// where x is the colour before the headroom map.  Screenshots taken in
// the game are brighter than the LUT input by the factor Brightness.
//
// The values were measured for one particular game; [DefaultProfile]
// holds them.
type Profile struct {
	HeadroomScale float32 `json:"headroom_scale"`
	HeadroomBias  float32 `json:"headroom_bias"`
	UnbakeBlend   float32 `json:"unbake_blend"`
	UnbakeScale   float32 `json:"unbake_scale"`
	Gamma         float32 `json:"gamma"`
	Brightness    float32 `json:"brightness"`
}

// DefaultProfile is the pipeline of the game's stage renderer.
var DefaultProfile = Profile{
	HeadroomScale: 0.9375,
	HeadroomBias:  0.03125,
	UnbakeBlend:   0.99961,
	UnbakeScale:   1.3703,
	Gamma:         2.2,
	Brightness:    1.4,
}

// LoadProfile reads a profile in JSON format.
// Fields which are not present in the input keep the values from
// [DefaultProfile].
func LoadProfile(r io.Reader) (*Profile, error) {
	p := DefaultProfile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("lut: reading profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks that all maps described by the profile are invertible.
func (p *Profile) Validate() error {
	if !(p.HeadroomScale > 0) || !(p.UnbakeBlend > 0) ||
		!(p.UnbakeScale > 0) || !(p.Gamma > 0) || !(p.Brightness > 0) {
		return errInvalidProfile
	}
	return nil
}

// Headroom maps a colour channel into the domain of the stage LUT.
func (p *Profile) Headroom(x float32) float32 {
	return x*p.HeadroomScale + p.HeadroomBias
}

// HeadroomInv is the inverse of [Profile.Headroom], clamped at 0.
func (p *Profile) HeadroomInv(v float32) float32 {
	return mat32.Max((v-p.HeadroomBias)/p.HeadroomScale, 0)
}

// Unbake applies the post-processing curve to the stage LUT output v,
// for the input colour x.
func (p *Profile) Unbake(v, x float32) float32 {
	return mat32.Pow(mat32.Max(((v-x)*p.UnbakeBlend+x)*p.UnbakeScale, 0), p.Gamma)
}

// UnbakeInv is the inverse of [Profile.Unbake] for fixed x.
// Negative values of v are treated as 0.
//
// Unbake is not invertible as a function of two arguments; keeping x fixed
// to the colour of the current grid point makes it so.
func (p *Profile) UnbakeInv(v, x float32) float32 {
	return (mat32.Pow(mat32.Max(v, 0), 1/p.Gamma)/p.UnbakeScale-x)/p.UnbakeBlend + x
}

var errInvalidProfile = errors.New("lut: invalid pipeline profile")

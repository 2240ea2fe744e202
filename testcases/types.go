// seehuhn.de/go/rocon - rounded corners for HTML documents
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

// Package testcases holds corner configurations shared by the backend
// tests and the reference image generator.
package testcases

import "seehuhn.de/go/rocon/corner"

// TestCase is a single corner to draw.
type TestCase struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Params corner.Params
}

// Region describes the region a test corner belongs to.
type Region struct {
	Radius string // radius shorthand, e.g. "8" or "4-8"
	Shape  bool

	Top, Left           int // border widths
	TopColor, LeftColor string
	Background          string
}

// New computes the parameters of corner t of the region.
// It panics if the radius shorthand is malformed.
func New(name string, t corner.Type, reg Region) TestCase {
	radii, err := corner.ExpandRadius(reg.Radius)
	if err != nil {
		panic(err)
	}
	bg := reg.Background
	if bg == "" {
		bg = "#ffffff"
	}

	top := corner.Side{Width: reg.Top, Color: reg.TopColor}
	left := corner.Side{Width: reg.Left, Color: reg.LeftColor}
	b := corner.Borders{Top: top, Bottom: top, Left: left, Right: left}

	spec := corner.RegionSpec{Radii: radii, Shape: reg.Shape}
	return TestCase{
		Name:   name,
		Params: corner.Normalize(spec, t, b, bg),
	}
}

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

package corner

import (
	"strconv"
	"strings"
)

// ExtraWidth is the width of trailing-edge corner assets in shape mode.
// These assets extend under the whole element, so that the background
// between the two top (or bottom) corners is drawn as well.
const ExtraWidth = 2000

// Side is the border of one side of a region.
type Side struct {
	Width int    // pixels
	Color string // normalized #rrggbb if possible
}

// Borders holds the four borders of a region.
type Borders struct {
	Top, Right, Bottom, Left Side
}

// sides returns the horizontal and vertical border adjoining corner t.
// In the drawing coordinates of every corner these are called "top" and
// "left".
func (b Borders) sides(t Type) (top, left Side) {
	switch t {
	case TopLeft:
		return b.Top, b.Left
	case TopRight:
		return b.Top, b.Right
	case BottomRight:
		return b.Bottom, b.Right
	default:
		return b.Bottom, b.Left
	}
}

// Params fully determines the visual output for one corner.  All values
// are expressed as if the corner was the top-left corner; backends mirror
// the result according to Type.
type Params struct {
	Radius int

	Top      int // horizontal border width, clamped to Radius
	RealTop  int // horizontal border width as specified
	TopColor string

	Left      int // vertical border width, clamped to Radius
	RealLeft  int // vertical border width as specified
	LeftColor string

	Background string
	Shape      bool
	Type       Type

	Width   int
	Height  int
	OffsetX int
	OffsetY int

	// OppositeLeft and OppositeRadius describe the corner sharing the
	// same edge.  They are only used by trailing-edge corners in shape
	// mode.
	OppositeLeft   int
	OppositeRadius int
}

// Width returns the asset width for corner t.
func Width(radii [4]int, t Type, shape bool) int {
	if shape && t.IsRight() {
		return ExtraWidth
	}
	return radii[t]
}

// Height returns the asset height for corner t.  Both corners on an edge
// get the same height, so that they tile seamlessly.
func Height(radii [4]int, t Type) int {
	return max(radii[t], radii[t.Opposite()])
}

// Normalize computes the drawing parameters of corner t.
// Border widths are clamped to the corner radius.
func Normalize(spec RegionSpec, t Type, b Borders, background string) Params {
	r := max(spec.Radii[t], 0)
	top, left := b.sides(t)
	_, oppLeft := b.sides(t.Opposite())
	oppRadius := max(spec.Radii[t.Opposite()], 0)

	p := Params{
		Radius:     r,
		Top:        clamp(top.Width, r),
		RealTop:    max(top.Width, 0),
		TopColor:   top.Color,
		Left:       clamp(left.Width, r),
		RealLeft:   max(left.Width, 0),
		LeftColor:  left.Color,
		Background: background,
		Shape:      spec.Shape,
		Type:       t,
		Height:     Height(spec.Radii, t),

		OppositeLeft:   clamp(oppLeft.Width, oppRadius),
		OppositeRadius: oppRadius,
	}
	p.Width = max(Width(spec.Radii, t, spec.Shape), p.RealLeft)

	p.OffsetX = -p.RealLeft
	if p.Shape {
		p.OffsetY = -max(p.Height, p.Radius, p.RealTop)
	} else {
		p.OffsetY = -p.RealTop
	}
	return p
}

func clamp(v, r int) int {
	return min(max(v, 0), r)
}

// Trailing reports whether the corner is a trailing-edge corner in shape
// mode.  Such corners span the element and must also encode the geometry
// of the opposite corner.
func (p *Params) Trailing() bool {
	return p.Shape && p.Type.IsRight()
}

// Key returns the canonical cache key of the corner.  Two corners have the
// same key if and only if they look the same.
func (p *Params) Key() string {
	var b strings.Builder
	num := func(name string, v int) {
		b.WriteString(name)
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(v))
		b.WriteByte(';')
	}
	str := func(name, v string) {
		b.WriteString(name)
		b.WriteByte(':')
		b.WriteString(strconv.Quote(v))
		b.WriteByte(';')
	}

	num("radius", p.Radius)
	num("top", p.Top)
	num("real_top", p.RealTop)
	str("top_color", p.TopColor)
	num("left", p.Left)
	num("real_left", p.RealLeft)
	str("left_color", p.LeftColor)
	str("color", p.Background)
	str("shape", strconv.FormatBool(p.Shape))
	str("type", p.Type.String())
	num("width", p.Width)
	num("height", p.Height)
	num("offset_x", p.OffsetX)
	num("offset_y", p.OffsetY)

	if p.Trailing() {
		b.WriteString("--")
		b.WriteString(strconv.Itoa(p.Left + p.OppositeLeft))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(p.OppositeRadius))
	}
	return b.String()
}

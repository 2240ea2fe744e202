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

// Package corner holds the data model shared by the corner engine and its
// drawing backends: corner types, region specifications, the per-corner
// drawing parameters and the backend contract.
package corner

// Type identifies one of the four corners of a region.
// The numeric values index the radius array of a [RegionSpec].
type Type int

const (
	TopLeft Type = iota
	TopRight
	BottomRight
	BottomLeft
)

// SlotOrder is the order in which corner slots are created and drawn.
var SlotOrder = [4]Type{TopLeft, TopRight, BottomLeft, BottomRight}

var typeNames = [4]string{"tl", "tr", "br", "bl"}

// String returns the two-letter direction code ("tl", "tr", "br" or "bl").
func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "??"
	}
	return typeNames[t]
}

// ParseType converts a two-letter direction code back into a Type.
func ParseType(s string) (Type, bool) {
	for i, name := range typeNames {
		if name == s {
			return Type(i), true
		}
	}
	return 0, false
}

// IsTop reports whether the corner lies on the top edge.
func (t Type) IsTop() bool {
	return t == TopLeft || t == TopRight
}

// IsRight reports whether the corner lies on the trailing (right) edge.
func (t Type) IsRight() bool {
	return t == TopRight || t == BottomRight
}

// Opposite returns the corner which shares the top or bottom edge with t.
func (t Type) Opposite() Type {
	switch t {
	case TopLeft:
		return TopRight
	case TopRight:
		return TopLeft
	case BottomRight:
		return BottomLeft
	default:
		return BottomRight
	}
}

// AssetKind describes what a [Backend] produces.
type AssetKind int

const (
	// Image assets are referenced from a style rule as a background image.
	Image AssetKind = iota + 1

	// Node assets are inserted into the corner slot as markup.
	Node
)

func (k AssetKind) String() string {
	switch k {
	case Image:
		return "image"
	case Node:
		return "node"
	default:
		return "unknown"
	}
}

// Asset is the generated visual for one corner.
type Asset struct {
	Kind AssetKind

	// URI is the image reference for Image assets, usually a data URI.
	URI string

	// Markup is the node markup for Node assets.
	Markup string
}

// Backend draws corner assets.
//
// Implementations must clamp degenerate geometry instead of failing.
// An error is only returned if the asset itself cannot be produced.
type Backend interface {
	Draw(p *Params) (Asset, error)
	AssetKind() AssetKind
}

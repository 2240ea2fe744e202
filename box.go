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

package rocon

import (
	"strconv"
	"strings"

	"seehuhn.de/go/rocon/corner"
)

// box holds the vertical box metrics of a region, in pixels.
type box struct {
	PaddingTop    int
	PaddingBottom int
	MarginTop     int
	MarginBottom  int
	BorderTop     int
	BorderBottom  int
}

func readBox(n Node) box {
	return box{
		PaddingTop:    pixels(n.Style("padding-top")),
		PaddingBottom: pixels(n.Style("padding-bottom")),
		MarginTop:     pixels(n.Style("margin-top")),
		MarginBottom:  pixels(n.Style("margin-bottom")),
		BorderTop:     pixels(n.Style("border-top-width")),
		BorderBottom:  pixels(n.Style("border-bottom-width")),
	}
}

// adjustBox computes the box metrics of a region in shape mode.  The
// corner assets push the visible edge of the region outwards by the
// corner height; padding, margin and border are corrected so that the
// content box stays where it was.
func adjustBox(radii [4]int, cur box) box {
	offsetTop := max(radii[corner.TopLeft], radii[corner.TopRight])
	offsetBottom := max(radii[corner.BottomLeft], radii[corner.BottomRight])
	borderTop := min(offsetTop, cur.BorderTop)
	borderBottom := min(offsetBottom, cur.BorderBottom)

	return box{
		PaddingTop:    max(cur.PaddingTop-offsetTop+borderTop, 0),
		PaddingBottom: max(cur.PaddingBottom-offsetBottom+borderBottom, 0),
		MarginTop:     cur.MarginTop + offsetTop,
		MarginBottom:  cur.MarginBottom + offsetBottom,
		BorderTop:     cur.BorderTop - borderTop,
		BorderBottom:  cur.BorderBottom - borderBottom,
	}
}

func (b box) key() string {
	vals := []int{b.PaddingTop, b.PaddingBottom, b.MarginTop, b.MarginBottom, b.BorderTop, b.BorderBottom}
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return "box:" + strings.Join(parts, ";")
}

func (b box) declarations() []Declaration {
	return []Declaration{
		{Property: "border-top-width", Value: px(b.BorderTop), Important: true},
		{Property: "border-bottom-width", Value: px(b.BorderBottom), Important: true},
		{Property: "padding-top", Value: px(b.PaddingTop), Important: true},
		{Property: "padding-bottom", Value: px(b.PaddingBottom), Important: true},
		{Property: "margin-top", Value: px(b.MarginTop), Important: true},
		{Property: "margin-bottom", Value: px(b.MarginBottom), Important: true},
	}
}

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

package testcases

import "seehuhn.de/go/rocon/corner"

// All contains all test cases, grouped by category.
// The category name is used as a prefix in reference image filenames.
var All = map[string][]TestCase{
	"counter": counterCases,
	"shape":   shapeCases,
	"border":  borderCases,
}

var counterCases = []TestCase{
	New("plain_r8", corner.TopLeft, Region{Radius: "8"}),
	New("plain_r20", corner.TopLeft, Region{Radius: "20", Background: "#336699"}),
	New("tr_r12", corner.TopRight, Region{Radius: "12"}),
	New("br_r12", corner.BottomRight, Region{Radius: "12"}),
	New("bl_r12", corner.BottomLeft, Region{Radius: "4-8-12"}),
	New("r1", corner.TopLeft, Region{Radius: "1"}),
}

var shapeCases = []TestCase{
	New("tl_r8", corner.TopLeft, Region{Radius: "8", Shape: true}),
	New("tl_mixed", corner.TopLeft, Region{Radius: "4-10", Shape: true}),
	New("bl_r16", corner.BottomLeft, Region{Radius: "16", Shape: true, Background: "navy"}),
	New("tl_border", corner.TopLeft, Region{
		Radius: "10", Shape: true,
		Top: 2, Left: 2, TopColor: "#000000", LeftColor: "#000000",
	}),
}

var borderCases = []TestCase{
	New("same_color", corner.TopLeft, Region{
		Radius: "8",
		Top:    2, Left: 2, TopColor: "#0000ff", LeftColor: "#0000ff",
	}),
	New("asymmetric", corner.TopLeft, Region{
		Radius: "8",
		Top:    4, Left: 8, TopColor: "#ff0000", LeftColor: "#0000ff",
	}),
	New("top_only", corner.TopLeft, Region{
		Radius: "12",
		Top:    3, TopColor: "#00ff00",
	}),
	New("left_only", corner.TopLeft, Region{
		Radius: "12",
		Left:   3, LeftColor: "#00ff00",
	}),
	New("wider_than_radius", corner.TopLeft, Region{
		Radius: "6",
		Top:    10, Left: 10, TopColor: "#000000", LeftColor: "#000000",
	}),
	New("thick_gradient", corner.TopLeft, Region{
		Radius: "24",
		Top:    6, Left: 12, TopColor: "#ff0000", LeftColor: "#0000ff",
	}),
}

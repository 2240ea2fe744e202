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


package vecpath

import (
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"seehuhn.de/go/rocon/corner"
)

func params(spec corner.RegionSpec, t corner.Type, b corner.Borders) *corner.Params {
	p := corner.Normalize(spec, t, b, "#ffffff")
	return &p
}

func TestCounterShape(t *testing.T) {
	spec := corner.RegionSpec{Radii: [4]int{4, 4, 4, 4}}
	out, err := Markup(params(spec, corner.TopLeft, corner.Borders{}))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`width="4" height="4" viewBox="0 0 40 40"`,
		`d="M0,40 L0,40 A40,40 0 0 1 40,0 L40,0 L40,0 L0,0 L0,40 Z"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markup %s does not contain %s", out, want)
		}
	}
	if strings.Contains(out, "linearGradient") {
		t.Error("corner without border has a stroke")
	}
	checkWellFormed(t, out)
}

func TestBorder(t *testing.T) {
	spec := corner.RegionSpec{Radii: [4]int{8, 8, 8, 8}}
	horiz := corner.Side{Width: 4, Color: "#ff0000"}
	vert := corner.Side{Width: 8, Color: "#0000ff"}
	b := corner.Borders{Top: horiz, Bottom: horiz, Left: vert, Right: vert}
	out, err := Markup(params(spec, corner.BottomRight, b))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		// fill edge moved by half a pixel under the border
		`d="M5,80 L5,80 A75,75 0 0 1 80,5`,
		// inner boundary of the border
		`A0,40 0 0 0 80,80`,
		`y1="40" x2="0" y2="80"`,
		`matrix(-1 0 0 -1 80 80)`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markup %s does not contain %s", out, want)
		}
	}
	checkWellFormed(t, out)
}

func TestUniqueGradientIDs(t *testing.T) {
	spec := corner.RegionSpec{Radii: [4]int{8, 8, 8, 8}}
	b := corner.Borders{Top: corner.Side{Width: 2, Color: "#000000"}}
	p := params(spec, corner.TopLeft, b)

	a1, err := New().Draw(p)
	if err != nil {
		t.Fatal(err)
	}
	a2, err := New().Draw(p)
	if err != nil {
		t.Fatal(err)
	}
	if a1.Kind != corner.Node {
		t.Errorf("asset kind = %v, want %v", a1.Kind, corner.Node)
	}
	if a1.Markup == a2.Markup {
		t.Error("two drawings share a gradient id")
	}
}

func checkWellFormed(t *testing.T, doc string) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(doc))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			return
		}
		if err != nil {
			t.Fatalf("malformed markup %s: %v", doc, err)
		}
	}
}

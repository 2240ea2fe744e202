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
	"errors"
	"strings"
	"testing"

	"seehuhn.de/go/rocon/corner"
	"seehuhn.de/go/rocon/raster"
	"seehuhn.de/go/rocon/svg"
	"seehuhn.de/go/rocon/vecpath"
)

func TestSelectBackend(t *testing.T) {
	tests := []struct {
		caps Capabilities
		kind corner.AssetKind
		want string
	}{
		{Capabilities{Canvas: true, InlineSVG: true, SVGImage: true}, corner.Image, "raster"},
		{Capabilities{InlineSVG: true, SVGImage: true}, corner.Node, "path"},
		{Capabilities{SVGImage: true}, corner.Image, "svg"},
	}
	for _, tc := range tests {
		b, err := SelectBackend(tc.caps)
		if err != nil {
			t.Fatal(err)
		}
		var got string
		switch b.(type) {
		case *raster.Backend:
			got = "raster"
		case *vecpath.Backend:
			got = "path"
		case *svg.Backend:
			got = "svg"
		}
		if got != tc.want || b.AssetKind() != tc.kind {
			t.Errorf("%+v: got %s (%s), want %s", tc.caps, got, b.AssetKind(), tc.want)
		}
	}

	if _, err := SelectBackend(Capabilities{}); !errors.Is(err, ErrNoBackend) {
		t.Errorf("no capabilities: %v", err)
	}
}

func TestBackendByName(t *testing.T) {
	all := Capabilities{Canvas: true, InlineSVG: true, SVGImage: true}
	for _, name := range BackendNames {
		if _, err := BackendByName(name, all); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}

	_, err := BackendByName("rastr", all)
	if err == nil || !strings.Contains(err.Error(), `did you mean "raster"`) {
		t.Errorf("misspelled name: %v", err)
	}

	_, err = BackendByName("path", Capabilities{Canvas: true})
	if !errors.Is(err, ErrNoBackend) {
		t.Errorf("unsupported backend: %v", err)
	}
}

func TestBackendsEndToEnd(t *testing.T) {
	for _, name := range []string{"raster", "path", "svg"} {
		t.Run(name, func(t *testing.T) {
			b, err := BackendByName(name, Capabilities{Canvas: true, InlineSVG: true, SVGImage: true})
			if err != nil {
				t.Fatal(err)
			}
			body := newNode("body", nil, "background-color", "#eee")
			region := bordered("div", body, "2px", "#c00")
			sheet := &fakeSheet{}
			e := NewEngine(b, sheet)

			e.Enqueue(spec("8-4", false, false), region)
			e.Enqueue(spec("10", true, true), newNode("shape", body))
			stats, err := e.Run()
			if err != nil {
				t.Fatal(err)
			}
			if stats.Failed != 0 || stats.Drawn != 8 {
				t.Errorf("stats = %+v", stats)
			}
		})
	}
}

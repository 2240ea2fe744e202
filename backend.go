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
	"fmt"

	"github.com/agnivade/levenshtein"

	"seehuhn.de/go/rocon/corner"
	"seehuhn.de/go/rocon/raster"
	"seehuhn.de/go/rocon/svg"
	"seehuhn.de/go/rocon/vecpath"
)

// Capabilities describes what the host can display.
type Capabilities struct {
	Canvas    bool // PNG images in data URIs
	InlineSVG bool // inline <svg> elements
	SVGImage  bool // SVG images in data URIs
}

// ErrNoBackend is returned if none of the backends can be used.
var ErrNoBackend = errors.New("rocon: no usable backend")

// BackendNames lists the accepted backend names.
var BackendNames = []string{"auto", "raster", "path", "svg"}

// SelectBackend returns the preferred backend supported by the host.
// The raster backend is preferred over inline paths, which are preferred
// over SVG images.
func SelectBackend(c Capabilities) (corner.Backend, error) {
	switch {
	case c.Canvas:
		return raster.New(), nil
	case c.InlineSVG:
		return vecpath.New(), nil
	case c.SVGImage:
		return svg.New(), nil
	}
	return nil, ErrNoBackend
}

// BackendByName returns the named backend.  The name "auto" selects a
// backend using [SelectBackend].
func BackendByName(name string, c Capabilities) (corner.Backend, error) {
	var ok bool
	switch name {
	case "auto", "":
		return SelectBackend(c)
	case "raster":
		ok = c.Canvas
	case "path":
		ok = c.InlineSVG
	case "svg":
		ok = c.SVGImage
	default:
		return nil, fmt.Errorf("rocon: unknown backend %q (did you mean %q?)", name, closest(name))
	}
	if !ok {
		return nil, fmt.Errorf("rocon: backend %q not supported by host: %w", name, ErrNoBackend)
	}
	switch name {
	case "raster":
		return raster.New(), nil
	case "path":
		return vecpath.New(), nil
	default:
		return svg.New(), nil
	}
}

func closest(name string) string {
	best, bestDist := "", -1
	for _, cand := range BackendNames {
		d := levenshtein.ComputeDistance(name, cand)
		if bestDist < 0 || d < bestDist {
			best, bestDist = cand, d
		}
	}
	return best
}

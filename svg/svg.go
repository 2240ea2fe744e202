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


// Package svg draws corners as SVG images embedded in data URIs.
package svg

import (
	"encoding/base64"
	"fmt"
	"strconv"

	"seehuhn.de/go/rocon/corner"
	"seehuhn.de/go/rocon/internal/subst"
)

const (
	header = `<svg xmlns="http://www.w3.org/2000/svg" width="%width%px" height="%height%px">` +
		`<g transform="%rotate%">`
	footer = `</g></svg>`

	fillPath = `<g transform="translate(%ox%,%oy%)">` +
		`<path fill="%color%" d="M0,%fill_height% V%radius% a%radius%,%radius% 0 0 1 %radius%,-%radius% H%fill_width% %close% z"/>` +
		`</g>`

	strokeGradient = `<linearGradient id="rocon-stroke" gradientUnits="userSpaceOnUse" x1="0" y1="%top%" x2="0" y2="%radius%">` +
		`<stop offset="0" stop-color="%from%"/><stop offset="1" stop-color="%to%"/>` +
		`</linearGradient>`

	strokePath = `<path fill="url(#rocon-stroke)" d="M0,%height% V%radius% a%radius%,%radius% 0 0 1 %radius%,-%radius% ` +
		`H%width% v%top% H%radius% A%inner_rx%,%inner_ry% 0 0 0 %left%,%radius% V%height% z"/>`
)

// Backend draws corners as SVG documents.
type Backend struct{}

// New returns a new SVG backend.
func New() *Backend {
	return &Backend{}
}

// AssetKind implements the [corner.Backend] interface.
func (*Backend) AssetKind() corner.AssetKind {
	return corner.Image
}

// Draw implements the [corner.Backend] interface.
func (b *Backend) Draw(p *corner.Params) (corner.Asset, error) {
	doc, err := Document(p)
	if err != nil {
		return corner.Asset{}, err
	}
	uri := "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(doc))
	return corner.Asset{Kind: corner.Image, URI: uri}, nil
}

// Document returns the SVG document for a corner.
func Document(p *corner.Params) (string, error) {
	r := max(p.Radius, 0)
	w := max(p.Width, r)
	h := max(p.Height, r)

	vars := subst.Vars{
		"radius":   r,
		"top":      p.Top,
		"left":     p.Left,
		"width":    w,
		"height":   h,
		"inner_rx": max(r-p.Left, 0),
		"inner_ry": max(r-p.Top, 0),
		"color":    color(p.Background),
		"rotate":   rotate(p.Type, w, h),
	}

	// In shape mode the fill is moved inwards by one pixel where a border
	// exists, so that the border covers the anti-aliased edge.
	var ox, oy int
	if p.Shape {
		if p.Left > 0 {
			ox = 1
		}
		if p.Top > 0 {
			oy = 1
		}
		vars["close"] = "V" + strconv.Itoa(h-oy)
	} else {
		vars["close"] = "H0"
	}
	vars["ox"] = ox
	vars["oy"] = oy
	vars["fill_width"] = w - ox
	vars["fill_height"] = h - oy

	head, err := subst.Expand(header, vars)
	if err != nil {
		return "", fmt.Errorf("svg: %s corner: %w", p.Type, err)
	}
	body, err := subst.Expand(fillPath, vars)
	if err != nil {
		return "", fmt.Errorf("svg: %s corner: %w", p.Type, err)
	}

	if p.Top+p.Left > 0 {
		from, to := p.TopColor, p.LeftColor
		if p.Top == 0 {
			from = p.LeftColor
		}
		if p.Left == 0 {
			to = p.TopColor
		}
		vars["from"] = color(from)
		vars["to"] = color(to)

		stroke, err := subst.Expand(strokeGradient+strokePath, vars)
		if err != nil {
			return "", fmt.Errorf("svg: %s corner: %w", p.Type, err)
		}
		body += stroke
	}

	return head + body + footer, nil
}

// rotate returns the transformation which mirrors a top-left corner into
// the orientation of corner t.
func rotate(t corner.Type, w, h int) string {
	switch t {
	case corner.TopRight:
		return fmt.Sprintf("scale(-1,1) translate(-%d,0)", w)
	case corner.BottomLeft:
		return fmt.Sprintf("scale(1,-1) translate(0,-%d)", h)
	case corner.BottomRight:
		return fmt.Sprintf("scale(-1,-1) translate(-%d,-%d)", w, h)
	default:
		return ""
	}
}

func color(s string) string {
	if hex, ok := corner.ToHex(s); ok {
		return hex
	}
	return s
}

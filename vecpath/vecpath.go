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


// Package vecpath draws corners as inline SVG elements.
//
// All coordinates are multiplied by [Multiplier] and mapped back to pixels
// by the viewBox of the element, so that the path data only holds
// integers.  The result is inserted into the corner placeholder directly
// and needs no style rule for an image.
package vecpath

import (
	"fmt"

	"github.com/google/uuid"

	"seehuhn.de/go/rocon/corner"
	"seehuhn.de/go/rocon/internal/subst"
)

// Multiplier scales pixel coordinates to path coordinates.
const Multiplier = 10

const (
	header = `<svg xmlns="http://www.w3.org/2000/svg" class="rocon-vec" width="%width%" height="%height%" ` +
		`viewBox="0 0 %c_width% %c_height%" preserveAspectRatio="none"><g transform="%rotate%">`
	footer = `</g></svg>`

	fillPath = `<path fill="%color%" d="M%ox%,%c_height% L%ox%,%c_radius% ` +
		`A%fill_rx%,%fill_ry% 0 0 1 %c_radius%,%oy% L%c_width%,%oy% L%c_width%,0 %close% L0,%c_height% Z"/>`

	strokePath = `<linearGradient id="%id%" gradientUnits="userSpaceOnUse" x1="0" y1="%c_top%" x2="0" y2="%c_radius%">` +
		`<stop offset="0" stop-color="%from%"/><stop offset="1" stop-color="%to%"/></linearGradient>` +
		`<path fill="url(#%id%)" d="M0,%c_height% L0,%c_radius% A%c_radius%,%c_radius% 0 0 1 %c_radius%,0 ` +
		`L%c_width%,0 L%c_width%,%c_top% L%c_radius%,%c_top% ` +
		`A%inner_rx%,%inner_ry% 0 0 0 %c_left%,%c_radius% L%c_left%,%c_height% Z"/>`
)

// Backend draws corners as inline SVG markup.
type Backend struct{}

// New returns a new path backend.
func New() *Backend {
	return &Backend{}
}

// AssetKind implements the [corner.Backend] interface.
func (*Backend) AssetKind() corner.AssetKind {
	return corner.Node
}

// Draw implements the [corner.Backend] interface.
func (b *Backend) Draw(p *corner.Params) (corner.Asset, error) {
	markup, err := Markup(p)
	if err != nil {
		return corner.Asset{}, err
	}
	return corner.Asset{Kind: corner.Node, Markup: markup}, nil
}

// Markup returns the <svg> element for a corner.  Every call uses a
// fresh gradient id, so that several elements can share a document.
func Markup(p *corner.Params) (string, error) {
	const m = Multiplier

	r := max(p.Radius, 0)
	w := max(p.Width, r)
	h := max(p.Height, r)
	cw, ch := w*m, h*m

	// The fill edge is moved under the border where one exists.
	var ox, oy int
	step := m / 2
	if p.Shape {
		step = m
	}
	if p.Left > 0 {
		ox = step
	}
	if p.Top > 0 {
		oy = step
	}

	vars := subst.Vars{
		"width":    w,
		"height":   h,
		"c_width":  cw,
		"c_height": ch,
		"c_radius": r * m,
		"c_top":    p.Top * m,
		"c_left":   p.Left * m,
		"ox":       ox,
		"oy":       oy,
		"fill_rx":  max(r*m-ox, 0),
		"fill_ry":  max(r*m-oy, 0),
		"inner_rx": max(r-p.Left, 0) * m,
		"inner_ry": max(r-p.Top, 0) * m,
		"color":    color(p.Background),
		"rotate":   rotate(p.Type, cw, ch),
		"id":       "rocon-" + uuid.NewString(),
	}
	if p.Shape {
		vars["close"] = fmt.Sprintf("L%d,%d", cw, ch)
	} else {
		vars["close"] = "L0,0"
	}

	tmpl := header + fillPath
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
		tmpl += strokePath
	}

	res, err := subst.Expand(tmpl+footer, vars)
	if err != nil {
		return "", fmt.Errorf("vecpath: %s corner: %w", p.Type, err)
	}
	return res, nil
}

// rotate returns the transformation which mirrors a top-left corner into
// the orientation of corner t, in path coordinates.
func rotate(t corner.Type, cw, ch int) string {
	switch t {
	case corner.TopRight:
		return fmt.Sprintf("matrix(-1 0 0 1 %d 0)", cw)
	case corner.BottomLeft:
		return fmt.Sprintf("matrix(1 0 0 -1 0 %d)", ch)
	case corner.BottomRight:
		return fmt.Sprintf("matrix(-1 0 0 -1 %d %d)", cw, ch)
	default:
		return "matrix(1 0 0 1 0 0)"
	}
}

func color(s string) string {
	if hex, ok := corner.ToHex(s); ok {
		return hex
	}
	return s
}

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

package raster

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/rocon/corner"
)

// Op is one drawing step on a layer.
//
// Paint operations composite Fill over the layer, using the coverage of
// Path as a mask.  Erase operations multiply the layer by one minus the
// coverage.
type Op struct {
	Erase bool
	Path  *path.Data
	CTM   matrix.Matrix
	Fill  image.Image // unused for erase operations
}

// Plan returns the drawing steps for a corner.  The corner is drawn as a
// top-left corner with size p.Width×p.Height; the background layer is
// drawn first, and the stroke layer is composited on top.  The stroke
// layer is empty if the corner has no border.
func Plan(p *corner.Params) (background, stroke []Op) {
	r := float64(p.Radius)
	w := float64(p.Width)
	h := float64(p.Height)
	bg := image.NewUniform(corner.RGBA(p.Background))

	var ox, oy float64
	if !p.Shape {
		background = append(background, Op{Path: box(0, 0, r, r), CTM: matrix.Identity, Fill: bg})
		if p.Left > 0 {
			ox = 0.5
		}
		if p.Top > 0 {
			oy = 0.5
		}
		background = append(background, Op{
			Erase: true,
			Path:  circle(r, r, r),
			CTM:   matrix.Matrix{1, 0, 0, 1, ox, oy},
		})
	} else {
		if p.Left > 0 {
			ox = 1
		}
		if p.Top > 0 {
			oy = 1
		}
		background = append(background,
			Op{Path: circle(r, r, r), CTM: matrix.Matrix{1, 0, 0, 1, ox, oy}, Fill: bg},
			Op{Path: box(r, 0, w, h), CTM: matrix.Identity, Fill: bg},
			Op{Path: box(0, r, w, h), CTM: matrix.Identity, Fill: bg},
		)
	}

	if p.Top+p.Left == 0 {
		return background, nil
	}

	top := float64(p.Top)
	left := float64(p.Left)
	if p.Top > 0 {
		stroke = append(stroke, Op{
			Path: box(r, 0, w, top),
			CTM:  matrix.Identity,
			Fill: image.NewUniform(corner.RGBA(p.TopColor)),
		})
	}
	if p.Left > 0 {
		stroke = append(stroke, Op{
			Path: box(0, r, left, h),
			CTM:  matrix.Identity,
			Fill: image.NewUniform(corner.RGBA(p.LeftColor)),
		})
	}

	var disc image.Image
	if p.TopColor != p.LeftColor {
		from, to := p.TopColor, p.LeftColor
		if p.Top == 0 {
			from = p.LeftColor
		}
		if p.Left == 0 {
			to = p.TopColor
		}
		disc = NewVerticalGradient(top, r, corner.RGBA(from), corner.RGBA(to))
	} else {
		disc = image.NewUniform(corner.RGBA(p.TopColor))
	}

	sx, sy := InnerScale(p)
	stroke = append(stroke,
		Op{Path: circle(r, r, r), CTM: matrix.Identity, Fill: disc},
		Op{
			Erase: true,
			Path:  circle(r, r, r),
			CTM:   matrix.Matrix{sx, 0, 0, sy, left, top},
		},
		Op{Erase: true, Path: box(r, top, 2*r, top+h), CTM: matrix.Identity},
		Op{Erase: true, Path: box(left, r, left+w, r+h), CTM: matrix.Identity},
	)
	return background, stroke
}

// InnerScale returns the scale factors which map the outer circle of the
// border onto its inner boundary.  Zero factors are replaced by 0.01, so
// that the transformation stays invertible.
func InnerScale(p *corner.Params) (sx, sy float64) {
	if p.Radius == 0 {
		return 1, 1
	}
	r := float64(p.Radius)
	sx = max(1-float64(p.Left)/r, 0)
	sy = max(1-float64(p.Top)/r, 0)
	if sx == 0 {
		sx = minScale
	}
	if sy == 0 {
		sy = minScale
	}
	return sx, sy
}

const minScale = 0.01

// circleK is the control point distance for a quarter circle of radius 1
// approximated by a cubic Bézier curve.
const circleK = 0.5522847498307936

func circle(cx, cy, r float64) *path.Data {
	k := r * circleK
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: cx + r, Y: cy}).
		CubeTo(vec.Vec2{X: cx + r, Y: cy + k}, vec.Vec2{X: cx + k, Y: cy + r}, vec.Vec2{X: cx, Y: cy + r}).
		CubeTo(vec.Vec2{X: cx - k, Y: cy + r}, vec.Vec2{X: cx - r, Y: cy + k}, vec.Vec2{X: cx - r, Y: cy}).
		CubeTo(vec.Vec2{X: cx - r, Y: cy - k}, vec.Vec2{X: cx - k, Y: cy - r}, vec.Vec2{X: cx, Y: cy - r}).
		CubeTo(vec.Vec2{X: cx + k, Y: cy - r}, vec.Vec2{X: cx + r, Y: cy - k}, vec.Vec2{X: cx + r, Y: cy}).
		Close()
}

// box returns the rectangle [x0,x1]×[y0,y1].
func box(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
}

// VerticalGradient is an image whose color changes linearly between two
// rows.  Above the first row it has the color From, below the second row
// the color To.
type VerticalGradient struct {
	Y0, Y1   float64
	From, To color.NRGBA

	from, to colorful.Color
}

// NewVerticalGradient returns a gradient from row y0 to row y1.
func NewVerticalGradient(y0, y1 float64, from, to color.NRGBA) *VerticalGradient {
	g := &VerticalGradient{Y0: y0, Y1: y1, From: from, To: to}
	g.from, _ = colorful.MakeColor(opaque(from))
	g.to, _ = colorful.MakeColor(opaque(to))
	return g
}

// ColorModel implements the [image.Image] interface.
func (g *VerticalGradient) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements the [image.Image] interface.
func (g *VerticalGradient) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

// At implements the [image.Image] interface.  Colors are sampled at the
// pixel center.
func (g *VerticalGradient) At(x, y int) color.Color {
	yc := float64(y) + 0.5
	var t float64
	switch {
	case g.Y1 <= g.Y0:
		if yc >= g.Y1 {
			t = 1
		}
	case yc <= g.Y0:
		t = 0
	case yc >= g.Y1:
		t = 1
	default:
		t = (yc - g.Y0) / (g.Y1 - g.Y0)
	}

	c := g.from.BlendRgb(g.to, t).Clamped()
	rr, gg, bb := c.RGB255()
	a := float64(g.From.A)*(1-t) + float64(g.To.A)*t
	return color.NRGBA{R: rr, G: gg, B: bb, A: uint8(a + 0.5)}
}

func opaque(c color.NRGBA) color.NRGBA {
	c.A = 0xff
	return c
}

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
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge is a non-horizontal line segment in device coordinates.
type edge struct {
	x0, y0     float64 // start point
	dxdy       float64
	yMin, yMax float64
	dir        float32 // +1 downwards, -1 upwards
}

func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

func (e *edge) yAt(x float64) float64 {
	return e.y0 + (x-e.x0)/e.dxdy
}

// Rasterizer computes the fraction of each pixel covered by a filled path.
// Corner tiles are small, so the whole bounding box of a path is
// accumulated in memory at once.  Buffers are reused between calls.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space.
	CTM matrix.Matrix

	// Clip limits the output to this rectangle of device space.
	// The coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the line segments used to approximate it.
	Flatness float64

	cover []float32
	area  []float32
	edges []edge

	bbox     rect.Rect
	bboxInit bool
}

// NewRasterizer returns a Rasterizer with identity CTM which draws into
// the given clip rectangle.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
	}
}

// Fill fills p using the nonzero winding rule.  For every row touched by
// the path, emit is called with the coverage of the pixels starting at
// column x.  The slice is only valid during the call.
func (r *Rasterizer) Fill(p *path.Data, emit func(y, x int, coverage []float32)) {
	r.edges = r.edges[:0]
	r.bboxInit = false

	var cur, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			cur = p.Coords[k]
			start = cur
			k++
		case path.CmdLineTo:
			r.addLine(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuad(cur, p.Coords[k], p.Coords[k+1])
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCube(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			r.addLine(cur, start)
			cur = start
		}
	}
	if len(r.edges) == 0 {
		return
	}

	x0 := max(int(math.Floor(r.bbox.LLx)), int(r.Clip.LLx))
	x1 := min(int(math.Floor(r.bbox.URx))+1, int(r.Clip.URx))
	y0 := max(int(math.Floor(r.bbox.LLy)), int(r.Clip.LLy))
	y1 := min(int(math.Floor(r.bbox.URy))+1, int(r.Clip.URy))
	if x0 >= x1 || y0 >= y1 {
		return
	}
	r.accumulate(x0, x1, y0, y1, emit)
}

func (r *Rasterizer) apply(p vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// deviceLength returns the length of v after applying the linear part of
// the CTM.
func (r *Rasterizer) deviceLength(v vec.Vec2) float64 {
	m := r.CTM
	return vec.Vec2{X: m[0]*v.X + m[2]*v.Y, Y: m[1]*v.X + m[3]*v.Y}.Length()
}

// addLine adds the segment from p to q, given in user space.
func (r *Rasterizer) addLine(p, q vec.Vec2) {
	a := r.apply(p)
	b := r.apply(q)

	box := rect.Rect{
		LLx: min(a.X, b.X), LLy: min(a.Y, b.Y),
		URx: max(a.X, b.X), URy: max(a.Y, b.Y),
	}
	if !r.bboxInit {
		r.bbox = box
		r.bboxInit = true
	} else {
		r.bbox.LLx = min(r.bbox.LLx, box.LLx)
		r.bbox.LLy = min(r.bbox.LLy, box.LLy)
		r.bbox.URx = max(r.bbox.URx, box.URx)
		r.bbox.URy = max(r.bbox.URy, box.URy)
	}

	dy := b.Y - a.Y
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	dir := float32(1)
	if dy < 0 {
		dir = -1
	}
	r.edges = append(r.edges, edge{
		x0:   a.X,
		y0:   a.Y,
		dxdy: (b.X - a.X) / dy,
		yMin: box.LLy,
		yMax: box.URy,
		dir:  dir,
	})
}

// flattenQuad approximates a quadratic Bézier curve by line segments.
func (r *Rasterizer) flattenQuad(p0, p1, p2 vec.Vec2) {
	dev := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		r.addLine(prev, q)
		prev = q
	}
}

// flattenCube approximates a cubic Bézier curve by line segments.  The
// number of segments follows Wang's formula.
func (r *Rasterizer) flattenCube(p0, p1, p2, p3 vec.Vec2) {
	dev := max(
		r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2)),
		r.deviceLength(p1.Sub(p2.Mul(2)).Add(p3)),
	)
	n := 1
	if nf := math.Sqrt(3 * dev / (4 * r.Flatness)); nf > 1 {
		n = int(math.Ceil(nf))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		r.addLine(prev, q)
		prev = q
	}
}

// accumulate computes the coverage of all pixels in [x0,x1)×[y0,y1).
//
// Every edge crossing a pixel adds its signed vertical extent to "cover"
// and the part of that extent lying to the right of the edge to "area".
// Summing cover from the left and adding area gives the winding-weighted
// area of the path inside the pixel.
func (r *Rasterizer) accumulate(x0, x1, y0, y1 int, emit func(y, x int, coverage []float32)) {
	w := x1 - x0
	h := y1 - y0
	r.cover = slices.Grow(r.cover[:0], w*h)[:w*h]
	r.area = slices.Grow(r.area[:0], w*h)[:w*h]
	clear(r.cover)
	clear(r.area)

	for i := range r.edges {
		e := &r.edges[i]
		first := max(int(math.Floor(e.yMin)), y0)
		last := min(int(math.Floor(e.yMax))+1, y1)
		for y := first; y < last; y++ {
			row := (y - y0) * w
			e.addRow(y, r.cover[row:row+w], r.area[row:row+w], x0, x1)
		}
	}

	for y := y0; y < y1; y++ {
		row := (y - y0) * w
		cov := r.cover[row : row+w]
		area := r.area[row : row+w]

		var acc float32
		for i := range cov {
			v := acc + area[i]
			acc += cov[i]
			if v < 0 {
				v = -v
			}
			cov[i] = min(v, 1)
		}

		lo, hi := 0, len(cov)
		for lo < hi && cov[lo] == 0 {
			lo++
		}
		for hi > lo && cov[hi-1] == 0 {
			hi--
		}
		if lo < hi {
			emit(y, x0+lo, cov[lo:hi])
		}
	}
}

// addRow adds the contribution of the edge to scanline y.  The buffers
// cover pixel columns [x0,x1).  Contributions left of x0 are collected in
// the first column.
func (e *edge) addRow(y int, cover, area []float32, x0, x1 int) {
	top := max(float64(y), e.yMin)
	bot := min(float64(y+1), e.yMax)
	if bot <= top {
		return
	}

	xa, xb := e.xAt(top), e.xAt(bot)
	first := int(math.Floor(min(xa, xb)))
	last := int(math.Floor(max(xa, xb)))
	if last < x0 {
		c := e.dir * float32(bot-top)
		cover[0] += c
		area[0] += c
		return
	}
	if first >= x1 {
		return
	}

	for pix := first; pix <= min(last, x1-1); pix++ {
		segTop, segBot := top, bot
		if first != last {
			ya, yb := e.yAt(float64(pix)), e.yAt(float64(pix+1))
			segTop = max(min(ya, yb), top)
			segBot = min(max(ya, yb), bot)
			if segBot <= segTop {
				continue
			}
		}
		c := e.dir * float32(segBot-segTop)
		if pix < x0 {
			cover[0] += c
			area[0] += c
			continue
		}
		frac := e.xAt((segTop+segBot)/2) - float64(pix)
		cover[pix-x0] += c
		area[pix-x0] += c * float32(1-frac)
	}
}

const (
	// defaultFlatness is below the threshold of visual perception.
	defaultFlatness = 0.25

	horizontalEdgeThreshold = 1e-10
)

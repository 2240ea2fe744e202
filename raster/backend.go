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

// Package raster draws corners as PNG images.
//
// A corner is drawn on two layers.  The background layer holds the
// background color outside (or, in shape mode, inside) the rounded edge.
// The stroke layer holds the border: a disc from which the inner
// ellipse is erased, clipped to one quadrant.  The stroke layer is
// composited over the background, and the result is mirrored according
// to the corner type.
package raster

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/rocon/corner"
)

// Backend draws corners as PNG images embedded in data URIs.
//
// A Backend is not safe for concurrent use.
type Backend struct {
	r    *Rasterizer
	mask *image.Alpha
}

// New returns a new raster backend.
func New() *Backend {
	return &Backend{
		r: NewRasterizer(rect.Rect{}),
	}
}

// AssetKind implements the [corner.Backend] interface.
func (b *Backend) AssetKind() corner.AssetKind {
	return corner.Image
}

// Draw implements the [corner.Backend] interface.
func (b *Backend) Draw(p *corner.Params) (corner.Asset, error) {
	img := b.Render(p)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return corner.Asset{}, fmt.Errorf("raster: encode %s corner: %w", p.Type, err)
	}
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
	return corner.Asset{Kind: corner.Image, URI: uri}, nil
}

// Render draws the corner described by p.  Degenerate sizes give a
// transparent 1×1 image.
func (b *Backend) Render(p *corner.Params) *image.RGBA {
	bounds := image.Rect(0, 0, p.Width, p.Height)
	if bounds.Empty() {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}

	bgOps, strokeOps := Plan(p)
	bg := b.Layer(bounds, bgOps)
	if len(strokeOps) > 0 {
		stroke := b.Layer(bounds, strokeOps)
		draw.Draw(bg, bounds, stroke, image.Point{}, draw.Over)
	}
	return mirror(bg, p.Type)
}

// Layer executes ops on a new transparent image.
func (b *Backend) Layer(bounds image.Rectangle, ops []Op) *image.RGBA {
	layer := image.NewRGBA(bounds)
	if b.mask == nil || b.mask.Bounds() != bounds {
		b.mask = image.NewAlpha(bounds)
	}
	b.r.Clip = rect.Rect{
		LLx: float64(bounds.Min.X),
		LLy: float64(bounds.Min.Y),
		URx: float64(bounds.Max.X),
		URy: float64(bounds.Max.Y),
	}

	for _, op := range ops {
		clear(b.mask.Pix)
		b.r.CTM = op.CTM
		b.r.Fill(op.Path, func(y, x int, coverage []float32) {
			row := b.mask.Pix[b.mask.PixOffset(x, y):]
			for i, c := range coverage {
				row[i] = uint8(c*255 + 0.5)
			}
		})

		if op.Erase {
			erase(layer, b.mask)
		} else {
			draw.DrawMask(layer, bounds, op.Fill, bounds.Min, b.mask, bounds.Min, draw.Over)
		}
	}
	return layer
}

// erase scales every pixel of dst by one minus the mask value.
func erase(dst *image.RGBA, mask *image.Alpha) {
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			m := uint32(mask.AlphaAt(x, y).A)
			if m == 0 {
				continue
			}
			i := dst.PixOffset(x, y)
			px := dst.Pix[i : i+4 : i+4]
			for k := range px {
				px[k] = uint8((uint32(px[k])*(255-m) + 127) / 255)
			}
		}
	}
}

// mirror flips a top-left corner image into the orientation of corner t.
func mirror(src *image.RGBA, t corner.Type) *image.RGBA {
	flipX := t.IsRight()
	flipY := !t.IsTop()
	if !flipX && !flipY {
		return src
	}

	b := src.Bounds()
	dst := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		sy := y
		if flipY {
			sy = b.Max.Y - 1 - (y - b.Min.Y)
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			sx := x
			if flipX {
				sx = b.Max.X - 1 - (x - b.Min.X)
			}
			dst.SetRGBA(x, y, src.RGBAAt(sx, sy))
		}
	}
	return dst
}

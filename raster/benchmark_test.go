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
	"fmt"
	"image"
	"image/color"
	"maps"
	"slices"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/rocon/testcases"
)

var discSizes = []int{8, 32, 128}

// BenchmarkDisc fills the disc used for corner backgrounds.
func BenchmarkDisc(b *testing.B) {
	for _, size := range discSizes {
		b.Run(fmt.Sprintf("r%d", size), func(b *testing.B) {
			r := NewRasterizer(rect.Rect{URx: float64(2 * size), URy: float64(2 * size)})
			dst := image.NewAlpha(image.Rect(0, 0, 2*size, 2*size))
			disc := circle(float64(size), float64(size), float64(size))

			b.ReportAllocs()
			for b.Loop() {
				r.Fill(disc, func(y, x int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+x:]
					for i, c := range coverage {
						row[i] = uint8(c * 255)
					}
				})
			}
		})
	}
}

// BenchmarkVectorDisc draws the same disc with x/image/vector.
func BenchmarkVectorDisc(b *testing.B) {
	for _, size := range discSizes {
		b.Run(fmt.Sprintf("r%d", size), func(b *testing.B) {
			r := vector.NewRasterizer(2*size, 2*size)
			dst := image.NewAlpha(image.Rect(0, 0, 2*size, 2*size))
			src := image.NewUniform(color.Alpha{255})

			c := float32(size)
			k := float32(circleK) * c

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(2*size, 2*size)
				r.MoveTo(2*c, c)
				r.CubeTo(2*c, c+k, c+k, 2*c, c, 2*c)
				r.CubeTo(c-k, 2*c, 0, c+k, 0, c)
				r.CubeTo(0, c-k, c-k, 0, c, 0)
				r.CubeTo(c+k, 0, 2*c, c-k, 2*c, c)
				r.ClosePath()
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkRenderAll draws every test corner, reusing one backend.
func BenchmarkRenderAll(b *testing.B) {
	var cases []testcases.TestCase
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		cases = append(cases, testcases.All[category]...)
	}

	be := New()
	for b.Loop() {
		for i := range cases {
			be.Render(&cases[i].Params)
		}
	}
}

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


// Command cornerproof generates reference images for the raster backend.
//
// Both layers of every test corner are written as a PDF page, using the
// drawing steps of [raster.Plan], and rendered to PNG by Ghostscript.
// Painted areas are white on black, so the gray value of a pixel is the
// alpha value of the layer.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/rocon/raster"
	"seehuhn.de/go/rocon/testcases"
)

func main() {
	outDir := flag.String("o", "testdata/reference", "output directory")
	gs := flag.String("gs", "gs", "Ghostscript executable")
	keep := flag.Bool("keep", false, "keep the intermediate PDF files")
	flag.Parse()

	if err := run(*outDir, *gs, *keep); err != nil {
		fmt.Fprintln(os.Stderr, "cornerproof:", err)
		os.Exit(1)
	}
}

func run(outDir, gs string, keep bool) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			bg, stroke := raster.Plan(&tc.Params)
			layers := map[string][]raster.Op{"background": bg, "stroke": stroke}
			for layer, ops := range layers {
				name := category + "_" + tc.Name + "_" + layer
				pdfPath := filepath.Join(outDir, name+".pdf")
				pngPath := filepath.Join(outDir, name+".png")

				err := writePDF(pdfPath, tc.Params.Width, tc.Params.Height, ops)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				if err := renderPNG(gs, pdfPath, pngPath); err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				if !keep {
					if err := os.Remove(pdfPath); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

func writePDF(pdfPath string, w, h int, ops []raster.Op) error {
	// 1 point = 1 pixel at 72 DPI
	paper := &pdf.Rectangle{
		URx: float64(w),
		URy: float64(h),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// black means no coverage
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(w), float64(h))
	page.Fill()

	// corners are drawn with the origin at the top left
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(h)})

	for _, op := range ops {
		if op.Erase {
			page.SetFillColor(color.DeviceGray(0))
		} else {
			page.SetFillColor(color.DeviceGray(1))
		}

		for cmd, pts := range op.Path.Iter().ToCubic() {
			q := make([]vec.Vec2, len(pts))
			for i, p := range pts {
				q[i] = apply(op.CTM, p)
			}
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(q[0].X, q[0].Y)
			case path.CmdLineTo:
				page.LineTo(q[0].X, q[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(q[0].X, q[0].Y, q[1].X, q[1].Y, q[2].X, q[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.Fill()
	}

	return page.Close()
}

func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// renderPNG uses 8-bit gray output with 4x supersampling.
func renderPNG(gs, pdfPath, pngPath string) error {
	cmd := exec.Command(
		gs, "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

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

package corner

import (
	"image/color"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

var (
	rgbPattern    = regexp.MustCompile(`^rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*([\d.]+)\s*)?\)$`)
	rgbPctPattern = regexp.MustCompile(`^rgba?\(\s*(\d+(?:\.\d+)?)%\s*,\s*(\d+(?:\.\d+)?)%\s*,\s*(\d+(?:\.\d+)?)%\s*(?:,\s*([\d.]+)\s*)?\)$`)
)

// IsTransparent reports whether a CSS color value paints nothing.
func IsTransparent(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "transparent" {
		return true
	}
	for _, re := range []*regexp.Regexp{rgbPattern, rgbPctPattern} {
		if m := re.FindStringSubmatch(s); m != nil && m[4] != "" {
			a, err := strconv.ParseFloat(m[4], 64)
			return err == nil && a == 0
		}
	}
	return false
}

// ToHex converts a CSS color value into the form "#rrggbb".
// Values which cannot be parsed are returned unchanged, with ok == false.
func ToHex(s string) (hex string, ok bool) {
	c, ok := parseColor(s)
	if !ok {
		return s, false
	}
	return c.Hex(), true
}

// RGBA returns the opaque color for a CSS color value.
// Values which cannot be parsed give black, the initial value of "color".
func RGBA(s string) color.NRGBA {
	c, ok := parseColor(s)
	if !ok {
		return color.NRGBA{A: 255}
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func parseColor(s string) (colorful.Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))

	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		return c, err == nil
	}

	if m := rgbPattern.FindStringSubmatch(s); m != nil {
		var v [3]float64
		for i := range v {
			n, _ := strconv.Atoi(m[i+1])
			v[i] = float64(min(n, 255)) / 255
		}
		return colorful.Color{R: v[0], G: v[1], B: v[2]}, true
	}

	if m := rgbPctPattern.FindStringSubmatch(s); m != nil {
		var v [3]float64
		for i := range v {
			pct, _ := strconv.ParseFloat(m[i+1], 64)
			v[i] = math.Round(min(pct, 100)*2.55) / 255
		}
		return colorful.Color{R: v[0], G: v[1], B: v[2]}, true
	}

	if named, ok := colornames.Map[s]; ok {
		return colorful.MakeColor(named)
	}
	return colorful.Color{}, false
}

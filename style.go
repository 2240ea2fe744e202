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
	"strconv"
	"strings"

	"seehuhn.de/go/rocon/corner"
)

// DefaultBackground is used when no element on the ancestor chain has a
// background color.
const DefaultBackground = "#ffffff"

// Resolver reads border and background information from the computed
// style of document nodes.
//
// Background lookups walk up the ancestor chain.  While caching is enabled,
// the result is remembered for every node visited on the way, so that
// sibling regions do not repeat the walk.  The cache must be invalidated
// once corners have been applied, because the corner slots of a region
// would otherwise report the background of an outdated layout.
type Resolver struct {
	caching bool
	bg      map[Node]string
}

// NewResolver returns a Resolver with caching enabled.
func NewResolver() *Resolver {
	return &Resolver{
		caching: true,
		bg:      make(map[Node]string),
	}
}

// SetCaching enables or disables the background cache.
// Disabling the cache also invalidates it.
func (r *Resolver) SetCaching(on bool) {
	r.caching = on
	if !on {
		r.Invalidate()
	}
}

// Invalidate forgets all cached backgrounds.
func (r *Resolver) Invalidate() {
	clear(r.bg)
}

// Borders returns the four borders of n.  Missing or malformed widths are
// treated as zero.
func (r *Resolver) Borders(n Node) corner.Borders {
	side := func(name string) corner.Side {
		prefix := "border-" + name
		hex, _ := corner.ToHex(n.Style(prefix + "-color"))
		return corner.Side{
			Width: pixels(n.Style(prefix + "-width")),
			Color: hex,
		}
	}
	return corner.Borders{
		Top:    side("top"),
		Right:  side("right"),
		Bottom: side("bottom"),
		Left:   side("left"),
	}
}

// Background returns the first non-transparent background color of n or
// one of its ancestors, or [DefaultBackground] if there is none or if it
// cannot be parsed.
func (r *Resolver) Background(n Node) string {
	if !r.caching {
		for ; n != nil; n = n.Parent() {
			if c := n.Style("background-color"); !corner.IsTransparent(c) {
				return usable(c)
			}
		}
		return DefaultBackground
	}

	var visited []Node
	res := DefaultBackground
	for ; n != nil; n = n.Parent() {
		if c, ok := r.bg[n]; ok {
			res = c
			break
		}
		visited = append(visited, n)
		if c := n.Style("background-color"); !corner.IsTransparent(c) {
			res = usable(c)
			break
		}
	}
	for _, v := range visited {
		r.bg[v] = res
	}
	return res
}

// usable normalizes a background color.  Colors which cannot be parsed
// give [DefaultBackground].
func usable(c string) string {
	hex, ok := corner.ToHex(c)
	if !ok {
		return DefaultBackground
	}
	return hex
}

// pixels parses the leading integer of a CSS length like "4px" or "4.5px".
// Anything unparseable counts as zero.
func pixels(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || end == 0 && (s[end] == '-' || s[end] == '+')) {
		end++
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return v
}

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


package dom

import (
	"strings"

	"seehuhn.de/go/rocon/corner"
)

var sides = [4]string{"top", "right", "bottom", "left"}

// Style holds the declarations of an inline style attribute, with
// shorthand properties expanded.
type Style map[string]string

// ParseStyle parses the value of a style attribute.
// Malformed declarations are ignored.
func ParseStyle(attr string) Style {
	s := Style{}
	for _, decl := range strings.Split(attr, ";") {
		prop, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		value = strings.TrimSpace(value)
		value = strings.TrimSpace(strings.TrimSuffix(value, "!important"))
		if prop == "" || value == "" {
			continue
		}
		s.expand(prop, value)
	}
	return s
}

func (s Style) expand(prop, value string) {
	switch prop {
	case "margin", "padding":
		s.setBox(prop+"-%s", value)
	case "border-width", "border-style", "border-color":
		s.setBox("border-%s-"+strings.TrimPrefix(prop, "border-"), value)
	case "border":
		for _, side := range sides {
			s.setBorder(side, value)
		}
	case "border-top", "border-right", "border-bottom", "border-left":
		s.setBorder(strings.TrimPrefix(prop, "border-"), value)
	case "background":
		for _, part := range strings.Fields(value) {
			if isColor(part) {
				s["background-color"] = part
			}
		}
	default:
		s[prop] = value
	}
}

// setBox expands a one to four value box shorthand.  The pattern
// contains %s for the side name.
func (s Style) setBox(pattern, value string) {
	parts := strings.Fields(value)
	var vals [4]string // top, right, bottom, left
	switch len(parts) {
	case 1:
		vals = [4]string{parts[0], parts[0], parts[0], parts[0]}
	case 2:
		vals = [4]string{parts[0], parts[1], parts[0], parts[1]}
	case 3:
		vals = [4]string{parts[0], parts[1], parts[2], parts[1]}
	case 4:
		vals = [4]string{parts[0], parts[1], parts[2], parts[3]}
	default:
		return
	}
	for i, side := range sides {
		s[strings.Replace(pattern, "%s", side, 1)] = vals[i]
	}
}

// setBorder expands a border side shorthand like "1px solid red".
// Omitted values are reset to their initial values.
func (s Style) setBorder(side, value string) {
	prefix := "border-" + side
	s[prefix+"-width"] = "medium"
	s[prefix+"-style"] = "none"
	s[prefix+"-color"] = "currentcolor"
	for _, part := range strings.Fields(value) {
		switch {
		case isBorderStyle(part):
			s[prefix+"-style"] = part
		case isLength(part):
			s[prefix+"-width"] = part
		default:
			s[prefix+"-color"] = part
		}
	}
}

// computed returns the value of a property as used for drawing corners.
// Border widths are zero for borders without a visible style, and keyword
// widths are converted to pixels.
func (s Style) computed(prop string) string {
	for _, side := range sides {
		prefix := "border-" + side
		switch prop {
		case prefix + "-width":
			switch s[prefix+"-style"] {
			case "", "none", "hidden":
				return "0"
			}
			switch w := s[prop]; w {
			case "thin":
				return "1px"
			case "", "medium":
				return "3px"
			case "thick":
				return "5px"
			default:
				return w
			}
		case prefix + "-color":
			c := s[prop]
			if c == "" || strings.EqualFold(c, "currentcolor") {
				c = s["color"]
			}
			if c == "" {
				c = "#000000"
			}
			return c
		}
	}
	return s[prop]
}

func isBorderStyle(v string) bool {
	switch v {
	case "none", "hidden", "dotted", "dashed", "solid", "double", "groove", "ridge", "inset", "outset":
		return true
	}
	return false
}

func isLength(v string) bool {
	switch v {
	case "thin", "medium", "thick":
		return true
	}
	return v != "" && (v[0] >= '0' && v[0] <= '9' || v[0] == '.')
}

func isColor(v string) bool {
	if corner.IsTransparent(v) {
		return v != ""
	}
	_, ok := corner.ToHex(v)
	return ok
}

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
)

// Declaration is a single CSS property assignment.
type Declaration struct {
	Property  string
	Value     string
	Important bool
}

// Rule is a CSS rule.
type Rule struct {
	Selector     string
	Declarations []Declaration
}

// String formats the rule as CSS text.
func (r Rule) String() string {
	var b strings.Builder
	b.WriteString(r.Selector)
	b.WriteString(" {")
	for _, d := range r.Declarations {
		b.WriteString(d.Property)
		b.WriteByte(':')
		b.WriteString(d.Value)
		if d.Important {
			b.WriteString(" !important")
		}
		b.WriteByte(';')
	}
	b.WriteByte('}')
	return b.String()
}

// Stylesheet receives the style rules produced by an [Engine].
// All rules of a batch are passed in a single call.
type Stylesheet interface {
	InsertRules(rules []Rule) error
}

func px(v int) string {
	return strconv.Itoa(v) + "px"
}

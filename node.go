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
	"regexp"
	"slices"

	"seehuhn.de/go/rocon/corner"
)

// Node is an element of the document tree.
//
// Implementations must be comparable, and the same element must always be
// represented by the same Node value, since nodes are used as map keys.
type Node interface {
	// Style returns the computed value of a CSS property, or "" if the
	// value is not known.
	Style(property string) string

	// Parent returns the parent element, or nil for the root.
	Parent() Node

	// Children returns the child elements.
	Children() []Node

	Classes() []string
	SetClasses(classes []string)

	// AppendChild creates a new empty element with the given classes as
	// the last child.
	AppendChild(classes ...string) Node

	// SetContent replaces the children of the element by the given markup.
	SetContent(markup string) error
}

const (
	baseClass  = "rocon"
	rulePrefix = baseClass + "__"
	initClass  = baseClass + "-init"
)

var (
	ruleClass = regexp.MustCompile(`^` + rulePrefix + `\d+$`)
	slotClass = regexp.MustCompile(`^` + baseClass + `-([tblr]{2})$`)
)

// slots holds the corner placeholders of a region, indexed by corner type.
type slots [4]Node

// cornerSlots returns the corner placeholders of n.  Existing placeholders
// are reused, missing ones are appended.
func cornerSlots(n Node) slots {
	res := existingSlots(n)
	for _, t := range corner.SlotOrder {
		if res[t] == nil {
			res[t] = n.AppendChild(baseClass, baseClass+"-"+t.String())
		}
	}
	return res
}

// existingSlots returns the corner placeholders n already has.  Missing
// entries are nil.
func existingSlots(n Node) slots {
	var res slots
	for _, child := range n.Children() {
		for _, class := range child.Classes() {
			m := slotClass.FindStringSubmatch(class)
			if m == nil {
				continue
			}
			if t, ok := corner.ParseType(m[1]); ok && res[t] == nil {
				res[t] = child
			}
		}
	}
	return res
}

// clearSlot removes the corner from a placeholder.
func clearSlot(slot Node) error {
	assignClass(slot)
	return slot.SetContent("")
}

// assignClass removes all generated classes from n and adds the given ones.
func assignClass(n Node, add ...string) {
	classes := slices.DeleteFunc(slices.Clone(n.Classes()), func(c string) bool {
		return ruleClass.MatchString(c)
	})
	for _, c := range add {
		if c != "" && !slices.Contains(classes, c) {
			classes = append(classes, c)
		}
	}
	n.SetClasses(classes)
}

// selector returns the CSS selector for a generated class.
func selector(class string) string {
	return "." + class
}

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
	"errors"
	"fmt"
	"slices"
	"strings"

	"seehuhn.de/go/rocon/corner"
)

// fakeNode is an in-memory document element.
type fakeNode struct {
	name     string
	style    map[string]string
	parent   *fakeNode
	children []*fakeNode
	classes  []string
	content  string
}

func newNode(name string, parent *fakeNode, style ...string) *fakeNode {
	n := &fakeNode{name: name, style: map[string]string{}, parent: parent}
	for i := 0; i+1 < len(style); i += 2 {
		n.style[style[i]] = style[i+1]
	}
	if parent != nil {
		parent.children = append(parent.children, n)
	}
	return n
}

func (n *fakeNode) String() string {
	return n.name
}

func (n *fakeNode) Style(property string) string {
	return n.style[property]
}

func (n *fakeNode) Parent() Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *fakeNode) Children() []Node {
	res := make([]Node, len(n.children))
	for i, c := range n.children {
		res[i] = c
	}
	return res
}

func (n *fakeNode) Classes() []string {
	return n.classes
}

func (n *fakeNode) SetClasses(classes []string) {
	n.classes = classes
}

func (n *fakeNode) AppendChild(classes ...string) Node {
	c := newNode(n.name+"/"+strings.Join(classes, "."), n)
	c.classes = slices.Clone(classes)
	return c
}

func (n *fakeNode) SetContent(markup string) error {
	n.content = markup
	return nil
}

// slot returns the placeholder child for corner t.
func (n *fakeNode) slot(t corner.Type) *fakeNode {
	for _, c := range n.children {
		if slices.Contains(c.classes, baseClass+"-"+t.String()) {
			return c
		}
	}
	return nil
}

// ruleClassOf returns the generated class of n, or "".
func ruleClassOf(n *fakeNode) string {
	for _, c := range n.classes {
		if ruleClass.MatchString(c) {
			return c
		}
	}
	return ""
}

// fakeSheet records all inserted batches.
type fakeSheet struct {
	batches [][]Rule
	fail    error
}

func (s *fakeSheet) InsertRules(rules []Rule) error {
	if s.fail != nil {
		return s.fail
	}
	s.batches = append(s.batches, slices.Clone(rules))
	return nil
}

func (s *fakeSheet) rules() []Rule {
	var res []Rule
	for _, b := range s.batches {
		res = append(res, b...)
	}
	return res
}

// fakeBackend records its calls.  Draw fails for corners for which fail
// returns true.
type fakeBackend struct {
	kind   corner.AssetKind
	calls  []corner.Params
	fail   func(p *corner.Params) bool
	during func()
}

var errFakeDraw = errors.New("draw failed")

func (b *fakeBackend) AssetKind() corner.AssetKind {
	if b.kind == 0 {
		return corner.Image
	}
	return b.kind
}

func (b *fakeBackend) Draw(p *corner.Params) (corner.Asset, error) {
	b.calls = append(b.calls, *p)
	if b.during != nil {
		b.during()
	}
	if b.fail != nil && b.fail(p) {
		return corner.Asset{}, errFakeDraw
	}
	if b.AssetKind() == corner.Node {
		return corner.Asset{Kind: corner.Node, Markup: fmt.Sprintf("<i>%s</i>", p.Type)}, nil
	}
	return corner.Asset{Kind: corner.Image, URI: "data:," + p.Type.String()}, nil
}

func spec(radius string, shape, force bool) corner.RegionSpec {
	radii, err := corner.ExpandRadius(radius)
	if err != nil {
		panic(err)
	}
	return corner.RegionSpec{Radii: radii, Shape: shape, Force: force}
}

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


// Package dom connects the corner engine to an HTML document parsed with
// golang.org/x/net/html.
//
// Computed styles are approximated by the inline style attribute of each
// element.  Regions are found by their class names, see
// [corner.ParseClass].
package dom

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/google/uuid"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"seehuhn.de/go/rocon"
	"seehuhn.de/go/rocon/corner"
)

// BaseRules position the corner placeholders inside their regions.  They
// are inserted before the first batch of generated rules.
var BaseRules = []rocon.Rule{
	{Selector: ".rocon-init", Declarations: []rocon.Declaration{
		{Property: "position", Value: "relative"},
	}},
	{Selector: ".rocon", Declarations: []rocon.Declaration{
		{Property: "position", Value: "absolute"},
		{Property: "display", Value: "block"},
		{Property: "overflow", Value: "hidden"},
		{Property: "font-size", Value: "0"},
		{Property: "line-height", Value: "0"},
		{Property: "background-repeat", Value: "no-repeat"},
	}},
}

// Document is a parsed HTML document.
type Document struct {
	root  *html.Node
	elems map[*html.Node]*Element
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: %w", err)
	}
	return &Document{
		root:  root,
		elems: make(map[*html.Node]*Element),
	}, nil
}

// Root returns the document node.
func (d *Document) Root() *html.Node {
	return d.root
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// Element returns the wrapper for an element node.  The same node always
// gives the same wrapper.
func (d *Document) Element(n *html.Node) *Element {
	e, ok := d.elems[n]
	if !ok {
		e = &Element{doc: d, n: n}
		d.elems[n] = e
	}
	return e
}

// Element is an element of a [Document].  It implements [rocon.Node].
type Element struct {
	doc *Document
	n   *html.Node
}

// Node returns the underlying HTML node.
func (e *Element) Node() *html.Node {
	return e.n
}

// Style implements the [rocon.Node] interface.  The style attribute is
// read on every call, so that changes to the document are seen.
func (e *Element) Style(property string) string {
	return ParseStyle(htmlquery.SelectAttr(e.n, "style")).computed(property)
}

// Parent implements the [rocon.Node] interface.
func (e *Element) Parent() rocon.Node {
	p := e.n.Parent
	if p == nil || p.Type != html.ElementNode {
		return nil
	}
	return e.doc.Element(p)
}

// Children implements the [rocon.Node] interface.
func (e *Element) Children() []rocon.Node {
	var res []rocon.Node
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			res = append(res, e.doc.Element(c))
		}
	}
	return res
}

// Classes implements the [rocon.Node] interface.
func (e *Element) Classes() []string {
	return strings.Fields(htmlquery.SelectAttr(e.n, "class"))
}

// SetClasses implements the [rocon.Node] interface.
func (e *Element) SetClasses(classes []string) {
	value := strings.Join(classes, " ")
	for i := range e.n.Attr {
		if e.n.Attr[i].Key == "class" {
			e.n.Attr[i].Val = value
			return
		}
	}
	e.n.Attr = append(e.n.Attr, html.Attribute{Key: "class", Val: value})
}

// AppendChild implements the [rocon.Node] interface.  The new element is
// a span.
func (e *Element) AppendChild(classes ...string) rocon.Node {
	child := &html.Node{
		Type:     html.ElementNode,
		Data:     "span",
		DataAtom: atom.Span,
	}
	if len(classes) > 0 {
		child.Attr = []html.Attribute{{Key: "class", Val: strings.Join(classes, " ")}}
	}
	e.n.AppendChild(child)
	return e.doc.Element(child)
}

// SetContent implements the [rocon.Node] interface.
func (e *Element) SetContent(markup string) error {
	nodes, err := html.ParseFragment(strings.NewReader(markup), e.n)
	if err != nil {
		return fmt.Errorf("dom: parse content: %w", err)
	}
	for c := e.n.FirstChild; c != nil; c = e.n.FirstChild {
		e.n.RemoveChild(c)
		e.doc.forget(c)
	}
	for _, c := range nodes {
		e.n.AppendChild(c)
	}
	return nil
}

// forget drops the wrappers of n and all its descendants.
func (d *Document) forget(n *html.Node) {
	delete(d.elems, n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.forget(c)
	}
}

// Region is an element marked for rounded corners.
type Region struct {
	*Element
	Spec  corner.RegionSpec
	Class string // the class which carries the region spec
}

// Discover returns all marked regions in document order.  If an element
// has more than one marker class, the first one is used.  Markers with
// malformed radius lists are skipped and reported in the returned error.
func (d *Document) Discover() ([]Region, error) {
	var regions []Region
	var errs []error
	for _, n := range htmlquery.Find(d.root, "//*[@class]") {
		e := d.Element(n)
		for _, class := range e.Classes() {
			spec, ok, err := corner.ParseClass(class)
			if !ok {
				continue
			}
			if err != nil {
				errs = append(errs, err)
				break
			}
			regions = append(regions, Region{Element: e, Spec: spec, Class: class})
			break
		}
	}
	return regions, errors.Join(errs...)
}

// Sheet inserts style rules into the head of a document.  Every batch
// becomes a separate style element.
type Sheet struct {
	doc     *Document
	batches []string
}

// NewSheet returns a stylesheet for d.
func NewSheet(d *Document) *Sheet {
	return &Sheet{doc: d}
}

// ErrNoHead is returned when a document has no head element.
var ErrNoHead = errors.New("dom: document has no head")

// InsertRules implements the [rocon.Stylesheet] interface.
func (s *Sheet) InsertRules(rules []rocon.Rule) error {
	head := htmlquery.FindOne(s.doc.root, "//head")
	if head == nil {
		return ErrNoHead
	}

	if len(s.batches) == 0 {
		rules = append(slices.Clone(BaseRules), rules...)
	}
	text := make([]string, len(rules))
	for i, r := range rules {
		text[i] = r.String()
	}

	id := uuid.NewString()
	style := &html.Node{
		Type:     html.ElementNode,
		Data:     "style",
		DataAtom: atom.Style,
		Attr:     []html.Attribute{{Key: "data-rocon-batch", Val: id}},
	}
	style.AppendChild(&html.Node{
		Type: html.TextNode,
		Data: strings.Join(text, "\n"),
	})
	head.AppendChild(style)
	s.batches = append(s.batches, id)

	rocon.Logger().Debug("style batch inserted", "batch", id, "rules", len(rules))
	return nil
}

// Batches returns the ids of all inserted batches, oldest first.
func (s *Sheet) Batches() []string {
	return s.batches
}

// Process adds rounded corners to all marked regions of d, in a single
// batch.  Afterwards the background cache of e is disabled, so that later
// calls to [Update] see the current document.
func Process(d *Document, e *rocon.Engine) (rocon.Stats, error) {
	regions, discoverErr := d.Discover()
	for _, r := range regions {
		e.Enqueue(r.Spec, r.Element)
	}
	stats, err := e.Run()
	e.Resolver.SetCaching(false)
	return stats, errors.Join(discoverErr, err)
}

// Update redraws the corners of the given regions immediately.
func Update(e *rocon.Engine, regions ...Region) error {
	var errs []error
	for _, r := range regions {
		if err := e.Apply(r.Spec, r.Element); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

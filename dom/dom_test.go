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
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"

	"seehuhn.de/go/rocon"
	"seehuhn.de/go/rocon/corner"
	"seehuhn.de/go/rocon/raster"
	"seehuhn.de/go/rocon/vecpath"
)

const page = `<!DOCTYPE html>
<html><head><title>t</title></head>
<body style="background: #336699">
<div id="a" class="box rc8" style="border: 2px solid red">one</div>
<div id="b" class="rc8">two</div>
<div id="c" class="rc4-12-shape-force" style="background-color: navy; padding: 10px 5px">three</div>
<div id="d" class="rc1-2-3-4-5">bad</div>
<p class="plain">four</p>
</body></html>`

func parse(t *testing.T, src string) *Document {
	t.Helper()
	d, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func byID(t *testing.T, d *Document, id string) *Element {
	t.Helper()
	n := htmlquery.FindOne(d.Root(), "//*[@id='"+id+"']")
	if n == nil {
		t.Fatalf("no element with id %q", id)
	}
	return d.Element(n)
}

func TestParseStyle(t *testing.T) {
	s := ParseStyle("margin: 1px 2px; padding:3px 4px 5px ; border-top: thick dashed #f00; background: url(x.png) #abc no-repeat; color: blue !important")
	want := map[string]string{
		"margin-top":       "1px",
		"margin-right":     "2px",
		"margin-bottom":    "1px",
		"margin-left":      "2px",
		"padding-top":      "3px",
		"padding-right":    "4px",
		"padding-bottom":   "5px",
		"padding-left":     "4px",
		"border-top-width": "5px",
		"border-top-color": "#f00",
		"background-color": "#abc",
		"color":            "blue",
	}
	for prop, v := range want {
		if got := s.computed(prop); got != v {
			t.Errorf("%s = %q, want %q", prop, got, v)
		}
	}
}

func TestBorderDefaults(t *testing.T) {
	tests := []struct {
		style string
		width string
		color string
	}{
		{"", "0", "#000000"},
		{"border: 2px red", "0", "red"},
		{"border: solid", "3px", "#000000"},
		{"border-left: 1px solid; color: green", "1px", "green"},
		{"border: 4px solid blue; border-left-style: none", "0", "blue"},
		{"border-width: 1px 2px 3px 7px; border-style: solid", "7px", "#000000"},
	}
	for _, tc := range tests {
		s := ParseStyle(tc.style)
		if got := s.computed("border-left-width"); got != tc.width {
			t.Errorf("%q: width %q, want %q", tc.style, got, tc.width)
		}
		if got := s.computed("border-left-color"); got != tc.color {
			t.Errorf("%q: color %q, want %q", tc.style, got, tc.color)
		}
	}
}

func TestElementTree(t *testing.T) {
	d := parse(t, page)
	a := byID(t, d, "a")

	if a != d.Element(a.Node()) {
		t.Error("wrappers are not unique")
	}
	body := a.Parent()
	if body == nil || body.Style("background-color") != "#336699" {
		t.Fatalf("parent of #a is %v", body)
	}

	var root rocon.Node = a
	for p := root.Parent(); p != nil; p = p.Parent() {
		root = p
	}
	if got := root.(*Element).Node().Data; got != "html" {
		t.Errorf("topmost element is %q, want html", got)
	}

	if got := len(body.Children()); got != 5 {
		t.Errorf("body has %d element children, want 5", got)
	}

	a.SetClasses([]string{"x", "y"})
	if got := a.Classes(); !slices.Equal(got, []string{"x", "y"}) {
		t.Errorf("classes = %v", got)
	}

	child := a.AppendChild("rocon", "rocon-tl")
	if got := child.Classes(); !slices.Equal(got, []string{"rocon", "rocon-tl"}) {
		t.Errorf("child classes = %v", got)
	}
	if got := a.Children(); len(got) != 1 || got[0] != child {
		t.Errorf("children = %v", got)
	}
}

func TestSetContent(t *testing.T) {
	d := parse(t, page)
	b := byID(t, d, "b")
	if err := b.SetContent(`<svg width="4" height="4"><path d="M0,0"/></svg>`); err != nil {
		t.Fatal(err)
	}
	svg := b.Node().FirstChild
	if svg == nil || svg.Data != "svg" || svg.FirstChild == nil || svg.FirstChild.Data != "path" {
		t.Error("svg markup not inserted")
	}
	if strings.Contains(htmlquery.InnerText(b.Node()), "two") {
		t.Error("old content not removed")
	}
}

func TestDiscover(t *testing.T) {
	d := parse(t, page)
	regions, err := d.Discover()
	if !errors.Is(err, corner.ErrRadiusShorthand) {
		t.Errorf("error = %v, want a radius shorthand error", err)
	}

	var ids []string
	for _, r := range regions {
		ids = append(ids, htmlquery.SelectAttr(r.Node(), "id"))
	}
	if !slices.Equal(ids, []string{"a", "b", "c"}) {
		t.Fatalf("regions = %v", ids)
	}

	c := regions[2]
	want := corner.RegionSpec{Radii: [4]int{4, 12, 4, 12}, Shape: true, Force: true}
	if c.Spec != want || c.Class != "rc4-12-shape-force" {
		t.Errorf("region c = %+v, %q", c.Spec, c.Class)
	}
}

func TestProcess(t *testing.T) {
	d := parse(t, page)
	sheet := NewSheet(d)
	e := rocon.NewEngine(raster.New(), sheet)

	stats, err := Process(d, e)
	if !errors.Is(err, corner.ErrRadiusShorthand) {
		t.Errorf("error = %v", err)
	}
	if stats.Regions != 3 || stats.Failed != 0 {
		t.Errorf("stats = %+v", stats)
	}
	// #a and #b share nothing: #a has a border and #b has none.
	if stats.Hits != 0 {
		t.Errorf("%d cache hits, want 0", stats.Hits)
	}

	styles := htmlquery.Find(d.Root(), "//head/style")
	if len(styles) != 1 || len(sheet.Batches()) != 1 {
		t.Fatalf("%d style elements, %d batches", len(styles), len(sheet.Batches()))
	}
	if got := htmlquery.SelectAttr(styles[0], "data-rocon-batch"); got != sheet.Batches()[0] {
		t.Errorf("batch attribute %q", got)
	}
	css := htmlquery.InnerText(styles[0])
	if !strings.HasPrefix(css, ".rocon-init {position:relative;}") {
		t.Errorf("base rules missing: %.60q", css)
	}
	if !strings.Contains(css, "data:image/png;base64,") {
		t.Error("no corner images in stylesheet")
	}

	for _, id := range []string{"a", "b", "c"} {
		el := byID(t, d, id)
		if !slices.Contains(el.Classes(), "rocon-init") {
			t.Errorf("#%s: classes %v", id, el.Classes())
		}
		if n := len(el.Children()); n != 4 {
			t.Errorf("#%s has %d slots, want 4", id, n)
		}
	}

	var out bytes.Buffer
	if err := d.Render(&out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), `class="rocon rocon-tl rocon__`) {
		t.Error("rendered document has no corner slots")
	}
}

func TestProcessTwice(t *testing.T) {
	d := parse(t, page)
	sheet := NewSheet(d)
	e := rocon.NewEngine(raster.New(), sheet)
	if _, err := Process(d, e); !errors.Is(err, corner.ErrRadiusShorthand) {
		t.Fatal(err)
	}
	n := e.Cache().Len()

	stats, _ := Process(d, e)
	if stats.Rules != 0 || stats.Drawn != 0 {
		t.Errorf("second pass: %+v", stats)
	}
	if e.Cache().Len() != n {
		t.Errorf("cache grew from %d to %d", n, e.Cache().Len())
	}
	if got := len(byID(t, d, "a").Children()); got != 4 {
		t.Errorf("#a has %d slots after second pass", got)
	}
}

func TestUpdateNodeBackend(t *testing.T) {
	d := parse(t, page)
	e := rocon.NewEngine(vecpath.New(), NewSheet(d))

	regions, _ := d.Discover()
	if err := Update(e, regions[1]); err != nil {
		t.Fatal(err)
	}
	count := 0
	for slot := regions[1].Node().FirstChild; slot != nil; slot = slot.NextSibling {
		if slot.Data == "span" && slot.FirstChild != nil && slot.FirstChild.Data == "svg" {
			count++
		}
	}
	if count != 4 {
		t.Errorf("%d inline svg corners, want 4", count)
	}
}

func TestNoHead(t *testing.T) {
	d := parse(t, "<p>x</p>")
	// the parser always adds a head element
	head := htmlquery.FindOne(d.Root(), "//head")
	head.Parent.RemoveChild(head)

	err := NewSheet(d).InsertRules([]rocon.Rule{{Selector: ".x"}})
	if !errors.Is(err, ErrNoHead) {
		t.Errorf("error = %v, want ErrNoHead", err)
	}
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func TestUpdateAfterStyleChange(t *testing.T) {
	d := parse(t, page)
	sheet := NewSheet(d)
	e := rocon.NewEngine(raster.New(), sheet)
	if _, err := Process(d, e); !errors.Is(err, corner.ErrRadiusShorthand) {
		t.Fatal(err)
	}

	a := byID(t, d, "a")
	if got := a.Style("border-top-width"); got != "2px" {
		t.Fatalf("border-top-width = %q", got)
	}
	slotClasses := func() []string {
		var res []string
		for _, c := range a.Children() {
			res = append(res, strings.Join(c.Classes(), " "))
		}
		return res
	}
	before := slotClasses()

	setAttr(a.Node(), "style", "border: 6px solid blue")
	if got := a.Style("border-top-color"); got != "blue" {
		t.Errorf("border-top-color = %q after the change", got)
	}

	regions, _ := d.Discover()
	if err := Update(e, regions[0]); err != nil {
		t.Fatal(err)
	}
	if len(sheet.Batches()) != 2 {
		t.Fatalf("%d batches, want a second one for the new corners", len(sheet.Batches()))
	}
	after := slotClasses()
	for i := range before {
		if before[i] == after[i] {
			t.Errorf("slot %d still has classes %q", i, after[i])
		}
	}
}

func TestSetContentForgetsSubtree(t *testing.T) {
	d := parse(t, page)
	e := rocon.NewEngine(vecpath.New(), NewSheet(d))
	regions, _ := d.Discover()
	b := regions[1]

	for range 3 {
		if err := Update(e, b); err != nil {
			t.Fatal(err)
		}
		// wrap the generated markup, as a later discovery would
		for _, n := range htmlquery.Find(b.Node(), "//*") {
			d.Element(n)
		}
	}

	for n := range d.elems {
		top := n
		for top.Parent != nil {
			top = top.Parent
		}
		if top != d.Root() {
			t.Errorf("wrapper kept for detached <%s>", n.Data)
		}
	}
}

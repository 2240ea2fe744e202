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
	"strings"
	"testing"
)

func TestAdjustBox(t *testing.T) {
	cur := box{BorderTop: 10}
	got := adjustBox([4]int{6, 4, 0, 0}, cur)
	want := box{BorderTop: 4, MarginTop: 6}
	if got != want {
		t.Errorf("adjustBox = %+v, want %+v", got, want)
	}

	cur = box{PaddingTop: 12, PaddingBottom: 3, MarginBottom: 5, BorderBottom: 1}
	got = adjustBox([4]int{8, 8, 2, 6}, cur)
	want = box{
		PaddingTop:    4,
		PaddingBottom: 0,
		MarginTop:     8,
		MarginBottom:  11,
		BorderTop:     0,
		BorderBottom:  0,
	}
	if got != want {
		t.Errorf("adjustBox = %+v, want %+v", got, want)
	}
}

func TestShapeBoxRule(t *testing.T) {
	body := newNode("body", nil)
	r1 := newNode("r1", body, "border-top-width", "10px", "padding-bottom", "7px")
	r2 := newNode("r2", body, "border-top-width", "10px", "padding-bottom", "7px")
	sheet := &fakeSheet{}
	e := NewEngine(&fakeBackend{}, sheet)

	e.Enqueue(spec("6-4-0-0", true, false), r1)
	e.Enqueue(spec("6-4-0-0", true, false), r2)
	if _, err := e.Run(); err != nil {
		t.Fatal(err)
	}

	boxClass := ""
	for _, c := range r1.classes {
		if ruleClass.MatchString(c) {
			boxClass = c
		}
	}
	if boxClass == "" || ruleClassOf(r2) != boxClass {
		t.Fatalf("box classes %v and %v", r1.classes, r2.classes)
	}

	var rule string
	count := 0
	for _, r := range sheet.rules() {
		if r.Selector == selector(boxClass) {
			rule = r.String()
			count++
		}
	}
	if count != 1 {
		t.Errorf("%d rules for the box class", count)
	}
	want := " {border-top-width:4px !important;border-bottom-width:0px !important;" +
		"padding-top:0px !important;padding-bottom:7px !important;" +
		"margin-top:6px !important;margin-bottom:0px !important;}"
	if !strings.HasSuffix(rule, want) {
		t.Errorf("box rule\n%s\nwant suffix\n%s", rule, want)
	}
}

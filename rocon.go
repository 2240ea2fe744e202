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

// Package rocon adds rounded corners to rectangular regions of a document.
//
// For every corner of a region, the [Engine] computes the drawing
// parameters from the computed style of the region, asks a
// [corner.Backend] to draw the corner, and registers a style rule which
// places the result in a placeholder element.  Identical corners share one
// asset and one rule, even across unrelated regions.  All rules of a batch
// are inserted into the [Stylesheet] in a single operation.
package rocon

import (
	"errors"
	"fmt"
	"strings"

	"seehuhn.de/go/rocon/corner"
)

// NativeProperties are the CSS properties used for rounded corners by
// hosts with native support, in the order tl, tr, br, bl.
var NativeProperties = [4]string{
	"border-top-left-radius",
	"border-top-right-radius",
	"border-bottom-right-radius",
	"border-bottom-left-radius",
}

// State describes the phase of an [Engine].
type State int

// These are the possible states of an [Engine].
const (
	Empty State = iota
	Accumulating
	Draining
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Accumulating:
		return "accumulating"
	case Draining:
		return "draining"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// DrawError is returned when a backend fails to produce the asset for a
// corner.  The region is left unchanged in this case.
type DrawError struct {
	Corner corner.Type
	Err    error
}

func (e *DrawError) Error() string {
	return "rocon: cannot draw " + e.Corner.String() + " corner: " + e.Err.Error()
}

func (e *DrawError) Unwrap() error {
	return e.Err
}

// Stats summarizes one batch.
type Stats struct {
	Regions int // regions processed
	Failed  int // regions left unchanged because of errors
	Drawn   int // backend invocations
	Hits    int // corners served from the cache
	Rules   int // style rules inserted
}

type item struct {
	spec  corner.RegionSpec
	node  Node
	slots slots
}

// Engine holds the cache, the render queue and the rule buffer of one
// processing session.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	// Native, if non-empty, lists the CSS properties used to round the
	// corners natively, in the order tl, tr, br, bl.  Regions without
	// the Force flag then bypass the backend.
	Native []string

	Resolver *Resolver

	backend  corner.Backend
	sheet    Stylesheet
	cache    *Cache
	queue    []item
	rules    []Rule
	draining bool
}

// NewEngine returns an engine which draws corners using b and inserts the
// resulting rules into sheet.
func NewEngine(b corner.Backend, sheet Stylesheet) *Engine {
	return &Engine{
		Resolver: NewResolver(),
		backend:  b,
		sheet:    sheet,
		cache:    NewCache(rulePrefix),
	}
}

// State returns the current phase of the engine.
func (e *Engine) State() State {
	switch {
	case e.draining:
		return Draining
	case len(e.queue) > 0 || len(e.rules) > 0:
		return Accumulating
	default:
		return Empty
	}
}

// Cache returns the class cache of the engine.
func (e *Engine) Cache() *Cache {
	return e.cache
}

// Enqueue schedules the region n for the next call to [Engine.Run].
// The corner placeholders are created immediately, so that all document
// mutations which add nodes happen before any corner is drawn.
func (e *Engine) Enqueue(spec corner.RegionSpec, n Node) {
	if e.useNative(spec) {
		e.addNative(spec, n)
		return
	}

	it := item{spec: spec, node: n}
	if !spec.IsZero() {
		it.slots = cornerSlots(n)
	}
	e.queue = append(e.queue, it)
}

// Run draws the corners of all queued regions, in the order they were
// enqueued, and flushes the style rules in one operation.
//
// A failing region does not stop the batch.  All errors are combined into
// the returned error.
func (e *Engine) Run() (Stats, error) {
	e.draining = true
	defer func() { e.draining = false }()

	var stats Stats
	var errs []error
	for _, it := range e.queue {
		stats.Regions++
		if err := e.drawRegion(it, &stats); err != nil {
			stats.Failed++
			errs = append(errs, err)
		}
	}
	e.queue = e.queue[:0]

	n, err := e.flush()
	stats.Rules = n
	if err != nil {
		errs = append(errs, err)
	}

	Logger().Debug("batch done",
		"regions", stats.Regions,
		"failed", stats.Failed,
		"drawn", stats.Drawn,
		"hits", stats.Hits,
		"rules", stats.Rules,
		"cached", e.cache.Len())
	return stats, errors.Join(errs...)
}

// Apply draws the corners of n immediately and flushes the resulting rules.
// Queued regions are not affected.
func (e *Engine) Apply(spec corner.RegionSpec, n Node) error {
	var errs []error
	if e.useNative(spec) {
		e.addNative(spec, n)
	} else {
		it := item{spec: spec, node: n}
		if !spec.IsZero() {
			it.slots = cornerSlots(n)
		}
		var stats Stats
		if err := e.drawRegion(it, &stats); err != nil {
			errs = append(errs, err)
		}
	}
	if _, err := e.flush(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (e *Engine) useNative(spec corner.RegionSpec) bool {
	return len(e.Native) > 0 && !spec.Force
}

func (e *Engine) addNative(spec corner.RegionSpec, n Node) {
	parts := make([]string, len(spec.Radii))
	for i, r := range spec.Radii {
		parts[i] = px(r)
	}
	key := "native:" + strings.Join(parts, ";")

	class, ok := e.cache.Lookup(key)
	if !ok {
		class = e.cache.Store(key)
		var decls []Declaration
		for i, prop := range e.Native {
			if i >= len(spec.Radii) {
				break
			}
			decls = append(decls, Declaration{Property: prop, Value: px(spec.Radii[i])})
		}
		e.rules = append(e.rules, Rule{Selector: selector(class), Declarations: decls})
	}
	assignClass(n, class)
}

type pending struct {
	params corner.Params
	key    string
	class  string
	asset  corner.Asset
	hit    bool
}

// drawRegion draws the four corners of a region.  All assets are produced
// before the first document mutation, so that a failing backend leaves the
// region untouched.
func (e *Engine) drawRegion(it item, stats *Stats) error {
	n := it.node
	if it.spec.IsZero() {
		var errs []error
		for _, slot := range existingSlots(n) {
			if slot != nil {
				errs = append(errs, clearSlot(slot))
			}
		}
		assignClass(n, initClass)
		return errors.Join(errs...)
	}

	borders := e.Resolver.Borders(n)
	bgNode := n
	if !it.spec.Shape {
		bgNode = n.Parent()
	}
	bg := DefaultBackground
	if bgNode != nil {
		bg = e.Resolver.Background(bgNode)
	}

	var todo [4]*pending
	for _, t := range corner.SlotOrder {
		p := corner.Normalize(it.spec, t, borders, bg)
		if p.Radius == 0 {
			continue
		}
		pd := &pending{params: p, key: p.Key()}
		pd.class, pd.hit = e.cache.Lookup(pd.key)
		if !pd.hit || e.backend.AssetKind() == corner.Node {
			asset, err := e.backend.Draw(&pd.params)
			if err != nil {
				Logger().Warn("corner draw failed", "corner", t, "err", err)
				return &DrawError{Corner: t, Err: err}
			}
			stats.Drawn++
			pd.asset = asset
		}
		if pd.hit {
			stats.Hits++
		}
		todo[t] = pd
	}

	var errs []error
	for _, t := range corner.SlotOrder {
		slot := it.slots[t]
		pd := todo[t]
		if pd == nil {
			if err := clearSlot(slot); err != nil {
				errs = append(errs, err)
			}
			continue
		}
		if !pd.hit {
			pd.class = e.cache.Store(pd.key)
			Logger().Debug("new corner", "class", pd.class, "key", pd.key)
			e.rules = append(e.rules, Rule{
				Selector:     selector(pd.class),
				Declarations: cornerDeclarations(&pd.params, pd.asset),
			})
		}
		assignClass(slot, pd.class)
		if pd.asset.Kind == corner.Node {
			if err := slot.SetContent(pd.asset.Markup); err != nil {
				errs = append(errs, &DrawError{Corner: t, Err: err})
			}
		}
	}

	if !it.spec.Shape {
		assignClass(n, initClass)
		return errors.Join(errs...)
	}

	b := adjustBox(it.spec.Radii, readBox(n))
	key := b.key()
	class, ok := e.cache.Lookup(key)
	if !ok {
		class = e.cache.Store(key)
		e.rules = append(e.rules, Rule{Selector: selector(class), Declarations: b.declarations()})
	}
	assignClass(n, initClass, class)
	return errors.Join(errs...)
}

// cornerDeclarations returns the style of a corner placeholder.
func cornerDeclarations(p *corner.Params, a corner.Asset) []Declaration {
	decls := []Declaration{
		{Property: "height", Value: px(p.Height)},
	}
	if a.Kind == corner.Image {
		decls = append(decls, Declaration{Property: "background-image", Value: "url(" + a.URI + ")"})
	}
	if p.Trailing() {
		decls = append(decls,
			Declaration{Property: "width", Value: "100%"},
			Declaration{Property: "padding-left", Value: px(p.RealLeft + p.OppositeLeft)},
			Declaration{Property: "clip", Value: "rect(auto,auto,auto," + px(p.OppositeRadius) + ")"},
			Declaration{Property: "background-position", Value: "top right"},
		)
	} else {
		decls = append(decls, Declaration{Property: "width", Value: px(p.Width)})
	}

	vert, horiz := "bottom", "right"
	if p.Type.IsTop() {
		vert = "top"
	}
	if !p.Type.IsRight() {
		horiz = "left"
	}
	decls = append(decls,
		Declaration{Property: vert, Value: px(p.OffsetY)},
		Declaration{Property: horiz, Value: px(p.OffsetX)},
	)
	return decls
}

// flush inserts all buffered rules into the stylesheet.  If the stylesheet
// rejects the rules, they are kept for the next attempt.
func (e *Engine) flush() (int, error) {
	if len(e.rules) == 0 {
		return 0, nil
	}
	n := len(e.rules)
	if err := e.sheet.InsertRules(e.rules); err != nil {
		return 0, fmt.Errorf("rocon: insert %d rules: %w", n, err)
	}
	e.rules = nil
	return n, nil
}

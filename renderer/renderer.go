// Package renderer holds the shared, keyed registry of panes that every
// widget writes into and the terminal driver reads from. It is the
// single-writer boundary between widget state and the draw loop.
//
// Grounded on the Shared<Pane>/render() wiring threaded through
// original_source/promkit/src/core/*.rs components and
// _examples/AhnafCodes-basementui/go/tui/screen.go's mutex-guarded
// buffer, generalized from one fixed pane to a named registry so a
// preset can mount an arbitrary set of widgets (e.g. a title pane plus
// a listbox plus a help line).
package renderer

import (
	"sort"
	"sync"

	"duskline/pane"
)

// Renderer owns a named set of panes behind a single mutex. order
// tracks which keys have been seen (so Remove and dirty-tracking don't
// need to scan the map), but it is not the draw order: insertion order
// is not the draw order, the draw order is the key's total (sorted)
// order, so two Renderers fed the same keys in any order always redraw
// identically.
type Renderer struct {
	mu    sync.Mutex
	panes map[string]pane.Pane
	order []string
	dirty bool
}

// New builds an empty Renderer.
func New() *Renderer {
	return &Renderer{panes: make(map[string]pane.Pane)}
}

// NewWithPanes builds a Renderer pre-populated with named panes (draw
// order is always the sorted key order, regardless of keysInOrder).
// Mirrors the teacher's try_new_with_panes constructor used when a
// preset's widget set is fixed at startup.
func NewWithPanes(keysInOrder []string, panes map[string]pane.Pane) *Renderer {
	r := New()
	for _, k := range keysInOrder {
		if p, ok := panes[k]; ok {
			r.Update(k, p)
		}
	}
	return r
}

// Update replaces the pane stored under key, marking the registry
// dirty. If key is new, it's appended to the list of seen keys (the
// draw order stays the sorted key order).
func (r *Renderer) Update(key string, p pane.Pane) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.panes[key]; !ok {
		r.order = append(r.order, key)
	}
	r.panes[key] = p
	r.dirty = true
}

// Remove drops key from the registry entirely.
func (r *Renderer) Remove(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.panes[key]; !ok {
		return
	}
	delete(r.panes, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.dirty = true
}

// Snapshot returns every pane in key order (the draw order) and clears
// the dirty flag, reporting whether anything had changed since the
// last Snapshot call.
func (r *Renderer) Snapshot() (panes []pane.Pane, changed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	keys := append([]string{}, r.order...)
	sort.Strings(keys)
	out := make([]pane.Pane, 0, len(keys))
	for _, k := range keys {
		out = append(out, r.panes[k])
	}
	changed = r.dirty
	r.dirty = false
	return out, changed
}

// Keys returns the registry's keys in draw (sorted) order, for
// deterministic debugging output.
func (r *Renderer) Keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]string{}, r.order...)
	sort.Strings(out)
	return out
}

// Package keymap switches between named sets of key bindings at runtime,
// so a preset can e.g. swap from "default" to "search" handling without
// the widget itself knowing which mode it's in.
//
// Grounded on the keymap module threaded through
// original_source/promkit/src/core/*.rs presets, which hold a
// HashMap<String, Handler> plus an active key; generalized here to a
// generic handler type via Go generics.
package keymap

import "fmt"

// Keymap holds a set of named handlers of type H and tracks which one is
// currently active.
type Keymap[H any] struct {
	handlers map[string]H
	active   string
}

// New builds a Keymap whose initial active handler is named initial. It
// panics if handlers doesn't contain that name — this is a wiring bug,
// not a runtime condition.
func New[H any](handlers map[string]H, initial string) *Keymap[H] {
	if _, ok := handlers[initial]; !ok {
		panic(fmt.Sprintf("keymap: no handler named %q", initial))
	}
	k := &Keymap[H]{handlers: make(map[string]H, len(handlers))}
	for name, h := range handlers {
		k.handlers[name] = h
	}
	k.active = initial
	return k
}

// Active returns the currently active handler and its name.
func (k *Keymap[H]) Active() (H, string) {
	return k.handlers[k.active], k.active
}

// Switch changes the active handler, reporting whether name was known.
func (k *Keymap[H]) Switch(name string) bool {
	if _, ok := k.handlers[name]; !ok {
		return false
	}
	k.active = name
	return true
}

// Register adds or replaces a named handler.
func (k *Keymap[H]) Register(name string, h H) {
	k.handlers[name] = h
}

// Names returns every registered handler name.
func (k *Keymap[H]) Names() []string {
	names := make([]string, 0, len(k.handlers))
	for name := range k.handlers {
		names = append(names, name)
	}
	return names
}

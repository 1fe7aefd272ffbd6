// Package layout provides keyboard layout sources for keycode.Resolve: a
// registry of named static layout tables, and a best-effort query of the
// operating system's active layout where the platform supports one.
package layout

import (
	"fmt"
	"sort"
	"sync"

	"github.com/splitkey/splitkey/keycode"
)

// Table maps physical key positions to the glyph they produce under one
// keyboard layout. Only writing-system keys are meaningful here; anything
// absent falls back to the baseline label during resolution.
type Table map[keycode.Code]string

// Lookup implements keycode.Source.
func (t Table) Lookup(c keycode.Code) (string, bool) {
	glyph, ok := t[c]
	return glyph, ok
}

var (
	mu      sync.RWMutex
	layouts = make(map[string]Table)
)

// Register adds a named layout table. It panics if the name is already
// taken; layouts are meant to be registered from init functions.
func Register(name string, t Table) {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := layouts[name]; ok {
		panic(fmt.Sprintf("layout: already registered: %s", name))
	}
	layouts[name] = t
}

// Named returns the layout table registered under name.
func Named(name string) (Table, bool) {
	mu.RLock()
	defer mu.RUnlock()
	t, ok := layouts[name]
	return t, ok
}

// Names returns the registered layout names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

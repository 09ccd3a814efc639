package routes

import (
	"sort"
	"strings"
	"sync"
)

// HTTP methods supported by route definitions.
const (
	MethodGet    = "GET"
	MethodPost   = "POST"
	MethodPut    = "PUT"
	MethodPatch  = "PATCH"
	MethodHead   = "HEAD"
	MethodDelete = "DELETE"
)

// NormalizeMethod uppercases a method name, defaulting to GET when empty.
func NormalizeMethod(method string) string {
	if method == "" {
		return MethodGet
	}
	return strings.ToUpper(method)
}

// Definition is a named route: a URL template plus an HTTP method.
// The zero value is the empty fallback definition (URL "", method GET).
type Definition struct {
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`
	URL    string `json:"url" yaml:"url"`
	Method string `json:"method,omitempty" yaml:"method,omitempty"`
}

// Resolved is a definition with its template fully substituted and its
// method normalized.
type Resolved struct {
	Name   string
	URL    string
	Method string
}

// Table maps route names to definitions. It is safe for concurrent use;
// the route-file watcher replaces its contents from another goroutine.
type Table struct {
	mu   sync.RWMutex
	defs map[string]Definition
}

// NewTable builds a table from the given definitions. Definitions without
// an explicit name take their map key as the name.
func NewTable(defs map[string]Definition) *Table {
	t := &Table{defs: make(map[string]Definition, len(defs))}
	for name, def := range defs {
		if def.Name == "" {
			def.Name = name
		}
		t.defs[name] = def
	}
	return t
}

// Set adds or replaces a single definition.
func (t *Table) Set(name string, def Definition) {
	if def.Name == "" {
		def.Name = name
	}
	t.mu.Lock()
	t.defs[name] = def
	t.mu.Unlock()
}

// ReplaceAll swaps the whole table contents.
func (t *Table) ReplaceAll(defs map[string]Definition) {
	next := make(map[string]Definition, len(defs))
	for name, def := range defs {
		if def.Name == "" {
			def.Name = name
		}
		next[name] = def
	}
	t.mu.Lock()
	t.defs = next
	t.mu.Unlock()
}

// Get returns the definition for name, if present.
func (t *Table) Get(name string) (Definition, bool) {
	t.mu.RLock()
	def, ok := t.defs[name]
	t.mu.RUnlock()
	return def, ok
}

// Names returns the configured route names, sorted.
func (t *Table) Names() []string {
	t.mu.RLock()
	names := make([]string, 0, len(t.defs))
	for name := range t.defs {
		names = append(names, name)
	}
	t.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Len returns the number of configured routes.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.defs)
}

// Resolve looks up name and expands its template with params. An unknown
// name resolves to the empty definition (URL "", method GET) rather than
// an error: callers must treat the empty URL as the not-found sentinel.
func (t *Table) Resolve(name string, params Params) Resolved {
	def, ok := t.Get(name)
	if !ok {
		return Resolved{Method: MethodGet}
	}

	return Resolved{
		Name:   def.Name,
		URL:    Expand(def.URL, params),
		Method: NormalizeMethod(def.Method),
	}
}

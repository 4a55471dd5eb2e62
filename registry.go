package compkit

import (
	"fmt"
	"sort"
	"sync"

	"github.com/a-h/templ"
)

// Registry holds named components and the delegates catalogs can refer to.
//
// Registration is expected at start-up; lookups and renders are safe from
// any goroutine afterwards.
type Registry struct {
	mu         sync.RWMutex
	engine     *Engine
	components map[string]*Component
	delegates  map[string]*Delegate
}

// NewRegistry creates an empty registry whose components share one engine.
func NewRegistry(opts ...EngineOption) *Registry {
	return &Registry{
		engine:     NewEngine(opts...),
		components: make(map[string]*Component),
		delegates:  make(map[string]*Delegate),
	}
}

// Engine returns the registry's engine.
func (reg *Registry) Engine() *Engine {
	return reg.engine
}

// Delegate registers a named delegate for catalogs to refer to.
// Panics on a name collision or an empty delegate.
func (reg *Registry) Delegate(name string, d *Delegate) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if d.Arity() == 0 {
		panic(fmt.Sprintf("compkit: delegate %q has no render function", name))
	}
	if _, exists := reg.delegates[name]; exists {
		panic(fmt.Sprintf("compkit: delegate name collision for %q", name))
	}
	reg.delegates[name] = d.Named(name)
}

// LookupDelegate returns a registered delegate.
func (reg *Registry) LookupDelegate(name string) (*Delegate, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	d, ok := reg.delegates[name]
	return d, ok
}

// Define validates def and registers it under its name.
func (reg *Registry) Define(def Definition) (*Component, error) {
	c, err := reg.engine.Define(def)
	if err != nil {
		return nil, err
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()
	if _, exists := reg.components[c.Name()]; exists {
		return nil, configErrorf(c.Name(), "name collision")
	}
	reg.components[c.Name()] = c
	return c, nil
}

// Add registers definitions. Panics if a definition is invalid or its
// name is already taken, so mistakes surface at start-up rather than on
// first render.
func (reg *Registry) Add(defs ...Definition) {
	for _, def := range defs {
		if _, err := reg.Define(def); err != nil {
			panic(err)
		}
	}
}

// Get returns a registered component.
func (reg *Registry) Get(name string) (*Component, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	c, ok := reg.components[name]
	return c, ok
}

// Names returns the registered component names in sorted order.
func (reg *Registry) Names() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	names := make([]string, 0, len(reg.components))
	for name := range reg.components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render renders a call against a registered component.
func (reg *Registry) Render(name string, call Call) (templ.Component, error) {
	c, ok := reg.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return c.Render(call)
}

package engine

import (
	"fmt"
	"sync"

	"golang.org/x/text/cases"
)

// Registry maps language names to providers. Lookup is case-insensitive:
// "js", "JS" and "Js" resolve to the same provider.
//
// The registry is an explicit object passed to the dispatcher rather
// than ambient package state, so hosts control exactly which languages
// a query can reach.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

// NewRegistry creates a registry and registers the given providers.
// Registration errors panic here because a misregistered binding is a
// programming error; use Register directly to handle errors.
func NewRegistry(providers ...Provider) *Registry {
	r := &Registry{providers: make(map[string]Provider)}
	for _, p := range providers {
		if err := r.Register(p); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds a provider under every alias it advertises. It fails if
// the provider advertises no names or an alias is already taken.
func (r *Registry) Register(p Provider) error {
	if p == nil {
		return fmt.Errorf("engine: provider is nil")
	}
	names := p.Names()
	if len(names) == 0 {
		return fmt.Errorf("engine: provider advertises no names")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, name := range names {
		key := fold(name)
		if _, exists := r.providers[key]; exists {
			return fmt.Errorf("engine: language %q already registered", name)
		}
	}
	for _, name := range names {
		r.providers[fold(name)] = p
	}
	return nil
}

// Lookup returns the provider registered under language, if any.
func (r *Registry) Lookup(language string) (Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[fold(language)]
	return p, ok
}

// Languages returns every registered alias, unordered.
func (r *Registry) Languages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.providers))
	for name := range r.providers {
		out = append(out, name)
	}
	return out
}

// fold case-folds a language name for registry keys. A Caser is
// stateful, so one is created per call rather than shared.
func fold(s string) string {
	return cases.Fold().String(s)
}

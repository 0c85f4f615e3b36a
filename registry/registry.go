// Package registry implements the append-only name-to-instance tables that
// back component, system and action registration.
//
// A Registry is a plain value object. Code that needs isolated registries
// (tests, embedded tools) creates its own instead of sharing process-wide
// state. Registries are not safe for concurrent use; all calls are expected
// to come from the single game-logic goroutine.
package registry

import "fmt"

// Registry is an append-only mapping from name to instance. Entries are
// added only through Register and never removed; the table lives as long as
// its owner.
type Registry[T any] struct {
	entries map[string]T
	names   []string
}

// New creates an empty registry.
func New[T any]() *Registry[T] {
	return &Registry[T]{entries: map[string]T{}}
}

// Register binds name to v. The first binding under a name wins; a second
// attempt fails with ErrAlreadyRegistered and leaves the table unchanged.
func (r *Registry[T]) Register(name string, v T) error {
	if _, ok := r.entries[name]; ok {
		return fmt.Errorf("%q: %w", name, ErrAlreadyRegistered)
	}
	r.entries[name] = v
	r.names = append(r.names, name)
	return nil
}

// Lookup returns the instance bound to name, or ErrNotRegistered.
func (r *Registry[T]) Lookup(name string) (T, error) {
	v, ok := r.entries[name]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%q: %w", name, ErrNotRegistered)
	}
	return v, nil
}

// Has reports whether name is bound.
func (r *Registry[T]) Has(name string) bool {
	_, ok := r.entries[name]
	return ok
}

// Names returns the registered names in registration order.
func (r *Registry[T]) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of registered entries.
func (r *Registry[T]) Len() int { return len(r.entries) }

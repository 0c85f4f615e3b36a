package loader

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"rpgkit/registry"
)

// Index maps entity identifiers to live entities and back. It is the join
// the scene layer and the script engine use to cross between engine
// instances and world entities.
type Index struct {
	byID     map[string]ecs.Entity
	byEntity map[ecs.Entity]string
	order    []string
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{
		byID:     map[string]ecs.Entity{},
		byEntity: map[ecs.Entity]string{},
	}
}

// Add binds an identifier to an entity. Identifiers are unique.
func (x *Index) Add(identifier string, e ecs.Entity) error {
	if _, ok := x.byID[identifier]; ok {
		return fmt.Errorf("entity %q: %w", identifier, registry.ErrAlreadyRegistered)
	}
	x.byID[identifier] = e
	x.byEntity[e] = identifier
	x.order = append(x.order, identifier)
	return nil
}

// Resolve returns the entity bound to identifier.
func (x *Index) Resolve(identifier string) (ecs.Entity, bool) {
	e, ok := x.byID[identifier]
	return e, ok
}

// Identify returns the identifier of an entity, or "" if unknown.
func (x *Index) Identify(e ecs.Entity) string {
	return x.byEntity[e]
}

// Has reports whether identifier is bound.
func (x *Index) Has(identifier string) bool {
	_, ok := x.byID[identifier]
	return ok
}

// Identifiers returns all identifiers in creation order.
func (x *Index) Identifiers() []string {
	out := make([]string, len(x.order))
	copy(out, x.order)
	return out
}

// Len returns the number of indexed entities.
func (x *Index) Len() int { return len(x.order) }

package registry

import "fmt"

// Step is one registration a Resolver planned: bind Value under Name.
type Step[T any] struct {
	Name  string
	Value T
}

// Resolver plans dependency-closed registrations against a registry.
//
// Resolution is an explicit depth-first walk with a currently-resolving
// set: a cyclic dependency declaration surfaces as a CycleError instead of
// recursing, and the whole closure is validated before anything is bound,
// so a failure never leaves the append-only registry half-populated.
type Resolver[T comparable] struct {
	Registry    *Registry[T]
	Names       map[T]string // instance -> registered name
	DefaultName func(T) string
	Deps        func(T) []T
}

// Plan validates the dependency closure of root (to be bound under name)
// and returns the registrations to perform, dependencies first. Already
// registered instances are skipped; an unregistered dependency whose
// default name is claimed by a different instance is an error.
func (r *Resolver[T]) Plan(name string, root T) ([]Step[T], error) {
	if prev, ok := r.Names[root]; ok {
		return nil, fmt.Errorf("%q already registered as %q: %w",
			name, prev, ErrAlreadyRegistered)
	}
	if r.Registry.Has(name) {
		return nil, fmt.Errorf("%q: %w", name, ErrAlreadyRegistered)
	}

	var steps []Step[T]
	// planned tracks instances already emitted as steps in this closure, so
	// a dependency reachable over several paths (a diamond) plans once.
	planned := map[T]string{}
	plannedNames := map[string]bool{}
	var walk func(name string, v T, visiting map[string]bool, chain []string) error
	walk = func(name string, v T, visiting map[string]bool, chain []string) error {
		if visiting[name] {
			return &CycleError{Chain: append(chain, name)}
		}
		visiting[name] = true
		chain = append(chain, name)
		for _, dep := range r.Deps(v) {
			if depName, ok := r.Names[dep]; ok {
				if visiting[depName] {
					return &CycleError{Chain: append(chain, depName)}
				}
				continue
			}
			if _, ok := planned[dep]; ok {
				continue
			}
			depName := r.DefaultName(dep)
			if visiting[depName] {
				return &CycleError{Chain: append(chain, depName)}
			}
			if r.Registry.Has(depName) || plannedNames[depName] {
				return fmt.Errorf("dependency %q of %q bound to a different instance: %w",
					depName, name, ErrAlreadyRegistered)
			}
			if err := walk(depName, dep, visiting, chain); err != nil {
				return err
			}
		}
		delete(visiting, name)
		planned[v] = name
		plannedNames[name] = true
		steps = append(steps, Step[T]{Name: name, Value: v})
		return nil
	}
	if err := walk(name, root, map[string]bool{}, nil); err != nil {
		return nil, err
	}
	return steps, nil
}

// Register plans and applies the registration of root under name.
func (r *Resolver[T]) Register(name string, root T) ([]Step[T], error) {
	steps, err := r.Plan(name, root)
	if err != nil {
		return nil, err
	}
	for _, step := range steps {
		if err := r.Registry.Register(step.Name, step.Value); err != nil {
			return nil, err
		}
		r.Names[step.Value] = step.Name
	}
	return steps, nil
}

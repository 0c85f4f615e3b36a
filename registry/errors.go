package registry

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAlreadyRegistered is returned when a name is registered twice.
var ErrAlreadyRegistered = errors.New("already registered")

// ErrNotRegistered is returned when an operation requires a registration
// that does not exist.
var ErrNotRegistered = errors.New("not registered")

// ErrDependencyCycle is returned when a dependency declaration forms a
// cycle instead of a DAG.
var ErrDependencyCycle = errors.New("dependency cycle")

// CycleError reports the chain of names that closed a dependency cycle.
type CycleError struct {
	Chain []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("dependency cycle: %s", strings.Join(e.Chain, " -> "))
}

func (e *CycleError) Unwrap() error { return ErrDependencyCycle }

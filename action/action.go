// Package action implements the one-shot player command layer: eligibility
// checks, structured effects, and follow-up command chaining.
package action

import (
	"errors"
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"rpgkit/component"
)

// Domain action errors.
var (
	// ErrInvalidTarget is returned when an action executes against an
	// entity that does not carry the components it needs.
	ErrInvalidTarget = errors.New("invalid target")
	// ErrAlreadyOpen is returned by open on an open target.
	ErrAlreadyOpen = errors.New("already open")
	// ErrAlreadyClosed is returned by close on a closed target.
	ErrAlreadyClosed = errors.New("already closed")
	// ErrLocked is returned by open on a locked target.
	ErrLocked = errors.New("locked")
)

// Controller is the context an action executes in. The scene controller
// implements it; tests use fakes.
type Controller interface {
	World() *ecs.World
	RunCommand(name string, agent, target ecs.Entity) error
	Emit(Result)
}

// Action is a single-shot command: constructed per invocation, executed
// once, then discarded. Execution is synchronous; there is no retry or
// rollback.
type Action interface {
	Execute() error
}

// Type is a registered action prototype. CheckAgent and CheckTarget
// classify eligibility; callers are expected to consult them before New.
// Components lists component types the action reads, registered alongside
// the action if missing.
type Type interface {
	Name() string
	Components() []component.Type
	CheckAgent(e ecs.Entity) bool
	CheckTarget(e ecs.Entity) bool
	New(ctrl Controller, agent, target ecs.Entity, commands []string) Action
}

// Base carries the per-invocation state shared by all actions and runs the
// follow-up command chain.
type Base struct {
	Ctrl     Controller
	Agent    ecs.Entity
	Target   ecs.Entity
	Commands []string
}

// Execute runs each follow-up command by name through the controller, in
// order. The chain stops at the first failing command and the error
// propagates; effects of earlier commands stay applied.
func (b *Base) Execute() error {
	for _, name := range b.Commands {
		if err := b.Ctrl.RunCommand(name, b.Agent, b.Target); err != nil {
			return fmt.Errorf("follow-up command %q: %w", name, err)
		}
	}
	return nil
}

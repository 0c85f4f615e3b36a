package action

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"rpgkit/component"
)

// OpenType is the prototype of the open action on lockable targets.
type OpenType struct {
	lockable    *component.Lockable
	description *component.Description
}

// NewOpen creates the open action type.
func NewOpen(lockable *component.Lockable, description *component.Description) *OpenType {
	return &OpenType{lockable: lockable, description: description}
}

func (t *OpenType) Name() string { return "Open" }

func (t *OpenType) Components() []component.Type {
	return []component.Type{t.lockable}
}

func (t *OpenType) CheckAgent(e ecs.Entity) bool { return true }

func (t *OpenType) CheckTarget(e ecs.Entity) bool {
	return t.lockable.Has(e)
}

func (t *OpenType) New(ctrl Controller, agent, target ecs.Entity, commands []string) Action {
	return &openAction{
		Base: Base{Ctrl: ctrl, Agent: agent, Target: target, Commands: commands},
		typ:  t,
	}
}

type openAction struct {
	Base
	typ *OpenType
}

func (a *openAction) Execute() error {
	l := a.typ.lockable.Get(a.Target)
	if l == nil {
		return fmt.Errorf("open: %w", ErrInvalidTarget)
	}
	if l.Locked {
		return fmt.Errorf("open: %w", ErrLocked)
	}
	if !l.Closed {
		return fmt.Errorf("open: %w", ErrAlreadyOpen)
	}
	l.Closed = false
	a.Ctrl.Emit(Result{
		Kind: KindMessage,
		Text: fmt.Sprintf("You open %s.", a.typ.targetName(a.Target)),
	})
	return a.Base.Execute()
}

func (t *OpenType) targetName(e ecs.Entity) string {
	if d := t.description.Get(e); d != nil && d.ViewName != "" {
		return d.ViewName
	}
	return "it"
}

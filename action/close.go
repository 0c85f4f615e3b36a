package action

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"rpgkit/component"
)

// CloseType is the prototype of the close action on lockable targets.
type CloseType struct {
	lockable    *component.Lockable
	description *component.Description
}

// NewClose creates the close action type.
func NewClose(lockable *component.Lockable, description *component.Description) *CloseType {
	return &CloseType{lockable: lockable, description: description}
}

func (t *CloseType) Name() string { return "Close" }

func (t *CloseType) Components() []component.Type {
	return []component.Type{t.lockable}
}

func (t *CloseType) CheckAgent(e ecs.Entity) bool { return true }

func (t *CloseType) CheckTarget(e ecs.Entity) bool {
	return t.lockable.Has(e)
}

func (t *CloseType) New(ctrl Controller, agent, target ecs.Entity, commands []string) Action {
	return &closeAction{
		Base: Base{Ctrl: ctrl, Agent: agent, Target: target, Commands: commands},
		typ:  t,
	}
}

type closeAction struct {
	Base
	typ *CloseType
}

func (a *closeAction) Execute() error {
	l := a.typ.lockable.Get(a.Target)
	if l == nil {
		return fmt.Errorf("close: %w", ErrInvalidTarget)
	}
	if l.Closed {
		return fmt.Errorf("close: %w", ErrAlreadyClosed)
	}
	l.Closed = true
	a.Ctrl.Emit(Result{
		Kind: KindMessage,
		Text: fmt.Sprintf("You close %s.", a.typ.targetName(a.Target)),
	})
	return a.Base.Execute()
}

func (t *CloseType) targetName(e ecs.Entity) string {
	if d := t.description.Get(e); d != nil && d.ViewName != "" {
		return d.ViewName
	}
	return "it"
}

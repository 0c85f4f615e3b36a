package action

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"rpgkit/component"
)

// LookType is the prototype of the look action: any entity can initiate
// it, and any entity carrying a description qualifies as a target.
type LookType struct {
	description *component.Description
}

// NewLook creates the look action type.
func NewLook(description *component.Description) *LookType {
	return &LookType{description: description}
}

func (t *LookType) Name() string { return "Look" }

func (t *LookType) Components() []component.Type {
	return []component.Type{t.description}
}

func (t *LookType) CheckAgent(e ecs.Entity) bool { return true }

func (t *LookType) CheckTarget(e ecs.Entity) bool {
	return t.description.Has(e)
}

func (t *LookType) New(ctrl Controller, agent, target ecs.Entity, commands []string) Action {
	return &lookAction{
		Base:        Base{Ctrl: ctrl, Agent: agent, Target: target, Commands: commands},
		description: t.description,
	}
}

type lookAction struct {
	Base
	description *component.Description
}

// Execute emits the target's view name and description, then runs the
// follow-up chain.
func (a *lookAction) Execute() error {
	d := a.description.Get(a.Target)
	if d == nil {
		return fmt.Errorf("look: %w", ErrInvalidTarget)
	}
	a.Ctrl.Emit(Result{
		Kind: KindMessage,
		Text: fmt.Sprintf("You see %s. %s", d.ViewName, d.Desc),
		Data: map[string]any{"view_name": d.ViewName, "desc": d.Desc},
	})
	return a.Base.Execute()
}

package scene

import (
	"rpgkit/internal/logger"
)

// Listener turns pointer events into scene reactions: hovering outlines the
// instances under the cursor, a left click runs the default action on the
// first eligible one.
type Listener struct {
	stage    Stage
	outliner Outliner
	ctrl     *Controller
	log      logger.Logger

	// Layer is the engine layer hit tests run against.
	Layer string
	// DefaultAction is the action a left click dispatches, normally "Look".
	DefaultAction string
	// AgentID identifies the entity acting on clicks, normally the player.
	AgentID string
}

// NewListener creates a scene listener.
func NewListener(stage Stage, outliner Outliner, ctrl *Controller, log logger.Logger) *Listener {
	if log == nil {
		log = logger.Nop()
	}
	return &Listener{
		stage:         stage,
		outliner:      outliner,
		ctrl:          ctrl,
		log:           log,
		DefaultAction: "Look",
	}
}

// MouseMoved re-outlines the instances under the cursor. Previous outlines
// are cleared first, so moving off an instance unhighlights it.
func (l *Listener) MouseMoved(p Point) {
	l.outliner.Clear()
	for _, inst := range l.stage.InstancesAt(p, l.Layer) {
		l.outliner.Outline(inst)
	}
}

// MousePressed dispatches the default action at the clicked position. Only
// the left button acts; the first instance that resolves to an eligible
// target wins.
func (l *Listener) MousePressed(p Point, b Button) {
	if b != ButtonLeft || !l.ctrl.Active() {
		return
	}
	agent, ok := l.ctrl.Resolve(l.AgentID)
	if !ok {
		l.log.Warn("agent not resolvable", logger.String("identifier", l.AgentID))
		return
	}
	at, err := l.ctrl.actions.Lookup(l.DefaultAction)
	if err != nil {
		l.log.Warn("default action not registered",
			logger.String("name", l.DefaultAction), logger.Err(err))
		return
	}
	for _, inst := range l.stage.InstancesAt(p, l.Layer) {
		target, ok := l.ctrl.Resolve(inst.Identifier())
		if !ok || !at.CheckTarget(target) {
			continue
		}
		if err := l.ctrl.Dispatch(l.DefaultAction, agent, target, nil); err != nil {
			l.log.Warn("action dispatch failed",
				logger.String("name", l.DefaultAction),
				logger.String("target", inst.Identifier()),
				logger.Err(err))
		}
		return
	}
}

// MouseReleased is a no-op hook.
func (l *Listener) MouseReleased(Point, Button) {}

// MouseDragged is a no-op hook.
func (l *Listener) MouseDragged(Point, Button) {}

// MouseWheel is a no-op hook.
func (l *Listener) MouseWheel(float64) {}

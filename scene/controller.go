package scene

import (
	"errors"
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"rpgkit/action"
	"rpgkit/internal/logger"
	"rpgkit/system"
)

// ErrAgentUnable is returned by Dispatch when the agent fails the action's
// eligibility check.
var ErrAgentUnable = errors.New("agent cannot perform action")

// Controller drives a running scene: it owns the frame pump, resolves
// instance identifiers to entities, and is the action.Controller actions
// and scripts execute against.
type Controller struct {
	world   *ecs.World
	systems *system.Manager
	actions *action.Manager
	log     logger.Logger

	resolve func(identifier string) (ecs.Entity, bool)
	sink    action.Sink

	events Events
	input  MouseListener

	frame  ecs.Resource[system.FrameTime]
	active bool
}

// NewController creates a scene controller over an existing world and its
// managers.
func NewController(w *ecs.World, systems *system.Manager, actions *action.Manager, log logger.Logger) *Controller {
	if log == nil {
		log = logger.Nop()
	}
	return &Controller{
		world:   w,
		systems: systems,
		actions: actions,
		log:     log,
		frame:   ecs.NewResource[system.FrameTime](w),
	}
}

// SetResolver installs the identifier-to-entity lookup, typically the
// loader index.
func (c *Controller) SetResolver(resolve func(identifier string) (ecs.Entity, bool)) {
	c.resolve = resolve
}

// SetSink installs the receiver for action results.
func (c *Controller) SetSink(sink action.Sink) {
	c.sink = sink
}

// Resolve maps an instance identifier to its entity.
func (c *Controller) Resolve(identifier string) (ecs.Entity, bool) {
	if c.resolve == nil {
		return ecs.Entity{}, false
	}
	return c.resolve(identifier)
}

// AttachInput binds the engine's event source and the listener Activate
// registers with it.
func (c *Controller) AttachInput(ev Events, l MouseListener) {
	c.events = ev
	c.input = l
}

// Activate starts the scene: the input listener attaches and Pump begins
// advancing systems.
func (c *Controller) Activate() {
	if c.active {
		return
	}
	c.active = true
	if c.events != nil && c.input != nil {
		c.events.AddMouseListener(c.input)
	}
	c.log.Info("scene activated")
}

// Deactivate stops the scene and detaches the input listener.
func (c *Controller) Deactivate() {
	if !c.active {
		return
	}
	c.active = false
	if c.events != nil && c.input != nil {
		c.events.RemoveMouseListener(c.input)
	}
	c.log.Info("scene deactivated")
}

// Active reports whether the scene is running.
func (c *Controller) Active() bool { return c.active }

// Pump advances the scene by dt wall seconds: it publishes the frame delta
// and updates every registered system in order.
func (c *Controller) Pump(dt float64) {
	if !c.active {
		return
	}
	if !c.frame.Has() {
		c.frame.Add(&system.FrameTime{})
	}
	c.frame.Get().Delta = dt
	c.systems.Update(c.world)
}

// World returns the entity world.
func (c *Controller) World() *ecs.World { return c.world }

// RunCommand executes a named follow-up command against this controller.
func (c *Controller) RunCommand(name string, agent, target ecs.Entity) error {
	cmd, err := c.actions.Command(name)
	if err != nil {
		return fmt.Errorf("command %q: %w", name, err)
	}
	return cmd(c, agent, target)
}

// Emit forwards a result to the sink, if any.
func (c *Controller) Emit(r action.Result) {
	if c.sink != nil {
		c.sink.Emit(r)
	}
}

// Dispatch runs a registered action once: eligibility checks, the action's
// effect, then its follow-up commands. Domain failures additionally emit an
// error result so the scene can surface them.
func (c *Controller) Dispatch(name string, agent, target ecs.Entity, commands []string) error {
	at, err := c.actions.Lookup(name)
	if err != nil {
		return fmt.Errorf("action %q: %w", name, err)
	}
	if !at.CheckAgent(agent) {
		return fmt.Errorf("action %q: %w", name, ErrAgentUnable)
	}
	if !at.CheckTarget(target) {
		return fmt.Errorf("action %q: %w", name, action.ErrInvalidTarget)
	}
	if err := at.New(c, agent, target, commands).Execute(); err != nil {
		c.Emit(action.Result{Kind: action.KindError, Text: messageFor(err)})
		return fmt.Errorf("action %q: %w", name, err)
	}
	return nil
}

// messageFor turns a domain error into the text shown to the player.
func messageFor(err error) string {
	switch {
	case errors.Is(err, action.ErrLocked):
		return "It is locked."
	case errors.Is(err, action.ErrAlreadyOpen):
		return "It is already open."
	case errors.Is(err, action.ErrAlreadyClosed):
		return "It is already closed."
	case errors.Is(err, action.ErrInvalidTarget):
		return "Nothing happens."
	default:
		return err.Error()
	}
}

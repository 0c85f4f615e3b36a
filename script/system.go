package script

import (
	"github.com/mlange-42/ark/ecs"

	"rpgkit/action"
	"rpgkit/internal/logger"
	"rpgkit/system"
)

type scheduled struct {
	name          string
	agent, target ecs.Entity
	due           float64 // game seconds
}

// System runs scheduled script commands against the game clock. It
// depends on the gametime system for the Clock resource.
type System struct {
	engine   *Engine
	gametime *system.GameTime
	ctrl     action.Controller
	log      logger.Logger

	clock       ecs.Resource[system.Clock]
	initialized bool
	pending     []scheduled
}

// NewSystem creates the scripting system. ctrl is the controller scheduled
// commands execute against.
func NewSystem(engine *Engine, gametime *system.GameTime, ctrl action.Controller, log logger.Logger) *System {
	if log == nil {
		log = logger.Nop()
	}
	return &System{engine: engine, gametime: gametime, ctrl: ctrl, log: log}
}

func (s *System) Name() string { return "scripting" }

func (s *System) Dependencies() []system.Type {
	return []system.Type{s.gametime}
}

func (s *System) Initialize(w *ecs.World) {
	s.clock = ecs.NewResource[system.Clock](w)
	if !s.clock.Has() {
		s.clock.Add(&system.Clock{Scale: 1})
	}
	s.initialized = true
}

// Schedule queues a script command to run after delay game seconds.
// Scheduling before the first frame counts from game time zero; the clock
// resource only exists once the system initialized.
func (s *System) Schedule(name string, agent, target ecs.Entity, delay float64) {
	now := 0.0
	if s.initialized && s.clock.Has() {
		now = s.clock.Get().Seconds
	}
	s.pending = append(s.pending, scheduled{
		name:   name,
		agent:  agent,
		target: target,
		due:    now + delay,
	})
}

// Update runs every due command. A failing script is logged and dropped;
// it does not block the rest of the queue.
func (s *System) Update(w *ecs.World) {
	if len(s.pending) == 0 {
		return
	}
	now := s.clock.Get().Seconds
	remaining := s.pending[:0]
	for _, sc := range s.pending {
		if sc.due > now {
			remaining = append(remaining, sc)
			continue
		}
		if err := s.engine.Run(sc.name, s.ctrl, sc.agent, sc.target); err != nil {
			s.log.Warn("scheduled script failed",
				logger.String("name", sc.name), logger.Err(err))
		}
	}
	s.pending = remaining
}

func (s *System) Finalize(w *ecs.World) {
	s.engine.Close()
}

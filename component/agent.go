package component

import (
	"github.com/mlange-42/ark/ecs"
)

// AgentData marks an entity as able to initiate actions and carries its
// behavior knobs.
type AgentData struct {
	Behavior  string
	WalkSpeed float64
}

// Agent is the component type for acting entities.
type Agent struct {
	mapper  ecs.Map[AgentData]
	general *General
}

// NewAgent creates the agent component type for a world.
func NewAgent(w *ecs.World, general *General) *Agent {
	return &Agent{
		mapper:  *ecs.NewMap[AgentData](w),
		general: general,
	}
}

func (a *Agent) Name() string         { return "agent" }
func (a *Agent) Dependencies() []Type { return []Type{a.general} }

func (a *Agent) Defaults() Record {
	return Record{"behavior": "idle", "walk_speed": 1.0}
}

// Bind writes an expanded record into a live entity.
func (a *Agent) Bind(e ecs.Entity, rec Record) error {
	a.mapper.Add(e, &AgentData{
		Behavior:  StringField(rec, "behavior"),
		WalkSpeed: FloatField(rec, "walk_speed"),
	})
	return nil
}

// Get returns the entity's agent data, or nil if absent.
func (a *Agent) Get(e ecs.Entity) *AgentData {
	if !a.mapper.Has(e) {
		return nil
	}
	return a.mapper.Get(e)
}

// Has reports whether the entity carries agent data.
func (a *Agent) Has(e ecs.Entity) bool { return a.mapper.Has(e) }

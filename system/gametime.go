package system

import (
	"github.com/mlange-42/ark/ecs"
)

// GameTime accumulates scaled game time from the frame delta. Other
// systems read the Clock resource it maintains.
type GameTime struct {
	clock ecs.Resource[Clock]
	frame ecs.Resource[FrameTime]
}

// NewGameTime creates the gametime system.
func NewGameTime() *GameTime {
	return &GameTime{}
}

func (g *GameTime) Name() string         { return "gametime" }
func (g *GameTime) Dependencies() []Type { return nil }

func (g *GameTime) Initialize(w *ecs.World) {
	g.clock = ecs.NewResource[Clock](w)
	if !g.clock.Has() {
		g.clock.Add(&Clock{Scale: 1})
	}
	g.frame = ecs.NewResource[FrameTime](w)
	if !g.frame.Has() {
		g.frame.Add(&FrameTime{})
	}
}

func (g *GameTime) Update(w *ecs.World) {
	clock := g.clock.Get()
	clock.Seconds += g.frame.Get().Delta * clock.Scale
}

func (g *GameTime) Finalize(w *ecs.World) {}

// SetScale adjusts the game-time scale; 0 pauses the clock.
func (g *GameTime) SetScale(w *ecs.World, scale float64) {
	res := ecs.NewResource[Clock](w)
	if res.Has() {
		res.Get().Scale = scale
	}
}

package component

import (
	"github.com/mlange-42/ark/ecs"
)

// GeneralData identifies an entity; the identifier is the join between the
// engine's scene instances and world entities.
type GeneralData struct {
	Identifier string
}

// General is the identifier component type.
type General struct {
	mapper ecs.Map[GeneralData]
}

// NewGeneral creates the general component type for a world.
func NewGeneral(w *ecs.World) *General {
	return &General{mapper: *ecs.NewMap[GeneralData](w)}
}

func (g *General) Name() string         { return "general" }
func (g *General) Dependencies() []Type { return nil }

func (g *General) Defaults() Record {
	return Record{"identifier": ""}
}

// Bind writes an expanded record into a live entity.
func (g *General) Bind(e ecs.Entity, rec Record) error {
	g.mapper.Add(e, &GeneralData{
		Identifier: StringField(rec, "identifier"),
	})
	return nil
}

// Get returns the entity's general data, or nil if absent.
func (g *General) Get(e ecs.Entity) *GeneralData {
	if !g.mapper.Has(e) {
		return nil
	}
	return g.mapper.Get(e)
}

// Has reports whether the entity carries general data.
func (g *General) Has(e ecs.Entity) bool { return g.mapper.Has(e) }

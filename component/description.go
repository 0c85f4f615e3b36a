package component

import (
	"github.com/mlange-42/ark/ecs"
)

// DescriptionData holds the player-facing name and description text of an
// entity.
type DescriptionData struct {
	ViewName string
	Desc     string
}

// Description is the component type read by the look action.
type Description struct {
	mapper  ecs.Map[DescriptionData]
	general *General
}

// NewDescription creates the description component type for a world.
func NewDescription(w *ecs.World, general *General) *Description {
	return &Description{
		mapper:  *ecs.NewMap[DescriptionData](w),
		general: general,
	}
}

func (d *Description) Name() string         { return "description" }
func (d *Description) Dependencies() []Type { return []Type{d.general} }

func (d *Description) Defaults() Record {
	return Record{"view_name": "", "desc": ""}
}

// Bind writes an expanded record into a live entity.
func (d *Description) Bind(e ecs.Entity, rec Record) error {
	d.mapper.Add(e, &DescriptionData{
		ViewName: StringField(rec, "view_name"),
		Desc:     StringField(rec, "desc"),
	})
	return nil
}

// Get returns the entity's description data, or nil if absent.
func (d *Description) Get(e ecs.Entity) *DescriptionData {
	if !d.mapper.Has(e) {
		return nil
	}
	return d.mapper.Get(e)
}

// Has reports whether the entity carries a description.
func (d *Description) Has(e ecs.Entity) bool { return d.mapper.Has(e) }

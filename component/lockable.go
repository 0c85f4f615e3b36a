package component

import (
	"github.com/mlange-42/ark/ecs"
)

// LockableData models something that can be opened, closed and locked.
type LockableData struct {
	Closed bool
	Locked bool
}

// Lockable is the component type behind the open and close actions.
type Lockable struct {
	mapper      ecs.Map[LockableData]
	description *Description
}

// NewLockable creates the lockable component type for a world.
func NewLockable(w *ecs.World, description *Description) *Lockable {
	return &Lockable{
		mapper:      *ecs.NewMap[LockableData](w),
		description: description,
	}
}

func (l *Lockable) Name() string         { return "lockable" }
func (l *Lockable) Dependencies() []Type { return []Type{l.description} }

func (l *Lockable) Defaults() Record {
	return Record{"closed": true, "locked": false}
}

// Bind writes an expanded record into a live entity.
func (l *Lockable) Bind(e ecs.Entity, rec Record) error {
	l.mapper.Add(e, &LockableData{
		Closed: BoolField(rec, "closed"),
		Locked: BoolField(rec, "locked"),
	})
	return nil
}

// Get returns the entity's lockable data, or nil if absent.
func (l *Lockable) Get(e ecs.Entity) *LockableData {
	if !l.mapper.Has(e) {
		return nil
	}
	return l.mapper.Get(e)
}

// Has reports whether the entity carries lockable data.
func (l *Lockable) Has(e ecs.Entity) bool { return l.mapper.Has(e) }

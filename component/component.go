// Package component implements named data schemas attachable to entities,
// their registration manager, and the concrete component catalog.
//
// Entities themselves are owned by the external ark world; this package
// never creates or destroys them, it only populates their data.
package component

import (
	"github.com/mlange-42/ark/ecs"
)

// Record holds one component's data for one entity template, keyed by
// field name. Values come from the declarative entity description (YAML)
// or from the component's declared defaults.
type Record map[string]any

// Template is a declarative entity description: component name to record.
// Templates are expanded through Manager.Setup before the external world
// attaches them to a live entity.
type Template map[string]Record

// Copy returns a shallow copy of the record.
func (r Record) Copy() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Type describes a named component schema. Name is the default
// registration name; Dependencies lists component types that must be
// registered alongside this one; Defaults declares the schema's fields
// with their default values. The keys of Defaults are the saveable fields.
type Type interface {
	Name() string
	Dependencies() []Type
	Defaults() Record
}

// Binder is implemented by component types that can write an expanded
// record into a live entity of the external world.
type Binder interface {
	Bind(e ecs.Entity, rec Record) error
}

// StringField reads a string field from a record, tolerating absent keys.
func StringField(rec Record, key string) string {
	if v, ok := rec[key].(string); ok {
		return v
	}
	return ""
}

// BoolField reads a bool field from a record, tolerating absent keys.
func BoolField(rec Record, key string) bool {
	if v, ok := rec[key].(bool); ok {
		return v
	}
	return false
}

// FloatField reads a numeric field from a record, tolerating absent keys
// and the int values the YAML decoder produces for whole numbers.
func FloatField(rec Record, key string) float64 {
	switch v := rec[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

// Package system implements named behaviors over entities and their
// registration manager.
//
// Systems follow the same registry and dependency-resolution contract as
// components. A registered system also satisfies the ark-tools app.System
// interface, so the registered set can be driven either by the scene
// controller's frame pump or by an ark-tools app runner.
package system

import (
	"github.com/mlange-42/ark/ecs"
)

// Type describes a named system. Name is the default registration name;
// Dependencies lists systems that must be registered alongside this one.
// Initialize, Update and Finalize match ark-tools' app.System.
type Type interface {
	Name() string
	Dependencies() []Type

	Initialize(w *ecs.World)
	Update(w *ecs.World)
	Finalize(w *ecs.World)
}

// FrameTime is the per-frame time resource. The scene controller (or the
// headless runner) writes Delta before updating systems.
type FrameTime struct {
	Delta float64 // seconds since the last frame
}

// Clock is the scaled game-time resource maintained by the gametime
// system.
type Clock struct {
	Seconds float64
	Scale   float64
}

package system

import (
	"errors"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"rpgkit/registry"
)

type fakeSystem struct {
	name    string
	deps    []Type
	inits   int
	updates int
	order   *[]string
}

func (f *fakeSystem) Name() string         { return f.name }
func (f *fakeSystem) Dependencies() []Type { return f.deps }

func (f *fakeSystem) Initialize(w *ecs.World) { f.inits++ }
func (f *fakeSystem) Update(w *ecs.World) {
	f.updates++
	if f.order != nil {
		*f.order = append(*f.order, f.name)
	}
}
func (f *fakeSystem) Finalize(w *ecs.World) {}

func TestSystemDependencyRegistration(t *testing.T) {
	m := NewManager(nil)
	base := &fakeSystem{name: "gametime"}
	scripting := &fakeSystem{name: "scripting", deps: []Type{base}}

	if err := m.Register(scripting); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if !m.Has("gametime") {
		t.Fatalf("dependency was not registered under its default name")
	}
	names := m.Names()
	if names[0] != "gametime" || names[1] != "scripting" {
		t.Fatalf("unexpected order: %v", names)
	}
}

func TestSystemCycleRejected(t *testing.T) {
	m := NewManager(nil)
	a := &fakeSystem{name: "a"}
	b := &fakeSystem{name: "b", deps: []Type{a}}
	a.deps = []Type{b}
	if err := m.Register(a); !errors.Is(err, registry.ErrDependencyCycle) {
		t.Fatalf("expected ErrDependencyCycle, got %v", err)
	}
	if m.Has("a") || m.Has("b") {
		t.Fatalf("cycle left partial registrations")
	}
}

func TestUpdateRunsInRegistrationOrder(t *testing.T) {
	w := ecs.NewWorld()
	m := NewManager(nil)
	var order []string
	first := &fakeSystem{name: "first", order: &order}
	second := &fakeSystem{name: "second", order: &order}
	if err := m.Register(first); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if err := m.Register(second); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	m.Update(&w)
	m.Update(&w)

	if first.inits != 1 || second.inits != 1 {
		t.Fatalf("Initialize not called exactly once: %d, %d", first.inits, second.inits)
	}
	want := []string{"first", "second", "first", "second"}
	if len(order) != len(want) {
		t.Fatalf("expected %d updates, got %v", len(want), order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("update order: expected %v, got %v", want, order)
		}
	}
}

func TestGameTimeAccumulatesScaledDelta(t *testing.T) {
	w := ecs.NewWorld()
	m := NewManager(nil)
	gt := NewGameTime()
	if err := m.Register(gt); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	m.Initialize(&w)
	frame := ecs.NewResource[FrameTime](&w)
	frame.Get().Delta = 0.5
	m.Update(&w)
	m.Update(&w)

	clock := ecs.NewResource[Clock](&w)
	if got := clock.Get().Seconds; got != 1.0 {
		t.Fatalf("expected 1.0 game seconds, got %v", got)
	}

	gt.SetScale(&w, 0)
	m.Update(&w)
	if got := clock.Get().Seconds; got != 1.0 {
		t.Fatalf("paused clock advanced: %v", got)
	}
}

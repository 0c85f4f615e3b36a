package scene

import (
	"errors"
	"strings"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"rpgkit/action"
	"rpgkit/component"
	"rpgkit/system"
)

type fakeInstance struct{ id string }

func (f fakeInstance) Identifier() string { return f.id }

type fakeStage struct {
	instances []Instance
}

func (s *fakeStage) InstancesAt(Point, string) []Instance { return s.instances }

type fakeRenderer struct {
	outlined []string
	cleared  int
}

func (r *fakeRenderer) AddOutline(inst Instance, _ Outline) {
	r.outlined = append(r.outlined, inst.Identifier())
}

func (r *fakeRenderer) RemoveAllOutlines() {
	r.cleared++
	r.outlined = nil
}

// fixture wires a world with a described, lockable entity and a player, a
// controller over real managers, and a recording sink.
type fixture struct {
	world   ecs.World
	ctrl    *Controller
	results []action.Result

	player ecs.Entity
	door   ecs.Entity

	lockable *component.Lockable
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{world: ecs.NewWorld()}

	general := component.NewGeneral(&f.world)
	description := component.NewDescription(&f.world, general)
	f.lockable = component.NewLockable(&f.world, description)

	comps := component.NewManager(nil)
	actions := action.NewManager(comps, nil)
	for _, at := range []action.Type{
		action.NewLook(description),
		action.NewOpen(f.lockable, description),
		action.NewClose(f.lockable, description),
	} {
		if err := actions.Register(at); err != nil {
			t.Fatalf("register action %q: %v", at.Name(), err)
		}
	}

	systems := system.NewManager(nil)
	if err := systems.Register(system.NewGameTime()); err != nil {
		t.Fatalf("register gametime: %v", err)
	}

	f.ctrl = NewController(&f.world, systems, actions, nil)
	f.ctrl.SetSink(action.SinkFunc(func(r action.Result) {
		f.results = append(f.results, r)
	}))

	f.player = f.world.NewEntity()
	if err := general.Bind(f.player, component.Record{"identifier": "player"}); err != nil {
		t.Fatalf("bind player: %v", err)
	}

	f.door = f.world.NewEntity()
	if err := description.Bind(f.door, component.Record{"view_name": "Door", "desc": "An oak door."}); err != nil {
		t.Fatalf("bind description: %v", err)
	}
	if err := f.lockable.Bind(f.door, component.Record{"closed": true, "locked": false}); err != nil {
		t.Fatalf("bind lockable: %v", err)
	}

	f.ctrl.SetResolver(func(id string) (ecs.Entity, bool) {
		switch id {
		case "player":
			return f.player, true
		case "door":
			return f.door, true
		}
		return ecs.Entity{}, false
	})
	f.ctrl.Activate()
	return f
}

func TestSimpleOutlinerSkipsIgnored(t *testing.T) {
	r := &fakeRenderer{}
	o := NewSimpleOutliner(r, Outline{R: 255}, []string{"player"})

	o.Outline(fakeInstance{id: "door"})
	o.Outline(fakeInstance{id: "player"})
	if len(r.outlined) != 1 || r.outlined[0] != "door" {
		t.Fatalf("unexpected outlines: %v", r.outlined)
	}

	o.AddIgnored("door")
	o.Outline(fakeInstance{id: "door"})
	if len(r.outlined) != 1 {
		t.Fatalf("ignored instance was outlined")
	}

	o.RemoveIgnored("door")
	o.Outline(fakeInstance{id: "door"})
	if len(r.outlined) != 2 {
		t.Fatalf("unignored instance not outlined")
	}

	o.Clear()
	if r.cleared != 1 {
		t.Fatalf("Clear did not reach the renderer")
	}
}

func TestMouseMovedOutlinesHoveredInstances(t *testing.T) {
	f := newFixture(t)
	r := &fakeRenderer{}
	stage := &fakeStage{instances: []Instance{fakeInstance{id: "door"}}}
	l := NewListener(stage, NewSimpleOutliner(r, Outline{}, nil), f.ctrl, nil)

	l.MouseMoved(Point{X: 10, Y: 10})
	if r.cleared != 1 {
		t.Fatalf("previous outlines not cleared")
	}
	if len(r.outlined) != 1 || r.outlined[0] != "door" {
		t.Fatalf("unexpected outlines: %v", r.outlined)
	}

	stage.instances = nil
	l.MouseMoved(Point{X: 300, Y: 10})
	if r.cleared != 2 || len(r.outlined) != 0 {
		t.Fatalf("moving off instance did not clear outlines")
	}
}

func TestMousePressedDispatchesDefaultAction(t *testing.T) {
	f := newFixture(t)
	stage := &fakeStage{instances: []Instance{
		fakeInstance{id: "scenery"}, // not resolvable, skipped
		fakeInstance{id: "door"},
	}}
	l := NewListener(stage, NewSimpleOutliner(&fakeRenderer{}, Outline{}, nil), f.ctrl, nil)
	l.AgentID = "player"

	l.MousePressed(Point{X: 5, Y: 5}, ButtonLeft)
	if len(f.results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(f.results))
	}
	if !strings.Contains(f.results[0].Text, "An oak door.") {
		t.Errorf("unexpected result text %q", f.results[0].Text)
	}
}

func TestMousePressedIgnoresOtherButtons(t *testing.T) {
	f := newFixture(t)
	stage := &fakeStage{instances: []Instance{fakeInstance{id: "door"}}}
	l := NewListener(stage, NewSimpleOutliner(&fakeRenderer{}, Outline{}, nil), f.ctrl, nil)
	l.AgentID = "player"

	l.MousePressed(Point{}, ButtonRight)
	if len(f.results) != 0 {
		t.Fatalf("right click dispatched an action")
	}

	f.ctrl.Deactivate()
	l.MousePressed(Point{}, ButtonLeft)
	if len(f.results) != 0 {
		t.Fatalf("inactive scene dispatched an action")
	}
}

func TestDispatchRunsFollowUpCommands(t *testing.T) {
	f := newFixture(t)
	var ran []string
	if err := f.ctrl.actions.RegisterCommand("chime", func(action.Controller, ecs.Entity, ecs.Entity) error {
		ran = append(ran, "chime")
		return nil
	}); err != nil {
		t.Fatalf("RegisterCommand returned error: %v", err)
	}

	if err := f.ctrl.Dispatch("Open", f.player, f.door, []string{"chime"}); err != nil {
		t.Fatalf("Dispatch returned error: %v", err)
	}
	if f.lockable.Get(f.door).Closed {
		t.Errorf("door still closed after open")
	}
	if len(ran) != 1 {
		t.Errorf("follow-up command did not run: %v", ran)
	}
}

func TestDispatchDomainErrorEmitsResult(t *testing.T) {
	f := newFixture(t)
	f.lockable.Get(f.door).Locked = true

	err := f.ctrl.Dispatch("Open", f.player, f.door, nil)
	if !errors.Is(err, action.ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
	if len(f.results) != 1 || f.results[0].Kind != action.KindError {
		t.Fatalf("expected one error result, got %v", f.results)
	}
	if f.results[0].Text != "It is locked." {
		t.Errorf("unexpected message %q", f.results[0].Text)
	}
}

func TestDispatchChecksEligibility(t *testing.T) {
	f := newFixture(t)

	// The player has no description, so it is no valid look target.
	err := f.ctrl.Dispatch("Look", f.player, f.player, nil)
	if !errors.Is(err, action.ErrInvalidTarget) {
		t.Fatalf("expected ErrInvalidTarget, got %v", err)
	}

	if err := f.ctrl.Dispatch("Sing", f.player, f.door, nil); err == nil {
		t.Fatalf("expected error for unregistered action")
	}
}

func TestPumpAdvancesClock(t *testing.T) {
	f := newFixture(t)

	f.ctrl.Pump(0.5)
	f.ctrl.Pump(0.25)

	clock := ecs.NewResource[system.Clock](&f.world)
	if !clock.Has() {
		t.Fatalf("clock resource missing after pump")
	}
	if got := clock.Get().Seconds; got != 0.75 {
		t.Errorf("clock at %v, want 0.75", got)
	}

	f.ctrl.Deactivate()
	f.ctrl.Pump(1.0)
	if got := clock.Get().Seconds; got != 0.75 {
		t.Errorf("inactive pump advanced the clock to %v", got)
	}
}

type fakeEvents struct {
	added   []MouseListener
	removed []MouseListener
}

func (e *fakeEvents) AddMouseListener(l MouseListener)    { e.added = append(e.added, l) }
func (e *fakeEvents) RemoveMouseListener(l MouseListener) { e.removed = append(e.removed, l) }

func TestActivateAttachesListener(t *testing.T) {
	f := newFixture(t)
	f.ctrl.Deactivate()

	ev := &fakeEvents{}
	stage := &fakeStage{}
	l := NewListener(stage, NewSimpleOutliner(&fakeRenderer{}, Outline{}, nil), f.ctrl, nil)
	f.ctrl.AttachInput(ev, l)

	f.ctrl.Activate()
	f.ctrl.Activate() // idempotent
	if len(ev.added) != 1 {
		t.Fatalf("expected 1 attach, got %d", len(ev.added))
	}
	f.ctrl.Deactivate()
	if len(ev.removed) != 1 {
		t.Fatalf("expected 1 detach, got %d", len(ev.removed))
	}
}

func TestRunCommandUnknown(t *testing.T) {
	f := newFixture(t)
	if err := f.ctrl.RunCommand("missing", f.player, f.door); err == nil {
		t.Fatalf("expected error for unknown command")
	}
}

package component

import (
	"errors"
	"testing"

	"rpgkit/registry"
)

type fakeType struct {
	name     string
	deps     []Type
	defaults Record
}

func (f *fakeType) Name() string         { return f.name }
func (f *fakeType) Dependencies() []Type { return f.deps }
func (f *fakeType) Defaults() Record     { return f.defaults }

func TestRegisterBindsDefaultName(t *testing.T) {
	m := NewManager(nil)
	ft := &fakeType{name: "general", defaults: Record{"identifier": ""}}
	if err := m.Register(ft); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	got, err := m.Lookup("general")
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if got != Type(ft) {
		t.Fatalf("Lookup returned a different instance")
	}
	if name, ok := m.NameOf(ft); !ok || name != "general" {
		t.Fatalf("NameOf: got %q, %v", name, ok)
	}
}

func TestDuplicateNameFailsAndKeepsFirst(t *testing.T) {
	m := NewManager(nil)
	first := &fakeType{name: "description"}
	second := &fakeType{name: "description"}
	if err := m.Register(first); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if err := m.Register(second); !errors.Is(err, registry.ErrAlreadyRegistered) {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}
	got, _ := m.Lookup("description")
	if got != Type(first) {
		t.Fatalf("first registration was replaced")
	}
}

func TestDependenciesRegisterUnderDefaultNames(t *testing.T) {
	m := NewManager(nil)
	general := &fakeType{name: "general"}
	description := &fakeType{name: "description", deps: []Type{general}}
	lockable := &fakeType{name: "lockable", deps: []Type{description}}

	if err := m.Register(lockable); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	for _, name := range []string{"general", "description", "lockable"} {
		if !m.Has(name) {
			t.Errorf("expected %q to be registered", name)
		}
	}
	// Dependencies bind before their dependents.
	names := m.Names()
	if names[0] != "general" || names[2] != "lockable" {
		t.Errorf("unexpected registration order: %v", names)
	}
}

func TestRegisteredDependencyIsNotReRegistered(t *testing.T) {
	m := NewManager(nil)
	general := &fakeType{name: "general"}
	if err := m.RegisterAs("base", general); err != nil {
		t.Fatalf("RegisterAs returned error: %v", err)
	}
	description := &fakeType{name: "description", deps: []Type{general}}
	if err := m.Register(description); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	// The dependency keeps its custom name; no "general" entry appears.
	if m.Has("general") {
		t.Fatalf("dependency was re-registered under its default name")
	}
}

func TestSharedDependencyRegistersOnce(t *testing.T) {
	m := NewManager(nil)
	shared := &fakeType{name: "shared"}
	left := &fakeType{name: "left", deps: []Type{shared}}
	right := &fakeType{name: "right", deps: []Type{shared}}
	top := &fakeType{name: "top", deps: []Type{left, right}}

	if err := m.Register(top); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	for _, name := range []string{"shared", "left", "right", "top"} {
		if !m.Has(name) {
			t.Errorf("expected %q to be registered", name)
		}
	}
	names := m.Names()
	if len(names) != 4 {
		t.Fatalf("shared dependency bound more than once: %v", names)
	}
	if names[0] != "shared" || names[3] != "top" {
		t.Errorf("unexpected registration order: %v", names)
	}
}

func TestClashingDefaultNamesBindNothing(t *testing.T) {
	m := NewManager(nil)
	// Two distinct instances claim the same default name inside one
	// closure; the registration must fail without binding anything.
	first := &fakeType{name: "shared"}
	second := &fakeType{name: "shared"}
	left := &fakeType{name: "left", deps: []Type{first}}
	right := &fakeType{name: "right", deps: []Type{second}}
	top := &fakeType{name: "top", deps: []Type{left, right}}

	if err := m.Register(top); !errors.Is(err, registry.ErrAlreadyRegistered) {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}
	if len(m.Names()) != 0 {
		t.Fatalf("failed registration left entries behind: %v", m.Names())
	}
}

func TestCyclicDependenciesAreRejected(t *testing.T) {
	m := NewManager(nil)
	a := &fakeType{name: "a"}
	b := &fakeType{name: "b", deps: []Type{a}}
	a.deps = []Type{b}

	err := m.Register(a)
	if !errors.Is(err, registry.ErrDependencyCycle) {
		t.Fatalf("expected ErrDependencyCycle, got %v", err)
	}
	// Nothing is bound when the cycle is detected.
	if m.Has("a") || m.Has("b") {
		t.Fatalf("cycle left partial registrations: %v", m.Names())
	}
}

func TestSelfDependencyIsRejected(t *testing.T) {
	m := NewManager(nil)
	a := &fakeType{name: "a"}
	a.deps = []Type{a}
	if err := m.Register(a); !errors.Is(err, registry.ErrDependencyCycle) {
		t.Fatalf("expected ErrDependencyCycle, got %v", err)
	}
}

func TestSetupRequiresRegistration(t *testing.T) {
	m := NewManager(nil)
	_, err := m.Setup("description", Record{}, Template{})
	if !errors.Is(err, registry.ErrNotRegistered) {
		t.Fatalf("expected ErrNotRegistered, got %v", err)
	}
}

func TestSetupAppliesDefaultsAndData(t *testing.T) {
	m := NewManager(nil)
	ft := &fakeType{
		name:     "description",
		defaults: Record{"view_name": "", "desc": "nothing special"},
	}
	if err := m.Register(ft); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	tmpl, err := m.Setup("description", Record{"view_name": "Door"}, nil)
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	rec := tmpl["description"]
	if rec == nil {
		t.Fatalf("Setup did not insert a record")
	}
	if rec["view_name"] != "Door" {
		t.Errorf("supplied field lost: %v", rec["view_name"])
	}
	if rec["desc"] != "nothing special" {
		t.Errorf("default not applied: %v", rec["desc"])
	}
}

func TestSetupIsIdempotent(t *testing.T) {
	m := NewManager(nil)
	ft := &fakeType{name: "description", defaults: Record{"view_name": ""}}
	if err := m.Register(ft); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	tmpl := Template{"description": Record{"view_name": "Door"}}
	tmpl, err := m.Setup("description", Record{"view_name": "Window"}, tmpl)
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	if tmpl["description"]["view_name"] != "Door" {
		t.Fatalf("Setup overwrote an existing record: %v", tmpl["description"])
	}
}

func TestTryRegisterSwallowsDuplicate(t *testing.T) {
	m := NewManager(nil)
	if ok := m.TryRegister(&fakeType{name: "general"}); !ok {
		t.Fatalf("first TryRegister returned false")
	}
	if ok := m.TryRegister(&fakeType{name: "general"}); ok {
		t.Fatalf("duplicate TryRegister returned true")
	}
}

func TestSaveableFields(t *testing.T) {
	m := NewManager(nil)
	ft := &fakeType{name: "lockable", defaults: Record{"closed": true, "locked": false}}
	if err := m.Register(ft); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	fields, err := m.SaveableFields("lockable")
	if err != nil {
		t.Fatalf("SaveableFields returned error: %v", err)
	}
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %v", fields)
	}
}

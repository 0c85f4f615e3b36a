package component

import (
	"rpgkit/internal/logger"
	"rpgkit/registry"
)

// Manager owns the component registry and the entity data binder.
//
// Like every registry in rpgkit it is a value object: create one per world
// (or per test) instead of sharing process-wide state. Not safe for
// concurrent use; all calls come from the game-logic goroutine.
type Manager struct {
	reg      *registry.Registry[Type]
	resolver registry.Resolver[Type]
	log      logger.Logger
}

// NewManager creates an empty component manager.
func NewManager(log logger.Logger) *Manager {
	if log == nil {
		log = logger.Nop()
	}
	reg := registry.New[Type]()
	return &Manager{
		reg: reg,
		resolver: registry.Resolver[Type]{
			Registry:    reg,
			Names:       map[Type]string{},
			DefaultName: Type.Name,
			Deps:        Type.Dependencies,
		},
		log: log,
	}
}

// Register binds t under its default name and registers all of its
// not-yet-registered dependencies under their own default names,
// recursively. A cyclic dependency declaration fails with a CycleError and
// leaves the registry untouched.
func (m *Manager) Register(t Type) error {
	return m.RegisterAs(t.Name(), t)
}

// RegisterAs binds t under an explicit name; dependencies still register
// under their own default names.
func (m *Manager) RegisterAs(name string, t Type) error {
	steps, err := m.resolver.Register(name, t)
	if err != nil {
		return err
	}
	for _, step := range steps {
		m.log.Debug("component registered", logger.String("name", step.Name))
	}
	return nil
}

// TryRegister is the lenient registration boundary: it swallows
// registration failures into a logged false instead of an error. Callers
// that need the cause use Register.
func (m *Manager) TryRegister(t Type) bool {
	if err := m.Register(t); err != nil {
		m.log.Warn("component registration failed",
			logger.String("name", t.Name()), logger.Err(err))
		return false
	}
	return true
}

// Lookup returns the component type registered under name.
func (m *Manager) Lookup(name string) (Type, error) {
	return m.reg.Lookup(name)
}

// Has reports whether name is registered.
func (m *Manager) Has(name string) bool { return m.reg.Has(name) }

// Names returns all registered names in registration order.
func (m *Manager) Names() []string { return m.reg.Names() }

// NameOf returns the name t was registered under.
func (m *Manager) NameOf(t Type) (string, bool) {
	name, ok := m.resolver.Names[t]
	return name, ok
}

// SaveableFields returns the field names of the component registered under
// name. All declared fields are saveable.
func (m *Manager) SaveableFields(name string) ([]string, error) {
	t, err := m.reg.Lookup(name)
	if err != nil {
		return nil, err
	}
	fields := make([]string, 0, len(t.Defaults()))
	for k := range t.Defaults() {
		fields = append(fields, k)
	}
	return fields, nil
}

// Setup expands an entity template with the data record for the component
// registered under name. If the template has no record for the component
// yet, one is inserted with the component's defaults overlaid by data; an
// existing record is left untouched. Fails with ErrNotRegistered for an
// unknown component name.
func (m *Manager) Setup(name string, data Record, tmpl Template) (Template, error) {
	t, err := m.reg.Lookup(name)
	if err != nil {
		return tmpl, err
	}
	if tmpl == nil {
		tmpl = Template{}
	}
	if _, ok := tmpl[name]; !ok {
		rec := t.Defaults().Copy()
		for k, v := range data {
			rec[k] = v
		}
		tmpl[name] = rec
	}
	return tmpl, nil
}

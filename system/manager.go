package system

import (
	"github.com/mlange-42/ark/ecs"

	"rpgkit/internal/logger"
	"rpgkit/registry"
)

// Manager owns the system registry. Value object, not safe for concurrent
// use; mirrors the component manager.
type Manager struct {
	reg         *registry.Registry[Type]
	resolver    registry.Resolver[Type]
	log         logger.Logger
	initialized bool
}

// NewManager creates an empty system manager.
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

// Register binds s under its default name, registering unregistered
// dependencies under their own default names. Cycles fail with a
// CycleError and bind nothing.
func (m *Manager) Register(s Type) error {
	return m.RegisterAs(s.Name(), s)
}

// RegisterAs binds s under an explicit name.
func (m *Manager) RegisterAs(name string, s Type) error {
	steps, err := m.resolver.Register(name, s)
	if err != nil {
		return err
	}
	for _, step := range steps {
		m.log.Debug("system registered", logger.String("name", step.Name))
	}
	return nil
}

// TryRegister swallows registration failures into a logged false.
func (m *Manager) TryRegister(s Type) bool {
	if err := m.Register(s); err != nil {
		m.log.Warn("system registration failed",
			logger.String("name", s.Name()), logger.Err(err))
		return false
	}
	return true
}

// Lookup returns the system registered under name.
func (m *Manager) Lookup(name string) (Type, error) {
	return m.reg.Lookup(name)
}

// Has reports whether name is registered.
func (m *Manager) Has(name string) bool { return m.reg.Has(name) }

// Names returns all registered names in registration order.
func (m *Manager) Names() []string { return m.reg.Names() }

// NameOf returns the name s was registered under.
func (m *Manager) NameOf(s Type) (string, bool) {
	name, ok := m.resolver.Names[s]
	return name, ok
}

// all returns the registered systems in registration order.
func (m *Manager) all() []Type {
	names := m.reg.Names()
	out := make([]Type, 0, len(names))
	for _, name := range names {
		s, _ := m.reg.Lookup(name)
		out = append(out, s)
	}
	return out
}

// Initialize initializes all registered systems once, in registration
// order. Update calls it lazily, so explicit calls are only needed when
// initialization must happen before the first frame.
func (m *Manager) Initialize(w *ecs.World) {
	if m.initialized {
		return
	}
	for _, s := range m.all() {
		s.Initialize(w)
	}
	m.initialized = true
}

// Update runs one frame over all registered systems in registration order.
func (m *Manager) Update(w *ecs.World) {
	m.Initialize(w)
	for _, s := range m.all() {
		s.Update(w)
	}
}

// Finalize finalizes all registered systems in registration order.
func (m *Manager) Finalize(w *ecs.World) {
	for _, s := range m.all() {
		s.Finalize(w)
	}
}

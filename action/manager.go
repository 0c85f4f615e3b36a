package action

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"rpgkit/component"
	"rpgkit/internal/logger"
	"rpgkit/registry"
)

// Command is a named follow-up effect actions can chain after their
// primary effect.
type Command func(ctrl Controller, agent, target ecs.Entity) error

// Manager owns the action and command registries. Value object, not safe
// for concurrent use.
type Manager struct {
	actions    *registry.Registry[Type]
	commands   *registry.Registry[Command]
	components *component.Manager
	fallback   func(name string) (Command, bool)
	log        logger.Logger
}

// NewManager creates an action manager. Component types an action depends
// on register through components, mirroring the component manager's
// dependency resolution.
func NewManager(components *component.Manager, log logger.Logger) *Manager {
	if log == nil {
		log = logger.Nop()
	}
	return &Manager{
		actions:    registry.New[Type](),
		commands:   registry.New[Command](),
		components: components,
		log:        log,
	}
}

// SetCommandFallback installs a resolver consulted when a command name is
// not in the command registry, e.g. the script engine.
func (m *Manager) SetCommandFallback(f func(name string) (Command, bool)) {
	m.fallback = f
}

// Register binds t under its default name and registers its unregistered
// component dependencies under their own default names.
func (m *Manager) Register(t Type) error {
	return m.RegisterAs(t.Name(), t)
}

// RegisterAs binds t under an explicit name.
func (m *Manager) RegisterAs(name string, t Type) error {
	if m.actions.Has(name) {
		return fmt.Errorf("action %q: %w", name, registry.ErrAlreadyRegistered)
	}
	for _, dep := range t.Components() {
		if _, ok := m.components.NameOf(dep); ok {
			continue
		}
		if err := m.components.Register(dep); err != nil {
			return fmt.Errorf("action %q dependency: %w", name, err)
		}
	}
	if err := m.actions.Register(name, t); err != nil {
		return err
	}
	m.log.Debug("action registered", logger.String("name", name))
	return nil
}

// TryRegister swallows registration failures into a logged false.
func (m *Manager) TryRegister(t Type) bool {
	if err := m.Register(t); err != nil {
		m.log.Warn("action registration failed",
			logger.String("name", t.Name()), logger.Err(err))
		return false
	}
	return true
}

// Lookup returns the action type registered under name.
func (m *Manager) Lookup(name string) (Type, error) {
	return m.actions.Lookup(name)
}

// Has reports whether an action name is registered.
func (m *Manager) Has(name string) bool { return m.actions.Has(name) }

// Names returns the registered action names in registration order.
func (m *Manager) Names() []string { return m.actions.Names() }

// RegisterCommand binds a named follow-up command.
func (m *Manager) RegisterCommand(name string, cmd Command) error {
	if err := m.commands.Register(name, cmd); err != nil {
		return err
	}
	m.log.Debug("command registered", logger.String("name", name))
	return nil
}

// Command resolves a follow-up command by name, consulting the fallback
// for names outside the registry.
func (m *Manager) Command(name string) (Command, error) {
	cmd, err := m.commands.Lookup(name)
	if err == nil {
		return cmd, nil
	}
	if m.fallback != nil {
		if cmd, ok := m.fallback(name); ok {
			return cmd, nil
		}
	}
	return nil, err
}

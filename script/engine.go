// Package script embeds a Lua interpreter so follow-up command chains can
// be extended without recompiling. Commands are Lua functions registered
// by name; the action manager's command lookup falls back here.
package script

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"
	lua "github.com/yuin/gopher-lua"

	"rpgkit/action"
	"rpgkit/internal/logger"
)

// Engine hosts the Lua state and the named script commands. Single
// goroutine only, like everything else in this layer.
type Engine struct {
	state *lua.LState
	cmds  map[string]*lua.LFunction
	log   logger.Logger

	// identify turns an entity into the identifier scripts see.
	identify func(e ecs.Entity) string
	// ctrl is the controller of the invocation currently running.
	ctrl action.Controller
}

// NewEngine creates a script engine. identify maps entities to the
// identifiers passed into script functions; nil falls back to the numeric
// entity id.
func NewEngine(identify func(e ecs.Entity) string, log logger.Logger) *Engine {
	if log == nil {
		log = logger.Nop()
	}
	e := &Engine{
		state:    lua.NewState(),
		cmds:     map[string]*lua.LFunction{},
		log:      log,
		identify: identify,
	}
	e.state.SetGlobal("emit", e.state.NewFunction(e.luaEmit))
	e.state.SetGlobal("log", e.state.NewFunction(e.luaLog))
	return e
}

// Close releases the Lua state.
func (e *Engine) Close() {
	e.state.Close()
}

// RegisterCommand compiles src, a Lua chunk returning a function of
// (agent, target), and binds it under name.
func (e *Engine) RegisterCommand(name, src string) error {
	if _, ok := e.cmds[name]; ok {
		return fmt.Errorf("script command %q already defined", name)
	}
	if err := e.state.DoString(src); err != nil {
		return fmt.Errorf("script command %q: %w", name, err)
	}
	ret := e.state.Get(-1)
	e.state.Pop(1)
	fn, ok := ret.(*lua.LFunction)
	if !ok {
		return fmt.Errorf("script command %q: chunk did not return a function", name)
	}
	e.cmds[name] = fn
	e.log.Debug("script command registered", logger.String("name", name))
	return nil
}

// LoadFile runs a Lua file. Global functions it defines become commands
// resolvable by name.
func (e *Engine) LoadFile(path string) error {
	if err := e.state.DoFile(path); err != nil {
		return fmt.Errorf("script file %q: %w", path, err)
	}
	return nil
}

// Has reports whether name resolves to a script command.
func (e *Engine) Has(name string) bool {
	return e.lookup(name) != nil
}

func (e *Engine) lookup(name string) *lua.LFunction {
	if fn, ok := e.cmds[name]; ok {
		return fn
	}
	if fn, ok := e.state.GetGlobal(name).(*lua.LFunction); ok {
		return fn
	}
	return nil
}

// Run executes the named script command with the given invocation context.
func (e *Engine) Run(name string, ctrl action.Controller, agent, target ecs.Entity) error {
	fn := e.lookup(name)
	if fn == nil {
		return fmt.Errorf("script command %q not defined", name)
	}
	prev := e.ctrl
	e.ctrl = ctrl
	defer func() { e.ctrl = prev }()

	err := e.state.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true},
		lua.LString(e.entityID(agent)), lua.LString(e.entityID(target)))
	if err != nil {
		return fmt.Errorf("script command %q: %w", name, err)
	}
	return nil
}

// Command adapts a script command to the action manager's Command type;
// install it with SetCommandFallback.
func (e *Engine) Command(name string) (action.Command, bool) {
	if !e.Has(name) {
		return nil, false
	}
	return func(ctrl action.Controller, agent, target ecs.Entity) error {
		return e.Run(name, ctrl, agent, target)
	}, true
}

func (e *Engine) entityID(ent ecs.Entity) string {
	if e.identify != nil {
		if id := e.identify(ent); id != "" {
			return id
		}
	}
	return fmt.Sprintf("entity-%d", ent.ID())
}

func (e *Engine) luaEmit(L *lua.LState) int {
	kind := L.CheckString(1)
	text := L.CheckString(2)
	if e.ctrl != nil {
		e.ctrl.Emit(action.Result{Kind: action.Kind(kind), Text: text})
	}
	return 0
}

func (e *Engine) luaLog(L *lua.LState) int {
	e.log.Info("script", logger.String("message", L.CheckString(1)))
	return 0
}

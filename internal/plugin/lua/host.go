package lua

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/helios/internal/event"
)

// ErrHostClosed is returned when loading into a closed host.
var ErrHostClosed = errors.New("lua: host is closed")

// Script identifies a loaded script for error reporting.
type Script struct {
	// ID is a unique identifier assigned at load time.
	ID string

	// Name is the script's path, or the name given to LoadString.
	Name string
}

// ScriptError wraps a handler error with the script it came from.
type ScriptError struct {
	// Script is the script whose handler failed.
	Script Script

	// Err is the underlying Lua error.
	Err error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("lua: script %s (%s): %v", e.Script.Name, e.Script.ID, e.Err)
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}

// handler pairs a Lua function with the script that registered it.
type handler struct {
	fn     *lua.LFunction
	script Script
}

// Host owns a Lua state whose scripts act as event listeners.
type Host struct {
	L        *lua.LState
	handlers []handler
	scripts  []Script
	onError  func(*ScriptError)

	// loading is the script currently executing, so on_event calls can
	// be attributed to it.
	loading Script
	closed  bool
}

// HostOption configures a Host.
type HostOption func(*Host)

// WithErrorHandler sets the callback invoked when a script handler
// fails. The default discards errors.
func WithErrorHandler(fn func(*ScriptError)) HostOption {
	return func(h *Host) {
		if fn != nil {
			h.onError = fn
		}
	}
}

// NewHost creates a Host with an empty script set.
func NewHost(opts ...HostOption) *Host {
	h := &Host{
		L:       lua.NewState(),
		onError: func(*ScriptError) {},
	}
	for _, opt := range opts {
		opt(h)
	}

	h.registerModule()
	return h
}

// registerModule installs the helios table with on_event.
func (h *Host) registerModule() {
	mod := h.L.NewTable()
	h.L.SetField(mod, "on_event", h.L.NewFunction(func(L *lua.LState) int {
		fn := L.CheckFunction(1)
		h.handlers = append(h.handlers, handler{fn: fn, script: h.loading})
		return 0
	}))
	h.L.SetGlobal("helios", mod)
}

// LoadFile executes a script file. Handlers the script registers
// receive events once the host's Listener is wired into a System.
func (h *Host) LoadFile(path string) (Script, error) {
	return h.load(path, func() error { return h.L.DoFile(path) })
}

// LoadString executes a script from source under the given name.
func (h *Host) LoadString(name, src string) (Script, error) {
	return h.load(name, func() error { return h.L.DoString(src) })
}

func (h *Host) load(name string, run func() error) (Script, error) {
	if h.closed {
		return Script{}, ErrHostClosed
	}

	script := Script{ID: uuid.NewString(), Name: name}
	h.loading = script
	defer func() { h.loading = Script{} }()

	if err := run(); err != nil {
		return Script{}, fmt.Errorf("lua: loading %s: %w", name, err)
	}

	h.scripts = append(h.scripts, script)
	return script, nil
}

// Scripts returns the successfully loaded scripts.
func (h *Host) Scripts() []Script {
	out := make([]Script, len(h.scripts))
	copy(out, h.scripts)
	return out
}

// Handlers returns the number of registered Lua handlers.
func (h *Host) Handlers() int {
	return len(h.handlers)
}

// Listener returns an event listener that forwards every event to all
// registered Lua handlers in registration order. Handler errors go to
// the host's error handler; they never stop delivery to the remaining
// handlers.
func (h *Host) Listener() event.Listener {
	return func(ev event.Event) {
		if h.closed {
			return
		}

		table := eventToTable(h.L, ev)
		for _, hd := range h.handlers {
			err := h.L.CallByParam(lua.P{
				Fn:      hd.fn,
				NRet:    0,
				Protect: true,
			}, table)
			if err != nil {
				h.onError(&ScriptError{Script: hd.script, Err: err})
			}
		}
	}
}

// Close shuts the Lua state down. The host's Listener becomes a no-op.
func (h *Host) Close() {
	if h.closed {
		return
	}
	h.closed = true
	h.L.Close()
}

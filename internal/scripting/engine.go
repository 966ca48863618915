package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM for entity behavior scripts.
// Single-goroutine access only (game loop).
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// New creates a Lua engine and loads every .lua file in dir. A missing
// directory yields a working engine with no behaviors.
func New(dir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState()
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}
	if err := e.loadDir(dir); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load behavior scripts: %w", err)
	}
	return e, nil
}

func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// HasFn reports whether a global Lua function with the given name exists.
func (e *Engine) HasFn(name string) bool {
	fn := e.vm.GetGlobal(name)
	_, ok := fn.(*lua.LFunction)
	return ok
}

// GlobalNumber reads a numeric Lua global, for scripts that publish values
// back to the engine.
func (e *Engine) GlobalNumber(name string) (float64, bool) {
	if n, ok := e.vm.GetGlobal(name).(lua.LNumber); ok {
		return float64(n), true
	}
	return 0, false
}

// CallUpdate invokes the global Lua function fn as fn(entity, dt) with the
// entity ID and the frame delta in seconds. Script errors are returned, not
// propagated into the VM state.
func (e *Engine) CallUpdate(fn string, entity uint64, dt float64) error {
	val := e.vm.GetGlobal(fn)
	if _, ok := val.(*lua.LFunction); !ok {
		return fmt.Errorf("lua function %s not found", fn)
	}
	return e.vm.CallByParam(lua.P{
		Fn:      val,
		NRet:    0,
		Protect: true,
	}, lua.LNumber(entity), lua.LNumber(dt))
}

// Close releases the VM.
func (e *Engine) Close() {
	e.vm.Close()
}

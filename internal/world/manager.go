package world

import (
	"errors"
	"time"

	"github.com/halcyon-engine/halcyon/internal/component"
	"github.com/halcyon-engine/halcyon/internal/core/ecs"
	"github.com/halcyon-engine/halcyon/internal/core/manager"
	coresys "github.com/halcyon-engine/halcyon/internal/core/system"
)

var (
	ErrNotRunning = errors.New("world manager not running")
	ErrNilSystem  = errors.New("nil system")
)

// Manager is the entity-component subsystem: it owns the ECS world, the
// component stores, and the phase-ordered system runner. Startup builds all
// three fresh, so a restarted manager carries no stale entities.
type Manager struct {
	manager.State
	world  *ecs.World
	stores *component.Stores
	runner *coresys.Runner
}

func New() *Manager {
	return &Manager{State: manager.NewState("world")}
}

func (m *Manager) StartUp() error { return manager.Start(&m.State, m) }
func (m *Manager) ShutDown() { manager.Stop(&m.State, m) }

func (m *Manager) OnStartUp() error {
	m.world = ecs.NewWorld()
	m.stores = component.NewStores(m.world.Registry())
	m.runner = coresys.NewRunner()
	return nil
}

func (m *Manager) OnShutDown() {
	m.world = nil
	m.stores = nil
	m.runner = nil
}

// RegisterSystem adds a system to the runner. Callers treat failure as
// non-fatal: the engine runs without the system, degraded.
func (m *Manager) RegisterSystem(s coresys.System) error {
	if !m.Running() {
		return ErrNotRunning
	}
	if s == nil {
		return ErrNilSystem
	}
	m.runner.Register(s)
	return nil
}

// UpdateSystems advances every registered system by dt, in phase order.
// System failures are the systems' own concern and never reach the caller.
func (m *Manager) UpdateSystems(dt time.Duration) {
	if !m.Running() {
		return
	}
	m.runner.Tick(dt)
}

// World returns the live ECS world, nil when not running.
func (m *Manager) World() *ecs.World {
	return m.world
}

// Stores returns the live component store bundle, nil when not running.
func (m *Manager) Stores() *component.Stores {
	return m.stores
}

// SystemCount returns the number of registered systems.
func (m *Manager) SystemCount() int {
	if m.runner == nil {
		return 0
	}
	return m.runner.Len()
}

package input

import (
	"github.com/halcyon-engine/halcyon/internal/core/manager"
)

// Key identifies a physical key.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEnter
)

var keyNames = map[string]Key{
	"escape": KeyEscape,
	"up":     KeyUp,
	"down":   KeyDown,
	"left":   KeyLeft,
	"right":  KeyRight,
	"space":  KeySpace,
	"enter":  KeyEnter,
}

// KeyByName maps a config key name to its Key. Unknown names yield KeyNone,
// which no event ever carries.
func KeyByName(name string) Key {
	return keyNames[name]
}

// Event is one key transition from a platform producer.
type Event struct {
	Key     Key
	Pressed bool
}

// Manager is the input subsystem: producers push key transitions from any
// goroutine, the game loop drains them once per frame with Poll, and systems
// query the resulting state. Edge queries are consumed on read, so a press
// reports just-pressed exactly once.
type Manager struct {
	manager.State
	events chan Event
	down   map[Key]bool
	fresh  map[Key]bool
}

func New() *Manager {
	return &Manager{
		State:  manager.NewState("input"),
		events: make(chan Event, 128),
	}
}

func (m *Manager) StartUp() error { return manager.Start(&m.State, m) }
func (m *Manager) ShutDown() { manager.Stop(&m.State, m) }

func (m *Manager) OnStartUp() error {
	m.down = make(map[Key]bool)
	m.fresh = make(map[Key]bool)
	// Drop transitions queued before startup.
	for {
		select {
		case <-m.events:
		default:
			return nil
		}
	}
}

func (m *Manager) OnShutDown() {
	m.down = nil
	m.fresh = nil
}

// Push queues a key transition. Safe from any goroutine; the event is
// dropped if the queue is full rather than blocking the producer.
func (m *Manager) Push(ev Event) {
	select {
	case m.events <- ev:
	default:
	}
}

// Poll drains queued transitions into key state. Called once per frame by
// the game loop before any key queries. A press while the key is already
// down does not re-arm the edge (no held-repeat).
func (m *Manager) Poll() {
	if !m.Running() {
		return
	}
	for {
		select {
		case ev := <-m.events:
			if ev.Pressed {
				if !m.down[ev.Key] {
					m.down[ev.Key] = true
					m.fresh[ev.Key] = true
				}
			} else {
				delete(m.down, ev.Key)
			}
		default:
			return
		}
	}
}

// IsKeyJustPressed reports the press edge for k and consumes it: true on the
// first query after the transition, false until the key is released and
// pressed again.
func (m *Manager) IsKeyJustPressed(k Key) bool {
	if !m.Running() || !m.fresh[k] {
		return false
	}
	delete(m.fresh, k)
	return true
}

// IsKeyDown reports whether k is currently held.
func (m *Manager) IsKeyDown(k Key) bool {
	return m.Running() && m.down[k]
}

package system

import "time"

// Phase fixes execution order within a single frame.
type Phase int

const (
	PhaseInput   Phase = iota // apply polled input to entities
	PhaseUpdate               // game logic, scripted behavior
	PhaseCleanup              // destroy queued entities
)

// System is implemented by every per-frame system registered with the world.
type System interface {
	Name() string
	Phase() Phase
	Update(dt time.Duration)
}

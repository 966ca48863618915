package manager

import "errors"

// ErrAlreadyRunning is returned by Start when a manager is started twice
// without an intervening Stop.
var ErrAlreadyRunning = errors.New("manager already running")

// Manager is the lifecycle contract every engine subsystem satisfies,
// including the Game orchestrator itself.
type Manager interface {
	StartUp() error
	ShutDown()
	Running() bool
	// IsValid reports whether this manager accepts the named event when it
	// is delivered through the event bus.
	IsValid(event string) bool
	Kind() string
}

// Hooks is the subsystem-specific half of the lifecycle. Start and Stop wrap
// these with the shared running-flag bookkeeping so no manager can forget it.
type Hooks interface {
	OnStartUp() error
	OnShutDown()
}

// State carries the bookkeeping shared by every manager: an identity tag for
// diagnostics and the running flag. Embed it and delegate StartUp/ShutDown
// to Start and Stop.
type State struct {
	kind    string
	running bool
}

func NewState(kind string) State {
	return State{kind: kind}
}

func (s *State) Kind() string  { return s.kind }
func (s *State) Running() bool { return s.running }

// IsValid is the default event predicate: accept nothing. Managers that
// consume events shadow this.
func (s *State) IsValid(string) bool { return false }

// Start marks st running before invoking the hook, so startup logging that
// checks the flag sees it set. The flag is rolled back if the hook fails.
func Start(st *State, h Hooks) error {
	if st.running {
		return ErrAlreadyRunning
	}
	st.running = true
	if err := h.OnStartUp(); err != nil {
		st.running = false
		return err
	}
	return nil
}

// Stop runs the hook's cleanup, then clears the running flag. Stopping a
// manager that is not running is a no-op, which makes shutdown idempotent.
func Stop(st *State, h Hooks) {
	if !st.running {
		return
	}
	h.OnShutDown()
	st.running = false
}

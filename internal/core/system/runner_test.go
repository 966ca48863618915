package system

import (
	"testing"
	"time"
)

type named struct {
	name  string
	phase Phase
	log   *[]string
}

func (s *named) Name() string { return s.name }
func (s *named) Phase() Phase { return s.phase }

func (s *named) Update(time.Duration) {
	*s.log = append(*s.log, s.name)
}

func TestRunnerTicksInPhaseOrder(t *testing.T) {
	var log []string
	r := NewRunner()
	r.Register(&named{name: "cleanup", phase: PhaseCleanup, log: &log})
	r.Register(&named{name: "logic", phase: PhaseUpdate, log: &log})
	r.Register(&named{name: "input", phase: PhaseInput, log: &log})

	r.Tick(time.Millisecond)

	want := []string{"input", "logic", "cleanup"}
	for i, name := range want {
		if log[i] != name {
			t.Fatalf("tick order = %v, want %v", log, want)
		}
	}
}

func TestRunnerKeepsRegistrationOrderWithinPhase(t *testing.T) {
	var log []string
	r := NewRunner()
	r.Register(&named{name: "first", phase: PhaseUpdate, log: &log})
	r.Register(&named{name: "second", phase: PhaseUpdate, log: &log})

	r.Tick(time.Millisecond)

	if log[0] != "first" || log[1] != "second" {
		t.Fatalf("tie-break order = %v", log)
	}
	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}
}

func TestRunnerResortsAfterLateRegistration(t *testing.T) {
	var log []string
	r := NewRunner()
	r.Register(&named{name: "logic", phase: PhaseUpdate, log: &log})
	r.Tick(time.Millisecond)

	log = log[:0]
	r.Register(&named{name: "input", phase: PhaseInput, log: &log})
	r.Tick(time.Millisecond)

	if log[0] != "input" || log[1] != "logic" {
		t.Fatalf("order after late registration = %v", log)
	}
}

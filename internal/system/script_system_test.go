package system

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/halcyon-engine/halcyon/internal/component"
	"github.com/halcyon-engine/halcyon/internal/scripting"
	"go.uber.org/zap"
)

func testEngine(t *testing.T, body string) *scripting.Engine {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "behavior.lua"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	e, err := scripting.New(dir, zap.NewNop())
	if err != nil {
		t.Fatalf("scripting.New: %v", err)
	}
	t.Cleanup(e.Close)
	return e
}

func TestScriptSystemRunsBehaviors(t *testing.T) {
	w := startedWorld(t)
	e := testEngine(t, `
ticks = 0
function npc_update(id, dt)
  ticks = ticks + 1
end
`)
	sys := NewScriptSystem(e, w, zap.NewNop())

	stores := w.Stores()
	id := w.World().Create()
	stores.Scripts.Set(id, &component.Script{Fn: "npc_update"})

	sys.Update(16 * time.Millisecond)
	sys.Update(16 * time.Millisecond)

	if n, ok := e.GlobalNumber("ticks"); !ok || n != 2 {
		t.Fatalf("ticks = %v (%v), want 2", n, ok)
	}
}

func TestScriptSystemSkipsMissingFunctions(t *testing.T) {
	w := startedWorld(t)
	e := testEngine(t, `-- no functions defined`)
	sys := NewScriptSystem(e, w, zap.NewNop())

	stores := w.Stores()
	id := w.World().Create()
	stores.Scripts.Set(id, &component.Script{Fn: "ghost"})

	// Must not panic, and must stay quiet on repeat frames.
	sys.Update(time.Millisecond)
	sys.Update(time.Millisecond)
}

func TestScriptSystemSurvivesFailingBehavior(t *testing.T) {
	w := startedWorld(t)
	e := testEngine(t, `
ran = 0
function faulty(id, dt)
  ran = ran + 1
  error("deliberate")
end
`)
	sys := NewScriptSystem(e, w, zap.NewNop())

	stores := w.Stores()
	id := w.World().Create()
	stores.Scripts.Set(id, &component.Script{Fn: "faulty"})

	sys.Update(time.Millisecond)
	sys.Update(time.Millisecond)

	if n, _ := e.GlobalNumber("ran"); n != 2 {
		t.Fatalf("faulty behavior ran %v times, want 2 (errors must not disable it)", n)
	}
}

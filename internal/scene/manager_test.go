package scene

import (
	"path/filepath"
	"testing"

	"github.com/halcyon-engine/halcyon/internal/component"
	"github.com/halcyon-engine/halcyon/internal/core/ecs"
	"github.com/halcyon-engine/halcyon/internal/world"
)

func startedPair(t *testing.T) (*world.Manager, *Manager) {
	t.Helper()
	w := world.New()
	if err := w.StartUp(); err != nil {
		t.Fatalf("world StartUp: %v", err)
	}
	t.Cleanup(w.ShutDown)

	m := New(w)
	if err := m.StartUp(); err != nil {
		t.Fatalf("scene StartUp: %v", err)
	}
	t.Cleanup(m.ShutDown)
	return w, m
}

func TestLoadMissingSceneFails(t *testing.T) {
	_, m := startedPair(t)
	if err := m.LoadScene(filepath.Join(t.TempDir(), "nope.scn")); err == nil {
		t.Fatal("LoadScene succeeded for a missing file")
	}
}

func TestSaveEmptyWorldThenReload(t *testing.T) {
	w, m := startedPair(t)
	path := filepath.Join(t.TempDir(), "Scene", "Game.scn")

	if err := m.SaveScene(path); err != nil {
		t.Fatalf("SaveScene: %v", err)
	}
	if err := m.LoadScene(path); err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	if got := w.World().Pool().Len(); got != 0 {
		t.Fatalf("empty scene produced %d entities", got)
	}
	if m.SceneName() != "default" {
		t.Fatalf("scene name = %q, want %q", m.SceneName(), "default")
	}
}

func TestSceneRoundTrip(t *testing.T) {
	w, m := startedPair(t)
	path := filepath.Join(t.TempDir(), "game.scn")

	stores := w.Stores()
	id := w.World().Create()
	stores.Names.Set(id, &component.Name{Value: "player"})
	stores.Transforms.Set(id, &component.Transform{X: 1, Y: 2, Z: 3})
	stores.Velocities.Set(id, &component.Velocity{})
	stores.Controllables.Set(id, &component.Controllable{Speed: 5})
	stores.Scripts.Set(id, &component.Script{Fn: "player_update"})

	if err := m.SaveScene(path); err != nil {
		t.Fatalf("SaveScene: %v", err)
	}

	// Reload into a fresh world.
	w.ShutDown()
	if err := w.StartUp(); err != nil {
		t.Fatalf("world restart: %v", err)
	}
	if err := m.LoadScene(path); err != nil {
		t.Fatalf("LoadScene: %v", err)
	}

	stores = w.Stores()
	if stores.Names.Len() != 1 {
		t.Fatalf("loaded %d entities, want 1", stores.Names.Len())
	}
	var loaded ecs.EntityID
	stores.Names.Each(func(eid ecs.EntityID, n *component.Name) {
		if n.Value != "player" {
			t.Fatalf("name = %q", n.Value)
		}
		loaded = eid
	})
	tr, ok := stores.Transforms.Get(loaded)
	if !ok || tr.X != 1 || tr.Y != 2 || tr.Z != 3 {
		t.Fatalf("transform = %+v, %v", tr, ok)
	}
	if c, ok := stores.Controllables.Get(loaded); !ok || c.Speed != 5 {
		t.Fatalf("controllable = %+v, %v", c, ok)
	}
	if s, ok := stores.Scripts.Get(loaded); !ok || s.Fn != "player_update" {
		t.Fatalf("script = %+v, %v", s, ok)
	}
}

func TestOperationsRequireRunningManagers(t *testing.T) {
	w := world.New()
	m := New(w)
	path := filepath.Join(t.TempDir(), "game.scn")

	if err := m.LoadScene(path); err == nil {
		t.Fatal("LoadScene succeeded on a stopped scene manager")
	}
	if err := m.StartUp(); err != nil {
		t.Fatalf("StartUp: %v", err)
	}
	defer m.ShutDown()
	// World still stopped.
	if err := m.SaveScene(path); err == nil {
		t.Fatal("SaveScene succeeded with a stopped world")
	}
}

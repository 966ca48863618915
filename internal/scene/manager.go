package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/halcyon-engine/halcyon/internal/component"
	"github.com/halcyon-engine/halcyon/internal/core/ecs"
	"github.com/halcyon-engine/halcyon/internal/core/manager"
	"github.com/halcyon-engine/halcyon/internal/world"
	"gopkg.in/yaml.v3"
)

// Scene file schema. All component sections are optional per entity.

type sceneFile struct {
	Scene sceneDoc `yaml:"scene"`
}

type sceneDoc struct {
	Name     string      `yaml:"name"`
	Entities []entityDoc `yaml:"entities"`
}

type entityDoc struct {
	Name         string      `yaml:"name"`
	Transform    *vecDoc     `yaml:"transform,omitempty"`
	Velocity     *vecDoc     `yaml:"velocity,omitempty"`
	Controllable *controlDoc `yaml:"controllable,omitempty"`
	Script       string      `yaml:"script,omitempty"`
}

type vecDoc struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type controlDoc struct {
	Speed float64 `yaml:"speed"`
}

// Manager is the serialization subsystem: it loads and saves YAML scene
// files against the world's entity stores. The file format is owned here;
// nothing else in the engine reads scene bytes.
type Manager struct {
	manager.State
	world *world.Manager
	name  string // name of the most recently loaded scene
}

func New(w *world.Manager) *Manager {
	return &Manager{State: manager.NewState("scene"), world: w}
}

func (m *Manager) StartUp() error { return manager.Start(&m.State, m) }
func (m *Manager) ShutDown() { manager.Stop(&m.State, m) }

func (m *Manager) OnStartUp() error {
	m.name = ""
	return nil
}

func (m *Manager) OnShutDown() {}

// LoadScene reads the scene at path and populates the world with its
// entities. An unreadable or malformed file means "no usable scene at path";
// callers decide whether that is fatal. Partial state is never left behind
// on a parse failure.
func (m *Manager) LoadScene(path string) error {
	if !m.Running() {
		return fmt.Errorf("scene manager not running")
	}
	if !m.world.Running() {
		return fmt.Errorf("world manager not running")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene %s: %w", path, err)
	}
	var doc sceneFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse scene %s: %w", path, err)
	}

	w := m.world.World()
	stores := m.world.Stores()
	for i, ent := range doc.Scene.Entities {
		id := w.Create()
		name := ent.Name
		if name == "" {
			name = fmt.Sprintf("entity_%d", i)
		}
		stores.Names.Set(id, &component.Name{Value: name})
		if ent.Transform != nil {
			stores.Transforms.Set(id, &component.Transform{X: ent.Transform.X, Y: ent.Transform.Y, Z: ent.Transform.Z})
		}
		if ent.Velocity != nil {
			stores.Velocities.Set(id, &component.Velocity{X: ent.Velocity.X, Y: ent.Velocity.Y, Z: ent.Velocity.Z})
		}
		if ent.Controllable != nil {
			stores.Controllables.Set(id, &component.Controllable{Speed: ent.Controllable.Speed})
		}
		if ent.Script != "" {
			stores.Scripts.Set(id, &component.Script{Fn: ent.Script})
		}
	}
	m.name = doc.Scene.Name
	return nil
}

// SaveScene serializes the world's current named entities to path, creating
// parent directories as needed. An empty world writes a valid scene with no
// entities, which is how the default scene comes to exist.
func (m *Manager) SaveScene(path string) error {
	if !m.Running() {
		return fmt.Errorf("scene manager not running")
	}
	if !m.world.Running() {
		return fmt.Errorf("world manager not running")
	}

	stores := m.world.Stores()
	doc := sceneFile{Scene: sceneDoc{Name: m.name}}
	if doc.Scene.Name == "" {
		doc.Scene.Name = "default"
	}
	stores.Names.Each(func(id ecs.EntityID, n *component.Name) {
		ent := entityDoc{Name: n.Value}
		if t, ok := stores.Transforms.Get(id); ok {
			ent.Transform = &vecDoc{X: t.X, Y: t.Y, Z: t.Z}
		}
		if v, ok := stores.Velocities.Get(id); ok {
			ent.Velocity = &vecDoc{X: v.X, Y: v.Y, Z: v.Z}
		}
		if c, ok := stores.Controllables.Get(id); ok {
			ent.Controllable = &controlDoc{Speed: c.Speed}
		}
		if s, ok := stores.Scripts.Get(id); ok {
			ent.Script = s.Fn
		}
		doc.Scene.Entities = append(doc.Scene.Entities, ent)
	})
	// Map iteration order is random; keep saved files diffable.
	sort.Slice(doc.Scene.Entities, func(i, j int) bool {
		return doc.Scene.Entities[i].Name < doc.Scene.Entities[j].Name
	})

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create scene dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write scene %s: %w", path, err)
	}
	return nil
}

// SceneName returns the name of the most recently loaded scene.
func (m *Manager) SceneName() string {
	return m.name
}

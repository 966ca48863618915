package component

import "github.com/halcyon-engine/halcyon/internal/core/ecs"

// Components are pure data, zero methods — all mutations happen in systems.

// Name tags an entity for scene round-trips and diagnostics.
type Name struct {
	Value string
}

// Transform is an entity's position in world units.
type Transform struct {
	X, Y, Z float64
}

// Velocity is world units per second, applied by the input system each frame.
type Velocity struct {
	X, Y, Z float64
}

// Controllable marks an entity as driven by polled key state. Speed scales
// the velocity the input system assigns while a direction key is held.
type Controllable struct {
	Speed float64
}

// Script binds an entity to a Lua update function loaded by the script
// engine. Fn is the global function name, called once per frame.
type Script struct {
	Fn string
}

// Stores bundles one store per component type and registers each with the
// world's registry so destroyed entities are stripped everywhere.
type Stores struct {
	Names         *ecs.Store[Name]
	Transforms    *ecs.Store[Transform]
	Velocities    *ecs.Store[Velocity]
	Controllables *ecs.Store[Controllable]
	Scripts       *ecs.Store[Script]
}

func NewStores(reg *ecs.Registry) *Stores {
	s := &Stores{
		Names:         ecs.NewStore[Name](),
		Transforms:    ecs.NewStore[Transform](),
		Velocities:    ecs.NewStore[Velocity](),
		Controllables: ecs.NewStore[Controllable](),
		Scripts:       ecs.NewStore[Script](),
	}
	reg.Add(s.Names)
	reg.Add(s.Transforms)
	reg.Add(s.Velocities)
	reg.Add(s.Controllables)
	reg.Add(s.Scripts)
	return s
}

package system

import (
	"time"

	"github.com/halcyon-engine/halcyon/internal/component"
	"github.com/halcyon-engine/halcyon/internal/core/ecs"
	coresys "github.com/halcyon-engine/halcyon/internal/core/system"
	"github.com/halcyon-engine/halcyon/internal/input"
	"github.com/halcyon-engine/halcyon/internal/world"
)

// InputSystem applies held direction keys to controllable entities and
// integrates velocities into transforms. Phase Input, so scripted behavior
// in the same frame sees updated positions.
type InputSystem struct {
	input *input.Manager
	world *world.Manager
}

func NewInputSystem(in *input.Manager, w *world.Manager) *InputSystem {
	return &InputSystem{input: in, world: w}
}

func (s *InputSystem) Name() string         { return "input" }
func (s *InputSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *InputSystem) Update(dt time.Duration) {
	stores := s.world.Stores()
	if stores == nil {
		return
	}

	var dx, dy float64
	if s.input.IsKeyDown(input.KeyLeft) {
		dx -= 1
	}
	if s.input.IsKeyDown(input.KeyRight) {
		dx += 1
	}
	if s.input.IsKeyDown(input.KeyUp) {
		dy -= 1
	}
	if s.input.IsKeyDown(input.KeyDown) {
		dy += 1
	}

	ecs.Each2(stores.Controllables, stores.Velocities,
		func(_ ecs.EntityID, c *component.Controllable, v *component.Velocity) {
			v.X = dx * c.Speed
			v.Y = dy * c.Speed
		})

	secs := dt.Seconds()
	ecs.Each2(stores.Velocities, stores.Transforms,
		func(_ ecs.EntityID, v *component.Velocity, t *component.Transform) {
			t.X += v.X * secs
			t.Y += v.Y * secs
			t.Z += v.Z * secs
		})
}

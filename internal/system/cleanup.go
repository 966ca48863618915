package system

import (
	"time"

	coresys "github.com/halcyon-engine/halcyon/internal/core/system"
	"github.com/halcyon-engine/halcyon/internal/world"
)

// CleanupSystem flushes the world's deferred destroy queue at the end of
// each frame. Phase Cleanup, always last.
type CleanupSystem struct {
	world *world.Manager
}

func NewCleanupSystem(w *world.Manager) *CleanupSystem {
	return &CleanupSystem{world: w}
}

func (s *CleanupSystem) Name() string         { return "cleanup" }
func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *CleanupSystem) Update(time.Duration) {
	if w := s.world.World(); w != nil {
		w.Flush()
	}
}

package system

import (
	"time"

	"github.com/halcyon-engine/halcyon/internal/component"
	coresys "github.com/halcyon-engine/halcyon/internal/core/system"
	"github.com/halcyon-engine/halcyon/internal/core/ecs"
	"github.com/halcyon-engine/halcyon/internal/scripting"
	"github.com/halcyon-engine/halcyon/internal/world"
	"go.uber.org/zap"
)

// ScriptSystem runs each scripted entity's Lua update function once per
// frame. Script failures are logged and absorbed; a broken behavior never
// stops the frame.
type ScriptSystem struct {
	engine *scripting.Engine
	world  *world.Manager
	log    *zap.Logger

	// missing suppresses repeated not-found logs per function name.
	missing map[string]bool
}

func NewScriptSystem(e *scripting.Engine, w *world.Manager, log *zap.Logger) *ScriptSystem {
	return &ScriptSystem{
		engine:  e,
		world:   w,
		log:     log,
		missing: make(map[string]bool),
	}
}

func (s *ScriptSystem) Name() string         { return "script" }
func (s *ScriptSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *ScriptSystem) Update(dt time.Duration) {
	stores := s.world.Stores()
	if stores == nil || s.engine == nil {
		return
	}
	secs := dt.Seconds()
	stores.Scripts.Each(func(id ecs.EntityID, sc *component.Script) {
		if s.missing[sc.Fn] {
			return
		}
		if !s.engine.HasFn(sc.Fn) {
			s.missing[sc.Fn] = true
			s.log.Warn("behavior function missing", zap.String("fn", sc.Fn))
			return
		}
		if err := s.engine.CallUpdate(sc.Fn, uint64(id), secs); err != nil {
			s.log.Error("behavior update failed",
				zap.String("fn", sc.Fn), zap.Uint64("entity", uint64(id)), zap.Error(err))
		}
	})
}

package engine

import (
	"fmt"
	"time"

	"github.com/halcyon-engine/halcyon/internal/assets"
	"github.com/halcyon-engine/halcyon/internal/config"
	"github.com/halcyon-engine/halcyon/internal/core/manager"
	coresys "github.com/halcyon-engine/halcyon/internal/core/system"
	"github.com/halcyon-engine/halcyon/internal/input"
	"go.uber.org/multierr"
)

// Narrow views of the subsystems the game drives. The concrete managers in
// internal/logging, internal/input, internal/world and internal/scene satisfy
// these; tests substitute fakes.

type LogService interface {
	manager.Manager
	WriteLog(format string, args ...any) int
}

type InputService interface {
	manager.Manager
	Poll()
	IsKeyJustPressed(k input.Key) bool
}

type WorldService interface {
	manager.Manager
	RegisterSystem(s coresys.System) error
	UpdateSystems(dt time.Duration)
}

type SceneService interface {
	manager.Manager
	LoadScene(path string) error
	SaveScene(path string) error
}

// Deps bundles everything the game orchestrates. One Deps, one Game; there
// is no hidden global instance.
type Deps struct {
	Config *config.Config
	Log    LogService
	Input  InputService
	World  WorldService
	Scene  SceneService

	// Systems are registered with the world during startup. Registration
	// failure degrades gameplay but never blocks boot.
	Systems []coresys.System
}

// Game owns the subsystem startup/shutdown ordering and drives the per-frame
// update. It satisfies the same lifecycle contract as its subsystems.
type Game struct {
	manager.State
	deps    Deps
	quitKey input.Key

	// started is the rollback stack: subsystems are pushed as they come up
	// and popped (shutting down) on failure or shutdown, so a failed boot
	// never leaves a partial set running.
	started []manager.Manager

	gameOver  bool
	stepCount int
}

func New(deps Deps) *Game {
	quit := input.KeyByName(deps.Config.Engine.QuitKey)
	if quit == input.KeyNone {
		quit = input.KeyEscape
	}
	return &Game{
		State:   manager.NewState("game"),
		deps:    deps,
		quitKey: quit,
	}
}

func (g *Game) StartUp() error { return manager.Start(&g.State, g) }

// ShutDown forces game over before anything else, so a loop observing state
// mid-shutdown sees termination, then stops the subsystems in reverse start
// order. Safe to call repeatedly.
func (g *Game) ShutDown() {
	g.SetGameOver(true)
	manager.Stop(&g.State, g)
}

// OnStartUp brings the subsystems up in dependency order: log, input, world,
// scene. Any failure unwinds the started stack in reverse and aborts. System
// registration and scene loading failures are logged but non-fatal: the
// engine boots into a degraded but runnable state.
func (g *Game) OnStartUp() error {
	order := []manager.Manager{g.deps.Log, g.deps.Input, g.deps.World, g.deps.Scene}
	for _, m := range order {
		if err := m.StartUp(); err != nil {
			g.deps.Log.WriteLog("game: failed to start %s manager: %v", m.Kind(), err)
			g.unwind()
			return fmt.Errorf("start %s manager: %w", m.Kind(), err)
		}
		g.started = append(g.started, m)
		g.deps.Log.WriteLog("game: %s manager started", m.Kind())
	}

	var regErr error
	for _, s := range g.deps.Systems {
		if err := g.deps.World.RegisterSystem(s); err != nil {
			regErr = multierr.Append(regErr, err)
			continue
		}
		g.deps.Log.WriteLog("game: %s system registered", s.Name())
	}
	if regErr != nil {
		g.deps.Log.WriteLog("game: system registration incomplete: %v", regErr)
	}

	g.loadInitialScene()

	g.stepCount = 0
	g.gameOver = false
	return nil
}

// loadInitialScene loads the configured scene; when there is no usable scene
// at the path, it saves the current (default) world state there and reloads.
// An engine without a scene still boots.
func (g *Game) loadInitialScene() {
	path := assets.Resolve(g.deps.Config.Assets.Root, g.deps.Config.Assets.Scene)
	if err := g.deps.Scene.LoadScene(path); err == nil {
		g.deps.Log.WriteLog("game: scene loaded from %s", path)
		return
	}
	g.deps.Log.WriteLog("game: no usable scene at %s, creating default", path)
	if err := g.deps.Scene.SaveScene(path); err != nil {
		g.deps.Log.WriteLog("game: warning: failed to save default scene: %v", err)
		return
	}
	if err := g.deps.Scene.LoadScene(path); err != nil {
		g.deps.Log.WriteLog("game: warning: failed to load default scene: %v", err)
		return
	}
	g.deps.Log.WriteLog("game: default scene loaded from %s", path)
}

// unwind shuts down everything started so far, newest first.
func (g *Game) unwind() {
	for i := len(g.started) - 1; i >= 0; i-- {
		g.started[i].ShutDown()
	}
	g.started = g.started[:0]
}

func (g *Game) OnShutDown() {
	g.deps.Log.WriteLog("game: shutting down")
	g.unwind()
}

// Update advances the engine by one step: count it, log every 100th, poll
// input for the quit key, then run the world's systems. The order is fixed;
// a quit observed here is visible to the caller as soon as Update returns.
func (g *Game) Update(dt time.Duration) {
	g.stepCount++
	if g.stepCount%100 == 0 {
		g.deps.Log.WriteLog("game: step count: %d", g.stepCount)
	}

	g.deps.Input.Poll()
	if g.deps.Input.IsKeyJustPressed(g.quitKey) {
		g.SetGameOver(true)
		g.deps.Log.WriteLog("game: quit key pressed, setting game over")
	}

	g.deps.World.UpdateSystems(dt)
}

// SetGameOver flags loop termination. Setting true is logged; clearing is
// silent and only startup does it.
func (g *Game) SetGameOver(over bool) {
	g.gameOver = over
	if over {
		g.deps.Log.WriteLog("game: game over set to true")
	}
}

func (g *Game) GameOver() bool {
	return g.gameOver
}

func (g *Game) StepCount() int {
	return g.stepCount
}

// FrameTime returns the configured frame-time target for the loop.
func (g *Game) FrameTime() time.Duration {
	return g.deps.Config.Engine.FrameTime
}

// IsValid accepts only "step" events.
func (g *Game) IsValid(event string) bool {
	return event == "step"
}

// OnEvent lets the event bus drive the loop: a "step" event carrying a
// time.Duration advances one frame.
func (g *Game) OnEvent(event string, payload any) {
	if event != "step" {
		return
	}
	if dt, ok := payload.(time.Duration); ok {
		g.Update(dt)
	}
}

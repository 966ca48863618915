package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/halcyon-engine/halcyon/internal/config"
	"github.com/halcyon-engine/halcyon/internal/core/clock"
	"github.com/halcyon-engine/halcyon/internal/core/event"
	coresys "github.com/halcyon-engine/halcyon/internal/core/system"
	"github.com/halcyon-engine/halcyon/internal/engine"
	"github.com/halcyon-engine/halcyon/internal/input"
	"github.com/halcyon-engine/halcyon/internal/logging"
	"github.com/halcyon-engine/halcyon/internal/scene"
	"github.com/halcyon-engine/halcyon/internal/scripting"
	"github.com/halcyon-engine/halcyon/internal/system"
	"github.com/halcyon-engine/halcyon/internal/world"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := "config/engine.toml"
	if p := os.Getenv("HALCYON_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logm := logging.New(cfg.Logging)
	inputm := input.New()
	worldm := world.New()
	scenem := scene.New(worldm)

	game := engine.New(engine.Deps{
		Config: cfg,
		Log:    logm,
		Input:  inputm,
		World:  worldm,
		Scene:  scenem,
		Systems: []coresys.System{
			system.NewInputSystem(inputm, worldm),
			system.NewCleanupSystem(worldm),
		},
	})
	if err := game.StartUp(); err != nil {
		return fmt.Errorf("engine startup: %w", err)
	}
	defer game.ShutDown()

	// Behavior scripting comes up after the core so script-load diagnostics
	// reach the engine log.
	if cfg.Scripts.Dir != "" {
		eng, err := scripting.New(cfg.Scripts.Dir, logm.Zap())
		if err != nil {
			logm.WriteLog("main: scripting disabled: %v", err)
		} else {
			defer eng.Close()
			if err := worldm.RegisterSystem(system.NewScriptSystem(eng, worldm, logm.Zap())); err != nil {
				logm.WriteLog("main: failed to register script system: %v", err)
			}
		}
	}

	go readKeys(inputm)

	bus := event.NewBus()
	bus.Attach(game)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(game.FrameTime())
	defer ticker.Stop()

	logm.WriteLog("main: %s running (frame time %s)", cfg.Engine.Name, game.FrameTime())

	frame := clock.New()
	for !game.GameOver() {
		select {
		case <-ticker.C:
			dt := frame.Delta()
			if dt < 0 {
				dt = game.FrameTime().Microseconds()
			}
			bus.Emit(event.Event{Name: "step", Payload: time.Duration(dt) * time.Microsecond})
			bus.Dispatch()
		case sig := <-sigCh:
			logm.WriteLog("main: received signal %s", sig)
			game.SetGameOver(true)
		}
	}
	return nil
}

// readKeys feeds stdin keystrokes to the input manager. Terminals report no
// key-up, so each keystroke is synthesized as a press/release tap.
func readKeys(in *input.Manager) {
	reader := bufio.NewReader(os.Stdin)
	for {
		b, err := reader.ReadByte()
		if err != nil {
			return
		}
		var k input.Key
		switch b {
		case 27, 'q':
			k = input.KeyEscape
		case 'w':
			k = input.KeyUp
		case 's':
			k = input.KeyDown
		case 'a':
			k = input.KeyLeft
		case 'd':
			k = input.KeyRight
		case ' ':
			k = input.KeySpace
		case '\n':
			k = input.KeyEnter
		default:
			continue
		}
		in.Push(input.Event{Key: k, Pressed: true})
		in.Push(input.Event{Key: k, Pressed: false})
	}
}

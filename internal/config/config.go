package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Engine  EngineConfig  `toml:"engine"`
	Assets  AssetsConfig  `toml:"assets"`
	Logging LoggingConfig `toml:"logging"`
	Scripts ScriptsConfig `toml:"scripts"`
}

type EngineConfig struct {
	Name      string        `toml:"name"`
	FrameTime time.Duration `toml:"frame_time"` // frame-time target for the loop
	QuitKey   string        `toml:"quit_key"`   // key name, see input.KeyByName
}

type AssetsConfig struct {
	Root  string `toml:"root"`
	Scene string `toml:"scene"` // logical path, resolved under Root
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // engine logfile path
}

type ScriptsConfig struct {
	Dir string `toml:"dir"` // behavior scripts, empty disables scripting
}

// Load reads TOML config from path, applying defaults for absent keys.
// A missing file is not an error; the defaults describe a runnable engine.
func Load(path string) (*Config, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Engine: EngineConfig{
			Name:      "halcyon",
			FrameTime: 33 * time.Millisecond,
			QuitKey:   "escape",
		},
		Assets: AssetsConfig{
			Root:  "assets",
			Scene: "Scene/Game.scn",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   "halcyon.log",
		},
		Scripts: ScriptsConfig{
			Dir: "scripts",
		},
	}
}

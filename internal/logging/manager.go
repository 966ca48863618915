package logging

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/halcyon-engine/halcyon/internal/config"
	"github.com/halcyon-engine/halcyon/internal/core/manager"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Manager is the engine's log subsystem: a zap logger teeing a console core
// and a JSON file core. All engine diagnostics flow through WriteLog or Zap.
type Manager struct {
	manager.State
	cfg  config.LoggingConfig
	log  *zap.Logger
	file *os.File

	// bootID tags every run so interleaved logfiles can be told apart.
	bootID string
}

func New(cfg config.LoggingConfig) *Manager {
	return &Manager{State: manager.NewState("log"), cfg: cfg}
}

func (m *Manager) StartUp() error { return manager.Start(&m.State, m) }
func (m *Manager) ShutDown() { manager.Stop(&m.State, m) }

func (m *Manager) OnStartUp() error {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(m.cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	f, err := os.OpenFile(m.cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open logfile %s: %w", m.cfg.File, err)
	}
	m.file = f

	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(f),
		level,
	)

	var consoleEnc zapcore.Encoder
	if m.cfg.Format == "json" {
		consoleEnc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		encCfg.ConsoleSeparator = "  "
		consoleEnc = zapcore.NewConsoleEncoder(encCfg)
	}
	consoleCore := zapcore.NewCore(consoleEnc, zapcore.AddSync(os.Stderr), level)

	m.log = zap.New(zapcore.NewTee(fileCore, consoleCore))
	m.bootID = uuid.NewString()
	m.log.Info("log manager started", zap.String("boot_id", m.bootID))
	return nil
}

func (m *Manager) OnShutDown() {
	if m.log != nil {
		m.log.Info("log manager stopping", zap.String("boot_id", m.bootID))
		_ = m.log.Sync()
		m.log = nil
	}
	if m.file != nil {
		_ = m.file.Close()
		m.file = nil
	}
}

// WriteLog appends a printf-formatted line to the log. Returns the byte
// count of the formatted message, or -1 when the manager is not running.
// Never panics.
func (m *Manager) WriteLog(format string, args ...any) int {
	if !m.Running() || m.log == nil {
		return -1
	}
	msg := fmt.Sprintf(format, args...)
	m.log.Info(msg)
	return len(msg)
}

// Zap exposes the structured logger for components that take one. Returns a
// nop logger until the manager has started.
func (m *Manager) Zap() *zap.Logger {
	if m.log == nil {
		return zap.NewNop()
	}
	return m.log
}

// BootID returns the tag assigned to the current run, empty before startup.
func (m *Manager) BootID() string {
	return m.bootID
}

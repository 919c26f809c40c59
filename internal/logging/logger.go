// Package logging provides categorized file-based logging for petcli.
// The TUI owns stdout, so logs go to files under <config dir>/logs, one per
// category. Logging is off unless enabled in the config; disabled categories
// get a no-op logger so call sites never branch.
package logging

import (
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category names a log file.
type Category string

const (
	CategorySession Category = "session" // session lifecycle, persistence
	CategoryAPI     Category = "api"     // LLM calls
	CategoryUI      Category = "ui"      // TUI events worth keeping
)

var (
	mu      sync.Mutex
	enabled bool
	logDir  string
	loggers = map[Category]*zap.SugaredLogger{}
	nop     = zap.NewNop().Sugar()
)

// Init points the package at its log directory and arms it. Call once at
// startup; before Init (or with enabled=false) every logger is a no-op.
func Init(dir string, enable bool) error {
	mu.Lock()
	defer mu.Unlock()

	closeAllLocked()
	enabled = enable
	logDir = filepath.Join(dir, "logs")
	if !enabled {
		return nil
	}
	return os.MkdirAll(logDir, 0755)
}

// Get returns the logger for a category, creating it on first use.
func Get(cat Category) *zap.SugaredLogger {
	mu.Lock()
	defer mu.Unlock()

	if !enabled {
		return nop
	}
	if lg, ok := loggers[cat]; ok {
		return lg
	}

	f, err := os.OpenFile(filepath.Join(logDir, string(cat)+".log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nop
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(f),
		zap.DebugLevel,
	)
	lg := zap.New(core).Sugar().Named(string(cat))
	loggers[cat] = lg
	return lg
}

// Sync flushes and drops all open loggers. Call on shutdown.
func Sync() {
	mu.Lock()
	defer mu.Unlock()
	closeAllLocked()
}

func closeAllLocked() {
	for cat, lg := range loggers {
		_ = lg.Sync()
		delete(loggers, cat)
	}
}

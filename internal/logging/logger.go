// Package logging provides config-driven categorized logging for numkit.
// Every category is a named child of a single zap root logger. Until Initialize
// (or Use) is called, all categories log to a no-op core.
package logging

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot        Category = "boot"        // Startup, config resolution
	CategoryStats       Category = "stats"       // Descriptive statistics engine
	CategoryCodec       Category = "codec"       // Two's complement conversions
	CategoryWords       Category = "words"       // Word frequency counter
	CategorySales       Category = "sales"       // Sales totals
	CategoryReservation Category = "reservation" // Hotel reservation model
	CategoryArraySum    Category = "arraysum"    // Parallel array sum
	CategoryReport      Category = "report"      // Report rendering and result files
	CategoryWatch       Category = "watch"       // Input file watcher
)

// Options selects how the root logger is built.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // console, json
	Output zapcore.WriteSyncer
}

var (
	rootMu sync.RWMutex
	root   = zap.NewNop()
)

// ParseLevel maps a config level name to a zap level. Empty means info.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// Initialize builds the root logger from opts and installs it.
func Initialize(opts Options) (*zap.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	switch strings.ToLower(opts.Format) {
	case "", "console", "text":
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	case "json":
		enc = zapcore.NewJSONEncoder(encCfg)
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}

	out := opts.Output
	if out == nil {
		out = zapcore.Lock(os.Stderr)
	}

	logger := zap.New(zapcore.NewCore(enc, out, level))
	Use(logger)
	return logger, nil
}

// Use installs an already-built logger as the root, e.g. zaptest or observer loggers.
func Use(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	rootMu.Lock()
	root = logger
	rootMu.Unlock()
}

// Get returns the logger for a category.
func Get(category Category) *zap.Logger {
	rootMu.RLock()
	defer rootMu.RUnlock()
	return root.Named(string(category))
}

// Sync flushes the root logger. Errors from syncing terminals are ignored.
func Sync() {
	rootMu.RLock()
	defer rootMu.RUnlock()
	_ = root.Sync()
}

// Reset reverts to the no-op logger.
func Reset() {
	Use(nil)
}

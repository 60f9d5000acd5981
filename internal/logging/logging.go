// Package logging provides the shared structured logger for photo-settings.
//
// It wraps [log/slog] with a single initialization point so every component
// writes through the same handler and level. The level is read once from
// PHOTO_SETTINGS_LOG_LEVEL (debug, info, warn, error); INFO when unset.
//
//	log := logging.New("catalog")
//	log.Warn("entry skipped", "section", s, "error", err)
//
// Output goes to stderr so it never mixes with the UI or the table printer
// on stdout.
package logging

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

// LevelEnv names the environment variable that selects the log level.
const LevelEnv = "PHOTO_SETTINGS_LOG_LEVEL"

var (
	initLogger sync.Once
	baseLogger *slog.Logger
)

// New returns a logger tagged with component. An empty component returns
// the base logger.
func New(component string) *slog.Logger {
	initLogger.Do(func() {
		baseLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: parseLevel(os.Getenv(LevelEnv)),
		}))
	})
	if component == "" {
		return baseLogger
	}
	return baseLogger.With("component", component)
}

// parseLevel maps a level name to a [slog.Level], defaulting to INFO.
func parseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

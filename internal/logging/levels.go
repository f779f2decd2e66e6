// Package logging provides centralized logging with configurable levels and
// file output. File-based output is the default while the kiosk TUI is on
// screen so log lines never bleed into the alternate screen buffer.
package logging

// Level is a log severity, ordered most verbose first.
type Level int

const (
	// LevelDebug traces dealer calls and cache activity.
	LevelDebug Level = iota
	// LevelInfo covers session milestones (startup, deal completed, reset).
	LevelInfo
	// LevelWarn flags degraded paths the kiosk recovers from, like a
	// gateway timeout answered from the cache.
	LevelWarn
	// LevelError is for failures that surface to the customer.
	LevelError
)

// String returns the level's config-file spelling.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel converts a config string to a Level. Unrecognized values fall
// back to LevelInfo, the showroom-floor default.
func ParseLevel(s string) Level {
	switch s {
	case "debug", "DEBUG":
		return LevelDebug
	case "info", "INFO":
		return LevelInfo
	case "warn", "WARN", "warning", "WARNING":
		return LevelWarn
	case "error", "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

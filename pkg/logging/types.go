// Package logging provides the structured logger used across the module.
//
// Library packages default to Nop and accept a Logger through their options.
// The CLI builds a zap-backed logger from its configuration with NewZap.
package logging

// Logger is a leveled, structured logger. keysAndValues are alternating
// key-value pairs (e.g. "suite", name, "attempt", n).
type Logger interface {
	// Debug logs low-level details such as nonce retries.
	Debug(msg string, keysAndValues ...any)
	// Info logs routine events.
	Info(msg string, keysAndValues ...any)
	// Warn logs unexpected situations that do not stop the operation.
	Warn(msg string, keysAndValues ...any)
	// Error logs failures that need attention.
	Error(msg string, keysAndValues ...any)
	// WithKV returns a logger that adds the pair to every future entry.
	WithKV(key string, value any) Logger
	// WithName returns a logger named after a component. Names nest with dots.
	WithName(name string) Logger
	// Name returns the logger name.
	Name() string
}

// Level is the severity of a log entry.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// ParseLevel validates a level name.
func ParseLevel(s string) (Level, bool) {
	switch l := Level(s); l {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		return l, true
	}
	return "", false
}

package interfaces

import "context"

// Logger defines the leveled logging contract used across the module. It
// mirrors the surface of github.com/goliatone/go-logger so hosts already on
// that package can plug it in without adapters.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	WithContext(ctx context.Context) Logger
}

// LoggerProvider exposes named loggers. Implementations can hand back the
// same instance for every name or scope children per module.
type LoggerProvider interface {
	GetLogger(name string) Logger
}

// FieldsLogger is an optional extension for attaching persistent structured
// fields. Providers supporting it return a new logger that emits the supplied
// fields on every entry.
type FieldsLogger interface {
	WithFields(fields map[string]any) Logger
}

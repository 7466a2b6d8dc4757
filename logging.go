package coro

import (
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// Logger is the structured logger type accepted by WithLogger. The default,
// used when no logger option is given, writes leveled JSON to stderr via
// github.com/joeycumines/stumpy.
type Logger = *logiface.Logger[*stumpy.Event]

// LogLevel is the verbosity threshold accepted by WithLogLevel.
type LogLevel = logiface.Level

// DefaultLogLevel is used by the default logger when no WithLogLevel option
// is given.
const DefaultLogLevel = logiface.LevelInformational

func newDefaultLogger(level LogLevel) Logger {
	return stumpy.L.New(
		stumpy.L.WithStumpy(),
		logiface.WithLevel[*stumpy.Event](level),
	)
}

func newNopLogger() Logger {
	return stumpy.L.New(
		logiface.WithLevel[*stumpy.Event](logiface.LevelDisabled),
	)
}

// NewNopLogger returns a Logger with logging disabled, for tests and
// callers that want WithLogger's default JSON-to-stderr behavior silenced.
func NewNopLogger() Logger {
	return newNopLogger()
}

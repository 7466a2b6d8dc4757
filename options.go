package coro

// DefaultStackSize is used by Create when no WithDefaultStackSize option is
// given.
const DefaultStackSize = 4096

// Options is scheduler configuration, set via SetOption values passed to
// NewScheduler.
type Options struct {
	stackSize int
	logger    Logger
	logLevel  LogLevel
}

// A SetOption configures a Scheduler at construction time.
type SetOption func(*Options)

// WithDefaultStackSize overrides the informational stack size recorded for
// coroutines created without an explicit size.
func WithDefaultStackSize(n int) SetOption {
	return func(o *Options) { o.stackSize = n }
}

// WithLogger sets the structured logger used for diagnostics and fatal
// conditions. The zero value (not calling this option) uses a logger that
// writes JSON to stderr; pass a logger built with a disabled level to
// silence it entirely. WithLogger takes precedence over WithLogLevel, since
// a caller supplying their own Logger owns its level too.
func WithLogger(l Logger) SetOption {
	return func(o *Options) { o.logger = l }
}

// WithLogLevel sets the verbosity of the default stderr logger. It has no
// effect if WithLogger is also given.
func WithLogLevel(level LogLevel) SetOption {
	return func(o *Options) { o.logLevel = level }
}

var defaultOptions = []SetOption{
	WithDefaultStackSize(DefaultStackSize),
	WithLogLevel(DefaultLogLevel),
}

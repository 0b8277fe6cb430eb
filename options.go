package interner

import "log/slog"

// Option configures a pool created by NewShared or NewGlobal.
type Option func(*config)

type config struct {
	capacity      int
	hasher        Hasher
	hasherFactory func() Hasher
	observer      Observer
	logger        *slog.Logger
	manualRelease bool
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// resolveHasher returns the literal hasher if one was given, otherwise the
// factory's result, otherwise the default. It runs at most once per table.
func (c *config) resolveHasher() Hasher {
	switch {
	case c.hasher != nil:
		return c.hasher
	case c.hasherFactory != nil:
		return c.hasherFactory()
	default:
		return defaultHasher()
	}
}

func (c *config) log() *slog.Logger {
	if c.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.logger
}

// WithCapacity reserves room for n resident values so the pool does not
// grow until it holds more than that.
func WithCapacity(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.capacity = n
		}
	}
}

// WithHasher sets the hashing strategy used to find resident values.
// It replaces any factory set with WithHasherFactory.
func WithHasher(h Hasher) Option {
	return func(cfg *config) {
		cfg.hasher = h
		cfg.hasherFactory = nil
	}
}

// WithHasherFactory defers building the hasher until the pool's storage is
// created. For a Global pool that is the first access; for a Shared pool it
// is construction time. It replaces any hasher set with WithHasher.
func WithHasherFactory(fn func() Hasher) Option {
	return func(cfg *config) {
		cfg.hasherFactory = fn
		cfg.hasher = nil
	}
}

// WithObserver attaches an Observer that receives hit, miss, release and
// reacquire events for the lifetime of the pool.
func WithObserver(o Observer) Option {
	return func(cfg *config) {
		cfg.observer = o
	}
}

// WithLogger sets the logger used for debug and error records. By default
// nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = l
	}
}

// WithManualRelease disables the garbage-collector backstop for handles.
// Values then stay resident until every handle is explicitly released,
// and handle creation skips registering a cleanup.
func WithManualRelease() Option {
	return func(cfg *config) {
		cfg.manualRelease = true
	}
}

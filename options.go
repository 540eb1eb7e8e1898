package bigbuf

import "log/slog"

type options struct {
	backend          string
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Converter construction.
//
// Options primarily exist to avoid exploding the API surface
// (e.g. backend-specific constructor variants).
type Option func(*options)

// WithBackend pins the Converter to a specific backend ("accelerated" or
// "portable") instead of the process-wide resolved one. Construction fails
// with an UnavailableBackendError when the backend cannot be used in the
// current environment.
//
// Pinning is per-Converter: it does not touch the backend used by the
// package-level functions.
func WithBackend(name string) Option {
	return func(o *options) {
		o.backend = name
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// conversions. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &bigbuf.BasicMetricsCollector{}
//	c, _ := bigbuf.New(bigbuf.WithMetricsCollector(metrics))
//	// ... use c ...
//	stats := metrics.GetStats()
//	fmt.Printf("Encodes: %d, Avg latency: %dns\n", stats.EncodeCount, stats.EncodeAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging. Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := bigbuf.NewJSONLogger(slog.LevelDebug)
//	c, _ := bigbuf.New(bigbuf.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

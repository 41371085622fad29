package jsd

import (
	"log/slog"
	"runtime"

	"github.com/hupe1980/jsd/resource"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	validate         bool
	workers          int
	resources        *resource.Controller
}

// Option configures a Calculator.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &jsd.BasicMetricsCollector{}
//	calc := jsd.New(jsd.WithMetricsCollector(metrics))
//	// ... use calc ...
//	stats := metrics.GetStats()
//	fmt.Printf("Pairs: %d, Avg latency: %dns\n", stats.DistanceCount, stats.DistanceAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := jsd.NewJSONLogger(slog.LevelInfo)
//	calc := jsd.New(jsd.WithLogger(logger))
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

// WithValidation enables checking every input vector before it reaches the
// kernel. Invalid inputs then fail with ErrInvalidInput.
func WithValidation(enabled bool) Option {
	return func(o *options) {
		o.validate = enabled
	}
}

// WithWorkers sets the number of goroutines used by OneToMany and Pairwise.
// Values below one fall back to GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithResourceController bounds workers and merge-buffer memory with rc.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.resources = rc
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
	if o.workers < 1 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	return o
}

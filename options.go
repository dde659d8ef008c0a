package rowindex

import (
	"log/slog"

	"github.com/hupe1980/rowindex/codec"
	"github.com/hupe1980/rowindex/index"
)

type options struct {
	config           index.Config
	codec            codec.Codec
	buildConcurrency int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures index construction.
type Option func(*options)

// WithType selects key extraction. The default is index.TypeDefault.
func WithType(t index.Type) Option {
	return func(o *options) {
		o.config.Type = t
	}
}

// WithGrouped maps each key to a set of positions instead of exactly one.
func WithGrouped() Option {
	return func(o *options) {
		o.config.Grouped = true
	}
}

// WithoutBuild leaves the index empty on construction; populate it with Add.
func WithoutBuild() Option {
	return func(o *options) {
		o.config.SkipBuild = true
	}
}

// WithCodec configures the codec used by NewFromJSON.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithBuildConcurrency bounds the number of indexes BuildAll builds at once.
// Values <= 0 fall back to GOMAXPROCS.
func WithBuildConcurrency(n int) Option {
	return func(o *options) {
		o.buildConcurrency = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &rowindex.BasicMetricsCollector{}
//	ix, _ := rowindex.New(rows, []string{"author"}, rowindex.WithMetricsCollector(metrics))
//	// ... use ix ...
//	stats := metrics.GetStats()
//	fmt.Printf("Lookups: %d, Avg latency: %dns\n", stats.LookupCount, stats.LookupAvgNanos)
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
//	logger := rowindex.NewJSONLogger(slog.LevelInfo)
//	ix, _ := rowindex.New(rows, []string{"author"}, rowindex.WithLogger(logger))
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
		codec:            codec.Default,
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

package sumgo

import (
	"log/slog"

	"github.com/hupe1980/sumgo/category"
	"github.com/hupe1980/sumgo/selector"
	"github.com/hupe1980/sumgo/sentence"
)

// DefaultMinDocumentLength is the minimum number of usable characters
// a document must contain after trimming to be summarized at all.
const DefaultMinDocumentLength = 30

type options struct {
	redundancyThreshold float64
	minSentenceLength   int
	minDocumentLength   int
	categorizer         *category.Categorizer
	metricsCollector    MetricsCollector
	logger              *Logger
}

// Option configures Summarizer construction.
//
// Thresholds set here are defaults for every request; individual
// requests may still override the redundancy threshold and summary
// size through the fluent builder.
type Option func(*options)

// WithRedundancyThreshold sets the default cosine-similarity cutoff
// above which a candidate counts as a near-duplicate of an accepted
// sentence. Values must lie in [0,1]; New rejects anything else.
func WithRedundancyThreshold(threshold float64) Option {
	return func(o *options) {
		o.redundancyThreshold = threshold
	}
}

// WithMinSentenceLength sets the minimum cleaned sentence length (in
// characters) for a sentence to become a selection candidate.
func WithMinSentenceLength(minLen int) Option {
	return func(o *options) {
		o.minSentenceLength = minLen
	}
}

// WithMinDocumentLength sets the minimum usable document length below
// which Summarize rejects the input with ErrInsufficientText.
func WithMinDocumentLength(minLen int) Option {
	return func(o *options) {
		o.minDocumentLength = minLen
	}
}

// WithCategorizer sets the categorizer used when a request asks for
// sectioned output. Defaults to category.Default().
func WithCategorizer(c *category.Categorizer) Option {
	return func(o *options) {
		if c == nil {
			c = category.Default()
		}
		o.categorizer = c
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
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
		redundancyThreshold: selector.DefaultRedundancyThreshold,
		minSentenceLength:   sentence.DefaultMinLength,
		minDocumentLength:   DefaultMinDocumentLength,
		categorizer:         category.Default(),
		metricsCollector:    NoopMetricsCollector{},
		logger:              NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}

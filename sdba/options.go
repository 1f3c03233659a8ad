package sdba

import (
	"log/slog"

	"github.com/rfielding/ltl2sdba/internal/metrics"
)

// Option configures a Build call.
type Option func(*config)

type config struct {
	debug   bool
	logger  *slog.Logger
	metrics *metrics.Builder
}

func defaultConfig() *config {
	return &config{logger: slog.Default()}
}

// WithDebug enables Debug-level trace logging of every state/edge decision
// made during the construction.
func WithDebug(enabled bool) Option {
	return func(c *config) { c.debug = enabled }
}

// WithLogger sets the structured logger the builder writes trace records to.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithMetrics attaches a metrics.Builder the construction reports counters
// and histograms to. A nil *metrics.Builder (the default) makes every
// metrics call a no-op.
func WithMetrics(m *metrics.Builder) Option {
	return func(c *config) { c.metrics = m }
}

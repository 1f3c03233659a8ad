// Package metrics provides the Prometheus instrumentation for the SDBA
// builder: counts of states built and deduplicated, SAT-engine calls, and
// build-latency histograms.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Builder holds the counters and histograms a single construction run
// updates. A nil *Builder is valid and every method on it is a no-op, so
// callers that don't care about metrics don't need a registry.
type Builder struct {
	StatesBuilt    prometheus.Counter
	DedupHits      prometheus.Counter
	SATCalls       prometheus.Counter
	BuildDuration  prometheus.Histogram
}

// NewBuilder constructs a Builder and registers its metrics against reg. Pass
// prometheus.NewRegistry() for an isolated registry, or a shared one (e.g.
// prometheus.DefaultRegisterer) to expose it on a process-wide /metrics
// endpoint.
func NewBuilder(reg prometheus.Registerer) *Builder {
	b := &Builder{
		StatesBuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ltl2sdba_states_built_total",
			Help: "Deterministic-component (R,phi1,phi2) states allocated.",
		}),
		DedupHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ltl2sdba_dedup_hits_total",
			Help: "Times a (R,phi1,phi2) triple was found already allocated.",
		}),
		SATCalls: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ltl2sdba_sat_calls_total",
			Help: "Satisfiability/implication queries issued to the label engine.",
		}),
		BuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "ltl2sdba_build_duration_seconds",
			Help:    "Wall-clock duration of a full VWAA-to-SDBA construction.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(b.StatesBuilt, b.DedupHits, b.SATCalls, b.BuildDuration)
	return b
}

func (b *Builder) incStatesBuilt() {
	if b != nil {
		b.StatesBuilt.Inc()
	}
}

func (b *Builder) incDedupHits() {
	if b != nil {
		b.DedupHits.Inc()
	}
}

func (b *Builder) incSATCalls() {
	if b != nil {
		b.SATCalls.Inc()
	}
}

// StateBuilt records one newly-allocated deterministic state.
func (b *Builder) StateBuilt() { b.incStatesBuilt() }

// DedupHit records one lookup that found an existing deterministic state.
func (b *Builder) DedupHit() { b.incDedupHits() }

// SATCall records one satisfiability/implication query.
func (b *Builder) SATCall() { b.incSATCalls() }

// ObserveBuildSeconds records the duration of a full construction.
func (b *Builder) ObserveBuildSeconds(seconds float64) {
	if b != nil {
		b.BuildDuration.Observe(seconds)
	}
}

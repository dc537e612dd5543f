package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lvsearch/search"
)

// DefaultNamespace prefixes every metric name unless overridden.
const DefaultNamespace = "lvsearch"

// unlabelled replaces an empty search label to keep series names stable.
const unlabelled = "unknown"

// Recorder turns search.Report values into Prometheus series. It is safe
// for concurrent use; the collectors synchronise internally.
type Recorder struct {
	runs     *prometheus.CounterVec
	expanded *prometheus.HistogramVec
	duration *prometheus.HistogramVec
}

// Config selects the metric namespace and histogram buckets.
type Config struct {
	Namespace       string
	ExpandedBuckets []float64
	DurationBuckets []float64
}

// DefaultConfig returns Config with:
//   - Namespace "lvsearch"
//   - expansion buckets 1, 4, 16 ... 4^10
//   - duration buckets 100µs ... ~13s
func DefaultConfig() Config {
	return Config{
		Namespace:       DefaultNamespace,
		ExpandedBuckets: prometheus.ExponentialBuckets(1, 4, 11),
		DurationBuckets: prometheus.ExponentialBuckets(0.0001, 4, 9),
	}
}

// NewRecorder registers the search collectors on reg using DefaultConfig.
// A nil reg builds unregistered collectors, which is handy in tests.
// Registering twice on the same registry panics, as with promauto.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	return NewRecorderWithConfig(reg, DefaultConfig())
}

// NewRecorderWithConfig is NewRecorder with explicit configuration. Empty
// fields fall back to DefaultConfig.
func NewRecorderWithConfig(reg prometheus.Registerer, cfg Config) *Recorder {
	def := DefaultConfig()
	if cfg.Namespace == "" {
		cfg.Namespace = def.Namespace
	}
	if len(cfg.ExpandedBuckets) == 0 {
		cfg.ExpandedBuckets = def.ExpandedBuckets
	}
	if len(cfg.DurationBuckets) == 0 {
		cfg.DurationBuckets = def.DurationBuckets
	}

	f := promauto.With(reg)

	return &Recorder{
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: "search",
			Name:      "runs_total",
			Help:      "Finished searches by strategy label and outcome",
		}, []string{"label", "outcome"}),
		expanded: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Subsystem: "search",
			Name:      "expanded_states",
			Help:      "States expanded per search",
			Buckets:   cfg.ExpandedBuckets,
		}, []string{"label"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Subsystem: "search",
			Name:      "duration_seconds",
			Help:      "Wall-clock duration of searches",
			Buckets:   cfg.DurationBuckets,
		}, []string{"label", "outcome"}),
	}
}

// Observe records one finished run.
func (r *Recorder) Observe(rep search.Report) {
	label := rep.Label
	if label == "" {
		label = unlabelled
	}
	outcome := rep.Outcome.String()

	r.runs.WithLabelValues(label, outcome).Inc()
	r.expanded.WithLabelValues(label).Observe(float64(rep.Stats.Expanded))
	r.duration.WithLabelValues(label, outcome).Observe(rep.Stats.Duration.Seconds())
}

// Option returns a search option that feeds every finished run into r.
func (r *Recorder) Option() search.Option {
	return search.WithReport(r.Observe)
}

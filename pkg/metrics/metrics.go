// Package metrics holds the Prometheus collectors exported by the validator.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultBuckets provides a common set of histogram buckets in seconds. Graph
// passes are in-memory, so the range starts well below a millisecond.
var DefaultBuckets = []float64{.00001, .00005, .0001, .00025, .0005, .001, .0025, .005, .01, .05, .1} //nolint: gochecknoglobals

// Validation groups the collectors updated by a validation graph.
type Validation struct {
	// Events counts input events accepted by the graph, by input name.
	Events *prometheus.CounterVec
	// Rejected counts input events refused because they were outside the input domain.
	Rejected *prometheus.CounterVec
	// Published counts values handed to the sink, by output name.
	Published *prometheus.CounterVec
	// Propagation observes how long a single input event took to propagate.
	Propagation prometheus.Histogram
	// Dropped counts outputs discarded by a dispatcher after it was closed.
	Dropped prometheus.Counter
}

// NewValidation creates the collectors under namespace and registers them on reg.
func NewValidation(reg prometheus.Registerer, namespace string) (*Validation, error) {
	m := &Validation{
		Events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "input_events_total",
			Help:      "Input events accepted by the validation graph.",
		}, []string{"input"}),
		Rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "input_rejected_total",
			Help:      "Input events rejected as invalid input.",
		}, []string{"input"}),
		Published: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outputs_published_total",
			Help:      "Output values published to the sink.",
		}, []string{"output"}),
		Propagation: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "propagation_duration_seconds",
			Help:      "Time spent propagating one input event through the graph.",
			Buckets:   DefaultBuckets,
		}),
		Dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outputs_dropped_total",
			Help:      "Outputs discarded because the dispatcher was closed.",
		}),
	}

	for _, c := range []prometheus.Collector{m.Events, m.Rejected, m.Published, m.Propagation, m.Dropped} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("could not register collector: %w", err)
		}
	}

	return m, nil
}

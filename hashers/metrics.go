package hashers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/celestiaorg/lmt"
)

var combineCalls = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "lmt_combine_calls_total",
	Help: "Number of combine calls",
}, []string{"hasher"})

var combineFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "lmt_combine_failures_total",
	Help: "Number of failed combine calls",
}, []string{"hasher"})

var combineDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "lmt_combine_duration_seconds",
	Help:    "Duration of combine calls",
	Buckets: prometheus.ExponentialBuckets(0.000001, 4, 12),
}, []string{"hasher"})

// InstrumentedCombiner records Prometheus metrics for every call of the
// combiner it wraps, labelled with the hasher name.
type InstrumentedCombiner struct {
	next     lmt.Combiner
	calls    prometheus.Counter
	failures prometheus.Counter
	duration prometheus.Observer
}

// NewInstrumented wraps next, reporting its calls under the hasher label name.
func NewInstrumented(next lmt.Combiner, name string) *InstrumentedCombiner {
	return &InstrumentedCombiner{
		next:     next,
		calls:    combineCalls.WithLabelValues(name),
		failures: combineFailures.WithLabelValues(name),
		duration: combineDuration.WithLabelValues(name),
	}
}

func (c *InstrumentedCombiner) Combine(left, right lmt.Hash) (lmt.Hash, error) {
	start := time.Now()
	h, err := c.next.Combine(left, right)
	c.duration.Observe(time.Since(start).Seconds())
	c.calls.Inc()
	if err != nil {
		c.failures.Inc()
	}
	return h, err
}

package bridge

import (
	"time"

	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
)

// Run outcomes reported on the runs counter and duration histogram.
const (
	OutcomeFinish    = "finish"
	OutcomeFailure   = "failure"
	OutcomeAbandoned = "abandoned"
)

// Metrics instruments the worker side of a run. All fields must be
// non-nil; NopMetrics supplies discarding defaults.
type Metrics struct {
	Items    metrics.Counter
	Runs     metrics.Counter
	Duration metrics.Histogram
}

// NopMetrics returns a Metrics that discards every observation.
func NopMetrics() *Metrics {
	return &Metrics{
		Items:    discard.NewCounter(),
		Runs:     discard.NewCounter(),
		Duration: discard.NewHistogram(),
	}
}

func (m *Metrics) observeRun(outcome string, begin time.Time) {
	m.Runs.With("outcome", outcome).Add(1)
	m.Duration.With("outcome", outcome).Observe(time.Since(begin).Seconds())
}

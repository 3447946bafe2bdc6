package metrics

import (
	"time"

	"github.com/coinsurf-com/invite/pkg"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks bind outcomes and notification delivery.
type Metrics struct {
	Binds          *prometheus.CounterVec
	BindDuration   prometheus.Histogram
	NotifyFailures *prometheus.CounterVec
}

// New registers every metric with the default registry.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Binds: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "invite_binds_total",
			Help: "Bind attempts by result (ok, rejected, failed)",
		}, []string{"result"}),
		BindDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "invite_bind_duration_seconds",
			Help:    "Duration of bind operations including persistence",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		NotifyFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "invite_notify_failures_total",
			Help: "Bind events a notifier failed to deliver",
		}, []string{"notifier"}),
	}
}

// ObserveBind records the outcome of one bind. Call with time.Now() taken before the bind.
func (m *Metrics) ObserveBind(start time.Time, err error) {
	m.BindDuration.Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
		m.Binds.WithLabelValues("ok").Inc()
	case pkg.IsRejection(err):
		m.Binds.WithLabelValues("rejected").Inc()
	default:
		m.Binds.WithLabelValues("failed").Inc()
	}
}

func (m *Metrics) IncrementNotifyFailure(notifier string) {
	m.NotifyFailures.WithLabelValues(notifier).Inc()
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// SettlementMetrics records outcomes of settlement requests.
type SettlementMetrics struct {
	duration *prometheus.HistogramVec
	accepted *prometheus.CounterVec
	rejected *prometheus.CounterVec
}

// NewSettlementMetrics registers the settlement metrics on the provided
// registerer.
func NewSettlementMetrics(reg prometheus.Registerer) *SettlementMetrics {
	if reg == nil {
		return &SettlementMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "settlement_duration_seconds",
		Help:    "Duration of settlement requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"service_type"})
	accepted := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "settlement_accepted_total",
		Help: "Accepted settlement requests.",
	}, []string{"service_type"})
	rejected := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "settlement_rejected_total",
		Help: "Rejected settlement requests.",
	}, []string{"service_type", "reason"})
	reg.MustRegister(duration, accepted, rejected)
	return &SettlementMetrics{
		duration: duration,
		accepted: accepted,
		rejected: rejected,
	}
}

// ObserveDuration records the duration for the given service type.
func (s *SettlementMetrics) ObserveDuration(serviceType string, duration time.Duration) {
	if s == nil || s.duration == nil {
		return
	}
	s.duration.WithLabelValues(normalizeLabel(serviceType)).Observe(duration.Seconds())
}

// IncAccepted increments the accepted counter for the given service type.
func (s *SettlementMetrics) IncAccepted(serviceType string) {
	if s == nil || s.accepted == nil {
		return
	}
	s.accepted.WithLabelValues(normalizeLabel(serviceType)).Inc()
}

// IncRejected increments the rejected counter for the given service type and
// rejection reason.
func (s *SettlementMetrics) IncRejected(serviceType, reason string) {
	if s == nil || s.rejected == nil {
		return
	}
	s.rejected.WithLabelValues(normalizeLabel(serviceType), normalizeLabel(reason)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}

package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters for the booking engine's two hot paths.
type BookingMetrics struct {
	commitsTotal      *prometheus.CounterVec
	availabilityTotal *prometheus.CounterVec
	commitLatency     prometheus.Histogram
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		commitsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "marcahora",
			Subsystem: "booking",
			Name:      "commits_total",
			Help:      "Booking commit attempts by result",
		}, []string{"result"}),
		availabilityTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "marcahora",
			Subsystem: "booking",
			Name:      "availability_requests_total",
			Help:      "Availability resolutions by outcome",
		}, []string{"outcome"}),
		commitLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "marcahora",
			Subsystem: "booking",
			Name:      "commit_latency_seconds",
			Help:      "Latency of booking commits",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.commitsTotal, m.availabilityTotal, m.commitLatency)
	return m
}

func (m *BookingMetrics) ObserveCommit(result string) {
	if m == nil {
		return
	}
	m.commitsTotal.WithLabelValues(result).Inc()
}

func (m *BookingMetrics) ObserveAvailability(outcome string) {
	if m == nil {
		return
	}
	m.availabilityTotal.WithLabelValues(outcome).Inc()
}

func (m *BookingMetrics) ObserveCommitLatency(seconds float64) {
	if m == nil {
		return
	}
	m.commitLatency.Observe(seconds)
}

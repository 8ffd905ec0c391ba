package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "ingress_errors"

// Metrics collects what the responder does. A nil *Metrics records nothing.
type Metrics struct {
	requests    *prometheus.CounterVec
	fallbacks   *prometheus.CounterVec
	readSeconds prometheus.Histogram
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Requests handled, by outcome.",
		}, []string{"outcome"}),
		fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "header_fallbacks_total",
			Help:      "Signaling headers replaced by their default, by header.",
		}, []string{"header"}),
		readSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "template_read_seconds",
			Help:      "Time spent opening and reading template files.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
	}
	reg.MustRegister(m.requests, m.fallbacks, m.readSeconds)
	return m
}

func (m *Metrics) Request(outcome string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Fallback(header string) {
	if m == nil {
		return
	}
	m.fallbacks.WithLabelValues(header).Inc()
}

func (m *Metrics) TemplateRead(d time.Duration) {
	if m == nil {
		return
	}
	m.readSeconds.Observe(d.Seconds())
}

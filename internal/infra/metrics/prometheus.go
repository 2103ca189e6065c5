// Package metrics provides Prometheus-based recording for scoring calls and HTTP traffic.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusRecorder struct {
	scoringTotal    *prometheus.CounterVec
	modelDuration   *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewPrometheusRecorder registers all collectors on reg. Pass
// prometheus.DefaultRegisterer in production and a fresh registry in tests.
func NewPrometheusRecorder(reg prometheus.Registerer) *PrometheusRecorder {
	factory := promauto.With(reg)
	return &PrometheusRecorder{
		scoringTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dateplan_scoring_total",
				Help: "Total number of plan scoring calls by outcome",
			},
			[]string{"outcome"},
		),
		modelDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dateplan_model_request_duration_seconds",
				Help:    "Duration of generative model calls in seconds",
				Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 15, 30, 60},
			},
			[]string{"outcome"},
		),
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dateplan_http_requests_total",
				Help: "Total number of HTTP requests by route, method and status",
			},
			[]string{"route", "method", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dateplan_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
	}
}

// ObserveScoring implements scoring.Recorder.
func (p *PrometheusRecorder) ObserveScoring(outcome string, modelLatency time.Duration) {
	p.scoringTotal.WithLabelValues(outcome).Inc()
	p.modelDuration.WithLabelValues(outcome).Observe(modelLatency.Seconds())
}

func (p *PrometheusRecorder) ObserveRequest(route, method string, status int, d time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	p.requestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	p.requestDuration.WithLabelValues(route, method).Observe(d.Seconds())
}

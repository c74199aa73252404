// Package metrics exposes the service's Prometheus instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	IngestRuns     *prometheus.CounterVec
	Campaigns      prometheus.Gauge
	RenderDuration *prometheus.HistogramVec
	HTTPRequests   *prometheus.CounterVec
}

// New registers the service collectors on reg and returns them.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		IngestRuns: f.NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_ingest_runs_total",
			Help: "Ingest runs by outcome.",
		}, []string{"outcome"}),
		Campaigns: f.NewGauge(prometheus.GaugeOpts{
			Name: "dashboard_snapshot_campaigns",
			Help: "Campaigns in the current snapshot.",
		}),
		RenderDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dashboard_render_duration_seconds",
			Help:    "Aggregation and geometry time per dashboard view.",
			Buckets: prometheus.DefBuckets,
		}, []string{"view"}),
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_http_requests_total",
			Help: "HTTP requests by method, path and status.",
		}, []string{"method", "path", "status"}),
	}
}

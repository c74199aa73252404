package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AngelCh415/DASH_GO/internal/config"
	"github.com/AngelCh415/DASH_GO/internal/dashboard"
	"github.com/AngelCh415/DASH_GO/internal/ingest"
	"github.com/AngelCh415/DASH_GO/internal/metrics"
	"github.com/AngelCh415/DASH_GO/internal/utils"
)

func NewRouter(log *slog.Logger, cfg config.Config, f *ingest.Fetcher, svc *dashboard.Service, m *metrics.Metrics, reg *prometheus.Registry) http.Handler {
	mux := chi.NewRouter()
	mux.Use(utils.RequestID)
	mux.Use(utils.Logger(log))
	mux.Use(utils.CountRequests(m.HTTPRequests))

	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ok")) })
	mux.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ready")) })
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	mux.Post("/ingest/run", func(w http.ResponseWriter, r *http.Request) {
		if err := f.Run(r.Context()); err != nil {
			m.IngestRuns.WithLabelValues("error").Inc()
			http.Error(w, err.Error(), 502)
			return
		}
		m.IngestRuns.WithLabelValues("ok").Inc()
		w.WriteHeader(202)
		w.Write([]byte("ingest complete"))
	})

	mux.Group(func(r chi.Router) {
		r.Use(utils.RateLimit(cfg.RateLimitRPS, cfg.RateBurst))

		r.Get("/dashboard/overview", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, svc.Overview())
		})
		r.Get("/dashboard/devices", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, svc.Devices())
		})
		r.Get("/dashboard/weekly", func(w http.ResponseWriter, r *http.Request) {
			h := dashboard.DefaultChartHeight
			if q := r.URL.Query().Get("chart_height"); q != "" {
				if v, err := strconv.ParseFloat(q, 64); err == nil && v > 0 {
					h = v
				}
			}
			writeJSON(w, svc.Weekly(h))
		})
		r.Get("/dashboard/regions", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, svc.Regions())
		})
		r.Get("/dashboard/demographics", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, svc.Demographics())
		})
	})

	return mux
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	enc.Encode(v)
}

package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/AngelCh415/DASH_GO/internal/config"
	"github.com/AngelCh415/DASH_GO/internal/dashboard"
	"github.com/AngelCh415/DASH_GO/internal/geo"
	"github.com/AngelCh415/DASH_GO/internal/httpx"
	"github.com/AngelCh415/DASH_GO/internal/ingest"
	"github.com/AngelCh415/DASH_GO/internal/metrics"
	"github.com/AngelCh415/DASH_GO/internal/scheduler"
	"github.com/AngelCh415/DASH_GO/internal/store"
)

func main() {
	_ = godotenv.Load() // .env opcional
	cfg := config.FromEnv()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	m := metrics.New(reg)

	refs, err := geo.ReferencePoints()
	if err != nil {
		logger.Error("reference table", slog.String("err", err.Error()))
		os.Exit(1)
	}

	cl := ingest.NewHTTPClient(cfg.HTTPTimeout)
	st := store.NewMemoryStore()
	fetcher := ingest.NewFetcher(cl, st, logger, cfg, m)
	svc := dashboard.NewService(st, refs, m)

	sched, err := scheduler.Start(cfg.RefreshCron, fetcher, m, logger)
	if err != nil {
		logger.Error("scheduler", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer sched.Stop()

	r := httpx.NewRouter(logger, cfg, fetcher, svc, m, reg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("starting server", slog.String("port", cfg.Port))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", slog.String("err", err.Error()))
		os.Exit(1)
	}
}

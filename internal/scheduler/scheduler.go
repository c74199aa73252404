// Package scheduler re-runs the snapshot fetch on a cron schedule so the
// dashboard stays close to the upstream dataset without manual triggers.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/AngelCh415/DASH_GO/internal/ingest"
	"github.com/AngelCh415/DASH_GO/internal/metrics"
)

type Scheduler struct {
	cron *cron.Cron
	log  *slog.Logger
}

// Start registers spec (standard 5-field cron syntax) and begins running.
// An empty spec disables the scheduler and returns nil.
func Start(spec string, f *ingest.Fetcher, m *metrics.Metrics, log *slog.Logger) (*Scheduler, error) {
	if spec == "" {
		return nil, nil
	}
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := f.Run(ctx); err != nil {
			m.IngestRuns.WithLabelValues("error").Inc()
			log.Error("scheduled ingest failed", slog.String("err", err.Error()))
			return
		}
		m.IngestRuns.WithLabelValues("ok").Inc()
	})
	if err != nil {
		return nil, fmt.Errorf("invalid refresh cron %q: %w", spec, err)
	}
	c.Start()
	log.Info("refresh scheduler started", slog.String("spec", spec))
	return &Scheduler{cron: c, log: log}, nil
}

// Stop halts scheduling and waits for a running job to finish.
func (s *Scheduler) Stop() {
	if s == nil {
		return
	}
	<-s.cron.Stop().Done()
}

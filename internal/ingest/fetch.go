package ingest

import (
	"context"
	"log/slog"
	"strings"

	"github.com/AngelCh415/DASH_GO/internal/config"
	"github.com/AngelCh415/DASH_GO/internal/metrics"
	"github.com/AngelCh415/DASH_GO/internal/models"
	"github.com/AngelCh415/DASH_GO/internal/store"
)

// Fetcher pulls the campaign dataset from the upstream analytics API and
// swaps it into the snapshot store. It is the only asynchronous edge of
// the system; everything downstream is a pure transform of the snapshot.
type Fetcher struct {
	c   HTTPClient
	st  *store.MemoryStore
	log *slog.Logger
	cfg config.Config
	m   *metrics.Metrics
}

func NewFetcher(c HTTPClient, st *store.MemoryStore, log *slog.Logger, cfg config.Config, m *metrics.Metrics) *Fetcher {
	return &Fetcher{c: c, st: st, log: log, cfg: cfg, m: m}
}

type datasetResp struct {
	Campaigns []models.Campaign `json:"campaigns"`
}

// Run fetches a complete dataset and replaces the current snapshot. On any
// fetch or decode error the previous snapshot stays installed; a partial
// dataset is never exposed.
func (f *Fetcher) Run(ctx context.Context) error {
	var resp datasetResp
	if err := GetJSONWithRetry(ctx, f.c, f.cfg.DataAPIURL, &resp); err != nil {
		return err
	}

	campaigns := make([]models.Campaign, 0, len(resp.Campaigns))
	for _, c := range resp.Campaigns {
		c.ID = strings.TrimSpace(c.ID)
		c.Name = strings.TrimSpace(c.Name)
		campaigns = append(campaigns, c)
	}

	f.st.Replace(campaigns)
	if f.m != nil {
		f.m.Campaigns.Set(float64(len(campaigns)))
	}
	f.log.Info("snapshot replaced", slog.Int("campaigns", len(campaigns)))
	return nil
}

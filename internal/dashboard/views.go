package dashboard

import (
	"math"
	"time"

	"github.com/AngelCh415/DASH_GO/internal/aggregate"
	"github.com/AngelCh415/DASH_GO/internal/geometry"
	"github.com/AngelCh415/DASH_GO/internal/models"
)

// Ratios are the derived per-row metrics. Every division follows the same
// rule: zero or non-finite resolves to 0.
type Ratios struct {
	CTR            float64 `json:"ctr"`
	ConversionRate float64 `json:"conversion_rate"`
	CPA            float64 `json:"cpa"`
	ROAS           float64 `json:"roas"`
}

func ratiosFor(t models.Totals) Ratios {
	return Ratios{
		CTR:            aggregate.Round3(aggregate.SafeDiv(float64(t.Clicks), float64(t.Impressions))),
		ConversionRate: aggregate.Round3(aggregate.SafeDiv(float64(t.Conversions), float64(t.Clicks))),
		CPA:            aggregate.Round2(aggregate.SafeDiv(t.Spend, float64(t.Conversions))),
		ROAS:           aggregate.Round2(aggregate.SafeDiv(t.Revenue, t.Spend)),
	}
}

type CampaignSummary struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Status  string  `json:"status"`
	Spend   float64 `json:"spend"`
	Revenue float64 `json:"revenue"`
	ROAS    float64 `json:"roas"`
}

type Overview struct {
	FetchedAt        time.Time         `json:"fetched_at"`
	TotalSpend       float64           `json:"total_spend"`
	TotalRevenue     float64           `json:"total_revenue"`
	TotalImpressions int               `json:"total_impressions"`
	TotalClicks      int               `json:"total_clicks"`
	TotalConversions int               `json:"total_conversions"`
	ROAS             float64           `json:"roas"`
	CTR              float64           `json:"ctr"`
	Campaigns        []CampaignSummary `json:"campaigns"`
}

type DeviceRowVM struct {
	models.DeviceRow
	Ratios
}

type DeviceView struct {
	Rows []DeviceRowVM `json:"rows"`
}

type WeekRowVM struct {
	models.WeekRow
	Ratios
}

type WeeklyView struct {
	Rows  []WeekRowVM        `json:"rows"`
	Chart *geometry.LinePath `json:"chart,omitempty"`
}

type RegionRowVM struct {
	models.RegionRow
	Ratios
}

type RegionView struct {
	Rows    []RegionRowVM     `json:"rows"`
	Bubbles []geometry.Bubble `json:"bubbles"`
}

type DemographicRowVM struct {
	models.DemographicRow
	Ratios
}

type DemographicView struct {
	Rows []DemographicRowVM `json:"rows"`
}

// sane and pos mirror the aggregation sanitizers for campaign-level fields
// read outside the aggregator.
func sane(f float64) float64 {
	if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func pos(i int) int {
	if i < 0 {
		return 0
	}
	return i
}

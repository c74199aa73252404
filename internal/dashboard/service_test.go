package dashboard

import (
	"testing"

	"github.com/AngelCh415/DASH_GO/internal/geo"
	"github.com/AngelCh415/DASH_GO/internal/models"
	"github.com/AngelCh415/DASH_GO/internal/store"
)

func seeded(campaigns []models.Campaign, refs []geo.ReferencePoint) *Service {
	st := store.NewMemoryStore()
	st.Replace(campaigns)
	return NewService(st, refs, nil)
}

func TestOverviewZeroSpendROAS(t *testing.T) {
	svc := seeded([]models.Campaign{{ID: "C-1", Spend: 0, Revenue: 500}}, nil)
	out := svc.Overview()
	if out.ROAS != 0 {
		t.Fatalf("revenue/0 must resolve to 0, got %v", out.ROAS)
	}
	if out.Campaigns[0].ROAS != 0 {
		t.Fatalf("per-campaign ROAS: got %v, want 0", out.Campaigns[0].ROAS)
	}
	if out.TotalRevenue != 500 {
		t.Fatalf("revenue lost: %v", out.TotalRevenue)
	}
}

func TestOverviewCampaignsSortedByRevenueDesc(t *testing.T) {
	svc := seeded([]models.Campaign{
		{ID: "low", Revenue: 10},
		{ID: "high", Revenue: 1000},
		{ID: "mid", Revenue: 100},
	}, nil)
	out := svc.Overview()
	want := []string{"high", "mid", "low"}
	for i, id := range want {
		if out.Campaigns[i].ID != id {
			t.Fatalf("position %d: got %s, want %s", i, out.Campaigns[i].ID, id)
		}
	}
}

func TestDevicesSortedByRevenueWithRatios(t *testing.T) {
	svc := seeded([]models.Campaign{{
		DevicePerformance: []models.DevicePerformance{
			{Device: "tablet", Impressions: 1000, Clicks: 10, Conversions: 2, Spend: 100, Revenue: 50},
			{Device: "mobile", Impressions: 2000, Clicks: 40, Conversions: 8, Spend: 200, Revenue: 800},
		},
	}}, nil)
	view := svc.Devices()
	if view.Rows[0].Device != "mobile" {
		t.Fatalf("expected mobile first, got %s", view.Rows[0].Device)
	}
	if view.Rows[0].ROAS != 4 {
		t.Fatalf("mobile ROAS: got %v, want 4", view.Rows[0].ROAS)
	}
	if view.Rows[0].CTR != 0.02 {
		t.Fatalf("mobile CTR: got %v, want 0.02", view.Rows[0].CTR)
	}
}

func TestWeeklyAttachesChart(t *testing.T) {
	svc := seeded([]models.Campaign{{
		WeeklyPerformance: []models.WeeklyPerformance{
			{WeekStart: "2024-01-08", Revenue: 200},
			{WeekStart: "2024-01-01", Revenue: 100},
		},
	}}, nil)
	view := svc.Weekly(0) // 0 -> altura por defecto
	if view.Chart == nil {
		t.Fatal("expected chart geometry")
	}
	if view.Rows[0].WeekStart != "2024-01-01" {
		t.Fatalf("rows not chronological: %+v", view.Rows)
	}
	if view.Chart.Points[0].Source.Label != "2024-01-01" {
		t.Fatalf("series must follow row order: %+v", view.Chart.Points[0].Source)
	}
}

func TestWeeklyEmptySnapshotHasNoChart(t *testing.T) {
	view := seeded(nil, nil).Weekly(300)
	if view.Chart != nil {
		t.Fatal("no data should mean no chart, not a degenerate one")
	}
	if len(view.Rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(view.Rows))
	}
}

func TestRegionsUnionWithReferenceTable(t *testing.T) {
	refs := []geo.ReferencePoint{
		{City: "London", Country: "United Kingdom", Lon: -0.1276, Lat: 51.5074},
		{City: "Tokyo", Country: "Japan", Lon: 139.6917, Lat: 35.6895},
	}
	svc := seeded([]models.Campaign{{
		RegionalPerformance: []models.RegionalPerformance{
			{Region: "London", Country: "United Kingdom", Spend: 100, Revenue: 5000},
		},
	}}, refs)
	view := svc.Regions()

	// la unión es política de pantalla: las filas agregadas no cambian
	if len(view.Rows) != 1 {
		t.Fatalf("aggregation output altered by union: %d rows", len(view.Rows))
	}
	if len(view.Bubbles) != 2 {
		t.Fatalf("expected both reference cities plotted, got %d", len(view.Bubbles))
	}
	london, tokyo := -1, -1
	for i := range view.Bubbles {
		switch view.Bubbles[i].City {
		case "London":
			london = i
		case "Tokyo":
			tokyo = i
		}
	}
	if london < 0 || tokyo < 0 {
		t.Fatalf("missing cities: %+v", view.Bubbles)
	}
	if view.Bubbles[london].Value != 5000 || view.Bubbles[london].SecondaryValue != 100 {
		t.Fatalf("matched row values wrong: %+v", view.Bubbles[london])
	}
	if view.Bubbles[tokyo].Value != geo.SentinelValue {
		t.Fatalf("unmatched reference city should carry the sentinel, got %v", view.Bubbles[tokyo].Value)
	}
}

func TestDemographicsView(t *testing.T) {
	svc := seeded([]models.Campaign{{
		Spend: 1000, Revenue: 2000,
		DemographicBreakdown: []models.DemographicBreakdown{
			{AgeGroup: "25-34", Gender: "female", PercentageOfAudience: 25, Impressions: 100, Clicks: 4},
		},
	}}, nil)
	view := svc.Demographics()
	if len(view.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(view.Rows))
	}
	r := view.Rows[0]
	if r.Spend != 250 || r.Revenue != 500 {
		t.Fatalf("ratio split wrong: %+v", r.Totals)
	}
	if r.ROAS != 2 {
		t.Fatalf("ROAS: got %v, want 2", r.ROAS)
	}
}

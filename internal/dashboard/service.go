// Package dashboard composes aggregation and geometry into the view
// models the rendering widgets consume. Every view is recomputed from the
// current snapshot on each call; nothing here is cached or mutated in
// place.
package dashboard

import (
	"sort"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/AngelCh415/DASH_GO/internal/aggregate"
	"github.com/AngelCh415/DASH_GO/internal/geo"
	"github.com/AngelCh415/DASH_GO/internal/geometry"
	"github.com/AngelCh415/DASH_GO/internal/metrics"
	"github.com/AngelCh415/DASH_GO/internal/store"
)

const DefaultChartHeight = 300.0

type Service struct {
	st   *store.MemoryStore
	refs []geo.ReferencePoint
	m    *metrics.Metrics
}

// NewService wires the snapshot store, the fixed reference-point table for
// the bubble view and the prometheus collectors (nil disables timing).
func NewService(st *store.MemoryStore, refs []geo.ReferencePoint, m *metrics.Metrics) *Service {
	return &Service{st: st, refs: refs, m: m}
}

// Overview is the top-of-page card plus the campaign table, ordered by
// descending revenue.
func (s *Service) Overview() Overview {
	defer s.timeView("overview")()
	campaigns, fetchedAt := s.st.Snapshot()

	out := Overview{FetchedAt: fetchedAt, Campaigns: []CampaignSummary{}}
	for _, c := range campaigns {
		spend := sane(c.Spend)
		revenue := sane(c.Revenue)
		out.TotalSpend += spend
		out.TotalRevenue += revenue
		out.Campaigns = append(out.Campaigns, CampaignSummary{
			ID:      c.ID,
			Name:    c.Name,
			Status:  c.Status,
			Spend:   aggregate.Round2(spend),
			Revenue: aggregate.Round2(revenue),
			ROAS:    aggregate.Round2(aggregate.SafeDiv(revenue, spend)),
		})
		for _, d := range c.DevicePerformance {
			out.TotalImpressions += pos(d.Impressions)
			out.TotalClicks += pos(d.Clicks)
			out.TotalConversions += pos(d.Conversions)
		}
	}
	// orden impuesto aquí, nunca implícito en la agregación
	sort.SliceStable(out.Campaigns, func(i, j int) bool {
		return out.Campaigns[i].Revenue > out.Campaigns[j].Revenue
	})
	out.TotalSpend = aggregate.Round2(out.TotalSpend)
	out.TotalRevenue = aggregate.Round2(out.TotalRevenue)
	out.ROAS = aggregate.Round2(aggregate.SafeDiv(out.TotalRevenue, out.TotalSpend))
	out.CTR = aggregate.Round3(aggregate.SafeDiv(float64(out.TotalClicks), float64(out.TotalImpressions)))
	return out
}

// Devices aggregates by device name and orders rows by descending revenue.
func (s *Service) Devices() DeviceView {
	defer s.timeView("devices")()
	campaigns, _ := s.st.Snapshot()
	rows := aggregate.ByDevice(campaigns)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Revenue > rows[j].Revenue })

	view := DeviceView{Rows: make([]DeviceRowVM, 0, len(rows))}
	for _, r := range rows {
		view.Rows = append(view.Rows, DeviceRowVM{DeviceRow: r, Ratios: ratiosFor(r.Totals)})
	}
	return view
}

// Weekly aggregates by week in chronological order and attaches line
// geometry for the revenue series. Chart is nil when there is nothing to
// plot; geometry assumes at least one point.
func (s *Service) Weekly(chartHeight float64) WeeklyView {
	defer s.timeView("weekly")()
	if chartHeight <= 0 {
		chartHeight = DefaultChartHeight
	}
	campaigns, _ := s.st.Snapshot()
	rows := aggregate.ByWeek(campaigns)

	view := WeeklyView{Rows: make([]WeekRowVM, 0, len(rows))}
	series := make([]geometry.SeriesPoint, 0, len(rows))
	for _, r := range rows {
		view.Rows = append(view.Rows, WeekRowVM{WeekRow: r, Ratios: ratiosFor(r.Totals)})
		series = append(series, geometry.SeriesPoint{Label: r.WeekStart, Value: r.Revenue})
	}
	if len(series) > 0 {
		chart := geometry.BuildLinePath(series, chartHeight)
		view.Chart = &chart
	}
	return view
}

// Regions aggregates by region name and unions the rows with the fixed
// reference table for the bubble map. The union only affects the rendered
// point set: reference cities without data get geo.SentinelValue, and
// aggregated rows without a reference coordinate stay in Rows but cannot
// be plotted.
func (s *Service) Regions() RegionView {
	defer s.timeView("regions")()
	campaigns, _ := s.st.Snapshot()
	rows := aggregate.ByRegion(campaigns)

	view := RegionView{Rows: make([]RegionRowVM, 0, len(rows))}
	byRegion := make(map[string]int, len(rows))
	for i, r := range rows {
		view.Rows = append(view.Rows, RegionRowVM{RegionRow: r, Ratios: ratiosFor(r.Totals)})
		byRegion[r.Region] = i
	}

	points := make([]geometry.GeoPoint, 0, len(s.refs))
	for _, ref := range s.refs {
		p := geometry.GeoPoint{
			City:    ref.City,
			Country: ref.Country,
			Lon:     ref.Lon,
			Lat:     ref.Lat,
			Value:   geo.SentinelValue,
		}
		if i, ok := byRegion[ref.City]; ok {
			p.Country = rows[i].Country
			if p.Country == "" {
				p.Country = ref.Country
			}
			p.Value = rows[i].Revenue
			p.SecondaryValue = rows[i].Spend
		}
		points = append(points, p)
	}
	view.Bubbles = geometry.ProjectAndSize(points)
	return view
}

// Demographics aggregates by (age group, gender) with the audience-share
// split applied per record.
func (s *Service) Demographics() DemographicView {
	defer s.timeView("demographics")()
	campaigns, _ := s.st.Snapshot()
	rows := aggregate.ByDemographic(campaigns)

	view := DemographicView{Rows: make([]DemographicRowVM, 0, len(rows))}
	for _, r := range rows {
		view.Rows = append(view.Rows, DemographicRowVM{DemographicRow: r, Ratios: ratiosFor(r.Totals)})
	}
	return view
}

func (s *Service) timeView(view string) func() {
	if s.m == nil {
		return func() {}
	}
	t := prometheus.NewTimer(s.m.RenderDuration.WithLabelValues(view))
	return func() { t.ObserveDuration() }
}

// Package aggregate rolls up per-campaign breakdown lists into flat rows
// keyed by one dimension (device, week, region, demographic segment).
// Every function is pure and total: bad numbers degrade to 0, a campaign
// without the selected breakdown contributes no rows, empty in = empty out.
package aggregate

import (
	"sort"
	"time"

	"github.com/AngelCh415/DASH_GO/internal/models"
)

// ByDevice groups device_performance records by device name.
// Output order is first-encounter order across campaigns.
func ByDevice(campaigns []models.Campaign) []models.DeviceRow {
	g := newGrouped[models.DeviceRow]()
	for _, c := range campaigns {
		for _, r := range c.DevicePerformance {
			row := g.at(r.Device, func() *models.DeviceRow {
				return &models.DeviceRow{Device: r.Device}
			})
			addTotals(&row.Totals, r.Impressions, r.Clicks, r.Conversions, r.Spend, r.Revenue)
		}
	}
	return g.rows()
}

// ByWeek groups weekly_performance records by week_start and returns the
// rows in chronological order. Ordering compares parsed dates, not strings;
// week_end is captured from the first record seen for a week and never
// overwritten, even when later records disagree.
func ByWeek(campaigns []models.Campaign) []models.WeekRow {
	g := newGrouped[models.WeekRow]()
	for _, c := range campaigns {
		for _, r := range c.WeeklyPerformance {
			row := g.at(r.WeekStart, func() *models.WeekRow {
				return &models.WeekRow{WeekStart: r.WeekStart, WeekEnd: r.WeekEnd}
			})
			addTotals(&row.Totals, r.Impressions, r.Clicks, r.Conversions, r.Spend, r.Revenue)
		}
	}
	rows := g.rows()
	sort.SliceStable(rows, func(i, j int) bool {
		return weekDate(rows[i].WeekStart).Before(weekDate(rows[j].WeekStart))
	})
	return rows
}

// ByRegion groups regional_performance records by region name, in
// first-encounter order. Country is first-write-wins.
func ByRegion(campaigns []models.Campaign) []models.RegionRow {
	g := newGrouped[models.RegionRow]()
	for _, c := range campaigns {
		for _, r := range c.RegionalPerformance {
			row := g.at(r.Region, func() *models.RegionRow {
				return &models.RegionRow{Region: r.Region, Country: r.Country}
			})
			addTotals(&row.Totals, r.Impressions, r.Clicks, r.Conversions, r.Spend, r.Revenue)
		}
	}
	return g.rows()
}

// ByDemographic groups demographic_breakdown records by (age_group, gender).
// Demographic records carry no spend/revenue of their own: each record's
// share of the campaign totals is spend * percentage_of_audience/100 (same
// for revenue), applied per record per campaign before accumulation.
func ByDemographic(campaigns []models.Campaign) []models.DemographicRow {
	g := newGrouped[models.DemographicRow]()
	for _, c := range campaigns {
		for _, r := range c.DemographicBreakdown {
			key := r.AgeGroup + "\x00" + r.Gender
			row := g.at(key, func() *models.DemographicRow {
				return &models.DemographicRow{AgeGroup: r.AgeGroup, Gender: r.Gender}
			})
			share := maxf(r.PercentageOfAudience) / 100
			addTotals(&row.Totals, r.Impressions, r.Clicks, r.Conversions,
				maxf(c.Spend)*share, maxf(c.Revenue)*share)
		}
	}
	return g.rows()
}

func addTotals(t *models.Totals, impressions, clicks, conversions int, spend, revenue float64) {
	t.Impressions += max0(impressions)
	t.Clicks += max0(clicks)
	t.Conversions += max0(conversions)
	t.Spend += maxf(spend)
	t.Revenue += maxf(revenue)
}

func weekDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{} // fechas rotas al inicio
	}
	return t
}

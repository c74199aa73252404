package models

// Campaign is one element of the upstream {campaigns: [...]} payload.
// The snapshot is immutable for the duration of a render pass; the engine
// trusts the shape and sanitizes values instead of validating schema.
type Campaign struct {
	ID                   string                 `json:"id"`
	Name                 string                 `json:"name"`
	Status               string                 `json:"status"`
	Spend                float64                `json:"spend"`
	Revenue              float64                `json:"revenue"`
	DevicePerformance    []DevicePerformance    `json:"device_performance"`
	WeeklyPerformance    []WeeklyPerformance    `json:"weekly_performance"`
	RegionalPerformance  []RegionalPerformance  `json:"regional_performance"`
	DemographicBreakdown []DemographicBreakdown `json:"demographic_breakdown"`
}

type DevicePerformance struct {
	Device      string  `json:"device"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Conversions int     `json:"conversions"`
	Spend       float64 `json:"spend"`
	Revenue     float64 `json:"revenue"`
}

type WeeklyPerformance struct {
	WeekStart   string  `json:"week_start"` // YYYY-MM-DD
	WeekEnd     string  `json:"week_end"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Conversions int     `json:"conversions"`
	Spend       float64 `json:"spend"`
	Revenue     float64 `json:"revenue"`
}

type RegionalPerformance struct {
	Region      string  `json:"region"`
	Country     string  `json:"country"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Conversions int     `json:"conversions"`
	Spend       float64 `json:"spend"`
	Revenue     float64 `json:"revenue"`
}

type DemographicBreakdown struct {
	AgeGroup             string  `json:"age_group"`
	Gender               string  `json:"gender"`
	PercentageOfAudience float64 `json:"percentage_of_audience"` // 0-100
	Impressions          int     `json:"impressions"`
	Clicks               int     `json:"clicks"`
	Conversions          int     `json:"conversions"`
}

// Totals are the numeric fields every aggregation sums.
type Totals struct {
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Conversions int     `json:"conversions"`
	Spend       float64 `json:"spend"`
	Revenue     float64 `json:"revenue"`
}

// DeviceRow is one aggregated bucket per distinct device name.
type DeviceRow struct {
	Device string `json:"device"`
	Totals
}

// WeekRow is one aggregated bucket per distinct week_start, emitted in
// chronological order. WeekEnd is captured from the first record seen.
type WeekRow struct {
	WeekStart string `json:"week_start"`
	WeekEnd   string `json:"week_end"`
	Totals
}

// RegionRow is one aggregated bucket per distinct region name, emitted in
// first-encounter order. Country is captured from the first record seen.
type RegionRow struct {
	Region  string `json:"region"`
	Country string `json:"country"`
	Totals
}

// DemographicRow is one aggregated bucket per distinct (age_group, gender)
// pair. Spend and Revenue are the campaign-level amounts split by each
// record's audience share before summing.
type DemographicRow struct {
	AgeGroup string `json:"age_group"`
	Gender   string `json:"gender"`
	Totals
}

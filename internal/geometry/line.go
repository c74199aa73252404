// Package geometry converts derived numeric series into chart geometry:
// SVG polyline paths for line charts and projected, size-encoded points
// for the bubble map. All functions are deterministic and side-effect
// free; min/max are recomputed on every call.
package geometry

import (
	"fmt"
	"strings"
)

// LineWidth is the normalized horizontal extent of a line chart. The
// caller scales via viewport, so geometry stays resolution independent.
const LineWidth = 100.0

// SeriesPoint is one (label, value) input to BuildLinePath.
type SeriesPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// PlotPoint is a resolved plot coordinate carrying its source point back
// for tooltips and legends.
type PlotPoint struct {
	X      float64     `json:"x"`
	Y      float64     `json:"y"`
	Source SeriesPoint `json:"source"`
}

// LinePath is the renderable output of BuildLinePath.
type LinePath struct {
	PathD     string      `json:"path_d"`
	AreaPathD string      `json:"area_path_d"`
	Points    []PlotPoint `json:"points"`
}

// BuildLinePath maps an ordered series onto [0,LineWidth] x [0,chartHeight]
// with larger values toward the top (smaller y). The caller filters out
// empty series; len(series) >= 1 is assumed. A single point sits at x=0,
// and a flat series (range 0) substitutes a range of 1 so every point
// lands on the same y instead of propagating NaN.
func BuildLinePath(series []SeriesPoint, chartHeight float64) LinePath {
	min, max := series[0].Value, series[0].Value
	for _, p := range series[1:] {
		if p.Value < min {
			min = p.Value
		}
		if p.Value > max {
			max = p.Value
		}
	}
	rng := max - min
	if rng == 0 {
		rng = 1
	}

	points := make([]PlotPoint, 0, len(series))
	for i, p := range series {
		x := 0.0
		if len(series) > 1 {
			x = float64(i) / float64(len(series)-1) * LineWidth
		}
		y := chartHeight - (p.Value-min)/rng*chartHeight
		points = append(points, PlotPoint{X: x, Y: y, Source: p})
	}

	var d strings.Builder
	for i, pt := range points {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(&d, "%s %s %s ", cmd, trim(pt.X), trim(pt.Y))
	}
	pathD := strings.TrimSpace(d.String())

	// cierre hasta la línea base para el relleno
	last := points[len(points)-1]
	areaD := fmt.Sprintf("%s L %s %s L 0 %s Z",
		pathD, trim(last.X), trim(chartHeight), trim(chartHeight))

	return LinePath{PathD: pathD, AreaPathD: areaD, Points: points}
}

// trim formats a coordinate with fixed precision so identical input always
// yields byte-identical path strings.
func trim(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

package geometry

// Bubble map view box and radius encoding bounds.
const (
	ViewWidth  = 1000.0
	ViewHeight = 500.0

	MinRadius = 10.0
	MaxRadius = 60.0
	MidRadius = 35.0 // cuando todos los valores son iguales
)

// GeoPoint is a value anchored at a longitude/latitude pair.
type GeoPoint struct {
	City           string  `json:"city"`
	Country        string  `json:"country"`
	Lon            float64 `json:"lon"`
	Lat            float64 `json:"lat"`
	Value          float64 `json:"value"`
	SecondaryValue float64 `json:"secondary_value"`
}

// Bubble is a projected, size-encoded point ready for rendering.
type Bubble struct {
	GeoPoint
	SvgX   float64 `json:"svg_x"`
	SvgY   float64 `json:"svg_y"`
	Radius float64 `json:"radius"`
}

// ProjectAndSize maps each point onto the view box with a plain linear
// equirectangular projection (lon [-180,180] -> [0,ViewWidth], lat
// [-90,90] inverted -> [0,ViewHeight], north up). It is deliberately not
// a Mercator projection; downstream rendering depends on the linear
// mapping. Radius encodes Value linearly between MinRadius and MaxRadius
// against the min/max of this point set; if every value is equal, every
// bubble gets MidRadius.
func ProjectAndSize(points []GeoPoint) []Bubble {
	if len(points) == 0 {
		return []Bubble{}
	}
	min, max := points[0].Value, points[0].Value
	for _, p := range points[1:] {
		if p.Value < min {
			min = p.Value
		}
		if p.Value > max {
			max = p.Value
		}
	}
	rng := max - min

	out := make([]Bubble, 0, len(points))
	for _, p := range points {
		r := MidRadius
		if rng > 0 {
			r = MinRadius + (p.Value-min)/rng*(MaxRadius-MinRadius)
		}
		out = append(out, Bubble{
			GeoPoint: p,
			SvgX:     (p.Lon + 180) / 360 * ViewWidth,
			SvgY:     (90 - p.Lat) / 180 * ViewHeight,
			Radius:   r,
		})
	}
	return out
}

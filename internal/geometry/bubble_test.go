package geometry

import "testing"

func TestProjectCorners(t *testing.T) {
	pts := []GeoPoint{
		{City: "sw", Lon: -180, Lat: -90, Value: 1},
		{City: "ne", Lon: 180, Lat: 90, Value: 2},
		{City: "origin", Lon: 0, Lat: 0, Value: 3},
	}
	out := ProjectAndSize(pts)
	if out[0].SvgX != 0 || out[0].SvgY != ViewHeight {
		t.Fatalf("southwest corner: (%v, %v)", out[0].SvgX, out[0].SvgY)
	}
	if out[1].SvgX != ViewWidth || out[1].SvgY != 0 {
		t.Fatalf("northeast corner: (%v, %v)", out[1].SvgX, out[1].SvgY)
	}
	if out[2].SvgX != ViewWidth/2 || out[2].SvgY != ViewHeight/2 {
		t.Fatalf("origin should project to center: (%v, %v)", out[2].SvgX, out[2].SvgY)
	}
}

func TestRadiusBounds(t *testing.T) {
	pts := []GeoPoint{
		{Value: 100},
		{Value: 5500},
		{Value: 10000},
	}
	out := ProjectAndSize(pts)
	if out[0].Radius != MinRadius {
		t.Fatalf("min value radius %v, want %v", out[0].Radius, MinRadius)
	}
	if out[2].Radius != MaxRadius {
		t.Fatalf("max value radius %v, want %v", out[2].Radius, MaxRadius)
	}
	for _, b := range out {
		if b.Radius < MinRadius || b.Radius > MaxRadius {
			t.Fatalf("radius %v out of [%v,%v]", b.Radius, MinRadius, MaxRadius)
		}
	}
}

func TestAllEqualValuesGetMidRadius(t *testing.T) {
	out := ProjectAndSize([]GeoPoint{{Value: 42}, {Value: 42}, {Value: 42}})
	for _, b := range out {
		if b.Radius != MidRadius {
			t.Fatalf("expected %v for equal values, got %v", MidRadius, b.Radius)
		}
	}
}

func TestRelativeRadiusRecomputedPerCall(t *testing.T) {
	// sin caché: quitar el punto máximo cambia el radio de los demás
	a := ProjectAndSize([]GeoPoint{{Value: 10}, {Value: 20}, {Value: 100}})
	b := ProjectAndSize([]GeoPoint{{Value: 10}, {Value: 20}})
	if a[1].Radius == b[1].Radius {
		t.Fatal("radius should depend on the current point set")
	}
	if b[1].Radius != MaxRadius {
		t.Fatalf("20 is now the max, want %v got %v", MaxRadius, b[1].Radius)
	}
}

func TestEmptyPointSet(t *testing.T) {
	if out := ProjectAndSize(nil); len(out) != 0 {
		t.Fatalf("expected empty output, got %d", len(out))
	}
}

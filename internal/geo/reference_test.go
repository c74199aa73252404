package geo

import "testing"

func TestReferencePointsParse(t *testing.T) {
	refs, err := ReferencePoints()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(refs) == 0 {
		t.Fatal("empty reference table")
	}
	seen := map[string]bool{}
	for _, r := range refs {
		if r.City == "" || r.Country == "" {
			t.Fatalf("incomplete entry: %+v", r)
		}
		if r.Lon < -180 || r.Lon > 180 || r.Lat < -90 || r.Lat > 90 {
			t.Fatalf("out-of-range coordinates: %+v", r)
		}
		if seen[r.City] {
			t.Fatalf("duplicate city %q", r.City)
		}
		seen[r.City] = true
	}
}

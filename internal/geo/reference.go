// Package geo ships the fixed reference table of named geographic points
// used by the regional bubble view. The table is a display policy: cities
// in it are always plotted, even with no matching aggregated row, so the
// map keeps a recognizable shape regardless of the dataset.
package geo

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed cities.yaml
var citiesYAML []byte

// SentinelValue is used for reference cities with no aggregated data so
// they render as a visibly small bubble instead of disappearing.
const SentinelValue = 1000.0

// ReferencePoint is one fixed city with its plotting coordinates.
type ReferencePoint struct {
	City    string  `yaml:"city"`
	Country string  `yaml:"country"`
	Lon     float64 `yaml:"lon"`
	Lat     float64 `yaml:"lat"`
}

// ReferencePoints parses the embedded table. The file is part of the
// binary, so a parse failure is a build defect, not a runtime condition.
func ReferencePoints() ([]ReferencePoint, error) {
	var doc struct {
		Cities []ReferencePoint `yaml:"cities"`
	}
	if err := yaml.Unmarshal(citiesYAML, &doc); err != nil {
		return nil, fmt.Errorf("embedded cities table: %w", err)
	}
	return doc.Cities, nil
}

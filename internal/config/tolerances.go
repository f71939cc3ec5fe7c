// Package config holds the editable tolerances used for finding a cleaner
// output, and the run options derived from the CLI. Tolerances may be
// loaded from a YAML file and fall back to the documented defaults for any
// field left unset.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tolerances are the absolute-distance and ratio knobs every geometric
// predicate in the pipeline is parameterized by. Defaults match §6.
type Tolerances struct {
	// GeneralMappingUncertainty is the baseline for AlmostSame in predicates.
	GeneralMappingUncertainty float64 `yaml:"general_mapping_uncertainty"`

	// PointToPoint is the merge-distance for adjacent way vertices and the
	// cluster radius used by the point-cluster merger.
	PointToPoint float64 `yaml:"point_to_point"`

	// BarrierToRoom is the tolerance for the barrier-inside-room test.
	BarrierToRoom float64 `yaml:"barrier_to_room"`

	// DoorToRoom is the maximum perpendicular distance for door-snapping.
	DoorToRoom float64 `yaml:"door_to_room"`

	// RatioBarrierInBarrier is the allowed slack for the centroid-based
	// polygon-in-polygon test.
	RatioBarrierInBarrier float64 `yaml:"ratio_barrier_in_barrier"`

	// AngleTolDegrees is the collinear-vertex threshold used by the merger.
	AngleTolDegrees float64 `yaml:"angle_tol_degrees"`
}

// Default returns the §6 default tolerances.
func Default() Tolerances {
	return Tolerances{
		GeneralMappingUncertainty: 1e-7,
		PointToPoint:              2e-6,
		BarrierToRoom:             2e-6,
		DoorToRoom:                5e-6,
		RatioBarrierInBarrier:     0.25,
		AngleTolDegrees:           2.0,
	}
}

// Load reads tolerances from a YAML file at path, starting from Default()
// and overwriting any field present in the file. An empty path returns
// Default() unchanged.
func Load(path string) (Tolerances, error) {
	t := Default()
	if path == "" {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Tolerances{}, fmt.Errorf("reading tolerances config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tolerances{}, fmt.Errorf("parsing tolerances config %s: %w", path, err)
	}
	return t, nil
}

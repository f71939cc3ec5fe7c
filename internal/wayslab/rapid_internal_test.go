package wayslab

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/dshills/osmroutegen/internal/geom"
)

// Tolerance monotonicity law (§8): increasing point_to_point never
// increases the vertex count of any way. collapseNearDuplicates is the
// point_to_point-controlled primitive simplify() runs on every polyline;
// the law is checked directly against it rather than against the whole
// Build pipeline, since later phases (augment, splitIntersections) are
// governed by a different tolerance and would confound a whole-room
// before/after vertex-count comparison.
func TestCollapseNearDuplicates_MonotonicInPointToPoint(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(2, 12).Draw(t, "n")
		points := make([]geom.Point, n)
		for i := range points {
			x := rapid.IntRange(-100, 100).Draw(t, "x")
			y := rapid.IntRange(-100, 100).Draw(t, "y")
			points[i] = geom.Point{X: float64(x), Y: float64(y)}
		}
		loTol := float64(rapid.IntRange(0, 5).Draw(t, "loTol")) * 0.1
		hiExtra := float64(rapid.IntRange(0, 5).Draw(t, "hiExtra")) * 0.1
		hiTol := loTol + hiExtra

		lo := collapseNearDuplicates(points, loTol)
		hi := collapseNearDuplicates(points, hiTol)

		if len(hi) > len(lo) {
			t.Fatalf("increasing point_to_point from %v to %v grew vertex count from %d to %d", loTol, hiTol, len(lo), len(hi))
		}
	})
}

package skeleton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/osmroutegen/internal/geom"
	"github.com/dshills/osmroutegen/internal/skeleton"
)

const tol = 1e-6

func TestSkeletonize_SquareProducesArcsTowardCenter(t *testing.T) {
	outer := geom.NewPolygon([]geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}, "0")
	arcs := skeleton.Skeletonize(outer, nil)
	assert.NotEmpty(t, arcs)

	for _, a := range arcs {
		assert.True(t, geom.PointInPolygon(a.Source, outer, tol) || onBoundary(a.Source, outer))
		for _, s := range a.Sinks {
			assert.True(t, geom.PointInPolygon(s, outer, tol) || onBoundary(s, outer))
		}
	}
}

func onBoundary(p geom.Point, poly *geom.Polygon) bool {
	for i := 0; i < poly.Len(); i++ {
		if geom.PointOnEdge(p, poly.Edge(i), tol) {
			return true
		}
	}
	return false
}

func TestSkeletonize_DegeneratePolygonProducesNoArcs(t *testing.T) {
	tiny := geom.NewPolygon([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}, "0")
	assert.Empty(t, skeleton.Skeletonize(tiny, nil))
}

// A square with a centered hole produces spoke
// arcs from every hole vertex toward the outer boundary.
func TestSkeletonize_HoleProducesSpokes(t *testing.T) {
	outer := geom.NewPolygon([]geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}, "0")
	hole := geom.NewPolygon([]geom.Point{{X: 4, Y: 4}, {X: 6, Y: 4}, {X: 6, Y: 6}, {X: 4, Y: 6}}, "0")

	arcs := skeleton.Skeletonize(outer, []*geom.Polygon{hole})

	var spokeArcs int
	for _, a := range arcs {
		if geom.Contains(hole.Points(), a.Source, tol) {
			spokeArcs++
			assert.Len(t, a.Sinks, 1)
		}
	}
	assert.Greater(t, spokeArcs, 0)
}

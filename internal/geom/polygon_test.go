package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/osmroutegen/internal/geom"
)

func TestPolygonSimplify_RemovesCollinearVertex(t *testing.T) {
	p := geom.NewPolygon([]geom.Point{
		{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}, "0")
	p.Simplify(tol)
	assert.Equal(t, 4, p.Len())
}

func TestPolygonOrientation_CCWSquare(t *testing.T) {
	// Under the y-inverted convention this vertex order is CCW (shoelace sum
	// -200); square() runs the other way and is CW.
	p := geom.NewPolygon([]geom.Point{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}, "0")
	assert.Equal(t, geom.CCW, geom.PolygonOrientation(p))
}

func TestPolygonAt_Wraps(t *testing.T) {
	p := square()
	assert.True(t, p.At(0).Equal(p.At(4), tol))
	assert.True(t, p.At(-1).Equal(p.At(3), tol))
}

func TestPolygonCentroid(t *testing.T) {
	p := square()
	c := p.Centroid()
	assert.InDelta(t, 5, c.X, tol)
	assert.InDelta(t, 5, c.Y, tol)
}

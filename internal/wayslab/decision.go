package wayslab

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlath/core"

	"github.com/dshills/osmroutegen/internal/geom"
	"github.com/dshills/osmroutegen/internal/model"
)

// decisionNodes returns doors union every point that is an endpoint of >=3
// of the given ways (§4.4 Phase B.1). Membership is computed fresh from the
// current way list every call via a disposable undirected multigraph keyed
// by rounded point coordinates — lvlath/core.Graph.Degree reads back as the
// >=3-incidence test, replacing an O(n^2) nested scan over endpoint pairs.
func decisionNodes(ways []model.Way, doors []geom.Point, tol float64) []geom.Point {
	g := core.NewGraph(core.WithDirected(false), core.WithMultiEdges(), core.WithLoops())

	keyOf := func(p geom.Point) string {
		return pointKey(p, tol)
	}
	seen := map[string]geom.Point{}
	ensure := func(p geom.Point) string {
		k := keyOf(p)
		if _, ok := seen[k]; !ok {
			seen[k] = p
			_ = g.AddVertex(k) // a duplicate AddVertex call is rejected by lvlath and safely ignored here
		}
		return k
	}

	for _, w := range ways {
		pts := w.Points
		if len(pts) < 2 {
			continue
		}
		a := ensure(pts[0])
		b := ensure(pts[len(pts)-1])
		if _, err := g.AddEdge(a, b, 0); err != nil {
			// A duplicate vertex pair with WithMultiEdges() never errors; any
			// error here reflects a malformed way and is skipped defensively.
			continue
		}
	}

	out := make([]geom.Point, 0, len(doors))
	out = append(out, doors...)
	for k, p := range seen {
		_, _, undirected, err := g.Degree(k)
		if err != nil {
			continue
		}
		if undirected >= 3 && !geom.Contains(out, p, tol) {
			out = append(out, p)
		}
	}
	return out
}

// pointKey rounds p to a grid cell sized by tol, so that points rounding to
// the same cell map to the same graph vertex. Two points within tol of each
// other can still round to neighbouring cells and get different keys.
func pointKey(p geom.Point, tol float64) string {
	if tol <= 0 {
		tol = geom.DefaultTolerance
	}
	gx := math.Round(p.X / tol)
	gy := math.Round(p.Y / tol)
	return fmt.Sprintf("%.0f_%.0f", gx, gy)
}

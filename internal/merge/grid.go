package merge

import (
	"math"

	"github.com/dshills/osmroutegen/internal/geom"
)

// grid is the spatial index §9 calls for in place of repeated O(n^2)
// membership checks: points bucket into cells of side cell, keyed by
// floor(coord/cell), so a neighbor lookup only has to scan the 3x3 block
// of buckets around a point instead of every other point.
type grid struct {
	cell    float64
	buckets map[[2]int64][]string
}

func newGrid(cell float64) *grid {
	if cell <= 0 {
		cell = geom.DefaultTolerance
	}
	return &grid{cell: cell, buckets: make(map[[2]int64][]string)}
}

func (g *grid) cellKey(p geom.Point) [2]int64 {
	return [2]int64{int64(math.Floor(p.X / g.cell)), int64(math.Floor(p.Y / g.cell))}
}

func (g *grid) insert(id string, p geom.Point) {
	k := g.cellKey(p)
	g.buckets[k] = append(g.buckets[k], id)
}

// neighbors returns every id bucketed in the cell containing p or one of
// its 8 adjacent cells.
func (g *grid) neighbors(p geom.Point) []string {
	base := g.cellKey(p)
	var out []string
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			k := [2]int64{base[0] + dx, base[1] + dy}
			out = append(out, g.buckets[k]...)
		}
	}
	return out
}

package merge

import (
	"fmt"
	"math"
	"sort"

	"github.com/dshills/osmroutegen/internal/geom"
)

// findClusters is §4.6 step 3 for one level: an explicit-worklist flood
// fill (§9: replacing the source's recursive-call clustering) over every
// node on that level, grouping transitively-within-tol points. Only
// groups of >=2 survive as clusters.
func findClusters(g *Graph, level string, tol float64) [][]string {
	var ids []string
	for id, n := range g.Nodes {
		if n.Level == level {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids) // deterministic seed order

	idx := newGrid(tol)
	for _, id := range ids {
		idx.insert(id, g.point(id))
	}

	unassigned := make(map[string]bool, len(ids))
	for _, id := range ids {
		unassigned[id] = true
	}

	var clusters [][]string
	for _, seed := range ids {
		if !unassigned[seed] {
			continue
		}
		var cluster []string
		queue := []string{seed}
		unassigned[seed] = false
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			cluster = append(cluster, cur)
			for _, cand := range idx.neighbors(g.point(cur)) {
				if !unassigned[cand] {
					continue
				}
				if g.point(cand).Distance(g.point(cur)) <= tol {
					unassigned[cand] = false
					queue = append(queue, cand)
				}
			}
		}
		if len(cluster) >= 2 {
			sort.Strings(cluster)
			clusters = append(clusters, cluster)
		}
	}
	return clusters
}

// representative is §4.6 step 4: the tagged point if the cluster has one,
// else the centroid rounded to 11 decimal digits.
func representative(g *Graph, cluster []string) geom.Point {
	for _, id := range cluster {
		if g.Nodes[id].Tagged {
			return g.Nodes[id].Point
		}
	}
	pts := make([]geom.Point, len(cluster))
	for i, id := range cluster {
		pts[i] = g.Nodes[id].Point
	}
	return roundPoint(geom.Centroid(pts), 11)
}

func roundPoint(p geom.Point, digits int) geom.Point {
	scale := math.Pow(10, float64(digits))
	return geom.Point{X: math.Round(p.X*scale) / scale, Y: math.Round(p.Y*scale) / scale}
}

// rewriteClusters is §4.6 step 5's first half: every node in a cluster is
// overwritten to the cluster's representative coordinates (the id itself
// is kept; final coordinate-based dedup happens separately so that ways
// which already shared a node id are left untouched).
func rewriteClusters(g *Graph, clusters [][]string) {
	for _, cluster := range clusters {
		rep := representative(g, cluster)
		for _, id := range cluster {
			g.Nodes[id].Point = rep
		}
	}
}

// dedupeByCoordinate is §4.6 step 5's second half: nodes on the same
// level now sharing identical coordinates (whether from this pass's
// rewrite or already coincident on input) collapse to one surviving id,
// and every way reference is repointed to it. Scoped by level like
// findClusters, so two nodes that merely share X,Y on different floors
// — e.g. two connector-shaft centroids — are never collapsed together.
func dedupeByCoordinate(g *Graph) {
	keyOf := func(n *Node) string {
		return fmt.Sprintf("%s_%.*f_%.*f", n.Level, 11, n.Point.X, 11, n.Point.Y)
	}

	ids := make([]string, 0, len(g.Nodes))
	for id := range g.Nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	survivorOf := make(map[string]string, len(ids))
	remap := make(map[string]string)
	for _, id := range ids {
		k := keyOf(g.Nodes[id])
		if s, ok := survivorOf[k]; ok {
			remap[id] = s
		} else {
			survivorOf[k] = id
		}
	}

	for _, w := range g.Ways {
		for i, id := range w.NodeIDs {
			if s, ok := remap[id]; ok {
				w.NodeIDs[i] = s
			}
		}
	}
	for id := range remap {
		delete(g.Nodes, id)
	}
}

package wayslab

import (
	"github.com/dshills/osmroutegen/internal/geom"
	"github.com/dshills/osmroutegen/internal/model"
)

// chainAndPrune runs Phases B and C to a fixed point: chain concatenation
// re-triggers after every round of dead-end pruning that actually removed
// a polyline, and decision-nodes are recomputed fresh each round since the
// way list changed underneath it.
func chainAndPrune(ways []model.Way, outer *geom.Polygon, holes []*geom.Polygon, doors []geom.Point, tol float64) ([]model.Way, []geom.Point) {
	current := ways
	for {
		decisions := decisionNodes(current, doors, tol)
		chained := chainOnce(current, decisions, tol)
		pruned, changed := pruneDeadEnds(chained, doors, decisions, tol)
		current = pruned
		if !changed {
			break
		}
	}
	return current, decisionNodes(current, doors, tol)
}

// chainOnce is Phase B.2: every unprocessed polyline is extended at both
// ends by any other polyline sharing that endpoint, so long as the shared
// point is not a decision node. At a non-decision point at most one other
// polyline can be incident (by the decision-node definition), so extension
// is unambiguous.
func chainOnce(ways []model.Way, decisions []geom.Point, tol float64) []model.Way {
	consumed := make([]bool, len(ways))
	isDecision := func(p geom.Point) bool { return geom.Contains(decisions, p, tol) }

	findMatch := func(p geom.Point) (int, bool) {
		for i, w := range ways {
			if consumed[i] {
				continue
			}
			if w.First().Equal(p, tol) || w.Last().Equal(p, tol) {
				return i, true
			}
		}
		return 0, false
	}

	var out []model.Way
	for i := range ways {
		if consumed[i] {
			continue
		}
		consumed[i] = true
		chain := ways[i]

		for {
			last := chain.Last()
			if isDecision(last) {
				break
			}
			j, found := findMatch(last)
			if !found {
				break
			}
			next := ways[j]
			if next.Last().Equal(last, tol) {
				next = next.Reversed()
			}
			consumed[j] = true
			chain = joinWays(chain, next)
		}

		for {
			first := chain.First()
			if isDecision(first) {
				break
			}
			j, found := findMatch(first)
			if !found {
				break
			}
			next := ways[j]
			if next.First().Equal(first, tol) {
				next = next.Reversed()
			}
			consumed[j] = true
			chain = joinWays(next, chain)
		}

		out = append(out, chain)
	}
	return out
}

// joinWays concatenates a and b assuming a.Last() coincides with b.First(),
// dropping the duplicated shared point.
func joinWays(a, b model.Way) model.Way {
	pts := make([]geom.Point, 0, len(a.Points)+len(b.Points)-1)
	pts = append(pts, a.Points...)
	pts = append(pts, b.Points[1:]...)
	return model.Way{Points: pts, Level: a.Level, Type: a.Type}
}

// pruneDeadEnds is Phase C: remove any polyline whose endpoints are
// neither doors nor decision nodes.
func pruneDeadEnds(ways []model.Way, doors, decisions []geom.Point, tol float64) ([]model.Way, bool) {
	isRelevant := func(p geom.Point) bool {
		return geom.Contains(doors, p, tol) || geom.Contains(decisions, p, tol)
	}
	var out []model.Way
	changed := false
	for _, w := range ways {
		if !isRelevant(w.First()) && !isRelevant(w.Last()) {
			changed = true
			continue
		}
		out = append(out, w)
	}
	return out, changed
}

// simplify is Phase D: near-duplicate vertex collapse always runs; the
// aggressive removal of interior vertices whose shortcut segment stays
// inside the room (collinear or not) runs only when aggressive is set
// (the `-sw`/SimplifyWays flag).
func simplify(ways []model.Way, outer *geom.Polygon, holes []*geom.Polygon, aggressive bool, ptTol, tol float64) []model.Way {
	var out []model.Way
	for _, w := range ways {
		pts := collapseNearDuplicates(w.Points, ptTol)
		if aggressive {
			pts = collapseRedundantInterior(pts, outer, holes, tol)
		}
		if len(pts) < 2 {
			continue
		}
		out = append(out, model.Way{Points: pts, Level: w.Level, Type: w.Type})
	}
	return out
}

// collapseNearDuplicates removes any point within ptTol of its predecessor
// in the walk, working end to end.
func collapseNearDuplicates(points []geom.Point, ptTol float64) []geom.Point {
	if len(points) == 0 {
		return points
	}
	out := []geom.Point{points[0]}
	for i := 1; i < len(points); i++ {
		if points[i].Distance(out[len(out)-1]) <= ptTol {
			continue
		}
		out = append(out, points[i])
	}
	return out
}

// collapseRedundantInterior walks left to right deleting interior vertex
// i+1 whenever the direct segment [pᵢ, pᵢ₊₂] stays inside the room.
func collapseRedundantInterior(points []geom.Point, outer *geom.Polygon, holes []*geom.Polygon, tol float64) []geom.Point {
	pts := append([]geom.Point(nil), points...)
	i := 0
	for i+2 < len(pts) {
		seg := []geom.Point{pts[i], pts[i+2]}
		if geom.SegmentInsideRoom(seg, outer, holes, tol) {
			pts = append(pts[:i+1], pts[i+2:]...)
			continue
		}
		i++
	}
	return pts
}

// augment is Phase E: every unordered pair of relevant nodes (doors plus
// every current polyline endpoint) not already an endpoint-pair gets a
// supplementary segment, provided it stays inside the room and does not
// properly cross any existing way.
func augment(ways []model.Way, outer *geom.Polygon, holes []*geom.Polygon, doors []geom.Point, tol float64) []model.Way {
	relevant := collectRelevantNodes(ways, doors, tol)
	out := append([]model.Way(nil), ways...)

	hasEndpointPair := func(a, b geom.Point) bool {
		for _, w := range out {
			if (w.First().Equal(a, tol) && w.Last().Equal(b, tol)) ||
				(w.First().Equal(b, tol) && w.Last().Equal(a, tol)) {
				return true
			}
		}
		return false
	}

	for i := 0; i < len(relevant); i++ {
		for j := i + 1; j < len(relevant); j++ {
			a, b := relevant[i], relevant[j]
			if hasEndpointPair(a, b) {
				continue
			}
			seg := []geom.Point{a, b}
			if !geom.SegmentInsideRoom(seg, outer, holes, tol) {
				continue
			}
			if crossesAnyWay(seg, out, tol) {
				continue
			}
			out = append(out, model.NewWay(seg, outer.Level, model.Footway))
		}
	}
	return out
}

func collectRelevantNodes(ways []model.Way, doors []geom.Point, tol float64) []geom.Point {
	var nodes []geom.Point
	nodes = append(nodes, doors...)
	for _, w := range ways {
		if !geom.Contains(nodes, w.First(), tol) {
			nodes = append(nodes, w.First())
		}
		if !geom.Contains(nodes, w.Last(), tol) {
			nodes = append(nodes, w.Last())
		}
	}
	return nodes
}

func crossesAnyWay(seg []geom.Point, ways []model.Way, tol float64) bool {
	for _, w := range ways {
		for i := 0; i < len(w.Points)-1; i++ {
			if geom.SegmentsProperlyCross(seg[0], seg[1], w.Points[i], w.Points[i+1], tol) {
				return true
			}
		}
	}
	return false
}

// doorToDoor is Phase F: every pair of distinct doors gets a direct way
// when it stays inside the room, regardless of existing crossings.
func doorToDoor(ways []model.Way, outer *geom.Polygon, holes []*geom.Polygon, doors []geom.Point, tol float64) []model.Way {
	out := append([]model.Way(nil), ways...)
	for i := 0; i < len(doors); i++ {
		for j := i + 1; j < len(doors); j++ {
			seg := []geom.Point{doors[i], doors[j]}
			if geom.SegmentInsideRoom(seg, outer, holes, tol) {
				out = append(out, model.NewWay(seg, outer.Level, model.Footway))
			}
		}
	}
	return out
}

// splitIntersections is Phase G: repeatedly finds a proper crossing
// between any two polylines' segments and splits both at the crossing
// point, until no polyline pair crosses.
func splitIntersections(ways []model.Way, tol float64) []model.Way {
	current := append([]model.Way(nil), ways...)
	for {
		found := false
		for i := 0; i < len(current) && !found; i++ {
			for j := i + 1; j < len(current) && !found; j++ {
				parts, ok := splitPairIfCrossing(current[i], current[j], tol)
				if !ok {
					continue
				}
				next := make([]model.Way, 0, len(current)+2)
				for k, w := range current {
					if k == i || k == j {
						continue
					}
					next = append(next, w)
				}
				next = append(next, parts...)
				current = next
				found = true
			}
		}
		if !found {
			return current
		}
	}
}

// splitPairIfCrossing finds the first properly-interior intersection
// between a's and b's segments and, if found, returns the four resulting
// polylines.
func splitPairIfCrossing(a, b model.Way, tol float64) ([]model.Way, bool) {
	for k := 0; k+1 < len(a.Points); k++ {
		p1, p2 := a.Points[k], a.Points[k+1]
		l1 := geom.LineThrough(p1, p2, tol)
		for l := 0; l+1 < len(b.Points); l++ {
			q1, q2 := b.Points[l], b.Points[l+1]
			l2 := geom.LineThrough(q1, q2, tol)
			ip, ok := geom.Intersect(l1, l2, tol)
			if !ok {
				continue
			}
			if !geom.InInterval(p1, p2, ip, tol) || !geom.InInterval(q1, q2, ip, tol) {
				continue
			}
			a1, a2 := splitAt(a, k, ip)
			b1, b2 := splitAt(b, l, ip)
			return []model.Way{a1, a2, b1, b2}, true
		}
	}
	return nil, false
}

// splitAt splits way w at point p, which lies within segment [segIdx,
// segIdx+1], into two polylines sharing p as an endpoint.
func splitAt(w model.Way, segIdx int, p geom.Point) (model.Way, model.Way) {
	first := make([]geom.Point, 0, segIdx+2)
	first = append(first, w.Points[:segIdx+1]...)
	first = append(first, p)

	second := make([]geom.Point, 0, len(w.Points)-segIdx)
	second = append(second, p)
	second = append(second, w.Points[segIdx+1:]...)

	return model.Way{Points: first, Level: w.Level, Type: w.Type},
		model.Way{Points: second, Level: w.Level, Type: w.Type}
}

// dedup is Phase H: drop degenerate two-point loops and exact duplicates
// (same ordered points, level and type).
func dedup(ways []model.Way, tol float64) []model.Way {
	var out []model.Way
	for _, w := range ways {
		if w.IsDegenerateLoop(tol) {
			continue
		}
		duplicate := false
		for _, existing := range out {
			if w.SameShape(existing, tol) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			out = append(out, w)
		}
	}
	return out
}

package geom

// PointInPolygon implements the horizontal-ray parity test described by
// §4.1: a point on any edge is outside by convention, otherwise crossings
// of the ray {y = p.Y, x > p.X} against every polygon edge are counted,
// with ties (the ray passing exactly through a vertex) broken by only
// counting the edge whose other endpoint has the greater y. The standard
// asymmetric-comparison ray-cast below already implements that tie-break:
// when pi.Y and p.Y coincide within tol, at most one of the two
// comparisons below can be true, and it is true exactly when the other
// endpoint's y is greater — so no special case is needed.
func PointInPolygon(p Point, poly *Polygon, tol float64) bool {
	n := poly.Len()
	for i := 0; i < n; i++ {
		if PointOnEdge(p, poly.Edge(i), tol) {
			return false
		}
	}
	inside := false
	for i := 0; i < n; i++ {
		a := poly.At(i)
		b := poly.At(i + 1)
		aAbove := greaterTol(a.Y, p.Y, tol)
		bAbove := greaterTol(b.Y, p.Y, tol)
		if aAbove != bAbove {
			xAt := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < xAt {
				inside = !inside
			}
		}
	}
	return inside
}

// greaterTol reports a > b beyond tol, treating near-equal values as not
// greater so a vertex lying on the ray compares as neither above nor below.
func greaterTol(a, b, tol float64) bool {
	return a > b+tol
}

// PointInRoom reports whether p is strictly inside outer and outside every
// hole (a point on or inside a barrier is never navigable).
func PointInRoom(p Point, outer *Polygon, holes []*Polygon, tol float64) bool {
	for _, hole := range holes {
		for i := 0; i < hole.Len(); i++ {
			if PointOnEdge(p, hole.Edge(i), tol) {
				return false
			}
		}
		if PointInPolygon(p, hole, tol) {
			return false
		}
	}
	return PointInPolygon(p, outer, tol)
}

// properlyCrosses reports whether segment ab properly intersects polygon
// edge cd: they meet at a single point that is strictly interior to both
// segments (endpoint coincidences are not crossings).
func properlyCrosses(a, b, c, d Point, tol float64) bool {
	l1 := LineThrough(a, b, tol)
	l2 := LineThrough(c, d, tol)
	ip, ok := Intersect(l1, l2, tol)
	if !ok {
		return false
	}
	if !InInterval(a, b, ip, tol) || !InInterval(c, d, ip, tol) {
		return false
	}
	return !ip.Equal(a, tol) && !ip.Equal(b, tol)
}

// SegmentsProperlyCross reports whether segment ab properly crosses segment
// cd: they meet at a single point strictly interior to both (shared
// endpoints are not a crossing). Exported for callers outside this package
// that need the same test against arbitrary polylines rather than a Polygon
// (e.g. the way-graph builder's Phase E/G crossing checks).
func SegmentsProperlyCross(a, b, c, d Point, tol float64) bool {
	return properlyCrosses(a, b, c, d, tol)
}

// PolygonIntersects reports whether the polyline way properly crosses any
// edge of polygon poly (endpoint touches do not count).
func PolygonIntersects(way []Point, poly *Polygon, tol float64) bool {
	for i := 0; i < len(way)-1; i++ {
		for j := 0; j < poly.Len(); j++ {
			e := poly.Edge(j)
			if e.P1.Equal(e.P2, tol) {
				continue
			}
			if properlyCrosses(way[i], way[i+1], e.P1, e.P2, tol) {
				return true
			}
		}
	}
	return false
}

// SegmentInsideRoom reports whether every segment of the polyline way has
// its midpoint inside the room (outer minus holes) and the polyline
// properly crosses neither outer nor any hole boundary.
func SegmentInsideRoom(way []Point, outer *Polygon, holes []*Polygon, tol float64) bool {
	for i := 0; i < len(way)-1; i++ {
		mid := Centroid([]Point{way[i], way[i+1]})
		if !PointInRoom(mid, outer, holes, tol) {
			return false
		}
	}
	for _, hole := range holes {
		if PolygonIntersects(way, hole, tol) {
			return false
		}
	}
	return !PolygonIntersects(way, outer, tol)
}

// PolygonInsidePolygon reports whether inner lies within outer. With
// useCentroids false, every vertex of inner must be inside outer. With it
// true, the centroid of every consecutive vertex triple is tested instead,
// and the polygon is accepted so long as the fraction outside does not
// exceed ratioOut (used for centroid-based barrier-in-barrier checks,
// which tolerate small numerical slack at the boundary).
func PolygonInsidePolygon(inner, outer *Polygon, tol, ratioOut float64, useCentroids bool) bool {
	if !useCentroids {
		for i := 0; i < inner.Len(); i++ {
			if !PointInPolygon(inner.At(i), outer, tol) {
				return false
			}
		}
		return true
	}

	pts := inner.Points()
	n := len(pts)
	if n == 0 {
		return true
	}
	outside := 0
	for i := 0; i < n; i++ {
		triple := []Point{pts[i], pts[(i+1)%n], pts[(i+2)%n]}
		c := Centroid(triple)
		if !PointInPolygon(c, outer, tol) {
			outside++
		}
	}
	return float64(outside)/float64(n) <= ratioOut
}

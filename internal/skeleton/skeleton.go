package skeleton

import (
	"math"

	"github.com/dshills/osmroutegen/internal/geom"
)

// maxEventsPerVertex bounds the edge-event loop at a small multiple of the
// vertex count, guarding against numerical degeneracies producing an
// unbounded sequence of near-zero-progress events.
const maxEventsPerVertex = 8

// Skeletonize computes arcs for a room: an edge-event straight skeleton
// of the outer polygon (either winding; which side of its edges is the
// interior is read from geom.PolygonOrientation), plus one outward
// bisector-ray spoke per hole vertex (holes assumed CW). Hole handling is
// an approximation of a true multi-loop straight skeleton; see package doc
// for scope.
func Skeletonize(outer *geom.Polygon, holes []*geom.Polygon) []Arc {
	var arcs []Arc

	outerPts := outer.Points()
	if len(outerPts) >= 3 {
		// Under PolygonOrientation's y-inverted convention the interior of a
		// CW ring lies to the left of its edges, that of a CCW ring to the right.
		normals := edgeNormals(outerPts, geom.PolygonOrientation(outer) == geom.CW)
		lav := buildLAV(outerPts, normals)
		arcs = append(arcs, shrinkLAV(lav, normals, len(outerPts)*maxEventsPerVertex)...)
	}

	for _, hole := range holes {
		arcs = append(arcs, holeSpokes(hole, outer, holes)...)
	}

	return arcs
}

// holeSpokes casts each hole vertex's outward bisector ray and keeps, as
// its single sink, the nearest point where that ray meets the outer
// polygon or another barrier edge — standing in for the bridge a true
// multi-loop straight skeleton would build between an outer wavefront and
// a hole's wavefront.
func holeSpokes(hole, outer *geom.Polygon, allHoles []*geom.Polygon) []Arc {
	pts := hole.Points()
	n := len(pts)
	if n < 3 {
		return nil
	}
	normals := edgeNormals(pts, false)

	var arcs []Arc
	for i := 0; i < n; i++ {
		before := normals[(i-1+n)%n]
		after := normals[i]
		dir := bisectorVelocity(before, after)
		length := math.Hypot(dir.X, dir.Y)
		if length < 1e-9 {
			continue
		}
		source := pts[i]
		sink, ok := nearestRayHit(source, dir, outer, allHoles, hole)
		if !ok {
			continue
		}
		arcs = append(arcs, Arc{Source: source, Sinks: []geom.Point{sink}})
	}
	return arcs
}

// nearestRayHit intersects the ray {source + s*dir : s > 0} against every
// edge of outer and every barrier other than skip, returning the closest
// hit point.
func nearestRayHit(source, dir geom.Point, outer *geom.Polygon, barriers []*geom.Polygon, skip *geom.Polygon) (geom.Point, bool) {
	best := geom.Point{}
	bestDist := math.Inf(1)
	found := false

	consider := func(poly *geom.Polygon) {
		for i := 0; i < poly.Len(); i++ {
			e := poly.Edge(i)
			if p, ok := rayEdgeIntersection(source, dir, e.P1, e.P2); ok {
				d := p.Distance(source)
				if d > 1e-9 && d < bestDist {
					bestDist = d
					best = p
					found = true
				}
			}
		}
	}

	consider(outer)
	for _, b := range barriers {
		if b == skip {
			continue
		}
		consider(b)
	}
	return best, found
}

// rayEdgeIntersection intersects the ray from origin in direction dir
// (s > 0) against segment p1-p2, returning the hit point if s is positive
// and the segment parameter lies in [0,1].
func rayEdgeIntersection(origin, dir, p1, p2 geom.Point) (geom.Point, bool) {
	ex, ey := p2.X-p1.X, p2.Y-p1.Y
	denom := dir.X*ey - dir.Y*ex
	if math.Abs(denom) < 1e-12 {
		return geom.Point{}, false
	}
	dx, dy := p1.X-origin.X, p1.Y-origin.Y
	s := (dx*ey - dy*ex) / denom
	u := (dx*dir.Y - dy*dir.X) / denom
	if s <= 1e-9 || u < 0 || u > 1 {
		return geom.Point{}, false
	}
	return geom.Point{X: origin.X + s*dir.X, Y: origin.Y + s*dir.Y}, true
}

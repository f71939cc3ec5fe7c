package geom

import "fmt"

// Edge is a segment between two distinct points, derived from adjacent
// polygon vertices or consecutive way points on demand — it is never
// stored as a standing field on Polygon or Way.
type Edge struct {
	P1, P2 Point
}

// NewEdge builds an Edge. Callers are expected to uphold P1 != P2; a
// degenerate edge is accepted (predicates degrade gracefully) rather than
// rejected, per the "predicates never throw" failure policy.
func NewEdge(p1, p2 Point) Edge {
	return Edge{P1: p1, P2: p2}
}

func (e Edge) String() string {
	return fmt.Sprintf("Edge(%v -> %v)", e.P1, e.P2)
}

// Line returns the supporting line of the edge.
func (e Edge) Line(tol float64) Line {
	return LineThrough(e.P1, e.P2, tol)
}

// PointOnEdge reports whether p lies on the edge within tol: equal to
// either endpoint, or its orthogonal foot onto the supporting line lands
// on p and within the edge's bounding box.
func PointOnEdge(p Point, e Edge, tol float64) bool {
	if p.Equal(e.P1, tol) || p.Equal(e.P2, tol) {
		return true
	}
	line := e.Line(tol)
	orth := Orthogonal(line, p)
	foot, ok := Intersect(line, orth, tol)
	if !ok || !p.Equal(foot, tol) {
		return false
	}
	minX, maxX := minmax(e.P1.X, e.P2.X)
	minY, maxY := minmax(e.P1.Y, e.P2.Y)
	return foot.X >= minX-tol && foot.X <= maxX+tol && foot.Y >= minY-tol && foot.Y <= maxY+tol
}

func minmax(a, b float64) (min, max float64) {
	if a < b {
		return a, b
	}
	return b, a
}

// InInterval reports whether c lies strictly between a and b on both axes.
// It assumes a, b, c are already known to be collinear and is used to test
// segment-containment; coincidence with either endpoint is never "between".
func InInterval(a, b, c Point, tol float64) bool {
	if a.Equal(b, tol) || a.Equal(c, tol) || b.Equal(c, tol) {
		return false
	}
	if a.X < b.X {
		if c.X < a.X || c.X > b.X {
			return false
		}
	} else if a.X > b.X {
		if c.X > a.X || c.X < b.X {
			return false
		}
	}
	if a.Y < b.Y {
		if c.Y < a.Y || c.Y > b.Y {
			return false
		}
	} else if a.Y > b.Y {
		if c.Y > a.Y || c.Y < b.Y {
			return false
		}
	}
	return true
}

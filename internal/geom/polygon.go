package geom

import "fmt"

// Polygon is a closed ring of at least 3 distinct points. It owns its
// vertex sequence; all mutation goes through named operations (Insert,
// Reverse, Simplify) rather than external functions splicing a bare slice,
// so "this polygon was mutated" is always visible at the call site.
type Polygon struct {
	points []Point
	Level  string
}

// NewPolygon copies points into a new owning Polygon. The input is never
// aliased so the caller's slice can be reused or discarded freely.
func NewPolygon(points []Point, level string) *Polygon {
	owned := make([]Point, len(points))
	copy(owned, points)
	return &Polygon{points: owned, Level: level}
}

// Len returns the number of vertices.
func (p *Polygon) Len() int { return len(p.points) }

// At returns the vertex at index i, wrapping negative/overflowing indices.
func (p *Polygon) At(i int) Point {
	n := len(p.points)
	return p.points[((i%n)+n)%n]
}

// Points returns a defensive copy of the vertex sequence.
func (p *Polygon) Points() []Point {
	out := make([]Point, len(p.points))
	copy(out, p.points)
	return out
}

// Edge returns the edge from vertex i to vertex i+1 (wrapping).
func (p *Polygon) Edge(i int) Edge {
	return NewEdge(p.At(i), p.At(i+1))
}

// Insert places point at index, shifting subsequent vertices right.
func (p *Polygon) Insert(index int, point Point) {
	p.points = append(p.points, Point{})
	copy(p.points[index+1:], p.points[index:])
	p.points[index] = point
}

// Reverse flips vertex order in place, turning CCW into CW and vice versa.
func (p *Polygon) Reverse() {
	for i, j := 0, len(p.points)-1; i < j; i, j = i+1, j-1 {
		p.points[i], p.points[j] = p.points[j], p.points[i]
	}
}

// Centroid returns the arithmetic mean of the polygon's vertices.
func (p *Polygon) Centroid() Point {
	return Centroid(p.points)
}

// Simplify removes every vertex that lies on the edge formed by its two
// neighbors (i.e. is collinear and between them), in place.
func (p *Polygon) Simplify(tol float64) {
	if len(p.points) < 4 {
		return
	}
	indexPrev := len(p.points) - 1
	index := 0
	for index < len(p.points) {
		point := p.points[index]
		prev := p.points[indexPrev]
		next := p.points[(index+1)%len(p.points)]
		if PointOnEdge(point, NewEdge(prev, next), tol) {
			p.points = append(p.points[:index], p.points[index+1:]...)
			if index == 0 {
				indexPrev--
			}
		} else {
			indexPrev = index
			index++
		}
	}
}

func (p *Polygon) String() string {
	return fmt.Sprintf("Polygon(points=%v, level=%q)", p.points, p.Level)
}

// Orientation classifies a polygon's winding order.
type Orientation int

const (
	CCW Orientation = iota
	CW
)

func (o Orientation) String() string {
	if o == CCW {
		return "CCW"
	}
	return "CW"
}

// PolygonOrientation computes the winding order via the shoelace sum
// Σ (y[i]+y[i+1])(x[i]-x[i+1]); CCW iff the sum is negative. This mirrors
// the source's y-inverted convention rather than the textbook "positive
// area is CCW" rule.
func PolygonOrientation(p *Polygon) Orientation {
	n := p.Len()
	sum := 0.0
	for i := 0; i < n; i++ {
		a := p.At(i)
		b := p.At(i + 1)
		sum += (a.Y + b.Y) * (a.X - b.X)
	}
	if sum < 0 {
		return CCW
	}
	return CW
}

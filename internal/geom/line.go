package geom

// Line is a tagged sum of the two supporting-line representations a pair of
// points can produce: a sloped line y = m*x + n, or a vertical line x = c.
// Kept as two variants rather than an (m, n) pair with m == nil meaning
// "vertical" (the source's original convention) so every consumer pattern
// matches instead of special-casing nil.
type Line struct {
	vertical bool
	m, n     float64 // valid when !vertical: y = m*x + n
	x        float64 // valid when vertical: x = x
}

// Sloped builds a non-vertical line y = m*x + n.
func Sloped(m, n float64) Line {
	return Line{vertical: false, m: m, n: n}
}

// VerticalAt builds a vertical line x = x.
func VerticalAt(x float64) Line {
	return Line{vertical: true, x: x}
}

// IsVertical reports which variant the line is.
func (l Line) IsVertical() bool { return l.vertical }

// Slope returns m and ok=false if the line is vertical.
func (l Line) Slope() (m float64, ok bool) {
	if l.vertical {
		return 0, false
	}
	return l.m, true
}

// Intercept returns n and ok=false if the line is vertical.
func (l Line) Intercept() (n float64, ok bool) {
	if l.vertical {
		return 0, false
	}
	return l.n, true
}

// X returns the vertical line's x and ok=false if the line is sloped.
func (l Line) X() (x float64, ok bool) {
	if !l.vertical {
		return 0, false
	}
	return l.x, true
}

// LineThrough returns the line supporting the segment p-q.
func LineThrough(p, q Point, tol float64) Line {
	if AlmostSame(p.X, q.X, tol) {
		return VerticalAt(p.X)
	}
	m := (p.Y - q.Y) / (p.X - q.X)
	n := p.Y - m*p.X
	return Sloped(m, n)
}

// Orthogonal returns the line through p perpendicular to l.
func Orthogonal(l Line, p Point) Line {
	if l.vertical {
		return Sloped(0, p.Y)
	}
	if l.m == 0 {
		return VerticalAt(p.X)
	}
	m2 := -1 / l.m
	n2 := p.Y - m2*p.X
	return Sloped(m2, n2)
}

// Intersect returns the unique intersection point of l1 and l2, or
// ok=false if they are parallel (including both vertical) or coincide.
func Intersect(l1, l2 Line, tol float64) (Point, bool) {
	switch {
	case l1.vertical && l2.vertical:
		return Point{}, false
	case l1.vertical:
		x := l1.x
		y := l2.m*x + l2.n
		return Point{X: x, Y: y}, true
	case l2.vertical:
		x := l2.x
		y := l1.m*x + l1.n
		return Point{X: x, Y: y}, true
	case AlmostSame(l1.m, l2.m, tol):
		return Point{}, false
	default:
		x := (l2.n - l1.n) / (l1.m - l2.m)
		y := l1.m*x + l1.n
		return Point{X: x, Y: y}, true
	}
}

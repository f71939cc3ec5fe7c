// Package model holds the shared domain records that flow between the
// geometry/skeleton/way-graph packages and the OSM I/O boundary: Way,
// Room, and Connector. These are plain records (§9: "Way-as-mapping with
// string keys" in the source becomes a typed struct with an enum Type)
// rather than the loosely-typed dict the source used.
package model

import "github.com/dshills/osmroutegen/internal/geom"

// WayType classifies a Way's highway tag.
type WayType int

const (
	Footway WayType = iota
	Stairs
	Elevator
)

// String returns the OSM highway tag value for the type.
func (t WayType) String() string {
	switch t {
	case Stairs:
		return "stairs"
	case Elevator:
		return "elevator"
	default:
		return "footway"
	}
}

// Way is an ordered polyline of at least 2 points, walkable at level (or,
// for a cross-level connector, a "a;b" level pair).
type Way struct {
	Points []geom.Point
	Level  string
	Type   WayType
}

// NewWay builds a Way from a copy of points so later mutation of the
// caller's slice cannot leak into the stored way.
func NewWay(points []geom.Point, level string, t WayType) Way {
	owned := make([]geom.Point, len(points))
	copy(owned, points)
	return Way{Points: owned, Level: level, Type: t}
}

// First returns the way's first point.
func (w Way) First() geom.Point { return w.Points[0] }

// Last returns the way's last point.
func (w Way) Last() geom.Point { return w.Points[len(w.Points)-1] }

// Reversed returns a copy of the way with point order flipped.
func (w Way) Reversed() Way {
	n := len(w.Points)
	out := make([]geom.Point, n)
	for i, p := range w.Points {
		out[n-1-i] = p
	}
	return Way{Points: out, Level: w.Level, Type: w.Type}
}

// SameShape reports whether two ways have identical ordered points, level
// and type — used by Phase H deduplication.
func (w Way) SameShape(other Way, tol float64) bool {
	if w.Level != other.Level || w.Type != other.Type {
		return false
	}
	if len(w.Points) != len(other.Points) {
		return false
	}
	for i := range w.Points {
		if !w.Points[i].Equal(other.Points[i], tol) {
			return false
		}
	}
	return true
}

// IsDegenerateLoop reports whether the way has exactly two points that
// coincide — the Phase H "remove ways whose endpoints are equal" check.
func (w Way) IsDegenerateLoop(tol float64) bool {
	return len(w.Points) == 2 && w.Points[0].Equal(w.Points[1], tol)
}

package model

import "github.com/dshills/osmroutegen/internal/geom"

// Room is an outer polygon plus its holes (inner barriers), all on the
// same level, together with the doors snapped onto them and the ways
// synthesized for navigation. A Room owns private copies of its outer and
// barrier polygons; callers cannot see their input mutated out from under
// them.
type Room struct {
	Outer    *geom.Polygon
	Barriers []*geom.Polygon
	Level    string
	Doors    []geom.Point
	Ways     []Way

	// DecisionNodes caches the last computed decision-node set (doors plus
	// points where >=3 ways meet); recomputed by the way-graph builder as
	// it iterates, never by Room itself.
	DecisionNodes []geom.Point
}

// NewRoom copies outer and barriers, orients outer CCW and every barrier
// CW (§3 invariant), and simplifies both (removing vertices that lie on
// the straight edge between their neighbors) before any door is added.
func NewRoom(outer *geom.Polygon, barriers []*geom.Polygon, level string, tol float64) *Room {
	o := geom.NewPolygon(outer.Points(), level)
	o.Simplify(tol)
	if geom.PolygonOrientation(o) != geom.CCW {
		o.Reverse()
	}

	bs := make([]*geom.Polygon, len(barriers))
	for i, b := range barriers {
		bp := geom.NewPolygon(b.Points(), level)
		bp.Simplify(tol)
		if geom.PolygonOrientation(bp) != geom.CW {
			bp.Reverse()
		}
		bs[i] = bp
	}

	return &Room{Outer: o, Barriers: bs, Level: level}
}

// AddDoors snaps every candidate door for this room's level onto the
// outer polygon and every barrier, accumulating the associated doors on
// Room.Doors (deduplicated by coordinate).
func (r *Room) AddDoors(candidates []geom.Point, doorToRoom, tol float64) {
	add := func(doors []geom.Point) {
		for _, d := range doors {
			if !geom.Contains(r.Doors, d, tol) {
				r.Doors = append(r.Doors, d)
			}
		}
	}
	add(geom.AddDoorsToPolygon(r.Outer, candidates, doorToRoom, tol))
	for _, b := range r.Barriers {
		add(geom.AddDoorsToPolygon(b, candidates, doorToRoom, tol))
	}
}

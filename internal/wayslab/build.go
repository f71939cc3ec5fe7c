// Package wayslab is the way-graph builder (§4.4): it turns a Room's
// skeleton arcs and doors into Room.Ways by running a fixed sequence of
// transformations — seed, chain, prune, simplify, augment, optionally
// door-link, split, dedup — each preserving two invariants: no polyline
// has two equal consecutive points, and every polyline is segment-inside-
// room. The state machine is Empty -> Seeded -> Chained -> Pruned ->
// Simplified -> Augmented -> [DoorLinked] -> Split -> Deduped -> Emitted.
package wayslab

import (
	"github.com/dshills/osmroutegen/internal/config"
	"github.com/dshills/osmroutegen/internal/geom"
	"github.com/dshills/osmroutegen/internal/model"
	"github.com/dshills/osmroutegen/internal/skeleton"
)

// Build runs Phases A-H over room's skeleton arcs and snapped doors,
// returning the finished Way list. room.DecisionNodes is updated to the
// last set computed during Phase C's fixed-point loop, for callers (e.g.
// debug visualization) that want to inspect it.
func Build(room *model.Room, arcs []skeleton.Arc, tol config.Tolerances, opts config.RouteOptions) []model.Way {
	ways := seed(arcs, room.Outer, room.Barriers, room.Doors, tol.GeneralMappingUncertainty)

	ways, decisions := chainAndPrune(ways, room.Outer, room.Barriers, room.Doors, tol.GeneralMappingUncertainty)
	room.DecisionNodes = decisions

	ways = simplify(ways, room.Outer, room.Barriers, opts.SimplifyWays, tol.PointToPoint, tol.GeneralMappingUncertainty)

	ways = augment(ways, room.Outer, room.Barriers, room.Doors, tol.GeneralMappingUncertainty)

	if opts.DoorToDoor {
		ways = doorToDoor(ways, room.Outer, room.Barriers, room.Doors, tol.GeneralMappingUncertainty)
	}

	ways = splitIntersections(ways, tol.GeneralMappingUncertainty)

	ways = dedup(ways, tol.GeneralMappingUncertainty)

	return ways
}

// wayIsValid implements Phase A's acceptance test for a candidate segment
// [p1,p2]: it must lie inside the room, and at least one endpoint must be
// a door or in-room while the other is a door or in-room.
func wayIsValid(p1, p2 geom.Point, outer *geom.Polygon, holes []*geom.Polygon, doors []geom.Point, tol float64) bool {
	if !geom.SegmentInsideRoom([]geom.Point{p1, p2}, outer, holes, tol) {
		return false
	}
	p1Ok := geom.Contains(doors, p1, tol) || geom.PointInRoom(p1, outer, holes, tol)
	p2Ok := geom.Contains(doors, p2, tol) || geom.PointInRoom(p2, outer, holes, tol)
	return p1Ok && p2Ok
}

// seed is Phase A: every arc (source, sink) pair becomes a candidate
// segment, kept iff wayIsValid holds.
func seed(arcs []skeleton.Arc, outer *geom.Polygon, holes []*geom.Polygon, doors []geom.Point, tol float64) []model.Way {
	var ways []model.Way
	for _, arc := range arcs {
		for _, sink := range arc.Sinks {
			if arc.Source.Equal(sink, tol) {
				continue
			}
			if !wayIsValid(arc.Source, sink, outer, holes, doors, tol) {
				continue
			}
			ways = append(ways, model.NewWay([]geom.Point{arc.Source, sink}, outer.Level, model.Footway))
		}
	}
	return ways
}

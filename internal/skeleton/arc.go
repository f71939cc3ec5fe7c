// Package skeleton computes a straight-skeleton-like spine for a polygon
// with holes: a set of Arcs (source vertex, one or more sink vertices)
// covering the interior medial structure. Exactness is not required by
// the caller — every candidate segment the arcs imply is re-validated by
// package geom before it becomes a Way (§4.3).
package skeleton

import "github.com/dshills/osmroutegen/internal/geom"

// Arc is one source vertex and the set of distinct sink vertices the
// engine produced for it.
type Arc struct {
	Source geom.Point
	Sinks  []geom.Point
}

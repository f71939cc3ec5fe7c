package model

import "github.com/dshills/osmroutegen/internal/geom"

// Door is a candidate door point as parsed from the input (a node tagged
// door/entrance, or the centroid of a closed way tagged door/entrance),
// tagged with the level it was declared on (§6). Rooms and connector
// members each filter this global list down to their own level before
// snapping.
type Door struct {
	Point geom.Point
	Level string
}

// FilterByLevel returns the points of every door declared on level.
func FilterByLevel(doors []Door, level string) []geom.Point {
	var out []geom.Point
	for _, d := range doors {
		if d.Level == level {
			out = append(out, d.Point)
		}
	}
	return out
}

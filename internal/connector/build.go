// Package connector implements the connector builder (§4.5): turning a
// vertical Connector (stairs or elevator, one member polygon per floor)
// into the Ways that tie its floors together and into their doors.
package connector

import (
	"fmt"

	"github.com/dshills/osmroutegen/internal/config"
	"github.com/dshills/osmroutegen/internal/geom"
	"github.com/dshills/osmroutegen/internal/model"
)

// Build produces, for a Connector, one centre-to-door Way per door on each
// member's level, plus the cross-level Ways linking member centres:
// adjacent-only for stairs, all-pairs otherwise.
func Build(conn *model.Connector, doors []model.Door, tol config.Tolerances) []model.Way {
	var ways []model.Way

	centres := make([]geom.Point, len(conn.Members))
	for i, m := range conn.Members {
		centres[i] = m.Polygon.Centroid()

		levelDoors := model.FilterByLevel(doors, m.Level)
		if len(levelDoors) == 0 {
			continue
		}
		snapped := geom.AddDoorsToPolygon(m.Polygon, levelDoors, tol.DoorToRoom, tol.GeneralMappingUncertainty)
		for _, d := range snapped {
			ways = append(ways, model.NewWay([]geom.Point{centres[i], d}, m.Level, wayType(conn.Type)))
		}
	}

	n := len(conn.Members)
	if conn.Type == model.ConnectorStairs {
		for i := 0; i+1 < n; i++ {
			level := crossLevel(conn.Members[i].Level, conn.Members[i+1].Level)
			ways = append(ways, model.NewWay([]geom.Point{centres[i], centres[i+1]}, level, wayType(conn.Type)))
		}
		return ways
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			level := crossLevel(conn.Members[i].Level, conn.Members[j].Level)
			ways = append(ways, model.NewWay([]geom.Point{centres[i], centres[j]}, level, wayType(conn.Type)))
		}
	}
	return ways
}

func wayType(t model.ConnectorType) model.WayType {
	if t == model.ConnectorStairs {
		return model.Stairs
	}
	return model.Elevator
}

func crossLevel(a, b string) string {
	return fmt.Sprintf("%s;%s", a, b)
}

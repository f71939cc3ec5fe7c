package model

import "github.com/dshills/osmroutegen/internal/geom"

// ConnectorType classifies a vertical Connector.
type ConnectorType int

const (
	ConnectorStairs ConnectorType = iota
	ConnectorElevator
)

// ConnectorMember is one floor's footprint for a multi-floor connector
// (stairs/elevator), before door-snapping has been run on it.
type ConnectorMember struct {
	Polygon *geom.Polygon
	Level   string
}

// Connector links two or more floors through member polygons, each with
// its own level; its own polygon copies are owned the same way a Room
// owns its outer/barrier polygons.
type Connector struct {
	Members []ConnectorMember
	Type    ConnectorType
}

// NewConnector copies each member polygon so later mutation (door
// snapping) cannot affect the caller's original.
func NewConnector(members []ConnectorMember, t ConnectorType) *Connector {
	owned := make([]ConnectorMember, len(members))
	for i, m := range members {
		owned[i] = ConnectorMember{
			Polygon: geom.NewPolygon(m.Polygon.Points(), m.Level),
			Level:   m.Level,
		}
	}
	return &Connector{Members: owned, Type: t}
}

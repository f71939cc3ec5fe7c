package osmio

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/dshills/osmroutegen/internal/config"
	"github.com/dshills/osmroutegen/internal/geom"
	"github.com/dshills/osmroutegen/internal/model"
)

// Input is the fully-parsed input: every room's outer+barriers, every
// connector, every door, and the original bounds to round-trip verbatim.
type Input struct {
	Rooms      []*model.Room
	Connectors []*model.Connector
	Doors      []model.Door
	Bounds     *xmlBounds
}

// Decode parses OSM XML 0.6 from r into an Input, classifying elements
// per §6. Any parse failure or missing required tag is wrapped in
// model.ErrInputMalformed.
func Decode(r io.Reader, tol config.Tolerances) (*Input, error) {
	var d doc
	if err := xml.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("decoding OSM XML: %w: %w", model.ErrInputMalformed, err)
	}

	nodesByID := make(map[string]geom.Point, len(d.Nodes))
	nodeTags := make(map[string][]xmlTag, len(d.Nodes))
	for _, n := range d.Nodes {
		p, err := parseLatLon(n.Lat, n.Lon)
		if err != nil {
			return nil, fmt.Errorf("node %s: %w: %w", n.ID, model.ErrInputMalformed, err)
		}
		nodesByID[n.ID] = p
		nodeTags[n.ID] = n.Tag
	}
	waysByID := make(map[string]xmlWay, len(d.Ways))
	for _, w := range d.Ways {
		waysByID[w.ID] = w
	}

	wayPolygon := func(w xmlWay) ([]geom.Point, error) {
		refs := w.Nd
		if len(refs) > 1 {
			refs = refs[:len(refs)-1] // drop the closing duplicate of the first node
		}
		pts := make([]geom.Point, 0, len(refs))
		for _, nd := range refs {
			p, ok := nodesByID[nd.Ref]
			if !ok {
				return nil, fmt.Errorf("way %s references unknown node %s: %w", w.ID, nd.Ref, model.ErrInputMalformed)
			}
			pts = append(pts, p)
		}
		return pts, nil
	}

	in := &Input{Bounds: d.Bounds}

	for _, n := range d.Nodes {
		if hasTagKey(n.Tag, "door") || hasTagKey(n.Tag, "entrance") {
			level, ok := tagValue(n.Tag, "level")
			if !ok {
				return nil, fmt.Errorf("door node %s missing level tag: %w", n.ID, model.ErrInputMalformed)
			}
			in.Doors = append(in.Doors, model.Door{Point: nodesByID[n.ID], Level: level})
		}
	}

	var standaloneBarriers []*geom.Polygon
	for _, w := range d.Ways {
		switch {
		case hasTagKey(w.Tag, "door") || hasTagKey(w.Tag, "entrance"):
			level, ok := tagValue(w.Tag, "level")
			if !ok {
				return nil, fmt.Errorf("door way %s missing level tag: %w", w.ID, model.ErrInputMalformed)
			}
			pts, err := wayPolygon(w)
			if err != nil {
				return nil, err
			}
			in.Doors = append(in.Doors, model.Door{Point: geom.Centroid(pts), Level: level})

		case hasTagValue(w.Tag, "v", "room") || hasTagValue(w.Tag, "v", "corridor"):
			level, ok := tagValue(w.Tag, "level")
			if !ok {
				return nil, fmt.Errorf("room way %s missing level tag: %w", w.ID, model.ErrInputMalformed)
			}
			pts, err := wayPolygon(w)
			if err != nil {
				return nil, err
			}
			outer := geom.NewPolygon(pts, level)
			in.Rooms = append(in.Rooms, model.NewRoom(outer, nil, level, tol.GeneralMappingUncertainty))

		case hasTagValue(w.Tag, "v", "wall") || hasTagValue(w.Tag, "v", "bench") || hasTagValue(w.Tag, "v", "table"):
			pts, err := wayPolygon(w)
			if err != nil {
				return nil, err
			}
			standaloneBarriers = append(standaloneBarriers, geom.NewPolygon(pts, ""))
		}
	}

	for _, rel := range d.Relations {
		switch {
		case hasTagValue(rel.Tag, "v", "multipolygon"):
			room, err := decodeMultipolygon(rel, waysByID, wayPolygon)
			if err != nil {
				return nil, err
			}
			if room != nil {
				in.Rooms = append(in.Rooms, model.NewRoom(room.outer, room.barriers, room.level, tol.GeneralMappingUncertainty))
			}

		case hasTagValue(rel.Tag, "v", "connection"):
			conn, err := decodeConnection(rel, waysByID, nodesByID)
			if err != nil {
				return nil, err
			}
			in.Connectors = append(in.Connectors, conn)
		}
	}

	attachStandaloneBarriers(in.Rooms, standaloneBarriers, tol)

	return in, nil
}

func parseLatLon(lat, lon string) (geom.Point, error) {
	x, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("parsing lat %q: %w", lat, err)
	}
	y, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("parsing lon %q: %w", lon, err)
	}
	return geom.Point{X: x, Y: y}, nil
}

type multipolygonResult struct {
	outer    *geom.Polygon
	barriers []*geom.Polygon
	level    string
}

func decodeMultipolygon(rel xmlRel, waysByID map[string]xmlWay, wayPolygon func(xmlWay) ([]geom.Point, error)) (*multipolygonResult, error) {
	var outerRef string
	var innerRefs []string
	for _, m := range rel.Member {
		switch m.Role {
		case "outer":
			outerRef = m.Ref
		case "inner":
			innerRefs = append(innerRefs, m.Ref)
		}
	}
	if outerRef == "" {
		return nil, fmt.Errorf("multipolygon relation %s has no outer member: %w", rel.ID, model.ErrInputMalformed)
	}
	outerWay, ok := waysByID[outerRef]
	if !ok {
		return nil, fmt.Errorf("multipolygon relation %s outer way %s not found: %w", rel.ID, outerRef, model.ErrInputMalformed)
	}

	level, ok := tagValue(rel.Tag, "level")
	if !ok {
		level, ok = tagValue(outerWay.Tag, "level")
	}
	if !ok {
		return nil, fmt.Errorf("multipolygon relation %s has no level tag on relation or outer way: %w", rel.ID, model.ErrInputMalformed)
	}

	indoor, ok := tagValue(rel.Tag, "indoor")
	if !ok {
		indoor, ok = tagValue(outerWay.Tag, "indoor")
	}
	if !ok {
		return nil, fmt.Errorf("multipolygon relation %s has no indoor tag on relation or outer way: %w", rel.ID, model.ErrInputMalformed)
	}
	if indoor != "room" && indoor != "corridor" {
		return nil, nil
	}

	outerPts, err := wayPolygon(outerWay)
	if err != nil {
		return nil, err
	}

	var barriers []*geom.Polygon
	for _, ref := range innerRefs {
		innerWay, ok := waysByID[ref]
		if !ok {
			return nil, fmt.Errorf("multipolygon relation %s inner way %s not found: %w", rel.ID, ref, model.ErrInputMalformed)
		}
		pts, err := wayPolygon(innerWay)
		if err != nil {
			return nil, err
		}
		barriers = append(barriers, geom.NewPolygon(pts, level))
	}

	return &multipolygonResult{outer: geom.NewPolygon(outerPts, level), barriers: barriers, level: level}, nil
}

func decodeConnection(rel xmlRel, waysByID map[string]xmlWay, nodesByID map[string]geom.Point) (*model.Connector, error) {
	t := model.ConnectorElevator
	if hasTagValue(rel.Tag, "v", "stairs") {
		t = model.ConnectorStairs
	}

	var members []model.ConnectorMember
	for _, m := range rel.Member {
		w, ok := waysByID[m.Ref]
		if !ok {
			return nil, fmt.Errorf("connection relation %s member way %s not found: %w", rel.ID, m.Ref, model.ErrInputMalformed)
		}
		level, ok := tagValue(w.Tag, "level")
		if !ok {
			return nil, fmt.Errorf("connection relation %s member way %s missing level tag: %w", rel.ID, m.Ref, model.ErrInputMalformed)
		}
		pts := make([]geom.Point, 0, len(w.Nd))
		for _, nd := range w.Nd {
			p, ok := nodesByID[nd.Ref]
			if !ok {
				return nil, fmt.Errorf("connection relation %s member way %s references unknown node %s: %w", rel.ID, m.Ref, nd.Ref, model.ErrInputMalformed)
			}
			pts = append(pts, p)
		}
		if len(pts) > 1 {
			pts = pts[:len(pts)-1] // drop the closing duplicate
		}
		members = append(members, model.ConnectorMember{Polygon: geom.NewPolygon(pts, level), Level: level})
	}

	return model.NewConnector(members, t), nil
}

// attachStandaloneBarriers assigns every barrier-tagged way that is not a
// multipolygon inner member to whichever room's outer polygon contains it
// (§6: barrier ways are classified by tag alone, with no relation linking
// them to a room, so containment is the only signal available).
func attachStandaloneBarriers(rooms []*model.Room, barriers []*geom.Polygon, tol config.Tolerances) {
	for _, b := range barriers {
		for _, room := range rooms {
			if geom.PolygonInsidePolygon(b, room.Outer, tol.BarrierToRoom, tol.RatioBarrierInBarrier, true) {
				oriented := geom.NewPolygon(b.Points(), room.Level)
				if geom.PolygonOrientation(oriented) != geom.CW {
					oriented.Reverse()
				}
				room.Barriers = append(room.Barriers, oriented)
				break
			}
		}
	}
}

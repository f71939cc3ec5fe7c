package osmio

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/dshills/osmroutegen/internal/merge"
	"github.com/dshills/osmroutegen/internal/model"
)

// DecodeForMerge reads an OSM XML file already containing generated
// navigation ways (indoor=yes) into a merge.Graph. A node's level is not
// carried on the node itself (§6's generated nodes have no level tag);
// it is inferred from whichever way references it — the single level for
// an ordinary way, or the matching half of the "a;b" pair for a
// cross-level connector way, mirroring how Encode originally allocated
// those nodes.
func DecodeForMerge(r io.Reader) (*merge.Graph, *xmlBounds, error) {
	var d doc
	if err := xml.NewDecoder(r).Decode(&d); err != nil {
		return nil, nil, fmt.Errorf("decoding OSM XML: %w: %w", model.ErrInputMalformed, err)
	}

	g := merge.NewGraph()
	for _, n := range d.Nodes {
		p, err := parseLatLon(n.Lat, n.Lon)
		if err != nil {
			return nil, nil, fmt.Errorf("node %s: %w: %w", n.ID, model.ErrInputMalformed, err)
		}
		g.Nodes[n.ID] = &merge.Node{ID: n.ID, Point: p, Tagged: len(n.Tag) > 0}
	}

	for _, w := range d.Ways {
		if !hasTagValue(w.Tag, "indoor", "yes") {
			continue
		}
		level, _ := tagValue(w.Tag, "level")
		ids := make([]string, 0, len(w.Nd))
		for _, nd := range w.Nd {
			if _, ok := g.Nodes[nd.Ref]; !ok {
				return nil, nil, fmt.Errorf("way %s references unknown node %s: %w", w.ID, nd.Ref, model.ErrInputMalformed)
			}
			ids = append(ids, nd.Ref)
		}
		assignNodeLevels(g, ids, level)
		g.Ways = append(g.Ways, &merge.Way{ID: w.ID, NodeIDs: ids, Level: level})
	}

	return g, d.Bounds, nil
}

// assignNodeLevels gives every node referenced by a way its level, per
// the single-level or cross-level split described on DecodeForMerge.
func assignNodeLevels(g *merge.Graph, ids []string, level string) {
	parts := strings.Split(level, ";")
	if len(parts) == 2 && len(ids) == 2 {
		if n := g.Nodes[ids[0]]; n != nil {
			n.Level = parts[0]
		}
		if n := g.Nodes[ids[1]]; n != nil {
			n.Level = parts[1]
		}
		return
	}
	for _, id := range ids {
		if n := g.Nodes[id]; n != nil {
			n.Level = level
		}
	}
}

// EncodeFromMerge writes a merged graph back out as OSM XML 0.6,
// preserving each way's original id and tags.
func EncodeFromMerge(w io.Writer, g *merge.Graph, wayTags map[string][]xmlTag, bounds *xmlBounds, pretty bool) error {
	var out doc
	out.Version = "0.6"
	out.Upload = "false"
	out.Bounds = bounds

	ids := make([]string, 0, len(g.Nodes))
	for id := range g.Nodes {
		ids = append(ids, id)
	}
	sortStrings(ids)
	for _, id := range ids {
		n := g.Nodes[id]
		out.Nodes = append(out.Nodes, xmlNode{
			ID:  n.ID,
			Lat: formatCoord(n.Point.X),
			Lon: formatCoord(n.Point.Y),
		})
	}

	for _, way := range g.Ways {
		xw := xmlWay{ID: way.ID, Tag: wayTags[way.ID]}
		for _, id := range way.NodeIDs {
			xw.Nd = append(xw.Nd, xmlNd{Ref: id})
		}
		out.Ways = append(out.Ways, xw)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("writing XML header: %w", err)
	}
	enc := xml.NewEncoder(w)
	if pretty {
		enc.Indent("", "  ")
	}
	if err := enc.Encode(&out); err != nil {
		return fmt.Errorf("encoding OSM XML: %w", err)
	}
	return nil
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// WayTags indexes each parsed way's original tags by id, for EncodeFromMerge
// to restore after a merge pass (which only touches Nodes/NodeIDs).
func WayTags(r io.Reader) (map[string][]xmlTag, *xmlBounds, error) {
	var d doc
	if err := xml.NewDecoder(r).Decode(&d); err != nil {
		return nil, nil, fmt.Errorf("decoding OSM XML: %w: %w", model.ErrInputMalformed, err)
	}
	tags := make(map[string][]xmlTag, len(d.Ways))
	for _, w := range d.Ways {
		tags[w.ID] = w.Tag
	}
	return tags, d.Bounds, nil
}

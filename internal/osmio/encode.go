package osmio

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dshills/osmroutegen/internal/geom"
	"github.com/dshills/osmroutegen/internal/model"
)

// nodeKey identifies a generated node by the level it was emitted on plus
// its exact coordinates, so the same point recurring on the same level
// reuses one node id instead of emitting a duplicate (§6).
type nodeKey struct {
	level string
	x, y  string
}

// Encode writes ways as OSM XML 0.6: every distinct (level, point) pair
// becomes one <node> with a negative, descending generated id; each way
// becomes a <way> referencing its nodes in order, tagged indoor=yes,
// level=<level> and highway=<footway|stairs|elevator>. A cross-level way
// (level "a;b", exactly two points) splits its two endpoints across the
// two level buckets named in the level string. bounds, when non-nil, is
// re-emitted verbatim; pretty controls XML indentation.
func Encode(w io.Writer, ways []model.Way, bounds *xmlBounds, pretty bool) error {
	alloc := newIDAllocator()
	nodeIDs := make(map[nodeKey]int64)

	var out doc
	out.Version = "0.6"
	out.Upload = "false"
	out.Bounds = bounds

	ensureNode := func(level string, p geom.Point) int64 {
		key := nodeKey{level: level, x: formatCoord(p.X), y: formatCoord(p.Y)}
		if id, ok := nodeIDs[key]; ok {
			return id
		}
		id := alloc.allocate()
		nodeIDs[key] = id
		out.Nodes = append(out.Nodes, xmlNode{
			ID:  strconv.FormatInt(id, 10),
			Lat: formatCoord(p.X),
			Lon: formatCoord(p.Y),
		})
		return id
	}

	for _, way := range ways {
		xw := xmlWay{ID: strconv.FormatInt(alloc.allocate(), 10)}
		levels := strings.Split(way.Level, ";")

		if len(levels) == 2 && len(way.Points) == 2 {
			id0 := ensureNode(levels[0], way.Points[0])
			id1 := ensureNode(levels[1], way.Points[1])
			xw.Nd = []xmlNd{{Ref: strconv.FormatInt(id0, 10)}, {Ref: strconv.FormatInt(id1, 10)}}
		} else {
			xw.Nd = make([]xmlNd, 0, len(way.Points))
			for _, p := range way.Points {
				id := ensureNode(way.Level, p)
				xw.Nd = append(xw.Nd, xmlNd{Ref: strconv.FormatInt(id, 10)})
			}
		}

		xw.Tag = []xmlTag{
			{K: "indoor", V: "yes"},
			{K: "level", V: way.Level},
			{K: "highway", V: way.Type.String()},
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

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

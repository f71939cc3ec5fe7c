// Package merge implements the point-cluster merger (§4.6): a post-pass
// over the full synthesized output graph that removes redundant collinear
// vertices, drops untagged unreferenced nodes, and collapses clusters of
// near-coincident nodes to a single representative. It operates on its own
// small Node/Way graph rather than model.Way directly, because this phase
// needs persistent node identity (a way references nodes by id, and a
// cluster rewrite must update every reference) — identity that only
// exists once the synthesizer's raw points have been assigned ids, which
// is the osmio encoder's job.
package merge

import "github.com/dshills/osmroutegen/internal/geom"

// Node is one point in the output graph, keyed by a caller-assigned id.
type Node struct {
	ID     string
	Point  geom.Point
	Level  string
	Tagged bool // carries a door/entrance tag or similar "important" marker
}

// Way is one polyline in the output graph, referencing its points by node
// id so a cluster rewrite can update every reference by rewriting Nodes
// alone, or by re-pointing NodeIDs during final dedup.
type Way struct {
	ID      string
	NodeIDs []string
	Level   string
}

// Graph is the flat, mutable node/way collection the merger works over.
type Graph struct {
	Nodes map[string]*Node
	Ways  []*Way
}

// NewGraph builds an empty graph ready for population.
func NewGraph() *Graph {
	return &Graph{Nodes: make(map[string]*Node)}
}

// point returns a way's node's coordinates, panicking only if the caller
// has passed an id absent from Nodes — a programmer error, never input
// data, since osmio.DecodeForMerge rejects a way that references a node
// the file does not define.
func (g *Graph) point(id string) geom.Point {
	return g.Nodes[id].Point
}

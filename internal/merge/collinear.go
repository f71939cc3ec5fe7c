package merge

import "math"

// removeCollinearVertices is §4.6 step 1 for a single way: consecutive
// duplicate vertices collapse first, then any interior vertex whose two
// incident edges have near-equal bearing is dropped, repeating until
// stable since a removal can expose a new collinear run.
func removeCollinearVertices(w *Way, g *Graph, ptTol, angleTolDegrees float64) {
	w.NodeIDs = collapseDuplicateRefs(w.NodeIDs, g, ptTol)

	for {
		removed := false
		for i := 1; i+1 < len(w.NodeIDs); i++ {
			a := g.point(w.NodeIDs[i-1])
			b := g.point(w.NodeIDs[i])
			c := g.point(w.NodeIDs[i+1])
			bearingIn := normalizeDegrees(math.Atan2(b.Y-a.Y, b.X-a.X))
			bearingOut := normalizeDegrees(math.Atan2(c.Y-b.Y, c.X-b.X))
			if wrapDiff(bearingIn, bearingOut) <= angleTolDegrees {
				w.NodeIDs = append(w.NodeIDs[:i], w.NodeIDs[i+1:]...)
				removed = true
				break
			}
		}
		if !removed {
			return
		}
	}
}

// collapseDuplicateRefs removes any node-ref whose point coincides with
// its predecessor's within ptTol.
func collapseDuplicateRefs(ids []string, g *Graph, ptTol float64) []string {
	if len(ids) == 0 {
		return ids
	}
	out := []string{ids[0]}
	for i := 1; i < len(ids); i++ {
		prev := g.point(out[len(out)-1])
		cur := g.point(ids[i])
		if cur.Distance(prev) <= ptTol {
			continue
		}
		out = append(out, ids[i])
	}
	return out
}

// normalizeDegrees converts radians to degrees in [0,360).
func normalizeDegrees(radians float64) float64 {
	deg := radians * 180 / math.Pi
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// wrapDiff is the smaller of the two angular distances between a and b on
// a 360-degree circle, handling wraparound at 0/360.
func wrapDiff(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// removeSolitaryNodes is §4.6 step 2: drop any node that carries no tag
// and is referenced by no remaining way.
func removeSolitaryNodes(g *Graph) {
	referenced := make(map[string]bool, len(g.Nodes))
	for _, w := range g.Ways {
		for _, id := range w.NodeIDs {
			referenced[id] = true
		}
	}
	for id, n := range g.Nodes {
		if !n.Tagged && !referenced[id] {
			delete(g.Nodes, id)
		}
	}
}

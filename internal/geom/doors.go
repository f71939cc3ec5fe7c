package geom

// AddDoorsToPolygon inserts, into poly, every candidate door that lies
// within doorToRoom of one of poly's edges, and returns the list of doors
// actually associated with poly (those already on it, plus those just
// inserted). Each door is associated at most once.
//
// A door already coincident with a vertex (within tol) is recorded as
// associated without touching the polygon. A door whose perpendicular
// foot onto an edge falls in the open interval between that edge's
// endpoints, within doorToRoom, is inserted at the edge's later index
// (preserving the polygon's ordering) using the door's own coordinates —
// the foot is only used to decide acceptance, never as the inserted
// point. A foot that coincides with an existing vertex is treated as
// "already on" that vertex instead of inserting a near-duplicate.
//
// Because an insertion changes which edges are adjacent to which
// vertices, the edge scan restarts from the first edge whenever an
// insertion happens, rather than continuing with a stale edge.
func AddDoorsToPolygon(poly *Polygon, candidates []Point, doorToRoom, tol float64) []Point {
	associated := make([]Point, 0, len(candidates))
	done := make([]bool, len(candidates))

	markDone := func(i int, at Point) {
		done[i] = true
		associated = append(associated, at)
	}

	for i, door := range candidates {
		if done[i] {
			continue
		}
		if Contains(poly.Points(), door, tol) {
			markDone(i, door)
		}
	}

	for {
		inserted := false
	scan:
		for index := 0; index < poly.Len(); index++ {
			prev := poly.At(index - 1)
			cur := poly.At(index)
			line := LineThrough(prev, cur, tol)
			for i, door := range candidates {
				if done[i] {
					continue
				}
				orth := Orthogonal(line, door)
				foot, ok := Intersect(line, orth, tol)
				if !ok {
					continue
				}
				if foot.Equal(prev, tol) || foot.Equal(cur, tol) {
					if door.Distance(foot) < doorToRoom {
						vertex := prev
						if foot.Equal(cur, tol) {
							vertex = cur
						}
						markDone(i, vertex)
					}
					continue
				}
				if door.Distance(foot) < doorToRoom && InInterval(prev, cur, foot, tol) {
					poly.Insert(index, door)
					markDone(i, door)
					inserted = true
					break scan
				}
			}
		}
		if !inserted {
			break
		}
	}
	return associated
}

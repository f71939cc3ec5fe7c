package skeleton

import (
	"container/heap"
	"math"

	"github.com/dshills/osmroutegen/internal/geom"
)

// wfVertex is one vertex of the shrinking list-of-active-vertices (LAV).
// Its position at any time t >= spawnTime is origin + (t-spawnTime)*vel.
type wfVertex struct {
	origin     geom.Point
	spawnTime  float64
	vel        geom.Point
	edgeBefore int
	edgeAfter  int
	prev, next *wfVertex
	alive      bool
}

func (v *wfVertex) positionAt(t float64) geom.Point {
	dt := t - v.spawnTime
	return geom.Point{X: v.origin.X + dt*v.vel.X, Y: v.origin.Y + dt*v.vel.Y}
}

// bisectorVelocity solves for the vector d such that moving a point by d
// per unit of offset-time keeps it exactly offset-t from both edges:
// n1.d = 1 and n2.d = 1.
func bisectorVelocity(n1, n2 geom.Point) geom.Point {
	det := n1.X*n2.Y - n2.X*n1.Y
	if math.Abs(det) < 1e-12 {
		return n1 // parallel edges: any offset-consistent motion is along the shared normal
	}
	dx := (n2.Y - n1.Y) / det
	dy := (n1.X - n2.X) / det
	return geom.Point{X: dx, Y: dy}
}

type event struct {
	t           float64
	left, right *wfVertex
	point       geom.Point
	index       int // heap bookkeeping
}

type eventQueue []*event

func (q eventQueue) Len() int            { return len(q) }
func (q eventQueue) Less(i, j int) bool  { return q[i].t < q[j].t }
func (q eventQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i]; q[i].index = i; q[j].index = j }
func (q *eventQueue) Push(x interface{}) { e := x.(*event); e.index = len(*q); *q = append(*q, e) }
func (q *eventQueue) Pop() interface{} {
	old := *q
	n := len(old)
	e := old[n-1]
	*q = old[:n-1]
	return e
}

// edgeCollapse returns the time and point at which left and right (assumed
// adjacent LAV vertices) reach the same position, or ok=false if their
// velocities never bring them together.
func edgeCollapse(left, right *wfVertex) (t float64, p geom.Point, ok bool) {
	// Solve left.positionAt(t) == right.positionAt(t) componentwise; both
	// components must agree on t within tolerance for a real collapse.
	ax, ay := left.origin.X-left.vel.X*left.spawnTime, left.origin.Y-left.vel.Y*left.spawnTime
	bx, by := right.origin.X-right.vel.X*right.spawnTime, right.origin.Y-right.vel.Y*right.spawnTime
	// left.positionAt(t).X = ax + vel.X*t ; similarly for right.
	dvx := left.vel.X - right.vel.X
	dvy := left.vel.Y - right.vel.Y
	if math.Abs(dvx) < 1e-12 && math.Abs(dvy) < 1e-12 {
		return 0, geom.Point{}, false
	}
	var tx, ty float64
	haveX, haveY := false, false
	if math.Abs(dvx) >= 1e-12 {
		tx = (bx - ax) / dvx
		haveX = true
	}
	if math.Abs(dvy) >= 1e-12 {
		ty = (by - ay) / dvy
		haveY = true
	}
	switch {
	case haveX && haveY:
		if math.Abs(tx-ty) > 1e-6*(1+math.Abs(tx)) {
			return 0, geom.Point{}, false
		}
		t = (tx + ty) / 2
	case haveX:
		t = tx
	case haveY:
		t = ty
	default:
		return 0, geom.Point{}, false
	}
	minStart := math.Max(left.spawnTime, right.spawnTime)
	if t < minStart-1e-9 {
		return 0, geom.Point{}, false
	}
	return t, left.positionAt(t), true
}

// edgeNormals computes each original loop edge's frozen inward unit
// normal. inward=true rotates each edge direction 90deg to the left
// (correct for a ring whose interior is on the left, which
// geom.PolygonOrientation reports as CW); inward=false rotates to the
// right (used for an outer ring it reports as CCW, and for CW hole loops,
// where free space is to the traversal's right).
func edgeNormals(points []geom.Point, inward bool) []geom.Point {
	n := len(points)
	normals := make([]geom.Point, n)
	for i := 0; i < n; i++ {
		a := points[i]
		b := points[(i+1)%n]
		dx, dy := b.X-a.X, b.Y-a.Y
		length := math.Hypot(dx, dy)
		if length < 1e-12 {
			normals[i] = geom.Point{}
			continue
		}
		dx, dy = dx/length, dy/length
		if inward {
			normals[i] = geom.Point{X: -dy, Y: dx}
		} else {
			normals[i] = geom.Point{X: dy, Y: -dx}
		}
	}
	return normals
}

// buildLAV seeds one list-of-active-vertices from a simple polygon loop
// given its precomputed per-edge normals (see edgeNormals).
func buildLAV(points []geom.Point, normals []geom.Point) []*wfVertex {
	n := len(points)
	if n < 3 {
		return nil
	}
	verts := make([]*wfVertex, n)
	for i := 0; i < n; i++ {
		before := normals[(i-1+n)%n]
		after := normals[i]
		verts[i] = &wfVertex{
			origin:     points[i],
			spawnTime:  0,
			vel:        bisectorVelocity(before, after),
			edgeBefore: (i - 1 + n) % n,
			edgeAfter:  i,
			alive:      true,
		}
	}
	for i := 0; i < n; i++ {
		verts[i].prev = verts[(i-1+n)%n]
		verts[i].next = verts[(i+1)%n]
	}
	return verts
}

// shrinkLAV runs the edge-event loop over a seeded LAV and returns one arc
// per collapsed vertex. normals are the loop's frozen per-edge inward
// normals (indexed the same way as edgeBefore/edgeAfter), used to derive
// each newly-merged vertex's bisector velocity. maxEvents bounds
// pathological/degenerate input.
func shrinkLAV(verts []*wfVertex, normals []geom.Point, maxEvents int) []Arc {
	if len(verts) < 3 {
		return nil
	}
	var arcs []Arc
	q := &eventQueue{}
	heap.Init(q)

	pushEvent := func(l, r *wfVertex) {
		t, p, ok := edgeCollapse(l, r)
		if !ok {
			return
		}
		heap.Push(q, &event{t: t, left: l, right: r, point: p})
	}

	alive := len(verts)
	for i := 0; i < len(verts); i++ {
		pushEvent(verts[i], verts[i].next)
	}

	for alive >= 3 && q.Len() > 0 && maxEvents > 0 {
		maxEvents--
		e := heap.Pop(q).(*event)
		if !e.left.alive || !e.right.alive || e.left.next != e.right {
			continue
		}

		arcs = append(arcs, Arc{Source: e.left.origin, Sinks: []geom.Point{e.point}})
		arcs = append(arcs, Arc{Source: e.right.origin, Sinks: []geom.Point{e.point}})

		e.left.alive = false
		e.right.alive = false
		alive -= 2

		prev := e.left.prev
		next := e.right.next
		if prev == e.right || next == e.left {
			// The LAV has shrunk to a single remaining vertex; nothing left to link.
			break
		}

		merged := &wfVertex{
			origin:     e.point,
			spawnTime:  e.t,
			edgeBefore: e.left.edgeBefore,
			edgeAfter:  e.right.edgeAfter,
			prev:       prev,
			next:       next,
			alive:      true,
		}
		merged.vel = bisectorVelocity(normals[merged.edgeBefore], normals[merged.edgeAfter])

		prev.next = merged
		next.prev = merged
		alive++

		pushEvent(prev, merged)
		pushEvent(merged, next)
	}
	return arcs
}

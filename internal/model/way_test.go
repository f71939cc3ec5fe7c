package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/osmroutegen/internal/geom"
	"github.com/dshills/osmroutegen/internal/model"
)

const tol = 1e-7

func TestWay_ReversedPreservesShape(t *testing.T) {
	w := model.NewWay([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}, "0", model.Footway)
	r := w.Reversed()
	assert.True(t, r.First().Equal(w.Last(), tol))
	assert.True(t, r.Last().Equal(w.First(), tol))
}

func TestWay_SameShape(t *testing.T) {
	a := model.NewWay([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}, "0", model.Footway)
	b := model.NewWay([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}, "0", model.Footway)
	c := model.NewWay([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, "0", model.Footway)
	assert.True(t, a.SameShape(b, tol))
	assert.False(t, a.SameShape(c, tol))
}

func TestWay_IsDegenerateLoop(t *testing.T) {
	loop := model.NewWay([]geom.Point{{X: 1, Y: 1}, {X: 1, Y: 1}}, "0", model.Footway)
	real := model.NewWay([]geom.Point{{X: 1, Y: 1}, {X: 2, Y: 1}}, "0", model.Footway)
	assert.True(t, loop.IsDegenerateLoop(tol))
	assert.False(t, real.IsDegenerateLoop(tol))
}

func TestWayType_String(t *testing.T) {
	assert.Equal(t, "footway", model.Footway.String())
	assert.Equal(t, "stairs", model.Stairs.String())
	assert.Equal(t, "elevator", model.Elevator.String())
}

func TestNewRoom_OrientsOuterCCWAndBarriersCW(t *testing.T) {
	outerCW := geom.NewPolygon([]geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}, "0")
	barrierCCW := geom.NewPolygon([]geom.Point{{X: 4, Y: 4}, {X: 4, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 4}}, "0")

	room := model.NewRoom(outerCW, []*geom.Polygon{barrierCCW}, "0", tol)

	assert.Equal(t, geom.CCW, geom.PolygonOrientation(room.Outer))
	assert.Equal(t, geom.CW, geom.PolygonOrientation(room.Barriers[0]))
}

func TestRoom_AddDoors_DedupesByCoordinate(t *testing.T) {
	outer := geom.NewPolygon([]geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}, "0")
	room := model.NewRoom(outer, nil, "0", tol)

	door := geom.Point{X: 5, Y: 0}
	room.AddDoors([]geom.Point{door, door}, 0.5, tol)

	assert.Len(t, room.Doors, 1)
}

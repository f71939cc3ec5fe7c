package wayslab_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/dshills/osmroutegen/internal/config"
	"github.com/dshills/osmroutegen/internal/geom"
	"github.com/dshills/osmroutegen/internal/model"
	"github.com/dshills/osmroutegen/internal/skeleton"
	"github.com/dshills/osmroutegen/internal/wayslab"
)

// Determinism law (§8): identical input produces an identical, ordered
// Way list. Random rectangular rooms and door placements are generated
// by rapid and each run through Build twice; both runs must agree
// point-for-point.
func TestBuild_DeterministicAcrossRepeatedRuns(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := float64(rapid.IntRange(4, 40).Draw(t, "w"))
		h := float64(rapid.IntRange(4, 40).Draw(t, "h"))
		outer := geom.NewPolygon([]geom.Point{{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h}}, "0")

		doorCount := rapid.IntRange(0, 4).Draw(t, "doorCount")
		var doors []geom.Point
		for i := 0; i < doorCount; i++ {
			side := rapid.IntRange(0, 3).Draw(t, "side")
			pos := float64(rapid.IntRange(1, 39).Draw(t, "pos"))
			switch side {
			case 0:
				doors = append(doors, geom.Point{X: min(pos, w-1), Y: 0})
			case 1:
				doors = append(doors, geom.Point{X: min(pos, w-1), Y: h})
			case 2:
				doors = append(doors, geom.Point{X: 0, Y: min(pos, h-1)})
			default:
				doors = append(doors, geom.Point{X: w, Y: min(pos, h-1)})
			}
		}

		tol := config.Default()
		run := func() []model.Way {
			room := model.NewRoom(outer, nil, "0", tol.GeneralMappingUncertainty)
			room.AddDoors(doors, tol.DoorToRoom, tol.GeneralMappingUncertainty)
			arcs := skeleton.Skeletonize(room.Outer, room.Barriers)
			return wayslab.Build(room, arcs, tol, config.RouteOptions{})
		}

		first := run()
		second := run()

		if !assert.Equal(t, len(first), len(second)) {
			return
		}
		for i := range first {
			assert.Equal(t, first[i].Level, second[i].Level)
			assert.Equal(t, first[i].Type, second[i].Type)
			assert.Equal(t, len(first[i].Points), len(second[i].Points))
			for j := range first[i].Points {
				assert.Equal(t, first[i].Points[j], second[i].Points[j])
			}
		}
	})
}

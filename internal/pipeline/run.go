// Package pipeline orchestrates a full route-synthesis run: parse, per-room
// skeleton + way-graph synthesis, per-connector synthesis, and serialize.
// The point-cluster merger is a separate run (RunMerge). It is the one
// place that owns a logger and a context.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/dshills/osmroutegen/internal/config"
	"github.com/dshills/osmroutegen/internal/connector"
	"github.com/dshills/osmroutegen/internal/debugsvg"
	"github.com/dshills/osmroutegen/internal/merge"
	"github.com/dshills/osmroutegen/internal/model"
	"github.com/dshills/osmroutegen/internal/osmio"
	"github.com/dshills/osmroutegen/internal/skeleton"
	"github.com/dshills/osmroutegen/internal/wayslab"
)

// Run parses r, synthesizes navigation ways for every room and connector,
// and writes the result to w as OSM XML. ctx is checked once per room and
// once per connector (§5: the only cancellation points the pipeline
// defines); a cancelled context aborts before the next element starts,
// letting whatever has already been built finish its current iteration.
func Run(ctx context.Context, log *logrus.Logger, r io.Reader, w io.Writer, tol config.Tolerances, opts config.RouteOptions) error {
	if log == nil {
		log = logrus.StandardLogger()
	}

	in, err := osmio.Decode(r, tol)
	if err != nil {
		log.WithError(err).Error("decoding input")
		return err
	}
	log.WithFields(logrus.Fields{
		"rooms":      len(in.Rooms),
		"connectors": len(in.Connectors),
		"doors":      len(in.Doors),
	}).Info("parsed input")

	var allWays []model.Way

	for i, room := range in.Rooms {
		if err := ctx.Err(); err != nil {
			log.WithError(err).Warn("cancelled before room")
			return err
		}
		roomLog := log.WithField("room", i).WithField("level", room.Level)

		room.AddDoors(model.FilterByLevel(in.Doors, room.Level), tol.DoorToRoom, tol.GeneralMappingUncertainty)

		arcs := skeleton.Skeletonize(room.Outer, room.Barriers)
		ways := wayslab.Build(room, arcs, tol, opts)
		room.Ways = ways
		allWays = append(allWays, ways...)
		roomLog.WithField("ways", len(ways)).Debug("synthesized room ways")

		if opts.DebugSVGDir != "" {
			if err := debugsvg.WriteRoom(opts.DebugSVGDir, i, room); err != nil {
				roomLog.WithError(err).Warn("writing debug SVG")
			}
		}
	}

	for i, conn := range in.Connectors {
		if err := ctx.Err(); err != nil {
			log.WithError(err).Warn("cancelled before connector")
			return err
		}
		ways := connector.Build(conn, in.Doors, tol)
		allWays = append(allWays, ways...)
		log.WithField("connector", i).WithField("ways", len(ways)).Debug("synthesized connector ways")
	}

	log.WithField("total_ways", len(allWays)).Info("synthesis complete")

	if err := osmio.Encode(w, allWays, in.Bounds, opts.PrettyPrint); err != nil {
		log.WithError(err).Error("encoding output")
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}

// RunMerge reads an already-synthesized OSM XML file, runs the
// point-cluster merger (§4.6) over its generated ways, and writes the
// merged result to w.
func RunMerge(log *logrus.Logger, r io.Reader, tags io.Reader, w io.Writer, tol config.Tolerances, pretty bool) error {
	if log == nil {
		log = logrus.StandardLogger()
	}

	g, bounds, err := osmio.DecodeForMerge(r)
	if err != nil {
		log.WithError(err).Error("decoding input for merge")
		return err
	}
	wayTags, _, err := osmio.WayTags(tags)
	if err != nil {
		log.WithError(err).Error("re-reading way tags for merge")
		return err
	}

	before := len(g.Nodes)
	merge.Run(g, tol)
	log.WithFields(logrus.Fields{
		"nodes_before": before,
		"nodes_after":  len(g.Nodes),
	}).Info("merge complete")

	if err := osmio.EncodeFromMerge(w, g, wayTags, bounds, pretty); err != nil {
		log.WithError(err).Error("encoding merged output")
		return fmt.Errorf("encoding merged output: %w", err)
	}
	return nil
}

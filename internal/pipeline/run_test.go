package pipeline_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/osmroutegen/internal/config"
	"github.com/dshills/osmroutegen/internal/pipeline"
)

const roomWithTwoDoorsXML = `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6" upload="false">
  <node id="1" lat="0" lon="0"/>
  <node id="2" lat="10" lon="0"/>
  <node id="3" lat="10" lon="10"/>
  <node id="4" lat="0" lon="10"/>
  <node id="5" lat="0" lon="5">
    <tag k="door" v="yes"/>
    <tag k="level" v="0"/>
  </node>
  <node id="6" lat="10" lon="5">
    <tag k="door" v="yes"/>
    <tag k="level" v="0"/>
  </node>
  <way id="10">
    <nd ref="1"/><nd ref="2"/><nd ref="3"/><nd ref="4"/><nd ref="1"/>
    <tag k="v" v="room"/>
    <tag k="level" v="0"/>
  </way>
</osm>`

func silentLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestRun_SynthesizesWaysForRoomWithTwoDoors(t *testing.T) {
	var out strings.Builder
	err := pipeline.Run(context.Background(), silentLogger(), strings.NewReader(roomWithTwoDoorsXML), &out, config.Default(), config.RouteOptions{PrettyPrint: true})
	require.NoError(t, err)

	assert.Contains(t, out.String(), `k="highway" v="footway"`)
	assert.Contains(t, out.String(), `k="indoor" v="yes"`)
}

func TestRun_CancelledContextAbortsBeforeFirstRoom(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out strings.Builder
	err := pipeline.Run(ctx, silentLogger(), strings.NewReader(roomWithTwoDoorsXML), &out, config.Default(), config.RouteOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_MalformedInputIsReported(t *testing.T) {
	var out strings.Builder
	err := pipeline.Run(context.Background(), silentLogger(), strings.NewReader("not xml"), &out, config.Default(), config.RouteOptions{})
	require.Error(t, err)
}

func TestRunMerge_RoundTripsSynthesizedOutput(t *testing.T) {
	var synthesized strings.Builder
	require.NoError(t, pipeline.Run(context.Background(), silentLogger(), strings.NewReader(roomWithTwoDoorsXML), &synthesized, config.Default(), config.RouteOptions{PrettyPrint: true}))

	var merged strings.Builder
	err := pipeline.RunMerge(silentLogger(), strings.NewReader(synthesized.String()), strings.NewReader(synthesized.String()), &merged, config.Default(), true)
	require.NoError(t, err)
	assert.Contains(t, merged.String(), `k="highway" v="footway"`)
}

package osmio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/osmroutegen/internal/osmio"
)

const generatedXML = `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6" upload="false">
  <node id="-2" lat="0" lon="0"/>
  <node id="-3" lat="1" lon="1"/>
  <node id="-4" lat="2" lon="2"/>
  <way id="-5">
    <nd ref="-2"/><nd ref="-3"/>
    <tag k="indoor" v="yes"/>
    <tag k="level" v="0"/>
    <tag k="highway" v="footway"/>
  </way>
  <way id="-6">
    <nd ref="-3"/><nd ref="-4"/>
    <tag k="indoor" v="yes"/>
    <tag k="level" v="0;1"/>
    <tag k="highway" v="stairs"/>
  </way>
</osm>`

func TestDecodeForMerge_AssignsLevelsFromWays(t *testing.T) {
	g, bounds, err := osmio.DecodeForMerge(strings.NewReader(generatedXML))
	require.NoError(t, err)
	assert.Nil(t, bounds)
	require.Len(t, g.Ways, 2)

	assert.Equal(t, "0", g.Nodes["-2"].Level)
	// Node -3 is shared between a single-level way (level "0") and the
	// first half of a cross-level way ("0;1"); the cross-level split
	// assigns it "0" too, so both agree.
	assert.Equal(t, "0", g.Nodes["-3"].Level)
	assert.Equal(t, "1", g.Nodes["-4"].Level)
}

func TestWayTags_IndexesByWayID(t *testing.T) {
	tags, _, err := osmio.WayTags(strings.NewReader(generatedXML))
	require.NoError(t, err)
	require.Contains(t, tags, "-5")
	found := false
	for _, tag := range tags["-5"] {
		if tag.K == "highway" && tag.V == "footway" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestEncodeFromMerge_RoundTripsNodesAndTags(t *testing.T) {
	g, bounds, err := osmio.DecodeForMerge(strings.NewReader(generatedXML))
	require.NoError(t, err)
	tags, _, err := osmio.WayTags(strings.NewReader(generatedXML))
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, osmio.EncodeFromMerge(&buf, g, tags, bounds, true))

	out := buf.String()
	assert.Equal(t, 3, strings.Count(out, "<node"))
	assert.Contains(t, out, `k="highway" v="stairs"`)
}

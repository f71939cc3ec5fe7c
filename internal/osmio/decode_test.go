package osmio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/osmroutegen/internal/config"
	"github.com/dshills/osmroutegen/internal/model"
	"github.com/dshills/osmroutegen/internal/osmio"
)

const simpleRoomXML = `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6" upload="false">
  <node id="1" lat="0" lon="0"/>
  <node id="2" lat="10" lon="0"/>
  <node id="3" lat="10" lon="10"/>
  <node id="4" lat="0" lon="10"/>
  <node id="5" lat="5" lon="0">
    <tag k="door" v="yes"/>
    <tag k="level" v="0"/>
  </node>
  <way id="10">
    <nd ref="1"/><nd ref="2"/><nd ref="3"/><nd ref="4"/><nd ref="1"/>
    <tag k="v" v="room"/>
    <tag k="level" v="0"/>
  </way>
</osm>`

func TestDecode_ClassifiesRoomAndDoor(t *testing.T) {
	in, err := osmio.Decode(strings.NewReader(simpleRoomXML), config.Default())
	require.NoError(t, err)

	require.Len(t, in.Rooms, 1)
	assert.Equal(t, "0", in.Rooms[0].Level)
	assert.Equal(t, 4, in.Rooms[0].Outer.Len())

	require.Len(t, in.Doors, 1)
	assert.Equal(t, "0", in.Doors[0].Level)
}

func TestDecode_MissingLevelTagIsMalformed(t *testing.T) {
	xmlNoLevel := `<osm version="0.6">
  <node id="1" lat="0" lon="0"/>
  <node id="2" lat="10" lon="0"/>
  <node id="3" lat="10" lon="10"/>
  <way id="10">
    <nd ref="1"/><nd ref="2"/><nd ref="3"/><nd ref="1"/>
    <tag k="v" v="room"/>
  </way>
</osm>`
	_, err := osmio.Decode(strings.NewReader(xmlNoLevel), config.Default())
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInputMalformed)
}

func TestDecode_MultipolygonWithInnerBarrier(t *testing.T) {
	xmlMP := `<osm version="0.6">
  <node id="1" lat="0" lon="0"/>
  <node id="2" lat="10" lon="0"/>
  <node id="3" lat="10" lon="10"/>
  <node id="4" lat="0" lon="10"/>
  <node id="5" lat="4" lon="4"/>
  <node id="6" lat="6" lon="4"/>
  <node id="7" lat="6" lon="6"/>
  <node id="8" lat="4" lon="6"/>
  <way id="10">
    <nd ref="1"/><nd ref="2"/><nd ref="3"/><nd ref="4"/><nd ref="1"/>
  </way>
  <way id="11">
    <nd ref="5"/><nd ref="6"/><nd ref="7"/><nd ref="8"/><nd ref="5"/>
  </way>
  <relation id="20">
    <member type="way" ref="10" role="outer"/>
    <member type="way" ref="11" role="inner"/>
    <tag k="v" v="multipolygon"/>
    <tag k="indoor" v="room"/>
    <tag k="level" v="0"/>
  </relation>
</osm>`
	in, err := osmio.Decode(strings.NewReader(xmlMP), config.Default())
	require.NoError(t, err)
	require.Len(t, in.Rooms, 1)
	assert.Len(t, in.Rooms[0].Barriers, 1)
}

func TestDecode_MultipolygonNonRoomIndoorSkipped(t *testing.T) {
	xmlMP := `<osm version="0.6">
  <node id="1" lat="0" lon="0"/>
  <node id="2" lat="10" lon="0"/>
  <node id="3" lat="10" lon="10"/>
  <node id="4" lat="0" lon="10"/>
  <way id="10">
    <nd ref="1"/><nd ref="2"/><nd ref="3"/><nd ref="4"/><nd ref="1"/>
  </way>
  <relation id="20">
    <member type="way" ref="10" role="outer"/>
    <tag k="v" v="multipolygon"/>
    <tag k="indoor" v="yard"/>
    <tag k="level" v="0"/>
  </relation>
</osm>`
	in, err := osmio.Decode(strings.NewReader(xmlMP), config.Default())
	require.NoError(t, err)
	assert.Empty(t, in.Rooms)
}

func TestDecode_ConnectionRelation(t *testing.T) {
	xmlConn := `<osm version="0.6">
  <node id="1" lat="0" lon="0"/>
  <node id="2" lat="2" lon="0"/>
  <node id="3" lat="2" lon="2"/>
  <node id="4" lat="0" lon="2"/>
  <way id="30">
    <nd ref="1"/><nd ref="2"/><nd ref="3"/><nd ref="4"/><nd ref="1"/>
    <tag k="level" v="0"/>
  </way>
  <way id="31">
    <nd ref="1"/><nd ref="2"/><nd ref="3"/><nd ref="4"/><nd ref="1"/>
    <tag k="level" v="1"/>
  </way>
  <relation id="40">
    <member type="way" ref="30" role=""/>
    <member type="way" ref="31" role=""/>
    <tag k="v" v="connection"/>
    <tag k="v" v="stairs"/>
  </relation>
</osm>`
	in, err := osmio.Decode(strings.NewReader(xmlConn), config.Default())
	require.NoError(t, err)
	require.Len(t, in.Connectors, 1)
	assert.Equal(t, model.ConnectorStairs, in.Connectors[0].Type)
	assert.Len(t, in.Connectors[0].Members, 2)
}

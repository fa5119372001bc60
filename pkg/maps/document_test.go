package maps

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

const groundPayload = "AQAAAAIAAAA=" // tiles [1, 2]

func simpleDocument(body string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.0" orientation="orthogonal" width="2" height="1" tilewidth="16" tileheight="16">
%s
</map>`, body)
}

func TestParseDocumentExample(t *testing.T) {
	source := simpleDocument(`
 <properties>
  <property name="theme" value="dungeon"/>
 </properties>
 <layer name="ground" width="2" height="1">
  <data encoding="base64">` + groundPayload + `</data>
 </layer>`)

	gameMap, err := FromXML([]byte(source))
	require.NoError(t, err)

	require.Equal(t, 1.0, gameMap.Version)
	require.Equal(t, 2, gameMap.Width)
	require.Equal(t, 1, gameMap.Height)
	require.Equal(t, 16, gameMap.TileWidth)
	require.Equal(t, 16, gameMap.TileHeight)
	require.Equal(t, OrientationOrthogonal, gameMap.Orientation)
	require.Equal(t, map[string]string{"theme": "dungeon"}, gameMap.Properties)

	require.Len(t, gameMap.Layers, 1)
	layer, ok := gameMap.Layers[0].(*TileLayer)
	require.True(t, ok)
	require.Equal(t, "ground", layer.Name)
	require.True(t, layer.Visible)
	require.Equal(t, 1.0, layer.Opacity)
	require.Equal(t, []uint32{1, 2}, layer.Tiles)
}

func TestParseDocumentOrientation(t *testing.T) {
	for _, orientation := range []string{"isometric", "hexagonal", "staggered", ""} {
		source := fmt.Sprintf(`<map version="1.0" orientation=%q width="1" height="1" tilewidth="8" tileheight="8"></map>`, orientation)
		gameMap, err := FromXML([]byte(source))
		require.ErrorIs(t, err, ErrUnsupportedOrientation)
		require.Nil(t, gameMap)
	}
}

func TestParseDocumentMissingEncoding(t *testing.T) {
	source := simpleDocument(`
 <layer name="ground" width="2" height="1">
  <data>` + groundPayload + `</data>
 </layer>`)

	gameMap, err := FromXML([]byte(source))
	require.ErrorIs(t, err, ErrMissingEncoding)
	require.Nil(t, gameMap)
}

func TestParseDocumentMissingData(t *testing.T) {
	source := simpleDocument(`<layer name="ground" width="2" height="1"></layer>`)

	_, err := FromXML([]byte(source))
	require.ErrorIs(t, err, ErrMissingEncoding)
}

func TestParseDocumentLayerSizeMismatch(t *testing.T) {
	source := simpleDocument(`
 <layer name="ground" width="3" height="1">
  <data encoding="base64">` + groundPayload + `</data>
 </layer>`)

	gameMap, err := FromXML([]byte(source))
	require.ErrorIs(t, err, ErrLayerSizeMismatch)
	require.Nil(t, gameMap)
}

func TestParseDocumentLayerDimensionFallback(t *testing.T) {
	// The layer omits width/height; the map-level 2x1 applies.
	source := simpleDocument(`
 <layer name="ground">
  <data encoding="base64">` + groundPayload + `</data>
 </layer>`)

	gameMap, err := FromXML([]byte(source))
	require.NoError(t, err)

	layer := gameMap.Layers[0].(*TileLayer)
	require.Equal(t, 2, layer.Width)
	require.Equal(t, 1, layer.Height)
}

func TestParseDocumentCompressedLayers(t *testing.T) {
	tiles := []uint32{3, 0}

	for _, compression := range []Compression{CompressionZlib, CompressionGzip} {
		payload := encodeTiles(t, tiles, compression)
		source := simpleDocument(fmt.Sprintf(`
 <layer name="ground" width="2" height="1">
  <data encoding="base64" compression=%q>%s</data>
 </layer>`, compression, payload))

		gameMap, err := FromXML([]byte(source))
		require.NoError(t, err)

		layer := gameMap.Layers[0].(*TileLayer)
		require.Equal(t, compression, layer.Compression)
		require.Equal(t, tiles, layer.Tiles)
	}
}

func TestParseDocumentMissingDimensions(t *testing.T) {
	source := `<map version="1.0" orientation="orthogonal" tilewidth="8" tileheight="8"></map>`
	_, err := FromXML([]byte(source))
	require.ErrorIs(t, err, ErrMissingAttribute)
}

func TestParseDocumentMalformedAttribute(t *testing.T) {
	source := `<map version="1.0" orientation="orthogonal" width="two" height="1" tilewidth="8" tileheight="8"></map>`
	_, err := FromXML([]byte(source))
	require.ErrorIs(t, err, ErrMalformedAttribute)
}

func TestParseDocumentUnknownTagsIgnored(t *testing.T) {
	source := simpleDocument(`
 <imagelayer name="background"/>
 <editorsettings/>
 <layer name="ground" width="2" height="1">
  <data encoding="base64">` + groundPayload + `</data>
 </layer>`)

	gameMap, err := FromXML([]byte(source))
	require.NoError(t, err)
	require.Len(t, gameMap.Layers, 1)
}

func TestParseDocumentInterleavedOrder(t *testing.T) {
	source := simpleDocument(`
 <layer name="below" width="2" height="1">
  <data encoding="base64">` + groundPayload + `</data>
 </layer>
 <objectgroup name="middle"/>
 <layer name="above" width="2" height="1">
  <data encoding="base64">` + groundPayload + `</data>
 </layer>`)

	gameMap, err := FromXML([]byte(source))
	require.NoError(t, err)

	require.Len(t, gameMap.Layers, 3)
	require.Equal(t, "below", gameMap.Layers[0].LayerName())
	require.Equal(t, "middle", gameMap.Layers[1].LayerName())
	require.Equal(t, "above", gameMap.Layers[2].LayerName())

	require.IsType(t, (*TileLayer)(nil), gameMap.Layers[0])
	require.IsType(t, (*ObjectGroup)(nil), gameMap.Layers[1])
	require.IsType(t, (*TileLayer)(nil), gameMap.Layers[2])
}

func TestParseDocumentVisibility(t *testing.T) {
	source := simpleDocument(`
 <layer name="shown" visible="1" width="2" height="1">
  <data encoding="base64">` + groundPayload + `</data>
 </layer>
 <layer name="hidden" visible="0" width="2" height="1">
  <data encoding="base64">` + groundPayload + `</data>
 </layer>
 <objectgroup name="group-default"/>
 <objectgroup name="group-hidden" visible="0"/>
 <objectgroup name="group-odd" visible="true"/>`)

	gameMap, err := FromXML([]byte(source))
	require.NoError(t, err)

	require.True(t, gameMap.Layers[0].(*TileLayer).Visible)
	require.False(t, gameMap.Layers[1].(*TileLayer).Visible)

	// Object groups only treat "0" as hidden; any other value,
	// including ones a tile layer would hide on, stays visible.
	require.True(t, gameMap.Layers[2].(*ObjectGroup).Visible)
	require.False(t, gameMap.Layers[3].(*ObjectGroup).Visible)
	require.True(t, gameMap.Layers[4].(*ObjectGroup).Visible)
}

func TestParseDocumentObjects(t *testing.T) {
	source := simpleDocument(`
 <objectgroup name="spawns" draworder="index" opacity="0.5">
  <object name="start" type="spawn" x="8" y="12.5"/>
  <object gid="5" x="16" y="0" width="32" height="16" rotation="90">
   <properties>
    <property name="locked" value="1"/>
   </properties>
  </object>
 </objectgroup>`)

	gameMap, err := FromXML([]byte(source))
	require.NoError(t, err)

	group := gameMap.Layers[0].(*ObjectGroup)
	require.Equal(t, "index", group.DrawOrder)
	require.Equal(t, 0.5, group.Opacity)
	require.Len(t, group.Objects, 2)

	start := group.Objects[0]
	require.Nil(t, start.Gid)
	require.Equal(t, "start", start.Name)
	require.Equal(t, "spawn", start.Type)
	require.Equal(t, 8.0, start.X)
	require.Equal(t, 12.5, start.Y)
	require.True(t, start.Visible)

	decorated := group.Objects[1]
	require.NotNil(t, decorated.Gid)
	require.Equal(t, uint32(5), *decorated.Gid)
	require.Equal(t, 90.0, decorated.Rotation)
	require.Equal(t, map[string]string{"locked": "1"}, decorated.Properties)
}

func TestParseDocumentObjectMissingPosition(t *testing.T) {
	source := simpleDocument(`
 <objectgroup name="spawns">
  <object name="start" x="8"/>
 </objectgroup>`)

	_, err := FromXML([]byte(source))
	require.ErrorIs(t, err, ErrMissingAttribute)
}

func TestParseDocumentPropertyScoping(t *testing.T) {
	// The tile's property block must not surface at the tileset or
	// map level, and the tileset's must not surface at the map level.
	source := simpleDocument(`
 <tileset name="terrain" firstgid="1" tilewidth="16" tileheight="16">
  <properties>
   <property name="scope" value="tileset"/>
  </properties>
  <tile id="0">
   <properties>
    <property name="scope" value="tile"/>
   </properties>
  </tile>
 </tileset>`)

	gameMap, err := FromXML([]byte(source))
	require.NoError(t, err)
	require.Empty(t, gameMap.Properties)

	tileset := gameMap.Tilesets[0]
	require.Equal(t, map[string]string{"scope": "tileset"}, tileset.Properties)
	require.Equal(t, map[string]string{"scope": "tile"}, tileset.TileProperties[0])
}

func TestParseDocumentNoReferenceRetained(t *testing.T) {
	source := simpleDocument(`
 <layer name="ground" width="2" height="1">
  <data encoding="base64">` + groundPayload + `</data>
 </layer>`)

	first, err := FromXML([]byte(source))
	require.NoError(t, err)

	second, err := FromXML([]byte(source))
	require.NoError(t, err)

	// Two parses of the same bytes must be equal but fully
	// independent values.
	require.Equal(t, first, second)
	second.Layers[0].(*TileLayer).Tiles[0] = 99
	require.Equal(t, uint32(1), first.Layers[0].(*TileLayer).Tiles[0])
}

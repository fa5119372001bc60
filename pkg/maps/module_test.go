package maps

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatFromExtension(t *testing.T) {
	cases := map[string]Format{
		"dungeon.csv":      FormatCSV,
		"dungeon.json":     FormatTiledJSON,
		"dungeon.tmx":      FormatTiledXML,
		"dungeon.xml":      FormatTiledXML,
		"maps/DUNGEON.TMX": FormatTiledXML,
	}

	for path, expected := range cases {
		format, err := FormatFromExtension(path)
		require.NoError(t, err, path)
		require.Equal(t, expected, format, path)
	}

	_, err := FormatFromExtension("dungeon.dat")
	require.ErrorIs(t, err, ErrUnknownFormat)

	_, err = FormatFromExtension("dungeon")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoadDispatch(t *testing.T) {
	gameMap, err := Load(FormatCSV, []byte("1,2\n"))
	require.NoError(t, err)
	require.Equal(t, 2, gameMap.Width)

	_, err = Load(Format("binary"), []byte{})
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "level.tmx")
	source := simpleDocument(`
 <layer name="ground" width="2" height="1">
  <data encoding="base64">` + groundPayload + `</data>
 </layer>`)
	require.NoError(t, os.WriteFile(path, []byte(source), 0644))

	gameMap, err := FromFile(path)
	require.NoError(t, err)
	require.Len(t, gameMap.Layers, 1)

	_, err = FromFile(filepath.Join(dir, "level.dat"))
	require.ErrorIs(t, err, ErrUnknownFormat)

	_, err = FromFile(filepath.Join(dir, "missing.tmx"))
	require.Error(t, err)
}

func TestFromXMLNotAMap(t *testing.T) {
	_, err := FromXML([]byte(`<tileset name="x"/>`))
	require.Error(t, err)

	_, err = FromXML([]byte(`<<<`))
	require.Error(t, err)
}

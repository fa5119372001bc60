package maps

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromCSV(t *testing.T) {
	gameMap, err := FromCSV([]byte("1,2,3\n4,5,6\n"))
	require.NoError(t, err)

	require.Equal(t, 3, gameMap.Width)
	require.Equal(t, 2, gameMap.Height)
	require.Equal(t, OrientationOrthogonal, gameMap.Orientation)

	require.Len(t, gameMap.Layers, 1)
	layer := gameMap.Layers[0].(*TileLayer)
	require.Equal(t, []uint32{1, 2, 3, 4, 5, 6}, layer.Tiles)
	require.True(t, layer.Visible)
}

func TestFromCSVBlankLines(t *testing.T) {
	gameMap, err := FromCSV([]byte("\n1,2\n\n3,4\n\n"))
	require.NoError(t, err)
	require.Equal(t, 2, gameMap.Height)
}

func TestFromCSVRagged(t *testing.T) {
	_, err := FromCSV([]byte("1,2,3\n4,5\n"))
	require.ErrorIs(t, err, ErrRaggedGrid)
}

func TestFromCSVMalformed(t *testing.T) {
	_, err := FromCSV([]byte("1,x,3\n"))
	require.ErrorIs(t, err, ErrMalformedAttribute)
}

func TestFromCSVEmpty(t *testing.T) {
	_, err := FromCSV([]byte("\n\n"))
	require.ErrorIs(t, err, ErrRaggedGrid)
}

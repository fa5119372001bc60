package maps

import (
	"fmt"
	"strconv"
	"strings"
)

// FromCSV normalizes a row/column text grid into a single-layer map.
// Every row must have the same number of columns. The grid carries
// no tile pixel dimensions; those stay zero for the consumer to fill
// in.
func FromCSV(data []byte) (*GameMap, error) {
	var rows [][]uint32
	columns := -1

	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		cells := strings.Split(line, ",")
		if columns == -1 {
			columns = len(cells)
		} else if len(cells) != columns {
			return nil, fmt.Errorf(
				"row %d has %d columns, expected %d: %w",
				i,
				len(cells),
				columns,
				ErrRaggedGrid,
			)
		}

		row := make([]uint32, len(cells))
		for j, cell := range cells {
			index, err := strconv.ParseUint(strings.TrimSpace(cell), 10, 32)
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: %q: %w", i, j, cell, ErrMalformedAttribute)
			}

			row[j] = uint32(index)
		}

		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("empty grid: %w", ErrRaggedGrid)
	}

	tiles := make([]uint32, 0, len(rows)*columns)
	for _, row := range rows {
		tiles = append(tiles, row...)
	}

	layer := TileLayer{
		Name:    "grid",
		Width:   columns,
		Height:  len(rows),
		Visible: true,
		Opacity: 1.0,
		Tiles:   tiles,
	}

	return &GameMap{
		Version:     1.0,
		Width:       columns,
		Height:      len(rows),
		Orientation: OrientationOrthogonal,
		Properties:  make(map[string]string),
		Layers:      []Layer{&layer},
		Tilesets:    make([]*Tileset, 0),
	}, nil
}

package maps

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// parseTileset rebuilds one <tileset> element, including per-tile
// metadata, terrain definitions and the optional shared image. Only
// an <image> that is a direct child of the tileset is the shared
// image; images nested under <tile> are per-tile overrides.
func parseTileset(e *etree.Element) (*Tileset, error) {
	name, err := requireStringAttr(e, "name")
	if err != nil {
		return nil, err
	}

	firstGid, err := requireUintAttr(e, "firstgid")
	if err != nil {
		return nil, err
	}

	tileWidth, err := requireIntAttr(e, "tilewidth")
	if err != nil {
		return nil, err
	}

	tileHeight, err := requireIntAttr(e, "tileheight")
	if err != nil {
		return nil, err
	}

	spacing, err := intAttr(e, "spacing", 0)
	if err != nil {
		return nil, err
	}

	margin, err := intAttr(e, "margin", 0)
	if err != nil {
		return nil, err
	}

	tileset := Tileset{
		Name:           name,
		FirstGid:       firstGid,
		TileWidth:      tileWidth,
		TileHeight:     tileHeight,
		Spacing:        spacing,
		Margin:         margin,
		Properties:     elementProperties(e),
		TileProperties: make(map[int]map[string]string),
		Tiles:          make(map[int]*TileMeta),
	}

	for _, child := range e.ChildElements() {
		switch tag(child.Tag) {
		case tagTile:
			if err := parseTilesetTile(child, &tileset); err != nil {
				return nil, err
			}
		case tagTerrainTypes:
			for _, terrain := range child.ChildElements() {
				if tag(terrain.Tag) != tagTerrain {
					continue
				}

				tile, err := intAttr(terrain, "tile", 0)
				if err != nil {
					return nil, err
				}

				tileset.Terrains = append(tileset.Terrains, Terrain{
					Name: stringAttr(terrain, "name", ""),
					Tile: tile,
				})
			}
		case tagTileOffset:
			x, err := intAttr(child, "x", 0)
			if err != nil {
				return nil, err
			}

			y, err := intAttr(child, "y", 0)
			if err != nil {
				return nil, err
			}

			tileset.Offset = TileOffset{X: x, Y: y}
		case tagImage:
			image, err := parseImage(child)
			if err != nil {
				return nil, err
			}

			tileset.Image = image
		}
	}

	return &tileset, nil
}

func parseTilesetTile(e *etree.Element, tileset *Tileset) error {
	id, err := requireIntAttr(e, "id")
	if err != nil {
		return err
	}

	meta := TileMeta{}
	hasMeta := false

	if attr := e.SelectAttr("terrain"); attr != nil {
		corners, err := parseTerrainCorners(e, attr.Value)
		if err != nil {
			return err
		}

		meta.Terrain = corners
		hasMeta = true
	}

	if e.SelectAttr("probability") != nil {
		probability, err := floatAttr(e, "probability", 0)
		if err != nil {
			return err
		}

		meta.Probability = &probability
		hasMeta = true
	}

	if image := e.SelectElement("image"); image != nil {
		meta.Image = stringAttr(image, "source", "")
		hasMeta = true
	}

	if hasMeta {
		tileset.Tiles[id] = &meta
	}

	if properties := elementProperties(e); len(properties) > 0 {
		tileset.TileProperties[id] = properties
	}

	return nil
}

// parseTerrainCorners splits a terrain attribute into its corner
// indices: up to four comma-separated entries, empty entries allowed
// (an unset corner stays -1).
func parseTerrainCorners(e *etree.Element, value string) ([]int, error) {
	parts := strings.Split(value, ",")
	if len(parts) > 4 {
		parts = parts[:4]
	}

	corners := make([]int, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			corners[i] = -1
			continue
		}

		index, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("<%s> terrain=%q: %w", e.Tag, value, ErrMalformedAttribute)
		}

		corners[i] = index
	}

	return corners, nil
}

func parseImage(e *etree.Element) (*Image, error) {
	width, err := intAttr(e, "width", 0)
	if err != nil {
		return nil, err
	}

	height, err := intAttr(e, "height", 0)
	if err != nil {
		return nil, err
	}

	return &Image{
		Source: stringAttr(e, "source", ""),
		Width:  width,
		Height: height,
	}, nil
}

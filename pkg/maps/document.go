package maps

import (
	"fmt"

	"github.com/beevik/etree"
)

// tag is the closed set of element names the traversal dispatches
// on. Anything outside the set is skipped, never an error.
type tag string

const (
	tagLayer        tag = "layer"
	tagObjectGroup  tag = "objectgroup"
	tagTileset      tag = "tileset"
	tagTile         tag = "tile"
	tagTerrainTypes tag = "terraintypes"
	tagTerrain      tag = "terrain"
	tagTileOffset   tag = "tileoffset"
	tagImage        tag = "image"
	tagObject       tag = "object"
)

// ParseDocument normalizes a parsed map document into a GameMap. The
// traversal copies every scalar it needs out of the tree in a single
// pass; the returned map holds no references into root. Parsing
// either produces a complete map or fails with no map at all.
func ParseDocument(root *etree.Element) (*GameMap, error) {
	orientation := Orientation(stringAttr(root, "orientation", ""))
	if orientation != OrientationOrthogonal {
		return nil, fmt.Errorf("%q: %w", orientation, ErrUnsupportedOrientation)
	}

	version, err := floatAttr(root, "version", 1.0)
	if err != nil {
		return nil, err
	}

	width, err := requireIntAttr(root, "width")
	if err != nil {
		return nil, err
	}

	height, err := requireIntAttr(root, "height")
	if err != nil {
		return nil, err
	}

	tileWidth, err := requireIntAttr(root, "tilewidth")
	if err != nil {
		return nil, err
	}

	tileHeight, err := requireIntAttr(root, "tileheight")
	if err != nil {
		return nil, err
	}

	gameMap := GameMap{
		Version:     version,
		Width:       width,
		Height:      height,
		TileWidth:   tileWidth,
		TileHeight:  tileHeight,
		Orientation: orientation,
		Properties:  elementProperties(root),
		Layers:      make([]Layer, 0),
		Tilesets:    make([]*Tileset, 0),
	}

	for _, child := range root.ChildElements() {
		switch tag(child.Tag) {
		case tagLayer:
			layer, err := parseTileLayer(child, width, height)
			if err != nil {
				return nil, err
			}

			gameMap.Layers = append(gameMap.Layers, layer)
		case tagObjectGroup:
			group, err := parseObjectGroup(child)
			if err != nil {
				return nil, err
			}

			gameMap.Layers = append(gameMap.Layers, group)
		case tagTileset:
			tileset, err := parseTileset(child)
			if err != nil {
				return nil, err
			}

			gameMap.Tilesets = append(gameMap.Tilesets, tileset)
		}
	}

	return &gameMap, nil
}

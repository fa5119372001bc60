package maps

import (
	"encoding/json"
	"fmt"
)

// The JSON export is already structured; normalizing it is mostly a
// matter of checking the orientation gate and mapping field shapes
// onto the canonical model.

type jsonDocument struct {
	Version     float64           `json:"version"`
	Orientation string            `json:"orientation"`
	Width       int               `json:"width"`
	Height      int               `json:"height"`
	TileWidth   int               `json:"tilewidth"`
	TileHeight  int               `json:"tileheight"`
	Properties  map[string]string `json:"properties"`
	Layers      []jsonLayer       `json:"layers"`
	Tilesets    []jsonTileset     `json:"tilesets"`
}

type jsonLayer struct {
	Type       string            `json:"type"`
	Name       string            `json:"name"`
	Width      int               `json:"width"`
	Height     int               `json:"height"`
	Visible    *bool             `json:"visible"`
	Opacity    *float64          `json:"opacity"`
	DrawOrder  string            `json:"draworder"`
	Data       []uint32          `json:"data"`
	Objects    []jsonObject      `json:"objects"`
	Properties map[string]string `json:"properties"`
}

type jsonObject struct {
	Gid        *uint32           `json:"gid"`
	Name       string            `json:"name"`
	Type       string            `json:"type"`
	X          float64           `json:"x"`
	Y          float64           `json:"y"`
	Width      float64           `json:"width"`
	Height     float64           `json:"height"`
	Rotation   float64           `json:"rotation"`
	Visible    *bool             `json:"visible"`
	Properties map[string]string `json:"properties"`
}

type jsonTileset struct {
	Name        string            `json:"name"`
	FirstGid    uint32            `json:"firstgid"`
	TileWidth   int               `json:"tilewidth"`
	TileHeight  int               `json:"tileheight"`
	Margin      int               `json:"margin"`
	Spacing     int               `json:"spacing"`
	Image       string            `json:"image"`
	ImageWidth  int               `json:"imagewidth"`
	ImageHeight int               `json:"imageheight"`
	TileOffset  *TileOffset       `json:"tileoffset"`
	Properties  map[string]string `json:"properties"`
}

// FromJSON validates an already-structured map document and tags the
// result as canonical. Tile indices arrive as a numeric array, so no
// payload decoding happens here; layer sizes are still enforced.
func FromJSON(data []byte) (*GameMap, error) {
	var document jsonDocument
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, err
	}

	orientation := Orientation(document.Orientation)
	if orientation != OrientationOrthogonal {
		return nil, fmt.Errorf("%q: %w", document.Orientation, ErrUnsupportedOrientation)
	}

	gameMap := GameMap{
		Version:     document.Version,
		Width:       document.Width,
		Height:      document.Height,
		TileWidth:   document.TileWidth,
		TileHeight:  document.TileHeight,
		Orientation: orientation,
		Properties:  document.Properties,
		Layers:      make([]Layer, 0, len(document.Layers)),
		Tilesets:    make([]*Tileset, 0, len(document.Tilesets)),
	}

	if gameMap.Properties == nil {
		gameMap.Properties = make(map[string]string)
	}

	for _, layer := range document.Layers {
		switch layer.Type {
		case "tilelayer":
			width := layer.Width
			if width == 0 {
				width = document.Width
			}

			height := layer.Height
			if height == 0 {
				height = document.Height
			}

			if len(layer.Data) != width*height {
				return nil, fmt.Errorf(
					"layer %q has %d tiles for %dx%d: %w",
					layer.Name,
					len(layer.Data),
					width,
					height,
					ErrLayerSizeMismatch,
				)
			}

			gameMap.Layers = append(gameMap.Layers, &TileLayer{
				Name:    layer.Name,
				Width:   width,
				Height:  height,
				Visible: layer.Visible == nil || *layer.Visible,
				Opacity: layerOpacity(layer.Opacity),
				Tiles:   layer.Data,
			})
		case "objectgroup":
			group := ObjectGroup{
				Name:      layer.Name,
				Visible:   layer.Visible == nil || *layer.Visible,
				Opacity:   layerOpacity(layer.Opacity),
				DrawOrder: layer.DrawOrder,
				Objects:   make([]*Object, 0, len(layer.Objects)),
			}

			if group.DrawOrder == "" {
				group.DrawOrder = "topdown"
			}

			for _, object := range layer.Objects {
				properties := object.Properties
				if properties == nil {
					properties = make(map[string]string)
				}

				group.Objects = append(group.Objects, &Object{
					Gid:        object.Gid,
					Name:       object.Name,
					Type:       object.Type,
					X:          object.X,
					Y:          object.Y,
					Width:      object.Width,
					Height:     object.Height,
					Rotation:   object.Rotation,
					Visible:    object.Visible == nil || *object.Visible,
					Properties: properties,
				})
			}

			gameMap.Layers = append(gameMap.Layers, &group)
		}
	}

	for _, tileset := range document.Tilesets {
		canonical := Tileset{
			Name:       tileset.Name,
			FirstGid:   tileset.FirstGid,
			TileWidth:  tileset.TileWidth,
			TileHeight: tileset.TileHeight,
			Margin:     tileset.Margin,
			Spacing:    tileset.Spacing,
			Properties: tileset.Properties,
		}

		if canonical.Properties == nil {
			canonical.Properties = make(map[string]string)
		}

		if tileset.TileOffset != nil {
			canonical.Offset = *tileset.TileOffset
		}

		if tileset.Image != "" {
			canonical.Image = &Image{
				Source: tileset.Image,
				Width:  tileset.ImageWidth,
				Height: tileset.ImageHeight,
			}
		}

		gameMap.Tilesets = append(gameMap.Tilesets, &canonical)
	}

	return &gameMap, nil
}

func layerOpacity(opacity *float64) float64 {
	if opacity == nil {
		return 1.0
	}
	return *opacity
}

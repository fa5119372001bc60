package maps

import (
	"fmt"

	"github.com/beevik/etree"
)

// parseTileLayer rebuilds one <layer> element. Dimensions fall back
// to the map-level values when the layer omits its own. The single
// <data> child must declare an encoding; compression is optional.
func parseTileLayer(e *etree.Element, mapWidth, mapHeight int) (*TileLayer, error) {
	width, err := intAttr(e, "width", mapWidth)
	if err != nil {
		return nil, err
	}

	height, err := intAttr(e, "height", mapHeight)
	if err != nil {
		return nil, err
	}

	opacity, err := floatAttr(e, "opacity", 1.0)
	if err != nil {
		return nil, err
	}

	layer := TileLayer{
		Name:    stringAttr(e, "name", ""),
		Width:   width,
		Height:  height,
		Visible: boolAttr(e, "visible", true),
		Opacity: opacity,
	}

	data := e.SelectElement("data")
	if data == nil {
		return nil, fmt.Errorf("layer %q has no data element: %w", layer.Name, ErrMissingEncoding)
	}

	encoding := data.SelectAttr("encoding")
	if encoding == nil {
		return nil, fmt.Errorf("layer %q: %w", layer.Name, ErrMissingEncoding)
	}

	layer.Encoding = Encoding(encoding.Value)
	layer.Compression = Compression(stringAttr(data, "compression", ""))
	layer.RawData = data.Text()

	tiles, err := decodePayload(layer.RawData, layer.Encoding, layer.Compression)
	if err != nil {
		return nil, fmt.Errorf("layer %q: %w", layer.Name, err)
	}

	if len(tiles) != layer.Width*layer.Height {
		return nil, fmt.Errorf(
			"layer %q has %d tiles for %dx%d: %w",
			layer.Name,
			len(tiles),
			layer.Width,
			layer.Height,
			ErrLayerSizeMismatch,
		)
	}

	layer.Tiles = tiles
	return &layer, nil
}

// parseObjectGroup rebuilds one <objectgroup> element. Group
// visibility deliberately differs from tile layers: the group is
// hidden only when visible="0", whereas a layer is visible only when
// visible="1". The asymmetry comes from the consumers this feeds and
// is preserved as-is.
func parseObjectGroup(e *etree.Element) (*ObjectGroup, error) {
	opacity, err := floatAttr(e, "opacity", 1.0)
	if err != nil {
		return nil, err
	}

	group := ObjectGroup{
		Name:      stringAttr(e, "name", ""),
		Visible:   stringAttr(e, "visible", "") != "0",
		Opacity:   opacity,
		DrawOrder: stringAttr(e, "draworder", "topdown"),
		Objects:   make([]*Object, 0),
	}

	for _, child := range e.ChildElements() {
		if tag(child.Tag) != tagObject {
			continue
		}

		object, err := parseObject(child)
		if err != nil {
			return nil, fmt.Errorf("objectgroup %q: %w", group.Name, err)
		}

		group.Objects = append(group.Objects, object)
	}

	return &group, nil
}

func parseObject(e *etree.Element) (*Object, error) {
	x, err := requireFloatAttr(e, "x")
	if err != nil {
		return nil, err
	}

	y, err := requireFloatAttr(e, "y")
	if err != nil {
		return nil, err
	}

	width, err := floatAttr(e, "width", 0)
	if err != nil {
		return nil, err
	}

	height, err := floatAttr(e, "height", 0)
	if err != nil {
		return nil, err
	}

	rotation, err := floatAttr(e, "rotation", 0)
	if err != nil {
		return nil, err
	}

	object := Object{
		Name:       stringAttr(e, "name", ""),
		Type:       stringAttr(e, "type", ""),
		X:          x,
		Y:          y,
		Width:      width,
		Height:     height,
		Rotation:   rotation,
		Visible:    boolAttr(e, "visible", true),
		Properties: elementProperties(e),
	}

	// A gid is recorded only when the attribute exists at all; an
	// absent gid and gid="0" are different things downstream.
	if e.SelectAttr("gid") != nil {
		gid, err := requireUintAttr(e, "gid")
		if err != nil {
			return nil, err
		}

		object.Gid = &gid
	}

	return &object, nil
}

package maps

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
)

// Format identifies a supported source encoding. The set is closed;
// dispatch happens through Load rather than any ambient registry.
type Format string

const (
	FormatCSV       Format = "csv"
	FormatTiledJSON Format = "tiledjson"
	FormatTiledXML  Format = "tiledxml"
)

// Extensions maps file extensions to their source format.
var Extensions = map[string]Format{
	".csv":  FormatCSV,
	".json": FormatTiledJSON,
	".tmx":  FormatTiledXML,
	".xml":  FormatTiledXML,
}

// FormatFromExtension infers the source format from a file path.
func FormatFromExtension(path string) (Format, error) {
	extension := strings.ToLower(filepath.Ext(path))
	if format, ok := Extensions[extension]; ok {
		return format, nil
	}

	return "", fmt.Errorf("%q: %w", extension, ErrUnknownFormat)
}

// Load normalizes a raw source blob of the given format.
func Load(format Format, data []byte) (*GameMap, error) {
	switch format {
	case FormatCSV:
		return FromCSV(data)
	case FormatTiledJSON:
		return FromJSON(data)
	case FormatTiledXML:
		return FromXML(data)
	}

	return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
}

// FromXML parses a TMX document and normalizes it.
func FromXML(data []byte) (*GameMap, error) {
	document := etree.NewDocument()
	if err := document.ReadFromBytes(data); err != nil {
		return nil, err
	}

	root := document.Root()
	if root == nil || root.Tag != "map" {
		return nil, fmt.Errorf("document root is not a map element")
	}

	return ParseDocument(root)
}

// FromFile reads a map source from disk, inferring its format from
// the file extension.
func FromFile(path string) (*GameMap, error) {
	format, err := FormatFromExtension(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Load(format, data)
}

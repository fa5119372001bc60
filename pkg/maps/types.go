package maps

// Orientation is the grid layout declared by a map document. Only
// orthogonal maps can be normalized; everything else is rejected
// up front.
type Orientation string

const (
	OrientationOrthogonal Orientation = "orthogonal"
)

// Encoding is the textual encoding of a tile layer payload.
type Encoding string

const (
	EncodingBase64 Encoding = "base64"
)

// Compression is the transform applied to a payload after decoding
// its text. The empty value means the bytes are used as-is.
type Compression string

const (
	CompressionNone Compression = ""
	CompressionZlib Compression = "zlib"
	CompressionGzip Compression = "gzip"
)

// GameMap is the canonical in-memory representation every source
// format is normalized into. The serialized field names (tilewidth,
// tileheight, ...) are part of the contract with consumers and must
// not change.
type GameMap struct {
	Version     float64           `json:"version" cbor:"version"`
	Width       int               `json:"width" cbor:"width"`
	Height      int               `json:"height" cbor:"height"`
	TileWidth   int               `json:"tilewidth" cbor:"tilewidth"`
	TileHeight  int               `json:"tileheight" cbor:"tileheight"`
	Orientation Orientation       `json:"orientation" cbor:"orientation"`
	Properties  map[string]string `json:"properties,omitempty" cbor:"properties,omitempty"`
	Layers      []Layer           `json:"layers" cbor:"layers"`
	Tilesets    []*Tileset        `json:"tilesets" cbor:"tilesets"`
}

// Layer is either a *TileLayer or an *ObjectGroup. The slice in
// GameMap preserves document order, interleaving both kinds exactly
// as they appeared in the source.
type Layer interface {
	LayerName() string
}

// TileLayer is a grid of tile indices covering the map at one depth.
type TileLayer struct {
	Name        string      `json:"name" cbor:"name"`
	Width       int         `json:"width" cbor:"width"`
	Height      int         `json:"height" cbor:"height"`
	Visible     bool        `json:"visible" cbor:"visible"`
	Opacity     float64     `json:"opacity" cbor:"opacity"`
	Encoding    Encoding    `json:"encoding" cbor:"encoding"`
	Compression Compression `json:"compression,omitempty" cbor:"compression,omitempty"`
	RawData     string      `json:"-" cbor:"-"`
	// Tiles has exactly Width*Height entries, row-major.
	Tiles []uint32 `json:"tiles" cbor:"tiles"`
}

func (l *TileLayer) LayerName() string { return l.Name }

// ObjectGroup is a freeform collection of positioned objects.
type ObjectGroup struct {
	Name      string    `json:"name" cbor:"name"`
	Visible   bool      `json:"visible" cbor:"visible"`
	Opacity   float64   `json:"opacity" cbor:"opacity"`
	DrawOrder string    `json:"draworder" cbor:"draworder"`
	Objects   []*Object `json:"objects" cbor:"objects"`
}

func (g *ObjectGroup) LayerName() string { return g.Name }

// Object is a single positioned entity inside an object group. Gid
// is nil when the source object carried no gid at all; consumers
// distinguish "no gid" from "gid present".
type Object struct {
	Gid        *uint32           `json:"gid,omitempty" cbor:"gid,omitempty"`
	Name       string            `json:"name" cbor:"name"`
	Type       string            `json:"type" cbor:"type"`
	X          float64           `json:"x" cbor:"x"`
	Y          float64           `json:"y" cbor:"y"`
	Width      float64           `json:"width" cbor:"width"`
	Height     float64           `json:"height" cbor:"height"`
	Rotation   float64           `json:"rotation" cbor:"rotation"`
	Visible    bool              `json:"visible" cbor:"visible"`
	Properties map[string]string `json:"properties,omitempty" cbor:"properties,omitempty"`
}

// TileOffset shifts every tile of a tileset when drawn, in pixels.
type TileOffset struct {
	X int `json:"x" cbor:"x"`
	Y int `json:"y" cbor:"y"`
}

// Image is a reference to an external image file.
type Image struct {
	Source string `json:"source" cbor:"source"`
	Width  int    `json:"width" cbor:"width"`
	Height int    `json:"height" cbor:"height"`
}

// Terrain is a named corner-blend type used for auto-tiling.
type Terrain struct {
	Name string `json:"name" cbor:"name"`
	Tile int    `json:"tile" cbor:"tile"`
}

// TileMeta is per-tile metadata declared inside a tileset.
type TileMeta struct {
	// Terrain holds up to four corner indices into the tileset's
	// terrain list.
	Terrain     []int    `json:"terrain,omitempty" cbor:"terrain,omitempty"`
	Probability *float64 `json:"probability,omitempty" cbor:"probability,omitempty"`
	// Image overrides the tileset image for this tile only.
	Image string `json:"image,omitempty" cbor:"image,omitempty"`
}

// Tileset is a named catalogue of tile images and metadata,
// addressed through the global id space via FirstGid.
type Tileset struct {
	Name           string                    `json:"name" cbor:"name"`
	FirstGid       uint32                    `json:"firstgid" cbor:"firstgid"`
	TileWidth      int                       `json:"tilewidth" cbor:"tilewidth"`
	TileHeight     int                       `json:"tileheight" cbor:"tileheight"`
	Margin         int                       `json:"margin" cbor:"margin"`
	Spacing        int                       `json:"spacing" cbor:"spacing"`
	Offset         TileOffset                `json:"tileoffset" cbor:"tileoffset"`
	Image          *Image                    `json:"image,omitempty" cbor:"image,omitempty"`
	Terrains       []Terrain                 `json:"terrains,omitempty" cbor:"terrains,omitempty"`
	Properties     map[string]string         `json:"properties,omitempty" cbor:"properties,omitempty"`
	TileProperties map[int]map[string]string `json:"tileproperties,omitempty" cbor:"tileproperties,omitempty"`
	Tiles          map[int]*TileMeta         `json:"tiles,omitempty" cbor:"tiles,omitempty"`
}

package maps

import "errors"

// Parse failures are total: none of these ever comes back alongside a
// partial GameMap. Callers match with errors.Is; the wrapped message
// names the offending element and attribute.
var (
	ErrMissingAttribute       = errors.New("missing required attribute")
	ErrMalformedAttribute     = errors.New("malformed attribute")
	ErrUnsupportedOrientation = errors.New("unsupported map orientation")
	ErrMissingEncoding        = errors.New("layer data missing encoding")
	ErrUnsupportedEncoding    = errors.New("unsupported payload encoding")
	ErrInvalidEncoding        = errors.New("invalid base64 payload")
	ErrDecompressionFailed    = errors.New("payload decompression failed")
	ErrMalformedPayload       = errors.New("payload length not a multiple of 4")
	ErrLayerSizeMismatch      = errors.New("tile count does not match layer size")
	ErrRaggedGrid             = errors.New("grid rows have uneven lengths")
	ErrUnknownFormat          = errors.New("unknown map format")
)

package maps

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// decodePayload turns the text payload of a tile layer into its tile
// indices: trim, base64-decode, optionally inflate, then reinterpret
// the bytes as little-endian u32 values. The byte count must be a
// multiple of 4; checking the count against the layer dimensions is
// the caller's job.
func decodePayload(raw string, encoding Encoding, compression Compression) ([]uint32, error) {
	if encoding != EncodingBase64 {
		return nil, fmt.Errorf("%q: %w", encoding, ErrUnsupportedEncoding)
	}

	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrInvalidEncoding)
	}

	data, err = inflate(data, compression)
	if err != nil {
		return nil, err
	}

	if len(data)%4 != 0 {
		return nil, fmt.Errorf("%d bytes: %w", len(data), ErrMalformedPayload)
	}

	tiles := make([]uint32, len(data)/4)
	for i := range tiles {
		tiles[i] = binary.LittleEndian.Uint32(data[i*4:])
	}

	return tiles, nil
}

func inflate(data []byte, compression Compression) ([]byte, error) {
	var reader io.ReadCloser
	var err error

	switch compression {
	case CompressionNone:
		return data, nil
	case CompressionZlib:
		reader, err = zlib.NewReader(bytes.NewReader(data))
	case CompressionGzip:
		reader, err = gzip.NewReader(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unknown compression %q: %w", compression, ErrDecompressionFailed)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", compression, err, ErrDecompressionFailed)
	}
	defer reader.Close()

	inflated, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", compression, err, ErrDecompressionFailed)
	}

	return inflated, nil
}

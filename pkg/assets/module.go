package assets

import (
	"context"
	"fmt"

	"github.com/calef/tilecanon/pkg/maps"

	"github.com/fxamacker/cbor/v2"
	"github.com/rs/zerolog/log"
)

// MapSource is a raw source blob tagged with its format.
type MapSource struct {
	Format maps.Format
	Data   []byte
}

// extensions tried against each root when an id carries no extension
// of its own. Order matters: the first hit wins.
var sourceExtensions = []string{".tmx", ".xml", ".json", ".csv"}

// A MapFetcher resolves map ids to normalized maps. Sources are
// searched across the configured roots in order; the store caches
// tagged source blobs so repeat lookups skip the root scan.
type MapFetcher struct {
	roots []Root
	cache Store
}

func NewMapFetcher(cache Store, roots []string) *MapFetcher {
	loaded := make([]Root, 0, len(roots))
	for _, root := range roots {
		loaded = append(loaded, FSRoot(root))
	}

	return &MapFetcher{
		roots: loaded,
		cache: cache,
	}
}

// FindSource locates the raw blob for a map id without normalizing
// it. Returns Missing when no root has it.
func (m *MapFetcher) FindSource(ctx context.Context, id string) (*MapSource, error) {
	key := fmt.Sprintf(SOURCE_KEY, id)

	if m.cache != nil {
		if data, err := m.cache.Get(ctx, key); err == nil {
			var source MapSource
			if err := cbor.Unmarshal(data, &source); err == nil {
				return &source, nil
			}
			// A corrupt cache entry is re-fetched, not fatal.
			log.Warn().Str("map", id).Msg("discarding unreadable cached source")
		}
	}

	source := m.scanRoots(id)
	if source == nil {
		return nil, Missing
	}

	if m.cache != nil {
		data, err := cbor.Marshal(source)
		if err != nil {
			return nil, err
		}

		if err := m.cache.Set(ctx, key, data); err != nil {
			log.Warn().Err(err).Str("map", id).Msg("failed to cache map source")
		}
	}

	return source, nil
}

func (m *MapFetcher) scanRoots(id string) *MapSource {
	for _, root := range m.roots {
		if format, err := maps.FormatFromExtension(id); err == nil && root.Exists(id) {
			if data, err := root.ReadFile(id); err == nil {
				return &MapSource{Format: format, Data: data}
			}
		}

		for _, extension := range sourceExtensions {
			path := id + extension
			if !root.Exists(path) {
				continue
			}

			data, err := root.ReadFile(path)
			if err != nil {
				continue
			}

			format := maps.Extensions[extension]
			return &MapSource{Format: format, Data: data}
		}
	}

	return nil
}

// FindMap resolves and normalizes the map with the given id. A
// missing source is an expected condition: it logs a warning and
// returns no map and no error. Anything else that goes wrong is a
// real failure.
func (m *MapFetcher) FindMap(ctx context.Context, id string) (*maps.GameMap, error) {
	source, err := m.FindSource(ctx, id)
	if err == Missing {
		log.Warn().Str("map", id).Msg("no source found for map")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return maps.Load(source.Format, source.Data)
}

package assets

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-redis/redis/v9"
)

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error
}

type FSStore string

var Missing = fmt.Errorf("map source missing")

const (
	SOURCE_KEY    = "map-source-%s"
	SOURCE_EXPIRY = time.Duration(1 * time.Hour)
)

func (f FSStore) getPath(key string) string {
	return filepath.Join(string(f), key)
}

func (f FSStore) Get(ctx context.Context, key string) ([]byte, error) {
	target := f.getPath(key)

	if !FileExists(target) {
		return nil, Missing
	}

	return os.ReadFile(target)
}

func (f FSStore) Set(ctx context.Context, key string, data []byte) error {
	target := f.getPath(key)
	return WriteBytes(data, target)
}

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
	}
}

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, key).Bytes()

	if err == redis.Nil {
		return nil, Missing
	}

	if err != nil {
		return nil, err
	}

	return data, nil
}

func (r *RedisStore) Set(ctx context.Context, key string, data []byte) error {
	return r.client.Set(ctx, key, data, SOURCE_EXPIRY).Err()
}

var _ Store = (*FSStore)(nil)
var _ Store = (*RedisStore)(nil)

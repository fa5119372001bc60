package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/calef/tilecanon/pkg/assets"
	"github.com/calef/tilecanon/pkg/config"

	"github.com/go-redis/redis/v9"
	"github.com/rs/zerolog/log"
)

func buildStore(cacheConfig config.CacheConfig) (assets.Store, error) {
	if cacheConfig.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cacheConfig.Redis.Address,
			Password: cacheConfig.Redis.Password,
			DB:       cacheConfig.Redis.DB,
		})

		return assets.NewRedisStore(client), nil
	}

	directory := cacheConfig.Directory
	if directory == "" {
		return nil, nil
	}

	if err := os.MkdirAll(directory, 0755); err != nil {
		return nil, fmt.Errorf("failed to make cache dir %s: %w", directory, err)
	}

	return assets.FSStore(directory), nil
}

func fetchCommand(id string, configs []string) error {
	cfg, err := config.Process(configs)
	if err != nil {
		return err
	}

	if len(cfg.Roots) == 0 {
		log.Warn().Msg("no source roots configured; only cached sources can resolve")
	}

	store, err := buildStore(cfg.Cache)
	if err != nil {
		return err
	}

	fetcher := assets.NewMapFetcher(store, cfg.Roots)

	gameMap, err := fetcher.FindMap(context.Background(), id)
	if err != nil {
		return err
	}

	if gameMap == nil {
		// Already warned by the fetcher; absence is not a failure.
		return nil
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(gameMap)
}

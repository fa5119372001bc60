package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProcess(t *testing.T) {
	// Default config
	defaults, err := Process([]string{})
	require.NoError(t, err)
	require.False(t, defaults.Cache.Redis.Enabled)
	require.Empty(t, defaults.Roots)

	dir := t.TempDir()

	// yaml config
	{
		yaml := filepath.Join(dir, "config.yaml")
		err = os.WriteFile(yaml, []byte(`
cache:
  directory: "/tmp/tilecanon"
roots:
  - "/srv/maps"
`), 0644)
		require.NoError(t, err)
		config, err := Process([]string{yaml})
		require.NoError(t, err)
		require.Equal(t, "/tmp/tilecanon", config.Cache.Directory)
		require.Equal(t, []string{"/srv/maps"}, config.Roots)
	}

	// json config
	{
		json := filepath.Join(dir, "config.json")
		err = os.WriteFile(json, []byte(`{
  "cache": {
    "redis": {
      "enabled": true,
      "address": "redis:6379"
    }
  }
}`), 0644)
		require.NoError(t, err)
		config, err := Process([]string{json})
		require.NoError(t, err)
		require.True(t, config.Cache.Redis.Enabled)
		require.Equal(t, "redis:6379", config.Cache.Redis.Address)
	}

	// multiple yaml
	{
		yaml1 := filepath.Join(dir, "config1.yaml")
		err = os.WriteFile(yaml1, []byte(`
cache:
  directory: "/tmp/tilecanon"
`), 0644)
		require.NoError(t, err)

		yaml2 := filepath.Join(dir, "config2.yaml")
		err = os.WriteFile(yaml2, []byte(`
roots:
  - "/srv/maps"
  - "/srv/more-maps"
`), 0644)
		require.NoError(t, err)
		config, err := Process([]string{yaml1, yaml2})
		require.NoError(t, err)
		require.Equal(t, "/tmp/tilecanon", config.Cache.Directory)
		require.Len(t, config.Roots, 2)
	}

	// Mistyped config
	{
		yaml := filepath.Join(dir, "bad.yaml")
		err = os.WriteFile(yaml, []byte(`
cache:
  directory: 42
`), 0644)
		require.NoError(t, err)
		_, err = Process([]string{yaml})
		require.Error(t, err)
	}
}

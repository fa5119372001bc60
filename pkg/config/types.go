package config

type RedisConfig struct {
	Enabled  bool
	Address  string
	Password string
	DB       int
}

type CacheConfig struct {
	// Directory for the filesystem source cache. Ignored when redis
	// is enabled.
	Directory string
	Redis     RedisConfig
}

type Config struct {
	Cache CacheConfig
	// Roots are directories searched, in order, for map sources.
	Roots []string
}

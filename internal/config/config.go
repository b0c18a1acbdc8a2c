// Package config loads the langcard service configuration from a TOML file,
// with environment fallbacks for the secrets that should not live on disk.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Cache backends selectable in the [cache] section.
const (
	CacheBackendFile   = "file"
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
	CacheBackendNone   = "none"
)

// Config is the full service configuration.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string `toml:"addr"`

	Cache  CacheConfig  `toml:"cache"`
	GitHub GitHubConfig `toml:"github"`
}

// CacheConfig selects and parameterizes the response cache.
type CacheConfig struct {
	// Backend is one of "file", "memory", "redis" or "none".
	Backend string `toml:"backend"`
	// Dir is the file backend's directory. Empty means the XDG cache dir.
	Dir string `toml:"dir"`
	// RedisURL is the redis backend's connection URL.
	RedisURL string `toml:"redis_url"`
	// TTLSeconds is the response lifetime. Requests may shorten it but
	// never extend it.
	TTLSeconds int `toml:"ttl_seconds"`
}

// GitHubConfig carries the API credential.
type GitHubConfig struct {
	// Token is the GitHub API token. Falls back to $GITHUB_TOKEN.
	Token string `toml:"token"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Addr: ":8080",
		Cache: CacheConfig{
			Backend:    CacheBackendMemory,
			TTLSeconds: int((4 * time.Hour).Seconds()),
		},
	}
}

// Load reads a TOML config file and applies environment fallbacks. An empty
// path returns the defaults (still with fallbacks applied).
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if cfg.GitHub.Token == "" {
		cfg.GitHub.Token = os.Getenv("GITHUB_TOKEN")
	}

	switch cfg.Cache.Backend {
	case CacheBackendFile, CacheBackendMemory, CacheBackendRedis, CacheBackendNone:
	default:
		return Config{}, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
	if cfg.Cache.TTLSeconds <= 0 {
		cfg.Cache.TTLSeconds = Default().Cache.TTLSeconds
	}

	return cfg, nil
}

// TTL returns the cache lifetime as a duration.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

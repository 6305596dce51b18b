// Package config loads showcase configuration from an optional TOML file
// with environment variable overrides layered on top.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/showcasehq/showcase/pkg/errors"
	"github.com/showcasehq/showcase/pkg/portfolio"
)

// Env override names. Each beats the corresponding file setting when set.
const (
	envOwner      = "SHOWCASE_OWNER"
	envToken      = "SHOWCASE_GITHUB_TOKEN"
	envListen     = "SHOWCASE_LISTEN"
	envCacheTTL   = "SHOWCASE_CACHE_TTL"
	envDev        = "SHOWCASE_DEV"
	envRedisAddr  = "SHOWCASE_REDIS_ADDR"
	envCacheStore = "SHOWCASE_CACHE_STORE"

	// GITHUB_TOKEN is honored as a fallback so the usual CI/CLI convention
	// keeps working without showcase-specific configuration.
	envGitHubToken = "GITHUB_TOKEN"
)

// DefaultListen is the HTTP listen address used when none is configured.
const DefaultListen = ":8080"

// Config is the resolved showcase configuration.
type Config struct {
	GitHub GitHub `toml:"github"`
	Server Server `toml:"server"`
	Cache  Cache  `toml:"cache"`
	Dev    bool   `toml:"dev"`
}

// GitHub configures the repository source.
type GitHub struct {
	Owner string `toml:"owner"`
	Token string `toml:"token"`
}

// Server configures the HTTP API.
type Server struct {
	Listen string `toml:"listen"`
}

// Snapshot store backends.
const (
	StoreFile   = "file"
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreNone   = "none"
)

// Cache configures project caching and the optional snapshot store.
type Cache struct {
	TTL       duration `toml:"ttl"`
	Store     string   `toml:"store"`
	Dir       string   `toml:"dir"`
	RedisAddr string   `toml:"redis_addr"`
}

// duration lets TTLs be written as "5m" in TOML.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Load reads the TOML file at path (skipped when path is empty or the file
// does not exist), applies environment overrides, fills defaults, and
// validates the result.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			if !os.IsNotExist(err) {
				return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to parse config file %s", path)
			}
		}
	}

	applyEnv(cfg)
	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(envOwner); v != "" {
		cfg.GitHub.Owner = v
	}
	if v := os.Getenv(envToken); v != "" {
		cfg.GitHub.Token = v
	} else if cfg.GitHub.Token == "" {
		cfg.GitHub.Token = os.Getenv(envGitHubToken)
	}
	if v := os.Getenv(envListen); v != "" {
		cfg.Server.Listen = v
	}
	if v := os.Getenv(envCacheTTL); v != "" {
		if ttl, err := time.ParseDuration(v); err == nil {
			cfg.Cache.TTL.Duration = ttl
		}
	}
	if v := os.Getenv(envDev); v != "" {
		if dev, err := strconv.ParseBool(v); err == nil {
			cfg.Dev = dev
		}
	}
	if v := os.Getenv(envRedisAddr); v != "" {
		cfg.Cache.RedisAddr = v
	}
	if v := os.Getenv(envCacheStore); v != "" {
		cfg.Cache.Store = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = DefaultListen
	}
	if cfg.Cache.TTL.Duration <= 0 {
		cfg.Cache.TTL.Duration = portfolio.DefaultTTL
	}
	if cfg.Cache.Store == "" {
		if cfg.Cache.RedisAddr != "" {
			cfg.Cache.Store = StoreRedis
		} else {
			cfg.Cache.Store = StoreFile
		}
	}
}

func (c *Config) validate() error {
	if c.GitHub.Owner == "" {
		return errors.New(errors.ErrCodeInvalidConfig,
			"github owner is required (set %s or github.owner in the config file)", envOwner)
	}
	switch c.Cache.Store {
	case StoreFile, StoreMemory, StoreRedis, StoreNone:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache store %q", c.Cache.Store)
	}
	if c.Cache.Store == StoreRedis && c.Cache.RedisAddr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "cache store %q requires a redis address", StoreRedis)
	}
	return nil
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showcasehq/showcase/pkg/errors"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{envOwner, envToken, envListen, envCacheTTL, envDev, envRedisAddr, envCacheStore, envGitHubToken} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "showcase.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FileWithDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
[github]
owner = "octocat"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "octocat", cfg.GitHub.Owner)
	assert.Equal(t, DefaultListen, cfg.Server.Listen)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL.Duration)
	assert.False(t, cfg.Dev)
}

func TestLoad_FullFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
dev = true

[github]
owner = "octocat"
token = "file-token"

[server]
listen = ":9000"

[cache]
ttl = "90s"
redis_addr = "localhost:6379"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-token", cfg.GitHub.Token)
	assert.Equal(t, ":9000", cfg.Server.Listen)
	assert.Equal(t, 90*time.Second, cfg.Cache.TTL.Duration)
	assert.Equal(t, "localhost:6379", cfg.Cache.RedisAddr)
	assert.True(t, cfg.Dev)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
[github]
owner = "from-file"
token = "file-token"

[server]
listen = ":9000"
`)

	t.Setenv(envOwner, "from-env")
	t.Setenv(envToken, "env-token")
	t.Setenv(envListen, ":7000")
	t.Setenv(envCacheTTL, "30s")
	t.Setenv(envDev, "true")
	t.Setenv(envRedisAddr, "redis:6379")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.GitHub.Owner)
	assert.Equal(t, "env-token", cfg.GitHub.Token)
	assert.Equal(t, ":7000", cfg.Server.Listen)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL.Duration)
	assert.True(t, cfg.Dev)
	assert.Equal(t, "redis:6379", cfg.Cache.RedisAddr)
}

func TestLoad_GitHubTokenFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv(envOwner, "octocat")
	t.Setenv(envGitHubToken, "ambient-token")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "ambient-token", cfg.GitHub.Token)

	// The showcase-specific variable wins over the generic one.
	t.Setenv(envToken, "specific-token")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "specific-token", cfg.GitHub.Token)
}

func TestLoad_MissingFileIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv(envOwner, "octocat")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, "octocat", cfg.GitHub.Owner)
}

func TestLoad_MalformedFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "not valid toml [[[")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig))
}

func TestLoad_MissingOwner(t *testing.T) {
	clearEnv(t)

	_, err := Load("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig))
}

func TestLoad_StoreDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv(envOwner, "octocat")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, StoreFile, cfg.Cache.Store)

	// A redis address implies the redis backend unless one is named.
	t.Setenv(envRedisAddr, "localhost:6379")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, StoreRedis, cfg.Cache.Store)

	t.Setenv(envCacheStore, StoreMemory)
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, StoreMemory, cfg.Cache.Store)
}

func TestLoad_StoreValidation(t *testing.T) {
	clearEnv(t)
	t.Setenv(envOwner, "octocat")

	t.Setenv(envCacheStore, "bogus")
	_, err := Load("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig))

	t.Setenv(envCacheStore, StoreRedis)
	_, err = Load("")
	require.Error(t, err, "redis backend without an address is rejected")
}

func TestLoad_InvalidEnvValuesIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv(envOwner, "octocat")
	t.Setenv(envCacheTTL, "not-a-duration")
	t.Setenv(envDev, "not-a-bool")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL.Duration, "bad TTL falls back to default")
	assert.False(t, cfg.Dev)
}

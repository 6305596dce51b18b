// Package cli implements the showcase command-line interface.
//
// The CLI fetches portfolio projects from GitHub, extracts their embedded
// metadata, and presents the aggregated result as tables, an interactive
// browser, or a long-running HTTP API. All commands support --verbose (-v)
// for debug-level logging.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/showcasehq/showcase/pkg/buildinfo"
	"github.com/showcasehq/showcase/pkg/cache"
	"github.com/showcasehq/showcase/pkg/config"
	"github.com/showcasehq/showcase/pkg/github"
	"github.com/showcasehq/showcase/pkg/portfolio"
)

// appName is the application name used for directories and display.
const appName = "showcase"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Showcase aggregates portfolio projects from GitHub",
		Long:         `Showcase turns a GitHub account into a portfolio: it lists the owner's repositories, extracts project metadata embedded in their READMEs, and serves the aggregated result as tables, an interactive browser, or a JSON API.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to TOML config file")

	root.AddCommand(c.projectsCommand())
	root.AddCommand(c.menuCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig resolves configuration from the --config file and environment.
func (c *CLI) loadConfig() (*config.Config, error) {
	return config.Load(c.configPath)
}

// newService builds the aggregator and its GitHub source from configuration.
// The caller owns the returned closer (the snapshot store connection).
func (c *CLI) newService(ctx context.Context, cfg *config.Config) (*portfolio.Service, *github.Client, io.Closer, error) {
	gh := github.NewClient(
		github.WithToken(cfg.GitHub.Token),
		github.WithLogger(c.Logger),
	)

	store := c.newStore(ctx, cfg)
	svc := portfolio.NewService(gh, cfg.GitHub.Owner,
		portfolio.WithTTL(cfg.Cache.TTL.Duration),
		portfolio.WithStore(store),
		portfolio.WithServiceLogger(c.Logger),
		portfolio.WithDevMode(cfg.Dev),
	)
	return svc, gh, store, nil
}

// newStore builds the configured snapshot store backend. An unusable backend
// degrades to the file store, and finally to a null store; caching is an
// optimization, never a reason to fail a command.
func (c *CLI) newStore(ctx context.Context, cfg *config.Config) cache.Store {
	switch cfg.Cache.Store {
	case config.StoreNone:
		return cache.NewNullStore()
	case config.StoreMemory:
		return cache.NewMemoryStore()
	case config.StoreRedis:
		store, err := cache.NewRedisStore(ctx, cfg.Cache.RedisAddr)
		if err == nil {
			return store
		}
		c.Logger.Warn("redis unavailable, falling back to file store", "addr", cfg.Cache.RedisAddr, "err", err)
	}

	dir := cfg.Cache.Dir
	if dir == "" {
		var err error
		dir, err = cacheDir()
		if err != nil {
			return cache.NewNullStore()
		}
	}
	store, err := cache.NewFileStore(dir)
	if err != nil {
		return cache.NewNullStore()
	}
	return store
}

// cacheDir returns the cache directory using XDG standard (~/.cache/showcase/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

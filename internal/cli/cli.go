// Package cli implements the langcard command-line interface.
//
// This package provides commands for rendering language cards to files or
// stdout, running the HTTP card service, and managing the response cache.
// The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - card: Aggregate a user's language statistics and render an SVG card
//   - serve: Run the HTTP card service
//   - cache: Manage the response cache
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/langcard/internal/config"
	"github.com/matzehuels/langcard/pkg/buildinfo"
	"github.com/matzehuels/langcard/pkg/cache"
)

// appName is the application name used for directories and display.
const appName = "langcard"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
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
		Short:        "Langcard renders GitHub language statistics as SVG cards",
		Long:         `Langcard aggregates the language breakdown of a GitHub user's repositories and renders it as an embeddable SVG card in one of five layouts.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.cardCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newCache builds the cache for CLI use: the file backend under the XDG
// cache dir, or a null cache when caching is disabled or the dir is
// unavailable.
func newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return fc
}

// newCacheFromConfig builds the cache backend the service config selects.
func newCacheFromConfig(cmd *cobra.Command, cfg config.CacheConfig) (cache.Cache, error) {
	switch cfg.Backend {
	case config.CacheBackendNone:
		return cache.NewNullCache(), nil
	case config.CacheBackendMemory:
		return cache.NewMemoryCache(), nil
	case config.CacheBackendRedis:
		return cache.NewRedisCache(cmd.Context(), cfg.RedisURL)
	case config.CacheBackendFile:
		dir := cfg.Dir
		if dir == "" {
			var err error
			if dir, err = cacheDir(); err != nil {
				return nil, err
			}
		}
		return cache.NewFileCache(dir)
	}
	return cache.NewMemoryCache(), nil
}

// cacheDir returns the cache directory using XDG standard (~/.cache/langcard/).
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

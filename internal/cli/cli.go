// Package cli implements the wordgrid command-line interface.
//
// This package provides commands for generating word grid layouts, serving
// the HTTP API, filtering words against a dictionary, and requesting themed
// word suggestions. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - layout: Place words on a grid and print the result
//   - serve: Run the wordgrid HTTP API
//   - words: Filter words against the dictionary
//   - suggest: Generate themed words via Vertex AI
//   - play: Build a grid interactively in the terminal
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tilework/wordgrid/internal/config"
	"github.com/tilework/wordgrid/pkg/buildinfo"
	"github.com/tilework/wordgrid/pkg/cache"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// configPath is the --config flag value; empty means the default location.
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "wordgrid",
		Short:        "Wordgrid places words on crossword-style grids",
		Long:         `Wordgrid is a CLI tool for arranging lists of words on a crossword-style grid, connecting them through shared letters the way a puzzle setter would.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: ~/.config/wordgrid/config.toml)")

	// Register all subcommands
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.wordsCommand())
	root.AddCommand(c.suggestCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config & Cache Helpers
// =============================================================================

// loadConfig reads the configuration honoring the --config flag.
func (c *CLI) loadConfig() (config.Config, error) {
	return config.Load(c.configPath)
}

// newCache builds the cache backend selected in cfg. The noCache flag and
// backend errors both fall back to the null cache so layout generation never
// depends on cache availability.
func (c *CLI) newCache(cmd *cobra.Command, cfg config.Config, noCache bool) cache.Cache {
	if noCache || cfg.Cache.Backend == config.CacheNone {
		return cache.NewNullCache()
	}
	switch cfg.Cache.Backend {
	case config.CacheRedis:
		rc, err := cache.NewRedisCache(cmd.Context(), cfg.Cache.RedisAddr)
		if err != nil {
			c.Logger.Warn("redis unavailable, caching disabled", "addr", cfg.Cache.RedisAddr, "err", err)
			return cache.NewNullCache()
		}
		return rc
	default:
		dir, err := cfg.CacheDir()
		if err != nil {
			return cache.NewNullCache()
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			c.Logger.Warn("file cache unavailable, caching disabled", "dir", dir, "err", err)
			return cache.NewNullCache()
		}
		return fc
	}
}

// Package config loads wordgrid configuration from a TOML file.
//
// Configuration is optional: every field has a default, a missing file is
// not an error, and CLI flags override whatever is loaded here. The default
// location is ~/.config/wordgrid/config.toml (respecting XDG_CONFIG_HOME).
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/tilework/wordgrid/pkg/board"
	"github.com/tilework/wordgrid/pkg/errors"
)

// appName is used for config and cache directory names.
const appName = "wordgrid"

// Cache backend names accepted in [cache] backend.
const (
	CacheNone  = "none"
	CacheFile  = "file"
	CacheRedis = "redis"
)

// Config is the root configuration.
type Config struct {
	Board      BoardConfig      `toml:"board"`
	Dictionary DictionaryConfig `toml:"dictionary"`
	Server     ServerConfig     `toml:"server"`
	Cache      CacheConfig      `toml:"cache"`
	Suggest    SuggestConfig    `toml:"suggest"`
}

// BoardConfig holds layout engine defaults.
type BoardConfig struct {
	Size  int    `toml:"size"`
	Empty string `toml:"empty"`
}

// DictionaryConfig points at an optional word list file. When empty, the
// embedded fallback list is used.
type DictionaryConfig struct {
	Path string `toml:"path"`
}

// ServerConfig holds HTTP service settings.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// CacheConfig selects the layout cache backend.
type CacheConfig struct {
	Backend   string `toml:"backend"`
	Dir       string `toml:"dir"`
	RedisAddr string `toml:"redis_addr"`
}

// SuggestConfig holds Vertex AI settings for the word suggester.
type SuggestConfig struct {
	Project string `toml:"project"`
	Region  string `toml:"region"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Board:  BoardConfig{Size: board.DefaultSize, Empty: string(board.DefaultEmpty)},
		Server: ServerConfig{Addr: ":8080"},
		Cache:  CacheConfig{Backend: CacheFile, RedisAddr: "localhost:6379"},
	}
}

// Load reads the configuration at path. An empty path means the default
// location; a missing file at the default location yields Default(). Env
// vars PORT and WORDGRID_REDIS_ADDR override the loaded values.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = defaultPath()
	}

	if path != "" {
		meta, err := toml.DecodeFile(path, &cfg)
		switch {
		case os.IsNotExist(err) && !explicit:
			// No config file is fine.
		case os.IsNotExist(err):
			return cfg, errors.New(errors.ErrCodeNotFound, "config file %s does not exist", path)
		case err != nil:
			return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
		default:
			if undec := meta.Undecoded(); len(undec) > 0 {
				return cfg, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q in %s", undec[0], path)
			}
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Addr = ":" + port
	}
	if addr := os.Getenv("WORDGRID_REDIS_ADDR"); addr != "" {
		cfg.Cache.RedisAddr = addr
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Board.Size <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "board size must be a positive integer, got %d", c.Board.Size)
	}
	if _, err := board.ParseMarker(c.Board.Empty); err != nil {
		return err
	}
	switch c.Cache.Backend {
	case CacheNone, CacheFile, CacheRedis:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q (must be none, file, or redis)", c.Cache.Backend)
	}
	return nil
}

// CacheDir returns the directory for the file cache backend, using the
// configured dir or the XDG cache location.
func (c Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// defaultPath returns the default config file location, or empty if no home
// directory can be determined.
func defaultPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}

package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	DefaultDirName = ".imgurcache"
	DefaultDBFile  = "cache.db"
)

// Config holds runtime settings for the cache tools.
//
// BusyTimeout bounds how long a statement waits for a lock held by another
// connection to the same file.
type Config struct {
	DataDir     string
	DBFile      string
	BusyTimeout time.Duration
	LogLevel    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	c.DataDir = filepath.Join(home, DefaultDirName, "data")
	c.DBFile = DefaultDBFile
	c.BusyTimeout = 5 * time.Second
	c.LogLevel = "info"
}

// DBPath is the full path of the cache file.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, c.DBFile)
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

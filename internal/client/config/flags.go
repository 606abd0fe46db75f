package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/imgurcache/internal/flagx"
)

// parseFlags overlays cfg with command-line flags:
//
//	-d string     data directory
//	-t duration   busy timeout, e.g. 2s
//	-l string     log level (debug, info, warn, error)
//
// Other arguments are filtered out with flagx.FilterArgs.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "directory holding the cache file")
	fs.DurationVar(&cfg.BusyTimeout, "t", cfg.BusyTimeout, "how long to wait on a locked cache file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

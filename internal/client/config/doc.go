// Package config loads runtime configuration for cachectl.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults): the cache lives at
//     ~/.imgurcache/data/cache.db.
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-d string     data directory
//	-t duration   busy timeout
//	-l string     log level
//
// # JSON schema
//
// Durations use timex.Duration, so either "2s" or integer nanoseconds:
//
//	{
//	  "data_dir": "/var/lib/imgurcache",
//	  "db_file": "cache.db",
//	  "busy_timeout": "2s",
//	  "log_level": "debug"
//	}
package config

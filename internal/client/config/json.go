package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/imgurcache/internal/flagx"
	"github.com/dmitrijs2005/imgurcache/internal/timex"
)

// JsonConfig is the on-disk form of Config. Every field is optional; absent
// fields keep the value they had before the file was read.
type JsonConfig struct {
	DataDir     *string         `json:"data_dir"`
	DBFile      *string         `json:"db_file"`
	BusyTimeout *timex.Duration `json:"busy_timeout"`
	LogLevel    *string         `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c / -config, if any.
// It panics if the file cannot be read or parsed.
func parseJson(cfg *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}
	jc.apply(cfg)
}

func (jc *JsonConfig) apply(cfg *Config) {
	if jc.DataDir != nil {
		cfg.DataDir = *jc.DataDir
	}
	if jc.DBFile != nil {
		cfg.DBFile = *jc.DBFile
	}
	if jc.BusyTimeout != nil {
		cfg.BusyTimeout = jc.BusyTimeout.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}

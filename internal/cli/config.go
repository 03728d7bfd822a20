package cli

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/canopy-tools/canopy/format"
)

// Config is the optional TOML configuration file. Command-line flags take
// precedence over every key.
//
//	compression = "zstd"
//	verbose = true
//	output = "out.canopy"
type Config struct {
	Compression string `toml:"compression"`
	Verbose     bool   `toml:"verbose"`
	Output      string `toml:"output"`
}

// loadConfig reads the config file at path. An empty path yields the zero Config.
// Unknown keys are rejected so typos do not go unnoticed.
func loadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}

		return cfg, fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if _, err := format.ParseCompressionType(cfg.Compression); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}

	return cfg, nil
}

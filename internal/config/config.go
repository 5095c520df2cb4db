// Package config loads CLI configuration files for cassandracrud.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/cervantes79/cassandracrud/types"
)

// FileConfig mirrors the YAML configuration accepted by the CLI.
//
// Example:
//
//	hosts:
//	  - 127.0.0.1
//	port: 9042
//	keyspace: my_keyspace
//	username: app
//	password: secret
//	consistency: local_quorum
//	timeout: 15s
type FileConfig struct {
	Hosts       []string      `mapstructure:"hosts"`
	Port        int           `mapstructure:"port"`
	Keyspace    string        `mapstructure:"keyspace"`
	Username    string        `mapstructure:"username"`
	Password    string        `mapstructure:"password"`
	Consistency string        `mapstructure:"consistency"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// Load reads and validates a YAML configuration file.
//
// Parameters:
//   - path: Path to the configuration file
//
// Returns:
//   - *FileConfig: The parsed configuration
//   - error: Read, parse, or validation error
func Load(path string) (*FileConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault("port", 9042)
	v.SetDefault("timeout", 15*time.Second)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg FileConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if len(cfg.Hosts) == 0 {
		return nil, fmt.Errorf("config %s: hosts cannot be empty", path)
	}
	if cfg.Keyspace == "" {
		return nil, fmt.Errorf("config %s: keyspace cannot be empty", path)
	}
	if _, err := ParseConsistency(cfg.Consistency); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return &cfg, nil
}

// consistencyNames maps config strings to consistency levels.
var consistencyNames = map[string]types.Consistency{
	"any":          types.Any,
	"one":          types.One,
	"two":          types.Two,
	"three":        types.Three,
	"quorum":       types.Quorum,
	"all":          types.All,
	"local_quorum": types.LocalQuorum,
	"each_quorum":  types.EachQuorum,
	"local_one":    types.LocalOne,
}

// ParseConsistency translates a config string into a consistency level.
// An empty string defaults to local_quorum.
//
// Parameters:
//   - name: Consistency name, e.g. "quorum" or "local_one"
//
// Returns:
//   - types.Consistency: The parsed level
//   - error: Error for unknown names
func ParseConsistency(name string) (types.Consistency, error) {
	if name == "" {
		return types.LocalQuorum, nil
	}

	level, ok := consistencyNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown consistency level %q", name)
	}

	return level, nil
}

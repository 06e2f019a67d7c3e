// SPDX-License-Identifier: MIT

// Package config holds the teampath CLI configuration. Values come from, in
// increasing precedence: built-in defaults, an optional YAML config file,
// TEAMPATH_* environment variables and command-line flags bound by the cmd
// package.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the CLI.
const EnvPrefix = "TEAMPATH"

// Config represents the complete teampath configuration.
type Config struct {
	// Graph is a YAML or JSON graph file; empty selects the built-in demo graph.
	Graph string `mapstructure:"graph"`
	// Generate is a builder topology string such as "random:200:0.05"; it is
	// an alternative to Graph.
	Generate string `mapstructure:"generate"`
	// Directed makes generated edges one-way; graph files carry their own flag.
	Directed bool `mapstructure:"directed"`
	// Seed drives random topologies and weights.
	Seed int64 `mapstructure:"seed"`
	// MaxWeight bounds generated edge weights, drawn from [1, MaxWeight].
	MaxWeight int64 `mapstructure:"max_weight"`
	// Source is the source node index; -1 defers to the graph file's source,
	// or node 0.
	Source int `mapstructure:"source"`
	// Workers is the team size; 0 means "resolve from the environment".
	Workers int `mapstructure:"workers"`
	// Trace prints the partition table and every connect step.
	Trace bool `mapstructure:"trace"`
	// Verify re-checks the result against the sequential reference.
	Verify bool `mapstructure:"verify"`
	// EarlyExit stops once no unconnected node is reachable.
	EarlyExit bool `mapstructure:"early_exit"`
	// InvariantChecks enables per-round consistency checks.
	InvariantChecks bool `mapstructure:"invariant_checks"`

	Logging LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level"`
	// Format is json or text.
	Format string `mapstructure:"format"`
	// File receives the log; empty means stderr.
	File string `mapstructure:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Source:    -1,
		Seed:      1,
		MaxWeight: 100,
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// SetDefaults registers every key with its default on v, so that Unmarshal
// picks up environment overrides even without a config file.
func SetDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("graph", d.Graph)
	v.SetDefault("generate", d.Generate)
	v.SetDefault("directed", d.Directed)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("max_weight", d.MaxWeight)
	v.SetDefault("source", d.Source)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("trace", d.Trace)
	v.SetDefault("verify", d.Verify)
	v.SetDefault("early_exit", d.EarlyExit)
	v.SetDefault("invariant_checks", d.InvariantChecks)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.file", d.Logging.File)
}

// Init prepares v: defaults, environment binding and the config file.
// An explicit file must be readable; otherwise the default locations are
// searched and a missing file is not an error.
func Init(v *viper.Viper, file string) error {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	// TEAMPATH_LOGGING_LEVEL for logging.level
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// The OpenMP variable is honored as a fallback for the team size.
	_ = v.BindEnv("workers", EnvPrefix+"_WORKERS", "OMP_NUM_THREADS")

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", file, err)
		}

		return nil
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(Dir())
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return nil
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ResolveWorkers returns the configured team size, or runtime.NumCPU when
// neither a flag nor an environment variable set one.
func (c *Config) ResolveWorkers() int {
	if c.Workers > 0 {
		return c.Workers
	}

	return runtime.NumCPU()
}

// ResolveSource picks the source node: the configured one if set, else the
// graph file's (when it has one), else node 0.
func (c *Config) ResolveSource(fileSource int, hasFileSource bool) int {
	switch {
	case c.Source >= 0:
		return c.Source
	case hasFileSource:
		return fileSource
	default:
		return 0
	}
}

// Dir returns the path to the user's config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "teampath")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".teampath"
	}

	return filepath.Join(home, ".config", "teampath")
}

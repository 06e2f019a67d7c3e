// SPDX-License-Identifier: MIT

// Package cmd implements the teampath command tree.
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/teampath/internal/config"
	"github.com/katalvlaran/teampath/internal/logging"
)

// ErrMismatch is returned by --verify when the team result disagrees with
// the sequential reference.
var ErrMismatch = errors.New("cmd: result disagrees with sequential reference")

// app carries the state shared by every command of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	log     *logging.Logger
}

// flagKeys maps flag names to config keys. Only flags defined on the
// executing command are bound.
var flagKeys = map[string]string{
	"graph":            "graph",
	"generate":         "generate",
	"directed":         "directed",
	"seed":             "seed",
	"max-weight":       "max_weight",
	"source":           "source",
	"workers":          "workers",
	"trace":            "trace",
	"verify":           "verify",
	"early-exit":       "early_exit",
	"invariant-checks": "invariant_checks",
	"log-level":        "logging.level",
	"log-format":       "logging.format",
	"log-file":         "logging.file",
}

// NewRootCommand builds a fresh command tree with its own configuration.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "teampath",
		Short: "Single-source shortest paths with a fixed team of workers",
		Long: `teampath computes minimum distances from one source node to every node
of a dense weighted graph. A fixed team of workers splits the nodes into
contiguous ranges and advances round by round in lockstep, connecting the
globally nearest node each round.`,
		SilenceUsage:       true,
		PersistentPreRunE:  a.initConfig,
		PersistentPostRunE: a.close,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is $HOME/.config/teampath/config.yaml)")
	pf.String("log-level", "", "log level (debug, info, warn, error)")
	pf.String("log-format", "", "log format (json, text)")
	pf.String("log-file", "", "write logs to this file instead of stderr")

	root.AddCommand(newRunCommand(a), newDemoCommand(a), newPlanCommand(a))

	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

// initConfig resolves the configuration for the executing command and opens
// the logger.
func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	if err := config.Init(a.v, a.cfgFile); err != nil {
		return err
	}
	if err := bindFlags(a.v, cmd.Flags()); err != nil {
		return err
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, err := logging.NewLogger(cfg.Logging.File, cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}
	a.log = log
	a.log.Debug("configuration loaded", "command", cmd.Name(), "config_file", a.v.ConfigFileUsed())

	return nil
}

// close releases the logger opened by initConfig.
func (a *app) close(_ *cobra.Command, _ []string) error {
	if a.log == nil {
		return nil
	}

	return a.log.Close()
}

// bindFlags binds every known flag present in fs to its config key, so that
// an explicitly set flag overrides environment and config file values.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag --%s: %w", name, err)
		}
	}

	return nil
}

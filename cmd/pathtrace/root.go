package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathtrace/internal/config"
	"github.com/katalvlaran/pathtrace/internal/logging"
)

// errReported marks a failure whose details were already printed.
var errReported = errors.New("pathtrace: failure reported")

// app carries the settings resolved by the root command.
type app struct {
	cfg config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), log: logging.NewNop()}
	var configPath string

	root := &cobra.Command{
		Use:           "pathtrace",
		Short:         "Follow the path through ASCII diagrams",
		Long:          `pathtrace walks from '@' to 'x' through a diagram of -, | and + segments and collects the uppercase letters it passes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, configPath)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	// Persistent flags (available to all commands)
	flags := root.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "YAML file with default settings")
	flags.String("crossing", "", "crossing policy: none, dedup or inferred")
	flags.Int("max-steps", 0, "step bound; 0 derives it from the grid size")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.Bool("no-color", false, "disable styled output")

	root.AddCommand(newTraceCmd(a), newSamplesCmd(a))
	return root
}

// setup loads the config file, applies explicitly set flags over it and
// builds the logger.
func (a *app) setup(cmd *cobra.Command, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return a.fail(cmd, err)
	}

	flags := cmd.Flags()
	if flags.Changed("crossing") {
		cfg.Crossing, _ = flags.GetString("crossing")
	}
	if flags.Changed("max-steps") {
		cfg.MaxSteps, _ = flags.GetInt("max-steps")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("no-color") {
		cfg.NoColor, _ = flags.GetBool("no-color")
	}
	if err := cfg.Validate(); err != nil {
		return a.fail(cmd, err)
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return a.fail(cmd, err)
	}
	a.cfg, a.log = cfg, log
	return nil
}

// fail prints err to the command's error stream and marks it reported.
func (a *app) fail(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
	return fmt.Errorf("%w: %v", errReported, err)
}

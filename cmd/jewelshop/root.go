package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sghaida/jewelshop/internal/config"
)

// app carries the state shared by every subcommand.
type app struct {
	cfgFile string
	verbose bool

	cfg    config.Config
	logger *zap.Logger

	// newLogger is swapped in tests.
	newLogger func(verbose bool) (*zap.Logger, error)
}

func productionLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

func newRootCmd() *cobra.Command {
	a := &app{newLogger: productionLogger}
	return a.rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "jewelshop",
		Short: "Jewelry pricing patterns and a tiny storefront",
		Long: `jewelshop prints a walkthrough of the jewelry pricing building blocks
(builder, discount factory, gemstone decorator, legacy adapter, collection, proxy)
and can run a sample storefront order.

Run without arguments to print the showcase.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: a.runShowcase,
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (YAML)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(a.showcaseCmd(), a.orderCmd(), a.configCmd())
	return root
}

// setup builds the logger and loads configuration before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	logger, err := a.newLogger(a.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	// config init must work even when the current config is broken.
	if cmd.Name() == "init" {
		return nil
	}

	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger.Debug("configuration loaded", zap.String("file", a.cfgFile))
	return nil
}

// Command advisorctl runs advisor operations from the shell: one-off
// suggestions, ROI arithmetic, catalog listing and vendor import.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/machine-advisor/internal/config"
	logpkg "github.com/kailas-cloud/machine-advisor/internal/logger"
)

type rootOptions struct {
	configPath string
	env        string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "advisorctl",
		Short:         "Automation machine advisor for small manufacturers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file (default: config/<env>.yaml)")
	root.PersistentFlags().StringVar(&opts.env, "env", "", "Environment name (default: $ENV or local)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newSuggestCmd(opts),
		newROICmd(),
		newCatalogCmd(opts),
		newVendorsCmd(opts),
		newVersionCmd(),
	)
	return root
}

// load reads configuration and builds a stderr logger for a command.
func (o *rootOptions) load() (config.Config, *zap.Logger, error) {
	if err := config.LoadDotEnv(); err != nil {
		return config.Config{}, nil, fmt.Errorf("load .env: %w", err)
	}

	env := o.env
	if env == "" {
		env = config.GetEnv()
	}

	var (
		cfg config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadFile(o.configPath)
	} else {
		cfg, err = config.Load(env)
	}
	if err != nil {
		return config.Config{}, nil, err
	}

	level := "warn"
	if o.verbose {
		level = "debug"
	}
	logger, err := logpkg.NewLogger("local", level)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("create logger: %w", err)
	}
	return cfg, logger, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

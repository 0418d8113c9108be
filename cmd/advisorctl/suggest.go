package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/machine-advisor/internal/app"
	logpkg "github.com/kailas-cloud/machine-advisor/internal/logger"
)

func newSuggestCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "suggest <problem...>",
		Short: "Suggest a machine for a problem description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx := logpkg.ContextWithLogger(cmd.Context(), logger)
			services, err := app.New(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer services.Close()

			result, err := services.Suggest.Suggest(ctx, strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("suggest: %w", err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			fmt.Fprintln(out, result.Summary)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full suggestion as JSON")
	return cmd
}

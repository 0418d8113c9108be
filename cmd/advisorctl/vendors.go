package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/machine-advisor/internal/app"
	"github.com/kailas-cloud/machine-advisor/internal/repository/catalog"
	vendorrepo "github.com/kailas-cloud/machine-advisor/internal/repository/vendor"
)

func newVendorsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vendors",
		Short: "Manage the vendor table",
	}

	var file string
	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Copy the vendor CSV into the vendor database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := opts.load()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if file == "" {
				file = cfg.Catalog.VendorsPath
			}
			f, err := os.Open(filepath.Clean(file))
			if err != nil {
				return fmt.Errorf("open vendors: %w", err)
			}
			defer func() { _ = f.Close() }()

			table, err := catalog.ReadVendors(f)
			if err != nil {
				return fmt.Errorf("parse vendors %s: %w", file, err)
			}

			store, err := app.ConnectRedis(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer store.Close()

			n, err := vendorrepo.New(store, cfg.Database.KeyPrefix).Import(cmd.Context(), table)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d vendors\n", n)
			return nil
		},
	}
	importCmd.Flags().StringVarP(&file, "file", "f", "", "Vendor CSV (default: catalog.vendors_path)")

	cmd.AddCommand(importCmd)
	return cmd
}

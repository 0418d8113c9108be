package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/machine-advisor/internal/domain"
	"github.com/kailas-cloud/machine-advisor/internal/repository/catalog"
)

func newCatalogCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the machine catalog",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "machines",
		Short: "List catalog machines in match order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := opts.load()
			if err != nil {
				return err
			}

			machines, err := catalog.New(cfg.Catalog.MachinesPath, cfg.Catalog.VendorsPath).LoadMachines(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tTYPE\tCOST\tWORKERS\tVENDORS")
			for _, m := range machines {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
					m.Name, m.Type, domain.FormatAmount(m.Cost), m.ManpowerSavings, strings.Join(m.VendorRefs, ","))
			}
			return tw.Flush()
		},
	})
	return cmd
}

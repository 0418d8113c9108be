package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/machine-advisor/internal/domain"
)

func newROICmd() *cobra.Command {
	var (
		cost    float64
		workers int
		rate    float64
	)

	cmd := &cobra.Command{
		Use:   "roi",
		Short: "Payback period in months for a machine replacing workers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m := domain.Machine{Cost: cost, ManpowerSavings: workers}
			roi := domain.CalculateROI(m.Cost, m.MonthlyLaborSavings(rate))
			if roi == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "N/A")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), domain.FormatAmount(*roi))
			return nil
		},
	}
	cmd.Flags().Float64Var(&cost, "cost", 0, "Machine cost in INR")
	cmd.Flags().IntVar(&workers, "workers", 0, "Workers the machine replaces")
	cmd.Flags().Float64Var(&rate, "rate", domain.DefaultLaborRate, "Monthly labor cost per worker in INR")
	_ = cmd.MarkFlagRequired("cost")
	return cmd
}

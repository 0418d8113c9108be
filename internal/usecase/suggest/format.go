package suggest

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/machine-advisor/internal/domain"
)

const notAvailable = "N/A"

// SummaryInput carries the values rendered into the text summary.
type SummaryInput struct {
	MachineName     string
	MachineCost     *float64
	ROIMonths       *float64
	ManpowerSavings string
	Vendors         []domain.Vendor
	// KeepZeroCost prints a zero cost instead of N/A. Catalog entries always show their cost.
	KeepZeroCost bool
}

// FormatSummary renders the five-line suggestion summary.
func FormatSummary(in SummaryInput) string {
	cost := notAvailable
	if in.MachineCost != nil && (*in.MachineCost != 0 || in.KeepZeroCost) {
		cost = domain.FormatAmount(*in.MachineCost)
	}

	roi := notAvailable
	if in.ROIMonths != nil && *in.ROIMonths != 0 {
		roi = domain.FormatAmount(*in.ROIMonths)
	}

	vendors := notAvailable
	if len(in.Vendors) > 0 {
		names := make([]string, len(in.Vendors))
		for i, v := range in.Vendors {
			names[i] = v.Name
		}
		vendors = strings.Join(names, ", ")
	}

	return fmt.Sprintf("Suggested: %s\nEstimated Cost: ₹%s\nROI: %s months\nManpower Savings: %s\nVendors: %s",
		in.MachineName, cost, roi, in.ManpowerSavings, vendors)
}

// CatalogSavings describes the workforce a catalog machine replaces.
func CatalogSavings(workers int) string {
	return fmt.Sprintf("Replaces %d workers", workers)
}

package suggest

import (
	"context"

	"github.com/kailas-cloud/machine-advisor/internal/domain"
)

// MachineLoader reads the machine catalog.
type MachineLoader interface {
	LoadMachines(ctx context.Context) ([]domain.Machine, error)
}

// VendorLoader reads the vendor table.
type VendorLoader interface {
	LoadVendors(ctx context.Context) (domain.VendorTable, error)
}

// Advisor produces a suggestion for problems the catalog does not cover.
type Advisor interface {
	Suggest(ctx context.Context, problem string) domain.Advice
}

package suggest

import (
	"context"

	"github.com/kailas-cloud/machine-advisor/internal/domain"
)

// --- Mocks ---

type mockMachines struct {
	machines []domain.Machine
	err      error
	calls    int
}

func (m *mockMachines) LoadMachines(_ context.Context) ([]domain.Machine, error) {
	m.calls++
	return m.machines, m.err
}

type mockVendors struct {
	table domain.VendorTable
	err   error
	calls int
}

func (m *mockVendors) LoadVendors(_ context.Context) (domain.VendorTable, error) {
	m.calls++
	return m.table, m.err
}

type mockAdvisor struct {
	advice   domain.Advice
	problems []string
}

func (m *mockAdvisor) Suggest(_ context.Context, problem string) domain.Advice {
	m.problems = append(m.problems, problem)
	return m.advice
}

func vendorTable(vendors ...domain.Vendor) domain.VendorTable {
	t := domain.NewVendorTable()
	for _, v := range vendors {
		t.Put(v)
	}
	return t
}

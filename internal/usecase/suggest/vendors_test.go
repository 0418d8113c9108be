package suggest

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kailas-cloud/machine-advisor/internal/domain"
)

func TestJoinByRefs(t *testing.T) {
	v1 := domain.Vendor{ID: "v1", Name: "Sri Murugan Engineering"}
	v2 := domain.Vendor{ID: "v2", Name: "Kovai Pack Systems"}
	table := vendorTable(v1, v2)

	got := JoinByRefs([]string{"v2", "v9", "v1"}, table)
	if diff := cmp.Diff([]domain.Vendor{v2, v1}, got); diff != "" {
		t.Errorf("vendors mismatch (-want +got):\n%s", diff)
	}
}

func TestJoinByRefs_NoneResolved(t *testing.T) {
	got := JoinByRefs([]string{"v9"}, vendorTable())
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestJoinByMachineType(t *testing.T) {
	v1 := domain.Vendor{ID: "v1", Name: "A", MachineTypes: "Automatic Sealing Machine; band sealer"}
	v2 := domain.Vendor{ID: "v2", Name: "B", MachineTypes: "packing"}
	v3 := domain.Vendor{ID: "v3", Name: "C", MachineTypes: "automatic sealing machine"}
	table := vendorTable(v1, v2, v3)

	got := JoinByMachineType("automatic SEALING machine", table)
	if diff := cmp.Diff([]domain.Vendor{v1, v3}, got); diff != "" {
		t.Errorf("vendors mismatch (-want +got):\n%s", diff)
	}
}

func TestJoinByMachineType_EmptyName(t *testing.T) {
	table := vendorTable(domain.Vendor{ID: "v1", MachineTypes: "packing"})
	got := JoinByMachineType("", table)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

package suggest

import (
	"strings"

	"github.com/kailas-cloud/machine-advisor/internal/domain"
)

// JoinByRefs resolves vendor ids in ref order. Unknown ids are skipped.
func JoinByRefs(refs []string, table domain.VendorTable) []domain.Vendor {
	out := make([]domain.Vendor, 0, len(refs))
	for _, id := range refs {
		if v, ok := table.Get(id); ok {
			out = append(out, v)
		}
	}
	return out
}

// JoinByMachineType returns vendors whose machine_types mention the machine name,
// in table order. An empty name matches nothing.
func JoinByMachineType(machineName string, table domain.VendorTable) []domain.Vendor {
	out := []domain.Vendor{}
	name := strings.ToLower(machineName)
	if name == "" {
		return out
	}
	for _, v := range table.All() {
		if strings.Contains(strings.ToLower(v.MachineTypes), name) {
			out = append(out, v)
		}
	}
	return out
}

package suggest

import (
	"strings"

	"github.com/kailas-cloud/machine-advisor/internal/domain"
)

// MatchMachine returns the first machine whose type or name appears in the
// problem text, ignoring case. Catalog order decides ties.
func MatchMachine(problem string, machines []domain.Machine) (domain.Machine, bool) {
	p := strings.ToLower(problem)
	for _, m := range machines {
		if strings.Contains(p, strings.ToLower(m.Type)) || strings.Contains(p, strings.ToLower(m.Name)) {
			return m, true
		}
	}
	return domain.Machine{}, false
}

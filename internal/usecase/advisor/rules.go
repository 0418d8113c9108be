package advisor

import (
	"strings"

	"github.com/kailas-cloud/machine-advisor/internal/domain"
)

// staticRule is a hardcoded suggestion chosen by keyword.
type staticRule struct {
	keyword         string
	machine         string
	cost            float64
	roiMonths       float64
	manpowerSavings string
}

// Checked in order; the first keyword found in the problem wins.
var staticRules = []staticRule{
	{"pack", "Semi-automatic powder packing machine", 28000, 2, "Replaces 2 workers, increases speed by 3x"},
	{"seal", "Automatic sealing machine", 22000, 3, "Replaces 1 worker, doubles speed"},
}

var genericRule = staticRule{
	machine:         "Custom automation solution",
	cost:            35000,
	roiMonths:       4,
	manpowerSavings: "Typically replaces 1-2 workers",
}

// StaticAdvice returns the keyword-rule suggestion for a problem description.
func StaticAdvice(problem string) domain.Advice {
	p := strings.ToLower(problem)
	rule := genericRule
	for _, r := range staticRules {
		if strings.Contains(p, r.keyword) {
			rule = r
			break
		}
	}
	return domain.Advice{
		Source:            domain.SourceStatic,
		MachineSuggestion: rule.machine,
		MachineCost:       domain.Float(rule.cost),
		ROIMonths:         domain.Float(rule.roiMonths),
		ManpowerSavings:   rule.manpowerSavings,
	}
}

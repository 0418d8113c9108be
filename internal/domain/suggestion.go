package domain

import "strconv"

// Source identifies which tier produced a suggestion.
type Source string

const (
	// SourceCatalog marks a suggestion matched from the machine catalog.
	SourceCatalog Source = "catalog"
	// SourceModel marks a suggestion parsed from the generative model reply.
	SourceModel Source = "model"
	// SourceStatic marks a suggestion taken from the built-in keyword rules.
	SourceStatic Source = "static"
)

// Advice is the fallback result for a problem that matched no catalog entry.
type Advice struct {
	Source            Source
	MachineSuggestion string
	MachineCost       *float64
	ROIMonths         *float64
	ManpowerSavings   string
}

// Suggestion is the assembled answer returned to the caller.
type Suggestion struct {
	Summary         string   `json:"suggestion"`
	MachineName     string   `json:"machine_name"`
	MachineCost     *float64 `json:"machine_cost"`
	ROIMonths       *float64 `json:"roi_months"`
	ManpowerSavings string   `json:"manpower_savings"`
	Vendors         []Vendor `json:"vendors"`
	Source          Source   `json:"source"`
}

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }

// FormatAmount renders a number the way it appears in summaries: integral values
// without a decimal point, others with the fewest digits that round-trip.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package domain

// Machine is a catalog entry for an automation machine.
type Machine struct {
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	Cost            float64  `json:"cost"`
	ManpowerSavings int      `json:"manpower_savings"`
	VendorRefs      []string `json:"vendor_refs"`
}

// MonthlyLaborSavings returns the labor cost the machine saves per month at the given rate per worker.
func (m Machine) MonthlyLaborSavings(ratePerWorker float64) float64 {
	return float64(m.ManpowerSavings) * ratePerWorker
}

package advisor

import (
	"strings"
	"text/template"

	"github.com/kailas-cloud/machine-advisor/internal/domain"
)

var promptTemplate = template.Must(template.New("advisor").Parse(`You are an AI assistant helping small-scale manufacturers in Tamil Nadu automate their processes.
Based on the user's input, suggest a suitable low-cost automation machine and estimate manpower savings.

User input: {{.Problem}}

Respond only with a JSON object with these keys:
- machine_suggestion: Name of the machine
- machine_cost: Cost in INR (number)
- roi_months: Estimated ROI in months (number; assume labor cost of ₹{{.LaborRate}}/worker/month)
- manpower_savings: Short description of the workers replaced
`))

type promptData struct {
	Problem   string
	LaborRate string
}

// BuildPrompt renders the fixed advisor prompt for a problem description.
func BuildPrompt(problem string, laborRate float64) string {
	var b strings.Builder
	// Execute only fails on writer errors; strings.Builder has none.
	_ = promptTemplate.Execute(&b, promptData{
		Problem:   strings.TrimSpace(problem),
		LaborRate: domain.FormatAmount(laborRate),
	})
	return b.String()
}

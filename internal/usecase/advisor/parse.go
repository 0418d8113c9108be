package advisor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/kailas-cloud/machine-advisor/internal/domain"
)

// modelReply is the JSON object the prompt asks the model to produce.
type modelReply struct {
	MachineSuggestion string     `json:"machine_suggestion"`
	MachineCost       flexNumber `json:"machine_cost"`
	ROIMonths         flexNumber `json:"roi_months"`
	ManpowerSavings   flexText   `json:"manpower_savings"`
}

// ParseReply extracts the suggestion from a model reply. Each '{' is tried in
// turn and the first object carrying a machine_suggestion is used; prose, stray
// braces or code fences around it are ignored.
func ParseReply(reply string) (domain.Advice, error) {
	if !strings.Contains(reply, "{") {
		return domain.Advice{}, fmt.Errorf("no JSON object in reply: %w", domain.ErrModelReplyInvalid)
	}

	err := fmt.Errorf("reply has no machine_suggestion: %w", domain.ErrModelReplyInvalid)
	for i := 0; i < len(reply); i++ {
		if reply[i] != '{' {
			continue
		}

		var r modelReply
		if decErr := json.NewDecoder(strings.NewReader(reply[i:])).Decode(&r); decErr != nil {
			err = fmt.Errorf("decode reply: %w: %w", domain.ErrModelReplyInvalid, decErr)
			continue
		}
		name := strings.TrimSpace(r.MachineSuggestion)
		if name == "" {
			err = fmt.Errorf("reply has no machine_suggestion: %w", domain.ErrModelReplyInvalid)
			continue
		}

		return domain.Advice{
			Source:            domain.SourceModel,
			MachineSuggestion: name,
			MachineCost:       r.MachineCost.value,
			ROIMonths:         r.ROIMonths.value,
			ManpowerSavings:   string(r.ManpowerSavings),
		}, nil
	}
	return domain.Advice{}, err
}

// flexNumber accepts a JSON number or a numeric string such as "₹28,000".
// Anything else, including NaN and infinities, leaves the value unset.
type flexNumber struct {
	value *float64
}

func (n *flexNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		n.value = &f
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil // objects, arrays and booleans are not amounts
	}
	s = strings.NewReplacer("₹", "", ",", "", "INR", "", "Rs.", "", "Rs", "").Replace(s)
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	n.value = &f
	return nil
}

// flexText accepts a JSON string or number and keeps it as text.
type flexText string

func (t *flexText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = flexText(s)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*t = flexText(domain.FormatAmount(f))
	}
	return nil
}

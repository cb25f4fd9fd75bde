package paper

import "math"

// Severity is an SRI class.
type Severity struct {
	Range          string `json:"range"`
	Interpretation string `json:"interpretation"`
	// Min is the inclusive lower bound of the class; -Inf for the driest.
	Min float64 `json:"-"`
}

// SeverityScale runs from wettest to driest.
var SeverityScale = []Severity{
	{Range: ">= 2.00", Interpretation: "Extremely wet", Min: 2},
	{Range: "1.50 to 1.99", Interpretation: "Severely wet", Min: 1.5},
	{Range: "1.00 to 1.49", Interpretation: "Moderately wet", Min: 1},
	{Range: "-0.99 to 0.99", Interpretation: "Normal", Min: -0.99},
	{Range: "-1.49 to -1.00", Interpretation: "Moderately dry", Min: -1.49},
	{Range: "-1.99 to -1.49", Interpretation: "Severely dry", Min: -1.99},
	{Range: "<= -2.00", Interpretation: "Extremely dry", Min: math.Inf(-1)},
}

// Classify returns the severity class of an SRI value. Values are compared
// at two-decimal precision, the resolution of the published table.
func Classify(sri float64) Severity {
	v := math.Round(sri*100) / 100
	for _, s := range SeverityScale {
		if v >= s.Min {
			return s
		}
	}
	return SeverityScale[len(SeverityScale)-1]
}

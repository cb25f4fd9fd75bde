package fitgame

import "github.com/san-kum/gridfit/internal/curve"

// RegionID identifies a synthetic grid cell. The zero value means none.
type RegionID int

// Region is a synthetic grid cell with one correct distribution family.
type Region struct {
	ID          RegionID
	Name        string
	Canonical   curve.Kind
	Description string
}

// DefaultRegions are the three cells of the challenge.
var DefaultRegions = []Region{
	{ID: 1, Name: "Grid A (Plains)", Canonical: curve.Normal, Description: "Symmetric"},
	{ID: 2, Name: "Grid B (Hills)", Canonical: curve.Gamma, Description: "Right Skewed"},
	{ID: 3, Name: "Grid C (Steep)", Canonical: curve.GEV, Description: "Extreme Tail"},
}

// FitStatus classifies a choice against a region's canonical family.
type FitStatus int

const (
	FitNone FitStatus = iota
	FitGood
	FitBad
)

func (s FitStatus) String() string {
	switch s {
	case FitGood:
		return "good"
	case FitBad:
		return "bad"
	default:
		return "none"
	}
}

// Label is the badge text shown on a tile.
func (s FitStatus) Label() string {
	switch s {
	case FitGood:
		return "Good Fit"
	case FitBad:
		return "Poor Fit"
	default:
		return ""
	}
}

// ComputeFitStatus returns FitNone for an unset choice, FitGood when choice
// equals the canonical family and FitBad otherwise.
func ComputeFitStatus(r Region, choice curve.Kind) FitStatus {
	switch {
	case choice == curve.Unset:
		return FitNone
	case choice == r.Canonical:
		return FitGood
	default:
		return FitBad
	}
}

// ArealErrors counts regions whose canonical family differs from choice.
// An unset choice mismatches every region.
func ArealErrors(regions []Region, choice curve.Kind) int {
	if choice == curve.Unset {
		return len(regions)
	}
	n := 0
	for _, r := range regions {
		if r.Canonical != choice {
			n++
		}
	}
	return n
}

// GridErrors counts regions whose own choice is missing or wrong.
func GridErrors(regions []Region, choices map[RegionID]curve.Kind) int {
	n := 0
	for _, r := range regions {
		if choices[r.ID] != r.Canonical {
			n++
		}
	}
	return n
}

// ArealBadge summarises the areal error: "---" before a choice, "HIGH" when
// more than one region is mismatched and "MED" otherwise.
func ArealBadge(regions []Region, choice curve.Kind) string {
	if choice == curve.Unset {
		return "---"
	}
	if ArealErrors(regions, choice) > 1 {
		return "HIGH"
	}
	return "MED"
}

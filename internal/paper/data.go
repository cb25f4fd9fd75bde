package paper

// Info is the citation of the paper.
type Info struct {
	Title   string `json:"title"`
	Authors string `json:"authors"`
	Journal string `json:"journal"`
	DOI     string `json:"doi"`
}

// Citation is the study the lab presents.
var Citation = Info{
	Title:   "A grid-wise approach for accurate computation of Standardized Runoff Index (SRI)",
	Authors: "Bharath Kumar Reddy Kadapala, M. Asha Farsana, C.H. Geetha Vimala, Saksham Joshi, K. Abdul Hakeem, P.V. Raju",
	Journal: "Science of the Total Environment 946 (2024)",
	DOI:     "https://doi.org/10.1016/j.scitotenv.2024.174472",
}

// Stat is a labelled basin figure.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// BasinStats describes the Godavari basin.
var BasinStats = []Stat{
	{Label: "Drainage Area", Value: "312,812 km²"},
	{Label: "Annual Rainfall", Value: "850 - 1200 mm"},
	{Label: "Monsoon Contribution", Value: "80%"},
	{Label: "Study Period", Value: "1981 - 2019"},
}

// F1Score is the agreement between grid-wise and areal event detection for
// one return-period class.
type F1Score struct {
	ReturnPeriod string  `json:"return_period"`
	Dry          float64 `json:"dry"`
	Wet          float64 `json:"wet"`
}

// RunoffClass groups F1 scores by runoff regime.
type RunoffClass struct {
	Name   string    `json:"name"`
	Scores []F1Score `json:"scores"`
}

var (
	F1LowRunoff = []F1Score{
		{ReturnPeriod: "> 100", Dry: 0.16, Wet: 0.08},
		{ReturnPeriod: "100-50", Dry: 0.22, Wet: 0.24},
		{ReturnPeriod: "50-25", Dry: 0.41, Wet: 0.61},
		{ReturnPeriod: "25-10", Dry: 0.78, Wet: 0.85},
	}
	F1MedRunoff = []F1Score{
		{ReturnPeriod: "> 100", Dry: 0.14, Wet: 0.26},
		{ReturnPeriod: "100-50", Dry: 0.29, Wet: 0.28},
		{ReturnPeriod: "50-25", Dry: 0.50, Wet: 0.56},
		{ReturnPeriod: "25-10", Dry: 0.81, Wet: 0.83},
	}
	F1HighRunoff = []F1Score{
		{ReturnPeriod: "> 100", Dry: 0.19, Wet: 0.28},
		{ReturnPeriod: "100-50", Dry: 0.21, Wet: 0.31},
		{ReturnPeriod: "50-25", Dry: 0.52, Wet: 0.57},
		{ReturnPeriod: "25-10", Dry: 0.79, Wet: 0.85},
	}
)

// RunoffClasses lists the F1 tables in order of increasing runoff.
var RunoffClasses = []RunoffClass{
	{Name: "Low runoff", Scores: F1LowRunoff},
	{Name: "Medium runoff", Scores: F1MedRunoff},
	{Name: "High runoff", Scores: F1HighRunoff},
}

// MatrixColumns label the return-period classes of the difference matrix.
var MatrixColumns = []string{
	">100 Dry", "100-50 Dry", "50-25 Dry", "25-10 Dry",
	"Normal",
	"25-10 Wet", "50-25 Wet", "100-50 Wet", ">100 Wet",
}

// MatrixRow is one row of the difference matrix: grid cells classified by
// the areal index (Label) against the grid-wise index (columns).
type MatrixRow struct {
	Label  string `json:"label"`
	Values []int  `json:"values"`
}

// Matrix holds the extreme rows of the difference matrix; the normal rows
// are omitted.
var Matrix = []MatrixRow{
	{Label: ">100 Dry", Values: []int{44, 110, 87, 107, 0, 0, 0, 0, 0}},
	{Label: "100-50 Dry", Values: []int{79, 104, 267, 116, 0, 0, 0, 0, 0}},
	{Label: "50-25 Dry", Values: []int{48, 71, 717, 1010, 0, 0, 0, 0, 0}},
	{Label: "25-10 Dry", Values: []int{26, 6, 79, 6626, 1936, 0, 0, 0, 0}},
	{Label: "25-10 Wet", Values: []int{0, 0, 0, 0, 2059, 13920, 14, 0, 0}},
	{Label: "50-25 Wet", Values: []int{0, 0, 0, 0, 0, 2759, 4272, 1, 0}},
	{Label: "100-50 Wet", Values: []int{0, 0, 0, 0, 0, 91, 3038, 883, 7}},
	{Label: ">100 Wet", Values: []int{0, 0, 0, 0, 0, 39, 219, 1251, 249}},
}

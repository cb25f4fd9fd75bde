package paper

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// ExportData is the machine-readable form of every table.
type ExportData struct {
	Citation   Info          `json:"citation"`
	BasinStats []Stat        `json:"basin_stats"`
	Severity   []Severity    `json:"severity"`
	F1         []RunoffClass `json:"f1"`
	Matrix     struct {
		Columns []string    `json:"columns"`
		Rows    []MatrixRow `json:"rows"`
	} `json:"matrix"`
}

func exportData() ExportData {
	data := ExportData{
		Citation:   Citation,
		BasinStats: BasinStats,
		Severity:   SeverityScale,
		F1:         RunoffClasses,
	}
	data.Matrix.Columns = MatrixColumns
	data.Matrix.Rows = Matrix
	return data
}

// ExportJSON writes every table as indented JSON.
func ExportJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(exportData())
}

// ExportF1CSV writes the F1 tables as runoff,return_period,dry,wet rows.
func ExportF1CSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"runoff", "return_period", "dry", "wet"}); err != nil {
		return err
	}
	for _, rc := range RunoffClasses {
		for _, s := range rc.Scores {
			row := []string{
				rc.Name,
				s.ReturnPeriod,
				strconv.FormatFloat(s.Dry, 'f', 2, 64),
				strconv.FormatFloat(s.Wet, 'f', 2, 64),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("write csv: %w", err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

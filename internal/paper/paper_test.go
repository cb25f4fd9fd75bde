package paper

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/gridfit/internal/viz"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		sri  float64
		want string
	}{
		{2.4, "Extremely wet"},
		{2.0, "Extremely wet"},
		{1.75, "Severely wet"},
		{1.0, "Moderately wet"},
		{0, "Normal"},
		{-0.99, "Normal"},
		{-1.0, "Moderately dry"},
		{-1.6, "Severely dry"},
		{-2.0, "Extremely dry"},
		{-3.1, "Extremely dry"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.sri).Interpretation, "sri=%v", tc.sri)
	}
}

func TestTablesAreRectangular(t *testing.T) {
	for _, row := range Matrix {
		assert.Len(t, row.Values, len(MatrixColumns), row.Label)
	}
	for _, rc := range RunoffClasses {
		assert.Len(t, rc.Scores, 4, rc.Name)
		for _, s := range rc.Scores {
			assert.True(t, s.Dry > 0 && s.Dry < 1)
			assert.True(t, s.Wet > 0 && s.Wet < 1)
		}
	}
}

func TestF1Series(t *testing.T) {
	dry, wet := F1Series(F1LowRunoff)
	assert.Equal(t, []float64{0.16, 0.22, 0.41, 0.78}, dry)
	assert.Equal(t, []float64{0.08, 0.24, 0.61, 0.85}, wet)
}

func TestRender(t *testing.T) {
	out := NewRenderer(viz.ThemeMinimal).Render()
	assert.Contains(t, out, "Godavari basin")
	assert.Contains(t, out, "312,812 km²")
	assert.Contains(t, out, "Extremely dry")
	assert.Contains(t, out, "13920")
	assert.Contains(t, out, "High runoff F1")
	assert.Contains(t, out, Citation.DOI)
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportJSON(&buf))

	var got ExportData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, Citation, got.Citation)
	assert.Len(t, got.F1, 3)
	assert.Len(t, got.Severity, len(SeverityScale))
	assert.Equal(t, "Extremely dry", got.Severity[len(got.Severity)-1].Interpretation)
	assert.Equal(t, 249, got.Matrix.Rows[7].Values[8])
}

func TestExportF1CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportF1CSV(&buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 13)
	assert.Equal(t, []string{"runoff", "return_period", "dry", "wet"}, records[0])
	assert.Equal(t, []string{"Low runoff", "> 100", "0.16", "0.08"}, records[1])
	assert.Equal(t, []string{"High runoff", "25-10", "0.79", "0.85"}, records[12])
}

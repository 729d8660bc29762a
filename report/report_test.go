package report_test

import (
	"encoding/json"
	"strings"
	"testing"

	"ml-pipeline/models"
	"ml-pipeline/report"

	"github.com/stretchr/testify/assert"
)

func summary() *models.Summary {
	return &models.Summary{
		InputPath:       "notebook/data/stud.csv",
		InputRows:       100,
		Columns:         3,
		TrainRows:       80,
		TestRows:        20,
		TestSize:        0.2,
		Seed:            42,
		RawPath:         "artifacts/data.csv",
		TrainPath:       "artifacts/train.csv",
		TestPath:        "artifacts/test.csv",
		TransformedCols: 2,
	}
}

func TestFormatText(t *testing.T) {
	out := report.FormatText(summary())

	assert.Contains(t, out, "notebook/data/stud.csv (100 rows, 3 columns)")
	assert.Contains(t, out, "test_size=0.20 seed=42 -> train=80 test=20")
	assert.Contains(t, out, "train   : artifacts/train.csv")
	assert.Contains(t, out, "features: 2 transformed columns")
}

func TestFormatTextOmitsFeaturesWhenAbsent(t *testing.T) {
	s := summary()
	s.TransformedCols = 0

	assert.NotContains(t, report.FormatText(s), "features:")
}

func TestFormatJSON(t *testing.T) {
	out := report.FormatJSON(summary())

	var decoded map[string]any
	assert.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, float64(80), decoded["train_rows"])
	assert.Equal(t, float64(20), decoded["test_rows"])
	assert.Equal(t, "artifacts/test.csv", decoded["test_path"])
}

func TestFormatCSV(t *testing.T) {
	out := report.FormatCSV(summary())

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t,
		"Input,Rows,Columns,TestSize,Seed,TrainRows,TestRows,RawPath,TrainPath,TestPath",
		lines[0])
	assert.Equal(t,
		"notebook/data/stud.csv,100,3,0.20,42,80,20,artifacts/data.csv,artifacts/train.csv,artifacts/test.csv",
		lines[1])
}

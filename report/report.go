package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"ml-pipeline/models"
)

// FormatText returns the human-readable summary of a pipeline run.
func FormatText(s *models.Summary) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("input   : %s (%d rows, %d columns)\n",
		s.InputPath, s.InputRows, s.Columns))
	sb.WriteString(fmt.Sprintf("split   : test_size=%.2f seed=%d -> train=%d test=%d\n",
		s.TestSize, s.Seed, s.TrainRows, s.TestRows))
	sb.WriteString(fmt.Sprintf("raw     : %s\n", s.RawPath))
	sb.WriteString(fmt.Sprintf("train   : %s\n", s.TrainPath))
	sb.WriteString(fmt.Sprintf("test    : %s\n", s.TestPath))
	if s.TransformedCols > 0 {
		sb.WriteString(fmt.Sprintf("features: %d transformed columns\n", s.TransformedCols))
	}

	return sb.String()
}

// FormatJSON returns the JSON representation of the run summary.
func FormatJSON(s *models.Summary) string {
	jsonBytes, _ := json.MarshalIndent(s, "", "  ")
	return string(jsonBytes) + "\n"
}

// FormatCSV returns the CSV representation of the run summary.
func FormatCSV(s *models.Summary) string {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	writer.Write([]string{
		"Input", "Rows", "Columns", "TestSize", "Seed",
		"TrainRows", "TestRows", "RawPath", "TrainPath", "TestPath",
	})
	writer.Write([]string{
		s.InputPath,
		fmt.Sprintf("%d", s.InputRows),
		fmt.Sprintf("%d", s.Columns),
		fmt.Sprintf("%.2f", s.TestSize),
		fmt.Sprintf("%d", s.Seed),
		fmt.Sprintf("%d", s.TrainRows),
		fmt.Sprintf("%d", s.TestRows),
		s.RawPath,
		s.TrainPath,
		s.TestPath,
	})

	writer.Flush()
	return sb.String()
}

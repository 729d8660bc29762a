package models

// Dataset represents a parsed tabular dataset. It is shared across packages
// to move rows through the pipeline without re-reading artifacts.
type Dataset struct {
	Header []string
	Rows   [][]string
}

// NumRows returns the number of data rows, excluding the header.
func (d *Dataset) NumRows() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}

// NumCols returns the number of columns declared by the header.
func (d *Dataset) NumCols() int {
	if d == nil {
		return 0
	}
	return len(d.Header)
}

// ArtifactPaths holds the locations of the files written by an ingestion run.
type ArtifactPaths struct {
	Raw   string
	Train string
	Test  string
}

// Summary captures the outcome of a full pipeline run for reporting.
type Summary struct {
	InputPath       string  `json:"input_path"`
	InputRows       int     `json:"input_rows"`
	Columns         int     `json:"columns"`
	TrainRows       int     `json:"train_rows"`
	TestRows        int     `json:"test_rows"`
	TestSize        float64 `json:"test_size"`
	Seed            int64   `json:"seed"`
	RawPath         string  `json:"raw_path"`
	TrainPath       string  `json:"train_path"`
	TestPath        string  `json:"test_path"`
	TransformedCols int     `json:"transformed_columns"`
}

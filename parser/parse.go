package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"ml-pipeline/errors"
	"ml-pipeline/models"
)

// Parse reads CSV data from the reader and returns a Dataset.
// Lines starting with '#' are treated as comments and skipped.
// The first non-comment record is the header; every subsequent record must
// carry the same number of fields as the header. Fields are trimmed of
// surrounding whitespace.
func Parse(r io.Reader) (*models.Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	ds := &models.Dataset{}
	lineNum := 0

	for {
		record, err := reader.Read()
		lineNum++
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV at line %d: %w", lineNum, err)
		}

		if len(record) > 0 && strings.HasPrefix(record[0], "#") {
			continue
		}

		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}

		if ds.Header == nil {
			if len(record) == 0 || (len(record) == 1 && record[0] == "") {
				return nil, &errors.RowError{
					Line:   lineNum,
					Record: record,
					Err:    errors.ErrMissingHeader,
				}
			}
			ds.Header = record
			continue
		}

		if len(record) != len(ds.Header) {
			return nil, &errors.RowError{
				Line:   lineNum,
				Record: record,
				Err: fmt.Errorf("%w: got %d fields, header has %d",
					errors.ErrFieldCount, len(record), len(ds.Header)),
			}
		}

		ds.Rows = append(ds.Rows, record)
	}

	if ds.Header == nil {
		return nil, errors.ErrEmptyDataset
	}

	return ds, nil
}

// Load opens path and parses it into a Dataset.
func Load(path string) (*models.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Parse(file)
}

// Write emits the dataset as CSV: one header row followed by the data rows.
// No index column is written, matching the artifact format consumed by the
// transformation stage.
func Write(w io.Writer, ds *models.Dataset) error {
	if ds == nil || ds.Header == nil {
		return errors.ErrEmptyDataset
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(ds.Header); err != nil {
		return err
	}
	for _, row := range ds.Rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteFile writes the dataset to path, truncating any existing file.
func WriteFile(path string, ds *models.Dataset) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(file, ds); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

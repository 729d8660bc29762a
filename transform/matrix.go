package transform

import (
	"fmt"
	"math"
	"strconv"

	"ml-pipeline/errors"
	"ml-pipeline/models"
)

// missing reports whether a cell holds no usable value.
func missing(v string) bool {
	return v == "" || v == "NA" || v == "NaN"
}

// Matrix converts a dataset into a feature matrix and label vector.
// targetCol selects the label column by index. Missing feature cells become
// NaN so a downstream imputer can fill them; any other non-numeric cell is
// an error, as is a missing label.
func Matrix(ds *models.Dataset, targetCol int) (X [][]float64, Y []float64, err error) {
	if ds == nil || len(ds.Rows) == 0 {
		return nil, nil, errors.ErrEmptyDataset
	}
	if targetCol < 0 || targetCol >= len(ds.Header) {
		return nil, nil, fmt.Errorf("target column %d out of range, dataset has %d columns",
			targetCol, len(ds.Header))
	}

	X = make([][]float64, 0, len(ds.Rows))
	Y = make([]float64, 0, len(ds.Rows))

	for i, row := range ds.Rows {
		features := make([]float64, 0, len(row)-1)
		for j, cell := range row {
			if j == targetCol {
				if missing(cell) {
					return nil, nil, fmt.Errorf("row %d: missing label in column %q",
						i+1, ds.Header[targetCol])
				}
				label, err := strconv.ParseFloat(cell, 64)
				if err != nil {
					return nil, nil, fmt.Errorf("row %d: label %q is not numeric: %w", i+1, cell, err)
				}
				Y = append(Y, label)
				continue
			}

			if missing(cell) {
				features = append(features, math.NaN())
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("row %d: value %q in column %q is not numeric: %w",
					i+1, cell, ds.Header[j], err)
			}
			features = append(features, v)
		}
		X = append(X, features)
	}

	return X, Y, nil
}

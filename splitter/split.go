// Package splitter partitions a dataset into train and test sets.
// The shuffle is driven by an explicit seed so that repeated runs over the
// same input produce byte-identical artifacts.
package splitter

import (
	"math"
	"math/rand"

	"ml-pipeline/errors"
	"ml-pipeline/models"
)

// TrainTestSplit splits the dataset rows into train and test sets by ratio.
// testSize is the fraction of rows assigned to the test set and must lie
// strictly between 0 and 1. The number of test rows is round(n * testSize),
// so a 100-row input at 0.2 yields exactly 80 train and 20 test rows.
//
// The same (dataset, testSize, seed) triple always produces the same
// partition in the same order. Row slices are shared with the input dataset,
// not copied.
func TrainTestSplit(ds *models.Dataset, testSize float64, seed int64) (train, test *models.Dataset, err error) {
	if testSize <= 0 || testSize >= 1 {
		return nil, nil, errors.ErrTestSize
	}
	if ds == nil || len(ds.Rows) == 0 {
		return nil, nil, errors.ErrEmptyDataset
	}

	n := len(ds.Rows)
	nTest := int(math.Round(float64(n) * testSize))

	rng := rand.New(rand.NewSource(seed))
	indices := rng.Perm(n)

	train = &models.Dataset{Header: ds.Header, Rows: make([][]string, 0, n-nTest)}
	test = &models.Dataset{Header: ds.Header, Rows: make([][]string, 0, nTest)}

	for i, idx := range indices {
		if i < nTest {
			test.Rows = append(test.Rows, ds.Rows[idx])
		} else {
			train.Rows = append(train.Rows, ds.Rows[idx])
		}
	}

	return train, test, nil
}

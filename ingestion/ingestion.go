// Package ingestion orchestrates the data ingestion stage: it reads the
// input dataset, persists a raw copy, splits it into train and test sets,
// and writes the split artifacts. Any failure is captured with its source
// location and is fatal to the run.
package ingestion

import (
	stderrors "errors"
	"os"
	"time"

	"ml-pipeline/config"
	"ml-pipeline/errors"
	"ml-pipeline/logger"
	"ml-pipeline/metrics"
	"ml-pipeline/models"
	"ml-pipeline/parser"
	"ml-pipeline/splitter"
)

// Ingestion runs the ingestion stage for one configuration.
type Ingestion struct {
	cfg config.Config
	log *logger.LogEntry
}

func New(cfg config.Config, log *logger.LogEntry) *Ingestion {
	return &Ingestion{cfg: cfg, log: log}
}

// Run executes the stage and returns the artifact paths together with the
// split datasets, so the transformation stage can consume them without
// re-reading the files.
//
// The raw copy is written before the split, so a later failure can leave
// data.csv behind without train.csv/test.csv. No partial-success exit codes
// exist; the caller treats any returned error as fatal.
func (i *Ingestion) Run() (paths models.ArtifactPaths, train, test *models.Dataset, err error) {
	i.log.Info("entered the data ingestion component")
	start := time.Now()
	metrics.ResetGauges()

	ds, err := parser.Load(i.cfg.InputPath)
	if err != nil {
		metrics.ParseErrorsTotal.WithLabelValues(errorType(err)).Inc()
		return paths, nil, nil, errors.Capture(err)
	}
	i.log.Infof("read the dataset: %d rows, %d columns", ds.NumRows(), ds.NumCols())
	metrics.RowsIngestedTotal.Add(float64(ds.NumRows()))

	if err := os.MkdirAll(i.cfg.ArtifactsDir, 0o755); err != nil {
		return paths, nil, nil, errors.Capture(err)
	}

	paths = models.ArtifactPaths{
		Raw:   i.cfg.RawPath(),
		Train: i.cfg.TrainPath(),
		Test:  i.cfg.TestPath(),
	}

	if err := parser.WriteFile(paths.Raw, ds); err != nil {
		return paths, nil, nil, errors.Capture(err)
	}
	i.log.Infof("saved raw dataset to %s", paths.Raw)

	i.log.Info("train test split initiated")
	train, test, err = splitter.TrainTestSplit(ds, i.cfg.TestSize, i.cfg.Seed)
	if err != nil {
		return paths, nil, nil, errors.Capture(err)
	}
	metrics.TrainRows.Set(float64(train.NumRows()))
	metrics.TestRows.Set(float64(test.NumRows()))

	if err := parser.WriteFile(paths.Train, train); err != nil {
		return paths, nil, nil, errors.Capture(err)
	}
	if err := parser.WriteFile(paths.Test, test); err != nil {
		return paths, nil, nil, errors.Capture(err)
	}

	metrics.IngestionDurationSeconds.Observe(time.Since(start).Seconds())
	i.log.Infof("ingestion of the data is completed: train=%d test=%d",
		train.NumRows(), test.NumRows())

	return paths, train, test, nil
}

// errorType buckets a parse failure for the error counter.
func errorType(err error) string {
	var rowErr *errors.RowError
	if stderrors.As(err, &rowErr) {
		return "row"
	}
	if stderrors.Is(err, os.ErrNotExist) {
		return "not_found"
	}
	return "read"
}

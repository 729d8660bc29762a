package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ml-pipeline/config"
	"ml-pipeline/errors"
	"ml-pipeline/ingestion"
	"ml-pipeline/logger"
	"ml-pipeline/metrics"
	"ml-pipeline/models"
	"ml-pipeline/report"
	"ml-pipeline/transform"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/push"
)

func main() {
	// Define flags
	input := flag.String("input", "", "Input CSV file (required unless set in config)")
	configPath := flag.String("config", "", "Optional TOML config file")
	artifacts := flag.String("artifacts", "", "Artifacts directory (default: artifacts)")
	testSize := flag.Float64("test-size", 0, "Test fraction between 0 and 1 (default: 0.2)")
	seed := flag.Int64("seed", -1, "Random seed for the split (default: 42)")
	target := flag.Int("target", -1, "Label column index for the transformation stage (-1 = last column)")
	format := flag.String("format", "text", "Output format: text|json|csv")
	metricsAddr := flag.String("metrics-addr", "", "Address to expose Prometheus metrics (e.g., :9090)")
	pushGateway := flag.String("push-url", "", "Pushgateway URL to push metrics to (e.g., http://localhost:9091)")
	wait := flag.Bool("wait", false, "Keep process running after completion to allow for metric scraping")

	// Parse command-line flags
	flag.Parse()

	// Start metrics server if address provided
	if *metricsAddr != "" {
		go func() {
			http.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
			fmt.Printf("Metrics server listening on %s/metrics\n", *metricsAddr)
			if err := http.ListenAndServe(*metricsAddr, nil); err != nil {
				fmt.Printf("Metrics server error: %v\n", err)
			}
		}()
	}

	// Validate format enum
	validFormats := map[string]bool{"text": true, "json": true, "csv": true}
	if !validFormats[*format] {
		fmt.Printf("Error: format must be one of: text, json, csv (got: %s)\n", *format)
		os.Exit(1)
	}

	// Assemble configuration: defaults, then config file, then flags
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *input != "" {
		cfg.InputPath = *input
	}
	if *artifacts != "" {
		cfg.ArtifactsDir = *artifacts
	}
	if *testSize != 0 {
		cfg.TestSize = *testSize
	}
	if *seed >= 0 {
		cfg.Seed = *seed
	}

	if cfg.InputPath == "" {
		fmt.Println("Error: -input flag is required")
		fmt.Println("\nUsage:")
		flag.PrintDefaults()
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// The log sink is initialized exactly once, before any stage runs, and
	// handles are passed down instead of relying on ambient global state.
	log, closer, logPath, err := logger.Setup(cfg.LogsDir)
	if err != nil {
		fmt.Printf("Error setting up log file: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	summary, err := run(cfg, log, *target)
	if err != nil {
		// The rendered message carrying file, line, and original text is the
		// last thing logged before the process terminates.
		logger.Named(log, "main").Error(err.Error())
		fmt.Fprintln(os.Stderr, err.Error())
		closer.Close()
		os.Exit(1)
	}

	// Output based on format
	switch *format {
	case "json":
		fmt.Print(report.FormatJSON(summary))
	case "csv":
		fmt.Print(report.FormatCSV(summary))
	default: // "text"
		fmt.Print(report.FormatText(summary))
	}
	logger.Named(log, "main").Infof("run completed, log written to %s", logPath)

	// Handle metrics pushing or waiting
	if *pushGateway != "" {
		jobName := "ml_pipeline"
		if err := push.New(*pushGateway, jobName).Gatherer(metrics.Registry).Push(); err != nil {
			fmt.Fprintf(os.Stderr, "Error pushing to Pushgateway: %v\n", err)
		} else {
			fmt.Println("\nMetrics successfully pushed to Pushgateway")
		}
	}

	if *wait && *metricsAddr != "" {
		fmt.Println("\nProcess kept alive for metric scraping. Press Ctrl+C to exit.")
		// Wait for interrupt signal
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		fmt.Println("\nExiting...")
	} else if *metricsAddr != "" && *pushGateway == "" {
		// Small delay to allow final scrape if not waiting explicitly
		// but typically batch jobs should use pushgateway or wait
		time.Sleep(100 * time.Millisecond)
	}
}

// run executes the ingestion stage followed by the transformation stage and
// assembles the run summary.
func run(cfg config.Config, log *logger.Logger, targetCol int) (*models.Summary, error) {
	ing := ingestion.New(cfg, logger.Named(log, "ingestion"))
	paths, train, test, err := ing.Run()
	if err != nil {
		return nil, err
	}

	summary := &models.Summary{
		InputPath: cfg.InputPath,
		InputRows: train.NumRows() + test.NumRows(),
		Columns:   train.NumCols(),
		TrainRows: train.NumRows(),
		TestRows:  test.NumRows(),
		TestSize:  cfg.TestSize,
		Seed:      cfg.Seed,
		RawPath:   paths.Raw,
		TrainPath: paths.Train,
		TestPath:  paths.Test,
	}

	tlog := logger.Named(log, "transform")
	tlog.Info("entered the data transformation component")
	start := time.Now()

	if targetCol < 0 {
		targetCol = train.NumCols() - 1
	}
	trainX, trainY, err := transform.Matrix(train, targetCol)
	if err != nil {
		return nil, errors.Capture(err)
	}
	testX, _, err := transform.Matrix(test, targetCol)
	if err != nil {
		return nil, errors.Capture(err)
	}

	// Fit on train only; the test matrix is transformed with the learned
	// statistics.
	pipe := transform.NewPipeline(transform.NewMeanImputer(), transform.NewStandardScaler())
	pipe.Fit(trainX, trainY)
	trainX = pipe.Transform(trainX)
	testX = pipe.Transform(testX)

	metrics.TransformDurationSeconds.Observe(time.Since(start).Seconds())
	tlog.Infof("transformation completed: train=%dx%d test=%dx%d",
		len(trainX), summary.Columns-1, len(testX), summary.Columns-1)

	if len(trainX) > 0 {
		summary.TransformedCols = len(trainX[0])
	}

	return summary, nil
}

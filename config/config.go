// Package config holds the run configuration: input location, artifact
// paths, and the split parameters. Values come from defaults, an optional
// TOML file, and command-line flags, in that order of precedence.
package config

import (
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Config is the only persisted config file schema.
type Config struct {
	InputPath    string  `toml:"input_path" validate:"required"`
	ArtifactsDir string  `toml:"artifacts_dir" validate:"required"`
	RawFile      string  `toml:"raw_file" validate:"required"`
	TrainFile    string  `toml:"train_file" validate:"required"`
	TestFile     string  `toml:"test_file" validate:"required"`
	TestSize     float64 `toml:"test_size" validate:"gt=0,lt=1"`
	Seed         int64   `toml:"seed"`
	LogsDir      string  `toml:"logs_dir" validate:"required"`
	Source       string  `toml:"-"`
}

// Default returns the configuration matching a bare run with no config file:
// artifacts under ./artifacts, logs under ./logs, an 80/20 split with a
// fixed seed.
func Default() Config {
	return Config{
		ArtifactsDir: "artifacts",
		RawFile:      "data.csv",
		TrainFile:    "train.csv",
		TestFile:     "test.csv",
		TestSize:     0.2,
		Seed:         42,
		LogsDir:      "logs",
	}
}

// Load reads a TOML config file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	cfg.Source = path

	content, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(content, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the assembled configuration after all overrides applied.
func (c Config) Validate() error {
	return validator.New().Struct(c)
}

// RawPath returns the destination of the raw dataset copy.
func (c Config) RawPath() string {
	return filepath.Join(c.ArtifactsDir, c.RawFile)
}

// TrainPath returns the destination of the train split.
func (c Config) TrainPath() string {
	return filepath.Join(c.ArtifactsDir, c.TrainFile)
}

// TestPath returns the destination of the test split.
func (c Config) TestPath() string {
	return filepath.Join(c.ArtifactsDir, c.TestFile)
}

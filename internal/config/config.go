// Package config loads training run configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/gradeng/internal/nn"
)

// Config describes one training run.
type Config struct {
	Seed    int64         `yaml:"seed"`
	Dataset DatasetConfig `yaml:"dataset"`
	Model   ModelConfig   `yaml:"model"`
	Train   TrainConfig   `yaml:"train"`
	Log     LogConfig     `yaml:"log"`
}

// DatasetConfig selects the training data.
type DatasetConfig struct {
	Name    string  `yaml:"name"`     // moons, xor, circles
	Path    string  `yaml:"path"`     // CSV file; overrides Name when set
	Samples int     `yaml:"samples"`  // Synthetic sample count
	MaxRows int     `yaml:"max_rows"` // CSV row limit, 0 = all rows
	Noise   float64 `yaml:"noise"`
}

// ModelConfig describes the MLP.
type ModelConfig struct {
	Hidden     []int  `yaml:"hidden"`
	Activation string `yaml:"activation"`
}

// TrainConfig holds optimisation settings.
type TrainConfig struct {
	Epochs    int     `yaml:"epochs"`
	BatchSize int     `yaml:"batch_size"` // 0 = full batch
	Loss      string  `yaml:"loss"`       // hinge or mse
	L2        float64 `yaml:"l2"`
	Optimizer string  `yaml:"optimizer"` // sgd or adam
	LR        float64 `yaml:"lr"`
	Momentum  float64 `yaml:"momentum"`
	LRDecay   bool    `yaml:"lr_decay"` // Linear decay to 10% of LR
}

// LogConfig controls progress output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	Every int    `yaml:"every"` // Log every N epochs
}

// Default returns the configuration of the classic two-moons demo.
func Default() Config {
	return Config{
		Seed: 1337,
		Dataset: DatasetConfig{
			Name:    "moons",
			Samples: 100,
			Noise:   0.1,
		},
		Model: ModelConfig{
			Hidden:     []int{16, 16},
			Activation: "relu",
		},
		Train: TrainConfig{
			Epochs:    100,
			Loss:      "hinge",
			L2:        1e-4,
			Optimizer: "sgd",
			LR:        1.0,
			LRDecay:   true,
		},
		Log: LogConfig{
			Level: "info",
			Every: 10,
		},
	}
}

// Load reads a YAML file on top of Default and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Dataset.Path == "" {
		switch c.Dataset.Name {
		case "moons", "xor", "circles":
		default:
			return fmt.Errorf("config: unknown dataset %q", c.Dataset.Name)
		}
		if c.Dataset.Samples <= 0 {
			return errors.New("config: dataset.samples must be positive")
		}
	}
	if c.Dataset.MaxRows < 0 {
		return errors.New("config: dataset.max_rows must not be negative")
	}
	if c.Dataset.Noise < 0 {
		return errors.New("config: dataset.noise must not be negative")
	}
	for _, h := range c.Model.Hidden {
		if h <= 0 {
			return fmt.Errorf("config: hidden layer size %d must be positive", h)
		}
	}
	if _, err := nn.ParseActivation(c.Model.Activation); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Train.Epochs <= 0 {
		return errors.New("config: train.epochs must be positive")
	}
	if c.Train.BatchSize < 0 {
		return errors.New("config: train.batch_size must not be negative")
	}
	switch c.Train.Loss {
	case "hinge", "mse":
	default:
		return fmt.Errorf("config: unknown loss %q", c.Train.Loss)
	}
	switch c.Train.Optimizer {
	case "sgd", "adam":
	default:
		return fmt.Errorf("config: unknown optimizer %q", c.Train.Optimizer)
	}
	if c.Train.LR <= 0 {
		return errors.New("config: train.lr must be positive")
	}
	if c.Train.Momentum < 0 || c.Train.Momentum >= 1 {
		return errors.New("config: train.momentum must be in [0, 1)")
	}
	if c.Train.L2 < 0 {
		return errors.New("config: train.l2 must not be negative")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	return nil
}

package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// DefaultConfigFile is looked up relative to the working directory.
const DefaultConfigFile = "config.yaml"

// Config is the complete CLI configuration.
type Config struct {
	Logging    LoggingConfig    `yaml:"logging" envconfig:"LOGGING"`
	Extraction ExtractionConfig `yaml:"extraction" envconfig:"EXTRACTION"`
	Paths      PathsConfig      `yaml:"paths" envconfig:"PATHS"`
}

// LoggingConfig controls the slog bootstrap.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// ExtractionConfig tunes the feature pipeline.
type ExtractionConfig struct {
	RecencyWindowDays int `yaml:"recency_window_days" envconfig:"RECENCY_WINDOW_DAYS"`
	MaxConcurrency    int `yaml:"max_concurrency" envconfig:"MAX_CONCURRENCY"`
}

// PathsConfig holds default input/output locations for the CLI.
type PathsConfig struct {
	InputFile string `yaml:"input_file" envconfig:"INPUT_FILE"`
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/extractor.log",
		},
		Extraction: ExtractionConfig{
			RecencyWindowDays: 90,
			MaxConcurrency:    1,
		},
		Paths: PathsConfig{
			OutputDir: "data/features",
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file,
// and CBFX_* environment variables, in that order of precedence.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile == "" {
		configFile = DefaultConfigFile
	}
	if _, err := os.Stat(configFile); err == nil {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := envconfig.Process("CBFX", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}
	if c.Extraction.RecencyWindowDays <= 0 {
		return fmt.Errorf("recency window must be positive, got %d", c.Extraction.RecencyWindowDays)
	}
	if c.Extraction.MaxConcurrency < 1 {
		return fmt.Errorf("max concurrency must be at least 1, got %d", c.Extraction.MaxConcurrency)
	}
	return nil
}

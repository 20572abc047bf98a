package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory when --config is not given.
const DefaultConfigFile = ".numkit.yaml"

// Config holds all numkit configuration.
type Config struct {
	// Directory receiving every results file
	ResultsDir string `yaml:"results_dir"`

	// Result file names per utility
	Results ResultFiles `yaml:"results"`

	Codec    CodecConfig    `yaml:"codec"`
	ArraySum ArraySumConfig `yaml:"arraysum"`
	Watch    WatchConfig    `yaml:"watch"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// ResultFiles names the report file written by each command.
type ResultFiles struct {
	Statistics string `yaml:"statistics"`
	Conversion string `yaml:"conversion"`
	WordCount  string `yaml:"word_count"`
	Sales      string `yaml:"sales"`
}

// CodecConfig configures the two's complement converter.
type CodecConfig struct {
	BitWidth int `yaml:"bit_width"`
	Workers  int `yaml:"workers"` // parallel conversions; <= 1 means sequential
}

// ArraySumConfig configures the parallel array sum demo.
type ArraySumConfig struct {
	Preview int `yaml:"preview"` // elements printed per array
}

// WatchConfig configures --watch reruns.
type WatchConfig struct {
	Debounce string `yaml:"debounce"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		ResultsDir: "results",
		Results: ResultFiles{
			Statistics: "StatisticsResults.txt",
			Conversion: "ConvertionResults.txt",
			WordCount:  "WordCountResults.txt",
			Sales:      "SalesResults.txt",
		},
		Codec: CodecConfig{
			BitWidth: 32,
			Workers:  1,
		},
		ArraySum: ArraySumConfig{
			Preview: 10,
		},
		Watch: WatchConfig{
			Debounce: "200ms",
		},
		Logging: LoggingConfig{
			Level:  "error",
			Format: "console",
		},
	}
}

// Load reads configuration from path on top of the defaults.
// A missing file is not an error; environment overrides are always applied.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv("NUMKIT_RESULTS_DIR"); dir != "" {
		c.ResultsDir = dir
	}
	if bits := os.Getenv("NUMKIT_BIT_WIDTH"); bits != "" {
		if n, err := strconv.Atoi(bits); err == nil {
			c.Codec.BitWidth = n
		}
	}
	if level := os.Getenv("NUMKIT_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// Validate checks the configuration for values no command can run with.
func (c *Config) Validate() error {
	if c.Codec.BitWidth <= 0 {
		return fmt.Errorf("codec.bit_width must be positive, got %d", c.Codec.BitWidth)
	}
	if c.ArraySum.Preview < 0 {
		return fmt.Errorf("arraysum.preview must not be negative, got %d", c.ArraySum.Preview)
	}
	if _, err := c.GetWatchDebounce(); err != nil {
		return err
	}
	return nil
}

// ResultPath joins the results directory with a result file name.
func (c *Config) ResultPath(name string) string {
	return filepath.Join(c.ResultsDir, name)
}

package contract

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/Sudarshanganwani9/Data-analytics-assignment/schema"
)

// Default values for configuration.
const (
	DefaultPrecision = 4
	MinPrecision     = 1
	MaxPrecision     = 6
)

// DefaultWorkers is the default number of concurrent chart workers.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for one run.
// This struct remains the "final, validated" config.
type Config struct {
	InputFile  string
	OutputFile string // Report destination

	Format     schema.OutputMode // Metrics dump format
	ExportFile string            // Metrics dump destination; empty means stdout

	IVTThreshold float64
	Precision    int
	Workers      int
	Width        int // Terminal width override (0 = auto-detect)

	WithSummary bool // Append observation lines after the metrics table
	Quiet       bool
	UseEmojis   bool // Enable emojis in progress output
	UseColors   bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	Input        string  `mapstructure:"input"`
	Output       string  `mapstructure:"output"`
	Format       string  `mapstructure:"format"`
	ExportFile   string  `mapstructure:"export-file"`
	IVTThreshold float64 `mapstructure:"ivt-threshold"`
	Precision    int     `mapstructure:"precision"`
	Workers      int     `mapstructure:"workers"`
	Width        int     `mapstructure:"width"`
	Summary      bool    `mapstructure:"summary"`
	Quiet        bool    `mapstructure:"quiet"`
	Emoji        string  `mapstructure:"emoji"`
	Color        string  `mapstructure:"color"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processFilePaths(cfg, input); err != nil {
		return err
	}
	if err := processThreshold(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.ExportFile = input.ExportFile
	cfg.WithSummary = input.Summary
	cfg.Quiet = input.Quiet

	// Parse emoji flag
	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Precision Validation ---
	if input.Precision < MinPrecision || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between %d and %d (received %d)", MinPrecision, MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	// --- 2. Workers Validation ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 3. Width Validation ---
	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	// --- 4. Format Validation ---
	cfg.Format = schema.OutputMode(strings.ToLower(input.Format))
	if _, ok := schema.ValidOutputModes[cfg.Format]; !ok {
		return fmt.Errorf("invalid format '%s'. must be text, csv, json, parquet", input.Format)
	}

	return nil
}

// processFilePaths validates the input and output paths.
func processFilePaths(cfg *Config, input *ConfigRawInput) error {
	cfg.InputFile = strings.TrimSpace(input.Input)
	cfg.OutputFile = strings.TrimSpace(input.Output)

	if cfg.InputFile == "" {
		return fmt.Errorf("input path cannot be empty")
	}
	if cfg.OutputFile == "" {
		return fmt.Errorf("output path cannot be empty")
	}
	if filepath.Clean(cfg.InputFile) == filepath.Clean(cfg.OutputFile) {
		return fmt.Errorf("output path must differ from input path (%s)", cfg.InputFile)
	}

	return nil
}

// processThreshold validates the IVT threshold range.
func processThreshold(cfg *Config, input *ConfigRawInput) error {
	if input.IVTThreshold <= 0 || input.IVTThreshold > 1 {
		return fmt.Errorf("ivt-threshold must be in (0, 1] (received %g)", input.IVTThreshold)
	}
	cfg.IVTThreshold = input.IVTThreshold
	return nil
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/Sudarshanganwani9/Data-analytics-assignment/core"
	"github.com/Sudarshanganwani9/Data-analytics-assignment/internal/contract"
	"github.com/Sudarshanganwani9/Data-analytics-assignment/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// rootCmd runs the full PDF-to-report conversion. The conversion is the main
// job of the tool, so it lives on the root command rather than a subcommand.
var rootCmd = &cobra.Command{
	Use:   "ivtreport",
	Short: "Convert an ad-traffic PDF into a per-app IVT chart report.",
	Long: `ivtreport reads a fixed-layout traffic report PDF, scrapes the daily
ad-traffic and IVT percentages for every app section, and renders a new PDF
with one IVT chart per app, a combined trend chart, and a text summary.

The conversion is one shot: extract the text layer, parse the daily tables,
render the charts, write the report. Malformed rows are skipped; the run only
fails when no app section can be recognized at all.

Examples:
  # Convert the default input into the default report
  ivtreport

  # Convert a specific file
  ivtreport -i "September Traffic.pdf" -o september_report.pdf

  # Inspect what the parser extracted
  ivtreport metrics -i "September Traffic.pdf" --format json

  # Fail CI when any day crosses a stricter threshold
  ivtreport check -i "September Traffic.pdf" --ivt-threshold 0.3`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Args:               cobra.NoArgs,
	PreRunE:            sharedSetup,
	Run:                runExecutor(core.ExecuteReport, "Cannot build report"),
}

// runExecutor adapts one of core's entry points into a cobra Run function.
// Pipeline failures are fatal; the message names the failing command.
func runExecutor(executeFunc core.ExecutorFunc, failMsg string) func(*cobra.Command, []string) {
	return func(_ *cobra.Command, _ []string) {
		if err := executeFunc(cfg); err != nil {
			contract.LogFatal(failMsg, err)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		// Set config file name and paths
		viper.SetConfigName(".ivtreport") // Name of config file (without extension)
		viper.SetConfigType("yaml")       // We'll use YAML format
		viper.AddConfigPath(".")          // Look in the current directory
		viper.AddConfigPath("$HOME")      // Look in the home directory
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("IVTREPORT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("input", schema.DefaultInputFile)
	viper.SetDefault("output", schema.DefaultOutputFile)
	viper.SetDefault("format", schema.TextOut)
	viper.SetDefault("export-file", "")
	viper.SetDefault("ivt-threshold", schema.DefaultIVTThreshold)
	viper.SetDefault("precision", contract.DefaultPrecision)
	viper.SetDefault("workers", contract.DefaultWorkers)
	viper.SetDefault("emoji", "yes")
	viper.SetDefault("color", "yes")
}

// sharedSetup unmarshals config and runs validation. Every command that needs
// a validated Config uses it as PreRunE.
func sharedSetup(_ *cobra.Command, _ []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Run all validation and complex parsing.
	// This function populates the global 'cfg' from 'input'.
	return contract.ProcessAndValidate(cfg, input)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

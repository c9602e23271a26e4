// Package cmd defines the command-line interface for ivtreport.
package cmd

import (
	"github.com/Sudarshanganwani9/Data-analytics-assignment/internal/contract"
	"github.com/Sudarshanganwani9/Data-analytics-assignment/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add subcommands to the root command
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(textCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("input", "i", schema.DefaultInputFile, "Path to the source traffic PDF")
	rootCmd.PersistentFlags().StringP("output", "o", schema.DefaultOutputFile, "Path for the rendered report PDF")
	rootCmd.PersistentFlags().String("export-file", "", "Optional path to write metrics or text output to")
	rootCmd.PersistentFlags().Float64("ivt-threshold", schema.DefaultIVTThreshold, "IVT share above which a day counts as high invalid traffic")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent chart workers")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress progress output")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emojis in progress output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of metricsCmd to Viper
	metricsCmd.Flags().String("format", string(schema.TextOut), "Output format: text or csv or json or parquet")
	metricsCmd.Flags().Bool("summary", false, "Append the observation summary after the parsed rows")
	if err := viper.BindPFlags(metricsCmd.Flags()); err != nil {
		contract.LogFatal("Error binding metrics flags", err)
	}
}

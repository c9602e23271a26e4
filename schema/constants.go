package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the metrics output.
	OutputMode string

	// Severity represents the label bucket for an IVT value.
	Severity string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All severity labels supported.
const (
	CriticalSeverity Severity = "Critical"
	HighSeverity     Severity = "High"
	ModerateSeverity Severity = "Moderate"
	LowSeverity      Severity = "Low"
)

// Default file paths for the one-shot conversion.
const (
	DefaultInputFile  = "Data Analytics Assignment.pdf"
	DefaultOutputFile = "Data_Analytics_Report.pdf"
)

// DefaultIVTThreshold is the ratio above which a day counts as high invalid
// traffic. The comparison is strictly greater than the threshold.
const DefaultIVTThreshold = 0.5

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

package schema

// CheckResult holds the outcome of gating parsed rows against the IVT threshold.
type CheckResult struct {
	Passed     bool
	Threshold  float64
	TotalRows  int
	TotalApps  int
	Violations []CheckViolation
	MaxIVT     float64 // Largest IVT seen across all rows
	MaxIVTApp  string  // App holding the largest IVT
}

// CheckViolation represents one day that exceeded the threshold.
type CheckViolation struct {
	App      string
	Day      int
	DayLabel string
	IVT      float64
}

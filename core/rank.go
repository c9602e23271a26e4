package core

import (
	"sort"

	"github.com/Sudarshanganwani9/Data-analytics-assignment/schema"
)

// RankViolations sorts threshold violations by IVT share in descending order
// and returns the top 'limit' entries. If limit is greater than the number
// of violations, all of them are returned in sorted order.
func RankViolations(violations []schema.CheckViolation, limit int) []schema.CheckViolation {
	sort.SliceStable(violations, func(i, j int) bool {
		return violations[i].IVT > violations[j].IVT
	})
	if len(violations) > limit {
		return violations[:limit]
	}
	return violations
}

// RankAppSummaries sorts app summaries by their worst day, worst first.
// Ties keep first-seen order so repeated runs stay stable.
func RankAppSummaries(apps []schema.AppSummary) []schema.AppSummary {
	ranked := make([]schema.AppSummary, len(apps))
	copy(ranked, apps)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MaxIVT > ranked[j].MaxIVT
	})
	return ranked
}

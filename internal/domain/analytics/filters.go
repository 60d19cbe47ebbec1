package analytics

import (
	"strings"

	"workpulse/internal/domain/directory"
)

// FilterAll is the sentinel value that disables a filter dimension.
const FilterAll = "all"

const (
	PerformanceHigh   = "high"   // score >= 85
	PerformanceMedium = "medium" // 70 <= score < 85
	PerformanceLow    = "low"    // score < 70
)

type EmployeeFilter struct {
	Search      string
	Department  string
	Performance string
}

// FilterEmployees applies the search, department, and performance-band
// filters with AND semantics, preserving input order. Search matches
// case-insensitively against name or position; empty or "all" values
// disable their dimension.
func FilterEmployees(employees []directory.Employee, filter EmployeeFilter) []directory.Employee {
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]directory.Employee, 0, len(employees))
	for _, emp := range employees {
		if search != "" &&
			!strings.Contains(strings.ToLower(emp.Name), search) &&
			!strings.Contains(strings.ToLower(emp.Position), search) {
			continue
		}
		if !dimensionDisabled(filter.Department) && emp.Department != filter.Department {
			continue
		}
		if !matchesPerformance(emp.PerformanceScore, filter.Performance) {
			continue
		}
		out = append(out, emp)
	}
	return out
}

func dimensionDisabled(value string) bool {
	return value == "" || value == FilterAll
}

func matchesPerformance(score float64, bandKey string) bool {
	if dimensionDisabled(bandKey) {
		return true
	}
	switch bandKey {
	case PerformanceHigh:
		return score >= 85
	case PerformanceMedium:
		return score >= 70 && score < 85
	case PerformanceLow:
		return score < 70
	default:
		return true
	}
}

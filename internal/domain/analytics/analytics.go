// Package analytics derives view-ready aggregates from the fixture
// collections. Every function is pure: no errors, no side effects, and
// empty inputs short-circuit to zero values instead of propagating NaN.
package analytics

import (
	"math"
	"sort"

	"workpulse/internal/domain/directory"
)

// AveragePerformance returns the arithmetic mean of performanceScore,
// or 0 for an empty list.
func AveragePerformance(employees []directory.Employee) float64 {
	if len(employees) == 0 {
		return 0
	}
	sum := 0.0
	for _, emp := range employees {
		sum += emp.PerformanceScore
	}
	return sum / float64(len(employees))
}

type BucketCount struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

type band struct {
	label string
	min   float64
	max   float64 // exclusive; NaN-free sentinel of +Inf for the top band
}

// Bands match the HR dashboard distribution chart. Boundaries are
// half-open: a score of exactly 90 lands in the 90-100% band.
var performanceBands = []band{
	{"90-100%", 90, math.Inf(1)},
	{"80-89%", 80, 90},
	{"70-79%", 70, 80},
	{"60-69%", 60, 70},
	{"<60%", math.Inf(-1), 60},
}

// BucketByPerformance partitions employees into the fixed performance
// bands. Each employee lands in exactly one bucket.
func BucketByPerformance(employees []directory.Employee) []BucketCount {
	out := make([]BucketCount, len(performanceBands))
	for i, b := range performanceBands {
		out[i] = BucketCount{Range: b.label}
	}
	for _, emp := range employees {
		for i, b := range performanceBands {
			if emp.PerformanceScore >= b.min && emp.PerformanceScore < b.max {
				out[i].Count++
				break
			}
		}
	}
	return out
}

type DepartmentStats struct {
	Name           string  `json:"name"`
	Count          int     `json:"count"`
	AvgPerformance float64 `json:"avgPerformance"`
}

// GroupByDepartment aggregates headcount and average performance per
// department in a single pass. Output order is first-seen fixture order.
func GroupByDepartment(employees []directory.Employee) []DepartmentStats {
	type acc struct {
		count int
		total float64
	}
	order := make([]string, 0, 8)
	sums := map[string]*acc{}
	for _, emp := range employees {
		a, ok := sums[emp.Department]
		if !ok {
			a = &acc{}
			sums[emp.Department] = a
			order = append(order, emp.Department)
		}
		a.count++
		a.total += emp.PerformanceScore
	}
	out := make([]DepartmentStats, 0, len(order))
	for _, dept := range order {
		a := sums[dept]
		out = append(out, DepartmentStats{
			Name:           dept,
			Count:          a.count,
			AvgPerformance: a.total / float64(a.count),
		})
	}
	return out
}

// WorkloadPercentage expresses one member's task count against the team's
// even-share baseline, capped at 100. The max(...,1) guard keeps the
// result defined when the team has no tasks at all.
func WorkloadPercentage(memberTaskCount, teamTotalTasks, teamSize int) float64 {
	if teamSize <= 0 {
		return 0
	}
	share := float64(teamTotalTasks) / float64(teamSize)
	if share < 1 {
		share = 1
	}
	pct := float64(memberTaskCount) / share * 100
	if pct > 100 {
		return 100
	}
	return pct
}

type TeamStats struct {
	AveragePerformance float64 `json:"averagePerformance"`
	TotalTasks         int     `json:"totalTasks"`
	CompletedTasks     int     `json:"completedTasks"`
	ActiveMembers      int     `json:"activeMembers"`
}

// TeamMetrics rolls up a manager's direct reports and their tasks.
// ActiveMembers counts members currently checked in.
func TeamMetrics(members []directory.Employee, teamTasks []directory.Task) TeamStats {
	stats := TeamStats{
		AveragePerformance: AveragePerformance(members),
		TotalTasks:         len(teamTasks),
	}
	for _, task := range teamTasks {
		if task.Status == directory.TaskCompleted {
			stats.CompletedTasks++
		}
	}
	for _, member := range members {
		if member.IsCheckedIn {
			stats.ActiveMembers++
		}
	}
	return stats
}

// TopPerformers returns up to n employees ordered by performance score,
// highest first. Ties keep fixture order.
func TopPerformers(employees []directory.Employee, n int) []directory.Employee {
	out := make([]directory.Employee, len(employees))
	copy(out, employees)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PerformanceScore > out[j].PerformanceScore
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

package analytics

import (
	"testing"

	"workpulse/internal/domain/directory"
)

var filterFixture = []directory.Employee{
	{ID: "1", Name: "John Smith", Position: "Senior Developer", Department: "Engineering", PerformanceScore: 87},
	{ID: "2", Name: "Emily Chen", Position: "UX Designer", Department: "Design", PerformanceScore: 91},
	{ID: "3", Name: "Tom Wilson", Position: "Sales Rep", Department: "Sales", PerformanceScore: 58},
	{ID: "4", Name: "Jane Developer", Position: "Marketing Manager", Department: "Marketing", PerformanceScore: 74},
}

func ids(employees []directory.Employee) []string {
	out := make([]string, len(employees))
	for i, emp := range employees {
		out[i] = emp.ID
	}
	return out
}

func TestFilterEmployeesSearchNameOrPosition(t *testing.T) {
	// "developer" matches John by position and Jane by name,
	// case-insensitively.
	got := FilterEmployees(filterFixture, EmployeeFilter{Search: "DEVELOPER"})
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "4" {
		t.Fatalf("expected [1 4], got %v", ids(got))
	}
}

func TestFilterEmployeesAllSentinelDisables(t *testing.T) {
	got := FilterEmployees(filterFixture, EmployeeFilter{Department: FilterAll, Performance: FilterAll})
	if len(got) != len(filterFixture) {
		t.Fatalf("expected all %d employees, got %d", len(filterFixture), len(got))
	}
}

func TestFilterEmployeesPerformanceBands(t *testing.T) {
	tests := []struct {
		band string
		want []string
	}{
		{PerformanceHigh, []string{"1", "2"}},
		{PerformanceMedium, []string{"4"}},
		{PerformanceLow, []string{"3"}},
	}
	for _, tc := range tests {
		got := ids(FilterEmployees(filterFixture, EmployeeFilter{Performance: tc.band}))
		if len(got) != len(tc.want) {
			t.Errorf("band %s: expected %v, got %v", tc.band, tc.want, got)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("band %s: expected %v, got %v", tc.band, tc.want, got)
				break
			}
		}
	}
}

func TestFilterEmployeesCombinesWithAnd(t *testing.T) {
	got := FilterEmployees(filterFixture, EmployeeFilter{
		Search:      "developer",
		Department:  "Engineering",
		Performance: PerformanceHigh,
	})
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("expected only employee 1, got %v", ids(got))
	}
}

func TestFilterEmployeesNoMatches(t *testing.T) {
	got := FilterEmployees(filterFixture, EmployeeFilter{Search: "nobody"})
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", ids(got))
	}
}

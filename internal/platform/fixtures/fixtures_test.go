package fixtures

import (
	"testing"

	"workpulse/internal/domain/directory"
)

func TestLoadEmbeddedDataset(t *testing.T) {
	store, err := Load("")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if got := len(store.Employees()); got != 20 {
		t.Fatalf("expected 20 employees, got %d", got)
	}
	if got := len(store.Tasks()); got != 23 {
		t.Fatalf("expected 23 tasks, got %d", got)
	}
	if got := len(store.Projects()); got != 7 {
		t.Fatalf("expected 7 projects, got %d", got)
	}

	emp, ok := store.EmployeeByID("1")
	if !ok || emp.Name != "John Smith" || emp.Department != "Engineering" {
		t.Fatalf("employee 1 lookup wrong: %+v", emp)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/does/not/exist.json"); err == nil {
		t.Fatal("expected error for missing fixtures file")
	}
}

func TestTeamRelationships(t *testing.T) {
	store, err := Load("")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	team := store.TeamOf("2")
	want := []string{"1", "8", "9", "10"}
	if len(team) != len(want) {
		t.Fatalf("expected team of %d, got %d", len(want), len(team))
	}
	for i, member := range team {
		if member.ID != want[i] {
			t.Errorf("team position %d: expected %s, got %s", i, want[i], member.ID)
		}
		if member.Department != "Engineering" {
			t.Errorf("member %s: expected Engineering, got %s", member.ID, member.Department)
		}
	}
}

func TestDisplayNameFallsBackToUnassigned(t *testing.T) {
	store, err := Load("")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got := store.DisplayName("999"); got != directory.UnassignedName {
		t.Fatalf("expected %q, got %q", directory.UnassignedName, got)
	}
	if got := store.DisplayName(""); got != directory.UnassignedName {
		t.Fatalf("expected %q for empty id, got %q", directory.UnassignedName, got)
	}
}

func TestScoreFromComponents(t *testing.T) {
	emp := directory.Employee{
		Productivity:   87,
		Attendance:     95,
		TaskCompletion: 92,
		SkillLevel:     85,
		Engagement:     78,
	}
	if got := ScoreFromComponents(emp); got != 87.4 {
		t.Fatalf("expected 87.4, got %v", got)
	}
}

func TestFixtureScoresMatchComponents(t *testing.T) {
	store, err := Load("")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	emp, _ := store.EmployeeByID("1")
	if emp.PerformanceScore != ScoreFromComponents(emp) {
		t.Fatalf("employee 1 score %v disagrees with components %v", emp.PerformanceScore, ScoreFromComponents(emp))
	}
}

package analytics

import (
	"testing"
	"time"

	"workpulse/internal/domain/directory"
)

func TestTaskStatusCounts(t *testing.T) {
	tasks := []directory.Task{
		{Status: directory.TaskCompleted},
		{Status: directory.TaskCompleted},
		{Status: directory.TaskInProgress},
		{Status: directory.TaskPending},
		{Status: directory.TaskOverdue},
	}
	counts := TaskStatusCounts(tasks)
	if counts.Completed != 2 || counts.InProgress != 1 || counts.Pending != 1 || counts.Overdue != 1 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
}

func TestDaysUntilDue(t *testing.T) {
	now := time.Date(2024, 11, 28, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		due  string
		want int
	}{
		{"2024-12-01", 3},
		{"2024-11-28", 0},
		{"2024-11-25", -3},
		{"not-a-date", 0},
	}
	for _, tc := range tests {
		if got := DaysUntilDue(tc.due, now); got != tc.want {
			t.Errorf("due %s: expected %d, got %d", tc.due, tc.want, got)
		}
	}
}

func TestUpcomingDeadlinesExcludesCompletedAndSorts(t *testing.T) {
	tasks := []directory.Task{
		{ID: "late", Status: directory.TaskOverdue, DueDate: "2024-11-20"},
		{ID: "done", Status: directory.TaskCompleted, DueDate: "2024-11-01"},
		{ID: "soon", Status: directory.TaskPending, DueDate: "2024-12-01"},
		{ID: "later", Status: directory.TaskInProgress, DueDate: "2024-12-15"},
	}
	got := UpcomingDeadlines(tasks, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 deadlines, got %d", len(got))
	}
	if got[0].ID != "late" || got[1].ID != "soon" {
		t.Fatalf("expected late then soon, got %s, %s", got[0].ID, got[1].ID)
	}
}

func TestProjectsForMember(t *testing.T) {
	projects := []directory.Project{
		{ID: "p1", ManagerID: "2", TeamMembers: []string{"1", "8"}},
		{ID: "p2", ManagerID: "4", TeamMembers: []string{"3"}},
		{ID: "p3", ManagerID: "1", TeamMembers: []string{"8"}},
	}
	got := ProjectsForMember(projects, "1")
	if len(got) != 2 || got[0].ID != "p1" || got[1].ID != "p3" {
		t.Fatalf("expected p1 and p3 for member 1, got %v", got)
	}
}

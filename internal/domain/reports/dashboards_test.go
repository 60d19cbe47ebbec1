package reports

import (
	"bytes"
	"testing"
	"time"

	"workpulse/internal/domain/attendance"
	"workpulse/internal/domain/auth"
	"workpulse/internal/domain/directory"
)

func testStore() *directory.Store {
	return directory.NewStore(directory.FixtureSet{
		Employees: []directory.Employee{
			{ID: "2", Name: "Sarah Johnson", Role: auth.RoleManager, Department: "Engineering", Position: "Engineering Manager", PerformanceScore: 88.6},
			{ID: "1", Name: "John Smith", Role: auth.RoleEmployee, Department: "Engineering", ManagerID: "2", PerformanceScore: 87.4, IsCheckedIn: true},
			{ID: "8", Name: "Robert Kim", Role: auth.RoleEmployee, Department: "Engineering", ManagerID: "2", PerformanceScore: 89.8},
			{ID: "5", Name: "Lisa Rodriguez", Role: auth.RoleHR, Department: "Human Resources", Position: "HR Manager", PerformanceScore: 91.0},
		},
		Tasks: []directory.Task{
			{ID: "t1", AssignedTo: "1", AssignedBy: "2", Status: directory.TaskInProgress, DueDate: "2024-12-01"},
			{ID: "t2", AssignedTo: "1", AssignedBy: "2", Status: directory.TaskCompleted, DueDate: "2024-11-20"},
			{ID: "t3", AssignedTo: "8", AssignedBy: "2", Status: directory.TaskPending, DueDate: "2024-12-05"},
			{ID: "t4", AssignedTo: "3", AssignedBy: "4", Status: directory.TaskPending, DueDate: "2024-12-03"},
		},
		Projects: []directory.Project{
			{ID: "p1", ManagerID: "2", Status: directory.ProjectActive},
			{ID: "p2", ManagerID: "2", Status: directory.ProjectCompleted},
			{ID: "p3", ManagerID: "4", Status: directory.ProjectActive},
		},
		HRActions: []directory.HRAction{
			{ID: "a1", Status: "pending"},
			{ID: "a2", Status: "completed"},
			{ID: "a3", Status: "pending"},
		},
		Goals: []directory.Goal{
			{ID: "g1", EmployeeID: "1", Status: "completed", Progress: 100},
			{ID: "g2", EmployeeID: "1", Status: "in-progress", Progress: 50},
		},
	})
}

func testService() *Service {
	store := testStore()
	att := attendance.NewService(store.Employees(), func() time.Time {
		return time.Date(2024, 11, 28, 9, 0, 0, 0, time.UTC)
	})
	return NewService(store, att, func() time.Time {
		return time.Date(2024, 11, 28, 9, 0, 0, 0, time.UTC)
	})
}

func TestEmployeeDashboard(t *testing.T) {
	svc := testService()
	emp, _ := testStore().EmployeeByID("1")

	dash := svc.EmployeeDashboard(emp)
	if dash.ManagerName != "Sarah Johnson" {
		t.Errorf("expected manager name resolved, got %q", dash.ManagerName)
	}
	if len(dash.Tasks) != 2 {
		t.Errorf("expected 2 tasks, got %d", len(dash.Tasks))
	}
	if dash.TaskCounts.Completed != 1 || dash.TaskCounts.InProgress != 1 {
		t.Errorf("unexpected task counts: %+v", dash.TaskCounts)
	}
	if dash.Goals.Total != 2 || dash.Goals.Completed != 1 || dash.Goals.AvgProgress != 75 {
		t.Errorf("unexpected goal summary: %+v", dash.Goals)
	}
}

func TestEmployeeDashboardUnassignedManager(t *testing.T) {
	svc := testService()
	emp, _ := testStore().EmployeeByID("2")

	dash := svc.EmployeeDashboard(emp)
	if dash.ManagerName != directory.UnassignedName {
		t.Fatalf("expected %q for missing manager, got %q", directory.UnassignedName, dash.ManagerName)
	}
}

func TestManagerDashboard(t *testing.T) {
	svc := testService()
	mgr, _ := testStore().EmployeeByID("2")

	dash := svc.ManagerDashboard(mgr)
	if len(dash.TeamMembers) != 2 {
		t.Fatalf("expected team of 2, got %d", len(dash.TeamMembers))
	}
	if dash.TeamStats.TotalTasks != 3 || dash.TeamStats.CompletedTasks != 1 {
		t.Errorf("unexpected team stats: %+v", dash.TeamStats)
	}
	if dash.TeamStats.ActiveMembers != 1 {
		t.Errorf("expected 1 checked-in member, got %d", dash.TeamStats.ActiveMembers)
	}
	if dash.ActiveProjects != 1 {
		t.Errorf("expected 1 active project, got %d", dash.ActiveProjects)
	}
	if len(dash.Deadlines) != 2 {
		t.Fatalf("expected 2 open deadlines, got %d", len(dash.Deadlines))
	}
	if dash.Deadlines[0].Task.ID != "t1" {
		t.Errorf("expected soonest deadline t1 first, got %s", dash.Deadlines[0].Task.ID)
	}
	if dash.Deadlines[0].AssigneeName != "John Smith" {
		t.Errorf("expected assignee name resolved, got %q", dash.Deadlines[0].AssigneeName)
	}
	if dash.Deadlines[0].DaysUntilDue != 3 {
		t.Errorf("expected 3 days until due, got %d", dash.Deadlines[0].DaysUntilDue)
	}
}

func TestHRDashboardExcludesHRStaff(t *testing.T) {
	svc := testService()
	hrUser, _ := testStore().EmployeeByID("5")

	dash := svc.HRDashboard(hrUser)
	if dash.WorkforceSize != 3 {
		t.Fatalf("expected workforce of 3 (HR excluded), got %d", dash.WorkforceSize)
	}
	if dash.PendingActions != 2 {
		t.Errorf("expected 2 pending actions, got %d", dash.PendingActions)
	}
	if dash.HighPerformers != 3 {
		t.Errorf("expected 3 high performers, got %d", dash.HighPerformers)
	}
	for _, top := range dash.TopPerformers {
		if top.Role == auth.RoleHR {
			t.Errorf("top performers must not include HR staff: %s", top.ID)
		}
	}
}

func TestDashboardDispatchUnknownUser(t *testing.T) {
	svc := testService()
	if _, err := svc.Dashboard(auth.UserContext{UserID: "999", Role: auth.RoleEmployee}); err == nil {
		t.Fatal("expected error for unknown employee")
	}
}

func TestPagePayloadCoversRoleTables(t *testing.T) {
	svc := testService()
	users := map[string]auth.UserContext{
		auth.RoleEmployee: {UserID: "1", Role: auth.RoleEmployee},
		auth.RoleManager:  {UserID: "2", Role: auth.RoleManager},
		auth.RoleHR:       {UserID: "5", Role: auth.RoleHR},
	}
	for role, user := range users {
		for _, page := range auth.PagesFor(role) {
			payload, err := svc.PagePayload(user, page.Key)
			if err != nil {
				t.Errorf("role %s page %s: %v", role, page.Key, err)
				continue
			}
			if payload == nil {
				t.Errorf("role %s page %s: nil payload", role, page.Key)
			}
		}
	}
}

func TestWorkforcePDF(t *testing.T) {
	svc := testService()

	var buf bytes.Buffer
	if err := svc.WorkforcePDF(&buf, "5"); err != nil {
		t.Fatalf("pdf render failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatal("output is not a PDF document")
	}

	if err := svc.WorkforcePDF(&buf, "999"); err == nil {
		t.Fatal("expected error for unknown requester")
	}
}

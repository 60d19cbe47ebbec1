// Package reports composes the role dashboards and page payloads from the
// fixture store, derived metrics, and live attendance state.
package reports

import (
	"time"

	"workpulse/internal/domain/analytics"
	"workpulse/internal/domain/attendance"
	"workpulse/internal/domain/auth"
	"workpulse/internal/domain/directory"
)

type Service struct {
	store      *directory.Store
	attendance *attendance.Service
	now        func() time.Time
}

func NewService(store *directory.Store, att *attendance.Service, clock func() time.Time) *Service {
	if clock == nil {
		clock = time.Now
	}
	return &Service{store: store, attendance: att, now: clock}
}

type GoalSummary struct {
	Total       int     `json:"total"`
	Completed   int     `json:"completed"`
	AvgProgress float64 `json:"avgProgress"`
}

type EmployeeDashboard struct {
	Employee      directory.Employee     `json:"employee"`
	ManagerName   string                 `json:"managerName"`
	TaskCounts    analytics.StatusCounts `json:"taskCounts"`
	Tasks         []directory.Task       `json:"tasks"`
	Goals         GoalSummary            `json:"goals"`
	TodayActivity directory.TodayActivity `json:"todayActivity"`
}

type MemberWorkload struct {
	Employee       directory.Employee `json:"employee"`
	TaskCount      int                `json:"taskCount"`
	CompletedTasks int                `json:"completedTasks"`
	WorkloadPct    float64            `json:"workloadPct"`
}

type Deadline struct {
	Task         directory.Task `json:"task"`
	AssigneeName string         `json:"assigneeName"`
	DaysUntilDue int            `json:"daysUntilDue"`
}

type ManagerDashboard struct {
	Manager          directory.Employee     `json:"manager"`
	TeamMembers      []directory.Employee   `json:"teamMembers"`
	TeamStats        analytics.TeamStats    `json:"teamStats"`
	TaskDistribution analytics.StatusCounts `json:"taskDistribution"`
	Workloads        []MemberWorkload       `json:"workloads"`
	Deadlines        []Deadline             `json:"upcomingDeadlines"`
	ActiveProjects   int                    `json:"activeProjects"`
}

type HRDashboard struct {
	HRUser         directory.Employee          `json:"hrUser"`
	WorkforceSize  int                         `json:"workforceSize"`
	AvgPerformance float64                     `json:"avgPerformance"`
	HighPerformers int                         `json:"highPerformers"`
	PendingActions int                         `json:"pendingActions"`
	Departments    []analytics.DepartmentStats `json:"departments"`
	Buckets        []analytics.BucketCount     `json:"performanceBuckets"`
	TopPerformers  []directory.Employee        `json:"topPerformers"`
}

// Dashboard dispatches to the role-specific dashboard. The role enum is
// closed, so the default branch only fires on a forged token.
func (s *Service) Dashboard(user auth.UserContext) (any, error) {
	emp, ok := s.store.EmployeeByID(user.UserID)
	if !ok {
		return nil, ErrUnknownEmployee
	}
	switch emp.Role {
	case auth.RoleEmployee:
		return s.EmployeeDashboard(emp), nil
	case auth.RoleManager:
		return s.ManagerDashboard(emp), nil
	case auth.RoleHR:
		return s.HRDashboard(emp), nil
	default:
		return nil, ErrUnknownEmployee
	}
}

func (s *Service) EmployeeDashboard(emp directory.Employee) EmployeeDashboard {
	emp = s.attendance.Overlay(emp)
	tasks := analytics.TasksForEmployee(s.store.Tasks(), emp.ID)
	goals := s.store.GoalsForEmployee(emp.ID)
	summary := GoalSummary{Total: len(goals)}
	progress := 0.0
	for _, g := range goals {
		progress += g.Progress
		if g.Status == "completed" {
			summary.Completed++
		}
	}
	if len(goals) > 0 {
		summary.AvgProgress = progress / float64(len(goals))
	}
	return EmployeeDashboard{
		Employee:      emp,
		ManagerName:   s.store.DisplayName(emp.ManagerID),
		TaskCounts:    analytics.TaskStatusCounts(tasks),
		Tasks:         tasks,
		Goals:         summary,
		TodayActivity: emp.TodayActivity,
	}
}

func (s *Service) ManagerDashboard(mgr directory.Employee) ManagerDashboard {
	team := s.attendance.OverlayAll(s.store.TeamOf(mgr.ID))
	teamTasks := analytics.TasksAssignedBy(s.store.Tasks(), mgr.ID)

	workloads := make([]MemberWorkload, 0, len(team))
	for _, member := range team {
		memberTasks := analytics.TasksForEmployee(teamTasks, member.ID)
		counts := analytics.TaskStatusCounts(memberTasks)
		workloads = append(workloads, MemberWorkload{
			Employee:       member,
			TaskCount:      len(memberTasks),
			CompletedTasks: counts.Completed,
			WorkloadPct:    analytics.WorkloadPercentage(len(memberTasks), len(teamTasks), len(team)),
		})
	}

	deadlines := make([]Deadline, 0, 5)
	for _, task := range analytics.UpcomingDeadlines(teamTasks, 5) {
		deadlines = append(deadlines, Deadline{
			Task:         task,
			AssigneeName: s.store.DisplayName(task.AssignedTo),
			DaysUntilDue: analytics.DaysUntilDue(task.DueDate, s.now()),
		})
	}

	active := 0
	projects := analytics.ProjectsForManager(s.store.Projects(), mgr.ID)
	for _, p := range projects {
		if p.Status == directory.ProjectActive {
			active++
		}
	}

	return ManagerDashboard{
		Manager:          s.attendance.Overlay(mgr),
		TeamMembers:      team,
		TeamStats:        analytics.TeamMetrics(team, teamTasks),
		TaskDistribution: analytics.TaskStatusCounts(teamTasks),
		Workloads:        workloads,
		Deadlines:        deadlines,
		ActiveProjects:   active,
	}
}

// HRDashboard aggregates the workforce excluding HR staff themselves, as
// the employee management view does.
func (s *Service) HRDashboard(hrUser directory.Employee) HRDashboard {
	workforce := s.workforce()
	pending := 0
	for _, action := range s.store.HRActions() {
		if action.Status == "pending" {
			pending++
		}
	}
	high := 0
	for _, emp := range workforce {
		if emp.PerformanceScore >= 85 {
			high++
		}
	}
	return HRDashboard{
		HRUser:         s.attendance.Overlay(hrUser),
		WorkforceSize:  len(workforce),
		AvgPerformance: analytics.AveragePerformance(workforce),
		HighPerformers: high,
		PendingActions: pending,
		Departments:    analytics.GroupByDepartment(workforce),
		Buckets:        analytics.BucketByPerformance(workforce),
		TopPerformers:  analytics.TopPerformers(workforce, 5),
	}
}

func (s *Service) workforce() []directory.Employee {
	var out []directory.Employee
	for _, emp := range s.store.Employees() {
		if emp.Role != auth.RoleHR {
			out = append(out, emp)
		}
	}
	return s.attendance.OverlayAll(out)
}

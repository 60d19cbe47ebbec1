package reports

import (
	"errors"

	"workpulse/internal/domain/analytics"
	"workpulse/internal/domain/auth"
	"workpulse/internal/domain/directory"
)

var ErrUnknownEmployee = errors.New("reports: unknown employee")

// PagePayload builds the data bundle for an authorized page key. Callers
// are expected to have resolved authorization first; asking for a page the
// role cannot see is a programming error and yields ErrPageNotComposable.
var ErrPageNotComposable = errors.New("reports: no payload for page")

type ProfilePage struct {
	Employee    directory.Employee `json:"employee"`
	ManagerName string             `json:"managerName"`
	Goals       []directory.Goal   `json:"goals"`
}

type AnalyticsPage struct {
	PerformanceHistory []PerformancePointView        `json:"performanceHistory"`
	WeeklyActivity     []directory.WeeklyActivity    `json:"weeklyActivity"`
	Skills             []directory.SkillStat         `json:"skills"`
	Heatmap            []directory.HeatmapRow        `json:"productivityHeatmap"`
	Collaboration      []directory.CollaborationStat `json:"collaboration"`
	Departments        []analytics.DepartmentStats   `json:"departments"`
	Buckets            []analytics.BucketCount       `json:"performanceBuckets"`
}

// PerformancePointView is the history series row as charts consume it.
type PerformancePointView = directory.PerformancePoint

type TimesheetPage struct {
	Status         any                        `json:"status"`
	TodayActivity  directory.TodayActivity    `json:"todayActivity"`
	WeeklyActivity []directory.WeeklyActivity `json:"weeklyActivity"`
}

type AttendancePage struct {
	Team    []directory.Employee      `json:"team"`
	Pattern []directory.AttendanceDay `json:"pattern"`
}

type EmployeesPage struct {
	Employees   []directory.Employee        `json:"employees"`
	Departments []analytics.DepartmentStats `json:"departments"`
	Actions     []directory.HRAction        `json:"hrActions"`
}

func (s *Service) PagePayload(user auth.UserContext, key string) (any, error) {
	emp, ok := s.store.EmployeeByID(user.UserID)
	if !ok {
		return nil, ErrUnknownEmployee
	}

	switch key {
	case auth.PageDashboard:
		return s.Dashboard(user)

	case auth.PageProfile:
		return ProfilePage{
			Employee:    s.attendance.Overlay(emp),
			ManagerName: s.store.DisplayName(emp.ManagerID),
			Goals:       s.store.GoalsForEmployee(emp.ID),
		}, nil

	case auth.PageAnalytics:
		workforce := s.workforce()
		return AnalyticsPage{
			PerformanceHistory: s.store.PerformanceHistory(),
			WeeklyActivity:     s.store.WeeklyActivity(),
			Skills:             s.store.Skills(),
			Heatmap:            s.store.ProductivityHeatmap(),
			Collaboration:      s.store.Collaboration(),
			Departments:        analytics.GroupByDepartment(workforce),
			Buckets:            analytics.BucketByPerformance(workforce),
		}, nil

	case auth.PageTasks:
		tasks := analytics.TasksForEmployee(s.store.Tasks(), emp.ID)
		return map[string]any{
			"tasks":      tasks,
			"taskCounts": analytics.TaskStatusCounts(tasks),
		}, nil

	case auth.PageGoals:
		return map[string]any{"goals": s.store.GoalsForEmployee(emp.ID)}, nil

	case auth.PageTimesheet:
		status, _ := s.attendance.Status(emp.ID)
		return TimesheetPage{
			Status:         status,
			TodayActivity:  emp.TodayActivity,
			WeeklyActivity: s.store.WeeklyActivity(),
		}, nil

	case auth.PageTeam:
		return s.ManagerDashboard(emp), nil

	case auth.PageProjects:
		projects := s.store.Projects()
		if emp.Role == auth.RoleManager {
			projects = analytics.ProjectsForManager(projects, emp.ID)
		}
		return map[string]any{"projects": projects}, nil

	case auth.PagePerformance:
		if emp.Role == auth.RoleManager {
			team := s.attendance.OverlayAll(s.store.TeamOf(emp.ID))
			return map[string]any{
				"teamStats":     analytics.TeamMetrics(team, analytics.TasksAssignedBy(s.store.Tasks(), emp.ID)),
				"topPerformers": analytics.TopPerformers(team, 3),
			}, nil
		}
		workforce := s.workforce()
		return map[string]any{
			"departments":        analytics.GroupByDepartment(workforce),
			"performanceBuckets": analytics.BucketByPerformance(workforce),
			"avgPerformance":     analytics.AveragePerformance(workforce),
		}, nil

	case auth.PageAttendance:
		return AttendancePage{
			Team:    s.attendance.OverlayAll(s.store.TeamOf(emp.ID)),
			Pattern: s.store.AttendancePattern(),
		}, nil

	case auth.PageEmployees:
		workforce := s.workforce()
		return EmployeesPage{
			Employees:   workforce,
			Departments: analytics.GroupByDepartment(workforce),
			Actions:     s.store.HRActions(),
		}, nil

	case auth.PageReports:
		return s.HRDashboard(emp), nil

	case auth.PageSettings:
		// Static placeholder, as in the source dashboard.
		return map[string]any{"message": "HR settings are not configurable in this build."}, nil
	}

	return nil, ErrPageNotComposable
}

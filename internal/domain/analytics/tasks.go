package analytics

import (
	"sort"
	"time"

	"workpulse/internal/domain/directory"
)

// TasksForEmployee filters tasks assigned to an employee, preserving
// fixture order.
func TasksForEmployee(tasks []directory.Task, employeeID string) []directory.Task {
	var out []directory.Task
	for _, task := range tasks {
		if task.AssignedTo == employeeID {
			out = append(out, task)
		}
	}
	return out
}

// TasksAssignedBy filters tasks a manager handed out.
func TasksAssignedBy(tasks []directory.Task, managerID string) []directory.Task {
	var out []directory.Task
	for _, task := range tasks {
		if task.AssignedBy == managerID {
			out = append(out, task)
		}
	}
	return out
}

// ProjectsForManager filters projects owned by a manager.
func ProjectsForManager(projects []directory.Project, managerID string) []directory.Project {
	var out []directory.Project
	for _, p := range projects {
		if p.ManagerID == managerID {
			out = append(out, p)
		}
	}
	return out
}

// ProjectsForMember filters projects an employee belongs to, either as a
// team member or as the manager.
func ProjectsForMember(projects []directory.Project, employeeID string) []directory.Project {
	var out []directory.Project
	for _, p := range projects {
		if p.ManagerID == employeeID {
			out = append(out, p)
			continue
		}
		for _, member := range p.TeamMembers {
			if member == employeeID {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

type StatusCounts struct {
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
	Pending    int `json:"pending"`
	Overdue    int `json:"overdue"`
}

func TaskStatusCounts(tasks []directory.Task) StatusCounts {
	var counts StatusCounts
	for _, task := range tasks {
		switch task.Status {
		case directory.TaskCompleted:
			counts.Completed++
		case directory.TaskInProgress:
			counts.InProgress++
		case directory.TaskPending:
			counts.Pending++
		case directory.TaskOverdue:
			counts.Overdue++
		}
	}
	return counts
}

const dateLayout = "2006-01-02"

// DaysUntilDue counts whole days from now to the task due date, rounding
// up. Unparseable dates report 0.
func DaysUntilDue(dueDate string, now time.Time) int {
	due, err := time.Parse(dateLayout, dueDate)
	if err != nil {
		return 0
	}
	hours := due.Sub(now).Hours()
	days := int(hours / 24)
	if float64(days)*24 < hours {
		days++
	}
	return days
}

// UpcomingDeadlines returns up to n unfinished tasks ordered by due date,
// soonest first, for the manager deadline widget.
func UpcomingDeadlines(tasks []directory.Task, n int) []directory.Task {
	var out []directory.Task
	for _, task := range tasks {
		if task.Status != directory.TaskCompleted {
			out = append(out, task)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate < out[j].DueDate
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

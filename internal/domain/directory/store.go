package directory

// Store holds the immutable fixture collections. All accessors return
// copies so callers can never mutate the underlying data; ordering always
// follows fixture order.
type Store struct {
	employees  []Employee
	tasks      []Task
	projects   []Project
	hrActions  []HRAction
	goals      []Goal
	series     FixtureSet
	employeeIx map[string]int
}

func NewStore(set FixtureSet) *Store {
	s := &Store{
		employees:  set.Employees,
		tasks:      set.Tasks,
		projects:   set.Projects,
		hrActions:  set.HRActions,
		goals:      set.Goals,
		series:     set,
		employeeIx: make(map[string]int, len(set.Employees)),
	}
	for i, emp := range s.employees {
		s.employeeIx[emp.ID] = i
	}
	return s
}

func (s *Store) Employees() []Employee {
	out := make([]Employee, len(s.employees))
	copy(out, s.employees)
	return out
}

func (s *Store) EmployeeByID(id string) (Employee, bool) {
	if i, ok := s.employeeIx[id]; ok {
		return s.employees[i], true
	}
	return Employee{}, false
}

// DisplayName resolves an employee reference for display, falling back to
// the unassigned placeholder when the id is empty or dangling.
func (s *Store) DisplayName(id string) string {
	if emp, ok := s.EmployeeByID(id); ok {
		return emp.Name
	}
	return UnassignedName
}

// TeamOf returns the direct reports of a manager, in fixture order.
func (s *Store) TeamOf(managerID string) []Employee {
	var out []Employee
	for _, emp := range s.employees {
		if emp.ManagerID == managerID {
			out = append(out, emp)
		}
	}
	return out
}

func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) Projects() []Project {
	out := make([]Project, len(s.projects))
	copy(out, s.projects)
	return out
}

func (s *Store) ProjectByID(id string) (Project, bool) {
	for _, p := range s.projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

func (s *Store) HRActions() []HRAction {
	out := make([]HRAction, len(s.hrActions))
	copy(out, s.hrActions)
	return out
}

func (s *Store) Goals() []Goal {
	out := make([]Goal, len(s.goals))
	copy(out, s.goals)
	return out
}

func (s *Store) GoalsForEmployee(employeeID string) []Goal {
	var out []Goal
	for _, g := range s.goals {
		if g.EmployeeID == employeeID {
			out = append(out, g)
		}
	}
	return out
}

func (s *Store) PerformanceHistory() []PerformancePoint {
	out := make([]PerformancePoint, len(s.series.PerformanceHistory))
	copy(out, s.series.PerformanceHistory)
	return out
}

func (s *Store) WeeklyActivity() []WeeklyActivity {
	out := make([]WeeklyActivity, len(s.series.WeeklyActivity))
	copy(out, s.series.WeeklyActivity)
	return out
}

func (s *Store) Skills() []SkillStat {
	out := make([]SkillStat, len(s.series.Skills))
	copy(out, s.series.Skills)
	return out
}

func (s *Store) AttendancePattern() []AttendanceDay {
	out := make([]AttendanceDay, len(s.series.AttendancePattern))
	copy(out, s.series.AttendancePattern)
	return out
}

func (s *Store) ProductivityHeatmap() []HeatmapRow {
	out := make([]HeatmapRow, len(s.series.ProductivityHours))
	copy(out, s.series.ProductivityHours)
	return out
}

func (s *Store) Collaboration() []CollaborationStat {
	out := make([]CollaborationStat, len(s.series.Collaboration))
	copy(out, s.series.Collaboration)
	return out
}

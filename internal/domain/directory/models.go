package directory

// UnassignedName is the placeholder returned when an employee reference
// cannot be resolved. Lookups never fail hard on dangling ids.
const UnassignedName = "Unassigned"

type TodayActivity struct {
	ActiveTime     float64 `json:"activeTime"`
	IdleTime       float64 `json:"idleTime"`
	TasksCompleted int     `json:"tasksCompleted"`
}

type Employee struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Email            string        `json:"email"`
	Role             string        `json:"role"`
	Department       string        `json:"department"`
	Position         string        `json:"position"`
	HireDate         string        `json:"hireDate"`
	ManagerID        string        `json:"managerId,omitempty"`
	Productivity     float64       `json:"productivity"`
	Attendance       float64       `json:"attendance"`
	TaskCompletion   float64       `json:"taskCompletion"`
	SkillLevel       float64       `json:"skillLevel"`
	Engagement       float64       `json:"engagement"`
	PerformanceScore float64       `json:"performanceScore"`
	IsCheckedIn      bool          `json:"isCheckedIn"`
	CheckInTime      string        `json:"checkInTime,omitempty"`
	CheckOutTime     string        `json:"checkOutTime,omitempty"`
	TodayActivity    TodayActivity `json:"todayActivity"`
}

const (
	TaskPending    = "pending"
	TaskInProgress = "in-progress"
	TaskCompleted  = "completed"
	TaskOverdue    = "overdue"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type Task struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	AssignedTo     string   `json:"assignedTo"`
	AssignedBy     string   `json:"assignedBy"`
	Project        string   `json:"project"`
	Status         string   `json:"status"`
	Priority       string   `json:"priority"`
	DueDate        string   `json:"dueDate"`
	CreatedAt      string   `json:"createdAt"`
	CompletedAt    string   `json:"completedAt,omitempty"`
	EstimatedHours float64  `json:"estimatedHours"`
	ActualHours    *float64 `json:"actualHours,omitempty"`
}

const (
	ProjectPlanning  = "planning"
	ProjectActive    = "active"
	ProjectCompleted = "completed"
	ProjectOnHold    = "on-hold"
)

type Project struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ManagerID   string   `json:"managerId"`
	TeamMembers []string `json:"teamMembers"`
	Status      string   `json:"status"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Progress    float64  `json:"progress"`
	Budget      *float64 `json:"budget,omitempty"`
}

type HRAction struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employeeId"`
	Type        string `json:"type"`
	Description string `json:"description"`
	CreatedBy   string `json:"createdBy"`
	CreatedAt   string `json:"createdAt"`
	Status      string `json:"status"`
}

type Goal struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employeeId"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	Status       string  `json:"status"`
	Priority     string  `json:"priority"`
	Progress     float64 `json:"progress"`
	CurrentValue float64 `json:"currentValue"`
	TargetValue  float64 `json:"targetValue"`
	Unit         string  `json:"unit"`
	DueDate      string  `json:"dueDate"`
	CreatedAt    string  `json:"createdAt"`
	CompletedAt  string  `json:"completedAt,omitempty"`
}

type PerformancePoint struct {
	Month       string  `json:"month"`
	Engineering float64 `json:"engineering"`
	Design      float64 `json:"design"`
	Marketing   float64 `json:"marketing"`
	Sales       float64 `json:"sales"`
	Product     float64 `json:"product"`
	Overall     float64 `json:"overall"`
}

type WeeklyActivity struct {
	Week         string  `json:"week"`
	Productivity float64 `json:"productivity"`
	Attendance   float64 `json:"attendance"`
	Engagement   float64 `json:"engagement"`
	Tasks        int     `json:"tasks"`
}

type SkillStat struct {
	Skill     string  `json:"skill"`
	Employees int     `json:"employees"`
	AvgLevel  float64 `json:"avgLevel"`
	Growth    float64 `json:"growth"`
}

type AttendanceDay struct {
	Day     string `json:"day"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
	Late    int    `json:"late"`
}

type HeatmapRow struct {
	Hour      string  `json:"hour"`
	Monday    float64 `json:"monday"`
	Tuesday   float64 `json:"tuesday"`
	Wednesday float64 `json:"wednesday"`
	Thursday  float64 `json:"thursday"`
	Friday    float64 `json:"friday"`
}

type CollaborationStat struct {
	Employee  string `json:"employee"`
	Meetings  int    `json:"meetings"`
	Messages  int    `json:"messages"`
	Reviews   int    `json:"reviews"`
	Mentoring int    `json:"mentoring"`
}

// FixtureSet is the decoded shape of the fixture asset. It is only ever
// read once, at startup, to build the Store.
type FixtureSet struct {
	Employees          []Employee          `json:"employees"`
	Tasks              []Task              `json:"tasks"`
	Projects           []Project           `json:"projects"`
	HRActions          []HRAction          `json:"hrActions"`
	Goals              []Goal              `json:"goals"`
	PerformanceHistory []PerformancePoint  `json:"performanceHistory"`
	WeeklyActivity     []WeeklyActivity    `json:"weeklyActivity"`
	Skills             []SkillStat         `json:"skills"`
	AttendancePattern  []AttendanceDay     `json:"attendancePattern"`
	ProductivityHours  []HeatmapRow        `json:"productivityHeatmap"`
	Collaboration      []CollaborationStat `json:"collaboration"`
}

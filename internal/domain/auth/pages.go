package auth

// Page is a navigable view in the dashboard shell. Navigation order
// follows slice order.
type Page struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

const (
	PageDashboard   = "dashboard"
	PageProfile     = "profile"
	PageAnalytics   = "analytics"
	PageTasks       = "tasks"
	PageGoals       = "goals"
	PageTimesheet   = "timesheet"
	PageTeam        = "team"
	PageProjects    = "projects"
	PagePerformance = "performance"
	PageAttendance  = "attendance"
	PageEmployees   = "employees"
	PageReports     = "reports"
	PageSettings    = "settings"
)

var commonPages = []Page{
	{Key: PageDashboard, Label: "Dashboard"},
	{Key: PageProfile, Label: "Profile"},
	{Key: PageAnalytics, Label: "Analytics"},
}

// RolePages maps each role to its ordered navigation. Adding a role or a
// page is a table edit, not a code branch.
var RolePages = map[string][]Page{
	RoleEmployee: appendPages(commonPages,
		Page{Key: PageTasks, Label: "My Tasks"},
		Page{Key: PageGoals, Label: "Goals"},
		Page{Key: PageTimesheet, Label: "Timesheet"},
	),
	RoleManager: appendPages(commonPages,
		Page{Key: PageTeam, Label: "Team Management"},
		Page{Key: PageProjects, Label: "Projects"},
		Page{Key: PagePerformance, Label: "Team Performance"},
		Page{Key: PageAttendance, Label: "Attendance"},
	),
	RoleHR: appendPages(commonPages,
		Page{Key: PageEmployees, Label: "Employee Management"},
		Page{Key: PagePerformance, Label: "Performance Reviews"},
		Page{Key: PageReports, Label: "Reports"},
		Page{Key: PageSettings, Label: "HR Settings"},
	),
}

func appendPages(base []Page, extra ...Page) []Page {
	out := make([]Page, 0, len(base)+len(extra))
	out = append(out, base...)
	out = append(out, extra...)
	return out
}

// PagesFor returns the ordered navigation for a role. Unknown roles get
// the common pages only.
func PagesFor(role string) []Page {
	if pages, ok := RolePages[role]; ok {
		out := make([]Page, len(pages))
		copy(out, pages)
		return out
	}
	out := make([]Page, len(commonPages))
	copy(out, commonPages)
	return out
}

// DeniedMessage is the uniform access-denied copy. Every disallowed
// (role, page) combination resolves to it; there is no silent-empty path.
const DeniedMessage = "This page is not available for your role."

type Resolution struct {
	Key     string `json:"key"`
	Label   string `json:"label,omitempty"`
	Allowed bool   `json:"allowed"`
	Denial  string `json:"denial,omitempty"`
}

// ResolvePage maps (role, page key) to the page to render. An empty key
// falls back to the dashboard; anything outside the role's table is an
// explicit denial.
func ResolvePage(role, key string) Resolution {
	if key == "" {
		key = PageDashboard
	}
	for _, page := range PagesFor(role) {
		if page.Key == key {
			return Resolution{Key: page.Key, Label: page.Label, Allowed: true}
		}
	}
	return Resolution{Key: key, Denial: DeniedMessage}
}

// Allowed reports whether a role may open a page key.
func Allowed(role, key string) bool {
	return ResolvePage(role, key).Allowed
}

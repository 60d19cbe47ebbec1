package auth

const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
	RoleHR       = "hr"
)

var Roles = []string{RoleEmployee, RoleManager, RoleHR}

func ValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// UserContext is the authenticated session identity threaded through
// request contexts.
type UserContext struct {
	UserID     string
	Name       string
	Role       string
	Department string
}

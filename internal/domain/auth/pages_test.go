package auth

import "testing"

func TestPagesForRoles(t *testing.T) {
	tests := []struct {
		role string
		want []string
	}{
		{RoleEmployee, []string{PageDashboard, PageProfile, PageAnalytics, PageTasks, PageGoals, PageTimesheet}},
		{RoleManager, []string{PageDashboard, PageProfile, PageAnalytics, PageTeam, PageProjects, PagePerformance, PageAttendance}},
		{RoleHR, []string{PageDashboard, PageProfile, PageAnalytics, PageEmployees, PagePerformance, PageReports, PageSettings}},
	}
	for _, tc := range tests {
		pages := PagesFor(tc.role)
		if len(pages) != len(tc.want) {
			t.Errorf("role %s: expected %d pages, got %d", tc.role, len(tc.want), len(pages))
			continue
		}
		for i, page := range pages {
			if page.Key != tc.want[i] {
				t.Errorf("role %s: position %d expected %s, got %s", tc.role, i, tc.want[i], page.Key)
			}
		}
	}
}

func TestPagesForUnknownRole(t *testing.T) {
	pages := PagesFor("intern")
	if len(pages) != 3 {
		t.Fatalf("unknown role should get common pages only, got %d", len(pages))
	}
}

func TestResolvePageDefaultsToDashboard(t *testing.T) {
	res := ResolvePage(RoleEmployee, "")
	if !res.Allowed || res.Key != PageDashboard {
		t.Fatalf("empty key should resolve to dashboard, got %+v", res)
	}
}

func TestResolvePageDeniesOutsideTable(t *testing.T) {
	cases := []struct {
		role string
		key  string
	}{
		{RoleEmployee, PageTeam},
		{RoleEmployee, PageEmployees},
		{RoleManager, PageEmployees},
		{RoleManager, PageTasks},
		{RoleHR, PageTeam},
		{RoleHR, "nonsense"},
	}
	for _, tc := range cases {
		res := ResolvePage(tc.role, tc.key)
		if res.Allowed {
			t.Errorf("role %s should not open %s", tc.role, tc.key)
		}
		if res.Denial != DeniedMessage {
			t.Errorf("role %s page %s: expected uniform denial message, got %q", tc.role, tc.key, res.Denial)
		}
	}
}

func TestPerformancePageSharedByManagerAndHR(t *testing.T) {
	if !Allowed(RoleManager, PagePerformance) {
		t.Error("manager should open performance")
	}
	if !Allowed(RoleHR, PagePerformance) {
		t.Error("hr should open performance")
	}
	if Allowed(RoleEmployee, PagePerformance) {
		t.Error("employee should not open performance")
	}
}

func TestValidRole(t *testing.T) {
	for _, role := range Roles {
		if !ValidRole(role) {
			t.Errorf("role %s should be valid", role)
		}
	}
	if ValidRole("admin") {
		t.Error("admin is not a known role")
	}
}

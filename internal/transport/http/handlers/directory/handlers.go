package directoryhandler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"workpulse/internal/domain/analytics"
	"workpulse/internal/domain/attendance"
	"workpulse/internal/domain/auth"
	"workpulse/internal/domain/directory"
	"workpulse/internal/transport/http/api"
	"workpulse/internal/transport/http/middleware"
	"workpulse/internal/transport/http/shared"
)

type Handler struct {
	Store      *directory.Store
	Attendance *attendance.Service
}

func NewHandler(store *directory.Store, att *attendance.Service) *Handler {
	return &Handler{Store: store, Attendance: att}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.With(middleware.RequirePage(auth.PageEmployees)).Get("/", h.handleList)
		r.Get("/{employeeID}", h.handleGet)
	})
	r.Get("/tasks", h.handleTasks)
	r.Get("/projects", h.handleProjects)
	r.Get("/goals", h.handleGoals)
	r.With(middleware.RequirePage(auth.PageEmployees)).Get("/hr-actions", h.handleHRActions)
}

// handleList is the HR employee directory: the full workforce minus HR
// staff, filtered by search, department, and performance band. Access is
// gated by the page table upstream.
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	workforce := make([]directory.Employee, 0)
	for _, emp := range h.Store.Employees() {
		if emp.Role != auth.RoleHR {
			workforce = append(workforce, emp)
		}
	}
	workforce = h.Attendance.OverlayAll(workforce)

	filtered := analytics.FilterEmployees(workforce, analytics.EmployeeFilter{
		Search:      r.URL.Query().Get("search"),
		Department:  shared.QueryValue(r, "department", analytics.FilterAll),
		Performance: shared.QueryValue(r, "performance", analytics.FilterAll),
	})

	page := shared.ParsePagination(r, 50, 200)
	from, to := page.Window(len(filtered))

	w.Header().Set("X-Total-Count", strconv.Itoa(len(filtered)))
	api.Success(w, filtered[from:to], middleware.GetRequestID(r.Context()))
}

// handleGet returns one employee record. Visible to the employee
// themselves, their direct manager, and HR.
func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	emp, found := h.Store.EmployeeByID(chi.URLParam(r, "employeeID"))
	if !found {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}

	allowed := user.Role == auth.RoleHR ||
		user.UserID == emp.ID ||
		(user.Role == auth.RoleManager && emp.ManagerID == user.UserID)
	if !allowed {
		api.Fail(w, http.StatusForbidden, "access_denied", auth.DeniedMessage, middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, map[string]any{
		"employee":    h.Attendance.Overlay(emp),
		"managerName": h.Store.DisplayName(emp.ManagerID),
	}, middleware.GetRequestID(r.Context()))
}

// handleTasks scopes the task list by role: employees see their own
// assignments, managers the tasks they handed out, HR everything.
func (h *Handler) handleTasks(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var tasks []directory.Task
	switch user.Role {
	case auth.RoleManager:
		tasks = analytics.TasksAssignedBy(h.Store.Tasks(), user.UserID)
	case auth.RoleHR:
		tasks = h.Store.Tasks()
	default:
		tasks = analytics.TasksForEmployee(h.Store.Tasks(), user.UserID)
	}

	if status := r.URL.Query().Get("status"); status != "" && status != analytics.FilterAll {
		kept := make([]directory.Task, 0, len(tasks))
		for _, task := range tasks {
			if task.Status == status {
				kept = append(kept, task)
			}
		}
		tasks = kept
	}

	api.Success(w, map[string]any{
		"tasks":      tasks,
		"taskCounts": analytics.TaskStatusCounts(tasks),
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleProjects(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	var projects []directory.Project
	switch user.Role {
	case auth.RoleManager:
		projects = analytics.ProjectsForManager(h.Store.Projects(), user.UserID)
	case auth.RoleHR:
		projects = h.Store.Projects()
	default:
		projects = analytics.ProjectsForMember(h.Store.Projects(), user.UserID)
	}

	api.Success(w, map[string]any{"projects": projects}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGoals(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	employeeID := user.UserID
	if requested := r.URL.Query().Get("employeeId"); requested != "" && requested != employeeID {
		if user.Role != auth.RoleHR {
			api.Fail(w, http.StatusForbidden, "access_denied", auth.DeniedMessage, middleware.GetRequestID(r.Context()))
			return
		}
		employeeID = requested
	}

	api.Success(w, map[string]any{"goals": h.Store.GoalsForEmployee(employeeID)}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleHRActions(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Store.HRActions(), middleware.GetRequestID(r.Context()))
}

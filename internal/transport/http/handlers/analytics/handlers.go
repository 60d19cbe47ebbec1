package analyticshandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"workpulse/internal/domain/analytics"
	"workpulse/internal/domain/attendance"
	"workpulse/internal/domain/auth"
	"workpulse/internal/domain/directory"
	"workpulse/internal/transport/http/api"
	"workpulse/internal/transport/http/middleware"
)

type Handler struct {
	Store      *directory.Store
	Attendance *attendance.Service
}

func NewHandler(store *directory.Store, att *attendance.Service) *Handler {
	return &Handler{Store: store, Attendance: att}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/analytics", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/performance-history", h.handlePerformanceHistory)
		r.Get("/weekly-activity", h.handleWeeklyActivity)
		r.Get("/skills", h.handleSkills)
		r.Get("/attendance-pattern", h.handleAttendancePattern)
		r.Get("/heatmap", h.handleHeatmap)
		r.Get("/collaboration", h.handleCollaboration)
		r.Get("/departments", h.handleDepartments)
		r.Get("/performance-buckets", h.handleBuckets)
		r.Get("/summary", h.handleSummary)
	})
}

func (h *Handler) handlePerformanceHistory(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Store.PerformanceHistory(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleWeeklyActivity(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Store.WeeklyActivity(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSkills(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Store.Skills(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAttendancePattern(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Store.AttendancePattern(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleHeatmap(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Store.ProductivityHeatmap(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCollaboration(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Store.Collaboration(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDepartments(w http.ResponseWriter, r *http.Request) {
	api.Success(w, analytics.GroupByDepartment(h.scope(r)), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleBuckets(w http.ResponseWriter, r *http.Request) {
	api.Success(w, analytics.BucketByPerformance(h.scope(r)), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	scope := h.scope(r)
	api.Success(w, map[string]any{
		"headcount":      len(scope),
		"avgPerformance": analytics.AveragePerformance(scope),
		"topPerformers":  analytics.TopPerformers(scope, 5),
	}, middleware.GetRequestID(r.Context()))
}

// scope narrows the aggregate population by role: managers see their
// team, everyone else sees the workforce minus HR staff.
func (h *Handler) scope(r *http.Request) []directory.Employee {
	user, ok := middleware.GetUser(r.Context())
	if ok && user.Role == auth.RoleManager {
		return h.Attendance.OverlayAll(h.Store.TeamOf(user.UserID))
	}
	out := make([]directory.Employee, 0)
	for _, emp := range h.Store.Employees() {
		if emp.Role != auth.RoleHR {
			out = append(out, emp)
		}
	}
	return h.Attendance.OverlayAll(out)
}

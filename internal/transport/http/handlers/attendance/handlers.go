package attendancehandler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"workpulse/internal/domain/attendance"
	"workpulse/internal/domain/auth"
	"workpulse/internal/domain/directory"
	"workpulse/internal/transport/http/api"
	"workpulse/internal/transport/http/middleware"
)

type Handler struct {
	Attendance *attendance.Service
	Store      *directory.Store
}

func NewHandler(att *attendance.Service, store *directory.Store) *Handler {
	return &Handler{Attendance: att, Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/attendance", func(r chi.Router) {
		r.Post("/check-in", h.handleCheckIn)
		r.Post("/check-out", h.handleCheckOut)
		r.Get("/status", h.handleStatus)
		r.With(middleware.RequirePage(auth.PageAttendance)).Get("/team", h.handleTeam)
	})
}

func (h *Handler) handleCheckIn(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	status, err := h.Attendance.CheckIn(user.UserID)
	if err != nil {
		h.failAttendance(w, r, err)
		return
	}
	api.Success(w, status, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCheckOut(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	status, err := h.Attendance.CheckOut(user.UserID)
	if err != nil {
		h.failAttendance(w, r, err)
		return
	}
	api.Success(w, status, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	status, found := h.Attendance.Status(user.UserID)
	if !found {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, status, middleware.GetRequestID(r.Context()))
}

// handleTeam is the manager attendance view: direct reports with live
// presence plus the weekly pattern series. The page table upstream keeps
// it manager-only.
func (h *Handler) handleTeam(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	api.Success(w, map[string]any{
		"team":    h.Attendance.OverlayAll(h.Store.TeamOf(user.UserID)),
		"pattern": h.Store.AttendancePattern(),
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) failAttendance(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, attendance.ErrUnknownEmployee) {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Fail(w, http.StatusInternalServerError, "attendance_failed", "failed to update attendance", middleware.GetRequestID(r.Context()))
}

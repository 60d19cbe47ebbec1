package pageshandler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"workpulse/internal/domain/auth"
	"workpulse/internal/domain/reports"
	"workpulse/internal/transport/http/api"
	"workpulse/internal/transport/http/middleware"
)

type Handler struct {
	Reports *reports.Service
}

func NewHandler(service *reports.Service) *Handler {
	return &Handler{Reports: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/pages", func(r chi.Router) {
		r.Get("/", h.handleNavigation)
		r.Get("/{pageKey}", h.handlePage)
	})
	r.Get("/dashboard", h.handleDashboard)
}

func (h *Handler) handleNavigation(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, auth.PagesFor(user.Role), middleware.GetRequestID(r.Context()))
}

// handlePage resolves a navigation key against the role page table and
// returns the page payload, or the uniform denial for keys outside the
// role's table.
func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}

	resolution := auth.ResolvePage(user.Role, chi.URLParam(r, "pageKey"))
	if !resolution.Allowed {
		api.Fail(w, http.StatusForbidden, "access_denied", resolution.Denial, middleware.GetRequestID(r.Context()))
		return
	}

	payload, err := h.Reports.PagePayload(user, resolution.Key)
	if err != nil {
		if errors.Is(err, reports.ErrUnknownEmployee) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "page_failed", "failed to build page", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, map[string]any{
		"page": resolution,
		"data": payload,
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	dashboard, err := h.Reports.Dashboard(user)
	if err != nil {
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, dashboard, middleware.GetRequestID(r.Context()))
}

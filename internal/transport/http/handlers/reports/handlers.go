package reportshandler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"workpulse/internal/domain/auth"
	"workpulse/internal/domain/reports"
	"workpulse/internal/transport/http/middleware"
)

type Handler struct {
	Reports *reports.Service
}

func NewHandler(service *reports.Service) *Handler {
	return &Handler{Reports: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.With(middleware.RequirePage(auth.PageReports)).Get("/workforce.pdf", h.handleWorkforcePDF)
	})
}

func (h *Handler) handleWorkforcePDF(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="workforce-report.pdf"`)
	if err := h.Reports.WorkforcePDF(w, user.UserID); err != nil {
		slog.Warn("workforce pdf render failed", "userId", user.UserID, "err", err)
	}
}

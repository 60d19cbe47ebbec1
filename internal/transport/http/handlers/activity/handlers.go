package activityhandler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"workpulse/internal/domain/activity"
	"workpulse/internal/transport/http/api"
	"workpulse/internal/transport/http/middleware"
)

type Handler struct {
	Feed *activity.Service
}

func NewHandler(feed *activity.Service) *Handler {
	return &Handler{Feed: feed}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/notifications", func(r chi.Router) {
		r.Get("/", h.handleNotifications)
		r.Post("/{notificationID}/read", h.handleMarkRead)
		r.Post("/read-all", h.handleMarkAllRead)
	})
	r.Get("/activity", h.handleActivity)
}

func (h *Handler) handleNotifications(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUser(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	w.Header().Set("X-Unread-Count", strconv.Itoa(h.Feed.UnreadCount()))
	api.Success(w, h.Feed.Notifications(), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUser(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	if !h.Feed.MarkRead(chi.URLParam(r, "notificationID")) {
		api.Fail(w, http.StatusNotFound, "not_found", "notification not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "read"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUser(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	h.Feed.MarkAllRead()
	api.Success(w, map[string]string{"status": "all_read"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleActivity(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUser(r.Context()); !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, h.Feed.Events(), middleware.GetRequestID(r.Context()))
}

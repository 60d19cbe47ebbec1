package authhandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"workpulse/internal/domain/auth"
	"workpulse/internal/domain/directory"
	"workpulse/internal/transport/http/api"
	"workpulse/internal/transport/http/middleware"
)

type Handler struct {
	Store  *directory.Store
	Secret string
	TTL    time.Duration
}

func NewHandler(store *directory.Store, secret string, ttl time.Duration) *Handler {
	return &Handler{Store: store, Secret: secret, TTL: ttl}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.handleLogin)
		r.Post("/logout", h.handleLogout)
		r.Get("/me", h.handleMe)
		r.Get("/roles", h.handleRoles)
	})
}

type loginRequest struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

// handleLogin is the role-selector login. There is no password: the
// session is issued for any fixture employee whose role matches the
// requested one.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if !auth.ValidRole(payload.Role) {
		api.Fail(w, http.StatusBadRequest, "invalid_role", "unknown role", middleware.GetRequestID(r.Context()))
		return
	}

	emp, ok := h.resolveUser(payload)
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "no such user for role", middleware.GetRequestID(r.Context()))
		return
	}

	token, err := auth.GenerateToken(h.Secret, auth.Claims{
		UserID:     emp.ID,
		Name:       emp.Name,
		Role:       emp.Role,
		Department: emp.Department,
	}, h.TTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_error", "failed to issue token", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, map[string]any{
		"token": token,
		"user": map[string]string{
			"id":         emp.ID,
			"name":       emp.Name,
			"role":       emp.Role,
			"department": emp.Department,
			"position":   emp.Position,
		},
		"pages": auth.PagesFor(emp.Role),
	}, middleware.GetRequestID(r.Context()))
}

// resolveUser picks the session identity: an explicit fixture id when
// given, otherwise the first fixture employee holding the role.
func (h *Handler) resolveUser(payload loginRequest) (directory.Employee, bool) {
	if payload.UserID != "" {
		emp, ok := h.Store.EmployeeByID(payload.UserID)
		if !ok || emp.Role != payload.Role {
			return directory.Employee{}, false
		}
		return emp, true
	}
	for _, emp := range h.Store.Employees() {
		if emp.Role == payload.Role {
			return emp, true
		}
	}
	return directory.Employee{}, false
}

// handleLogout exists for client symmetry; sessions are stateless tokens
// so there is nothing to revoke.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	api.Success(w, map[string]string{"status": "logged_out"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{
		"user": map[string]string{
			"id":         user.UserID,
			"name":       user.Name,
			"role":       user.Role,
			"department": user.Department,
		},
		"pages": auth.PagesFor(user.Role),
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRoles(w http.ResponseWriter, r *http.Request) {
	api.Success(w, auth.Roles, middleware.GetRequestID(r.Context()))
}

// Package server assembles the application: fixture store, domain
// services, simulators, and the HTTP router.
package server

import (
	"context"
	"encoding/json"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"workpulse/internal/domain/activity"
	"workpulse/internal/domain/attendance"
	"workpulse/internal/domain/directory"
	"workpulse/internal/domain/reports"
	"workpulse/internal/platform/config"
	"workpulse/internal/platform/fixtures"
	"workpulse/internal/platform/metrics"
	activityhandler "workpulse/internal/transport/http/handlers/activity"
	analyticshandler "workpulse/internal/transport/http/handlers/analytics"
	attendancehandler "workpulse/internal/transport/http/handlers/attendance"
	authhandler "workpulse/internal/transport/http/handlers/auth"
	directoryhandler "workpulse/internal/transport/http/handlers/directory"
	pageshandler "workpulse/internal/transport/http/handlers/pages"
	reportshandler "workpulse/internal/transport/http/handlers/reports"
	"workpulse/internal/transport/http/middleware"
)

type App struct {
	Config     config.Config
	Store      *directory.Store
	Attendance *attendance.Service
	Feed       *activity.Service
	Reports    *reports.Service
	Metrics    *metrics.Collector
	Router     http.Handler
}

// New builds the full application without binding a listener, so tests
// can drive App.Router through httptest.
func New(cfg config.Config) (*App, error) {
	store, err := fixtures.Load(cfg.FixturesPath)
	if err != nil {
		return nil, err
	}

	att := attendance.NewService(store.Employees(), nil)
	feed := activity.NewService()
	reportSvc := reports.NewService(store, att, nil)
	collector := metrics.New()

	app := &App{
		Config:     cfg,
		Store:      store,
		Attendance: att,
		Feed:       feed,
		Reports:    reportSvc,
		Metrics:    collector,
	}
	app.Router = app.buildRouter()
	return app, nil
}

func (a *App) buildRouter() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(a.Config.Environment == "production"))
	router.Use(middleware.BodyLimit(a.Config.MaxBodyBytes))
	router.Use(middleware.Auth(a.Config.JWTSecret))
	router.Use(middleware.RateLimit(a.Config.RateLimitPerMinute, time.Minute))
	if a.Config.MetricsEnabled {
		router.Use(middleware.Metrics(a.Metrics))
	}

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if len(a.Store.Employees()) == 0 {
			http.Error(w, "fixtures not loaded", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if a.Config.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(a.Metrics.Snapshot())
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		authhandler.NewHandler(a.Store, a.Config.JWTSecret, a.Config.SessionTTL).RegisterRoutes(r)
		pageshandler.NewHandler(a.Reports).RegisterRoutes(r)
		directoryhandler.NewHandler(a.Store, a.Attendance).RegisterRoutes(r)
		analyticshandler.NewHandler(a.Store, a.Attendance).RegisterRoutes(r)
		attendancehandler.NewHandler(a.Attendance, a.Store).RegisterRoutes(r)
		activityhandler.NewHandler(a.Feed).RegisterRoutes(r)
		reportshandler.NewHandler(a.Reports).RegisterRoutes(r)
	})

	return router
}

// Run starts the simulators and blocks serving HTTP until the listener
// fails or the process exits.
func (a *App) Run(ctx context.Context) error {
	if a.Config.SimulatorsEnabled {
		a.Feed.Start(ctx, a.Config.NotificationInterval, a.Config.ActivityInterval)
		slog.Info("simulators started",
			"notificationInterval", a.Config.NotificationInterval,
			"activityInterval", a.Config.ActivityInterval)
	}

	log.Printf("workpulse server listening on %s", a.Config.Addr)
	return http.ListenAndServe(a.Config.Addr, a.Router)
}

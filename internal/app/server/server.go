package server

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ams/internal/domain/appraisal"
	"ams/internal/domain/audit"
	"ams/internal/domain/directory"
	"ams/internal/platform/config"
	"ams/internal/platform/metrics"
	"ams/internal/platform/session"
	"ams/internal/transport/http/api"
	appraisalshandler "ams/internal/transport/http/handlers/appraisals"
	authhandler "ams/internal/transport/http/handlers/auth"
	directoryhandler "ams/internal/transport/http/handlers/directory"
	reportshandler "ams/internal/transport/http/handlers/reports"
	"ams/internal/transport/http/middleware"
)

type App struct {
	Config     config.Config
	Users      *directory.Store
	Appraisals *appraisal.Store
	Audit      *audit.Service
	Sessions   *session.Cache
	Metrics    *metrics.Collector
	Router     http.Handler
}

func New(cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &App{
		Config:     cfg,
		Users:      directory.NewStore(),
		Appraisals: appraisal.NewStore(),
		Audit:      audit.New(),
		Sessions:   session.New(cfg.SessionFile),
	}
	if cfg.MetricsEnabled {
		app.Metrics = metrics.New()
	}

	if cfg.SeedDemoData {
		if err := seed(cfg, app.Users, app.Appraisals); err != nil {
			return nil, err
		}
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(app.Metrics))
	router.Use(middleware.Recoverer)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		authHandler := authhandler.NewHandler(app.Users, app.Sessions, cfg.JWTSecret, cfg.SessionTTL)
		r.Post("/auth/login", authHandler.HandleLogin)
		r.Post("/auth/logout", authHandler.HandleLogout)
		r.Get("/auth/session", authHandler.HandleSession)

		directoryHandler := directoryhandler.NewHandler(app.Users, app.Appraisals, app.Audit)
		directoryHandler.RegisterRoutes(r)

		appraisalsHandler := appraisalshandler.NewHandler(app.Appraisals, app.Users, app.Audit)
		appraisalsHandler.RegisterRoutes(r)

		reportsHandler := reportshandler.NewHandler(app.Appraisals, app.Users)
		reportsHandler.RegisterRoutes(r)

		if app.Metrics != nil {
			r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
				api.Success(w, app.Metrics.Snapshot(), middleware.GetRequestID(req.Context()))
			})
		}
	})

	app.Router = router
	return app, nil
}

func Run() {
	cfg := config.Load()
	app, err := New(cfg)
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}

	log.Printf("AMS server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, app.Router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

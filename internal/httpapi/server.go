// Package httpapi exposes the packing engine over HTTP (spec.md §6.3). It is
// the only place in the module that logs through logrus, rate-limits, or
// recovers a panic — internal/engine stays a pure function (spec.md §5).
package httpapi

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/dhalbert/cratestow/internal/config"
)

// Server wires the HTTP surface's router, middleware chain, and logger.
type Server struct {
	router *mux.Router
	log    *logrus.Logger
	cfg    config.AppConfig
}

// NewServer builds a Server ready to ListenAndServe, applying the CORS,
// access-log, and rate-limit middleware in that order around the single
// /api/pack route (spec.md §9.3).
func NewServer(cfg config.AppConfig, log *logrus.Logger) *Server {
	s := &Server{
		router: mux.NewRouter(),
		log:    log,
		cfg:    cfg,
	}

	limiter := newAddressLimiter(rate.Limit(cfg.RateLimitPerSecond), cfg.RateLimitBurst)

	h := &packHandler{cfg: cfg, log: log}

	s.router.Use(corsMiddleware)
	s.router.Use(accessLogMiddleware(log))
	s.router.Use(rateLimitMiddleware(limiter))

	s.router.HandleFunc("/api/pack", h.ServeHTTP).Methods(http.MethodPost, http.MethodOptions)

	return s
}

func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe starts the server with sane timeouts for a small JSON API.
func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:         s.cfg.BindAddr,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}
	s.log.WithField("addr", s.cfg.BindAddr).Info("cargostow: listening")
	return srv.ListenAndServe()
}

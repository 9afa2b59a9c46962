// Package api exposes the engine over HTTP. It is a thin surface:
// handlers translate requests into engine calls and engine no-ops
// into 422 responses; no editing logic lives here.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/cutlineapp/cutline/internal/manager"
	"github.com/cutlineapp/cutline/pkg/logger"
)

type Server struct {
	http.Server

	manager *manager.Manager
}

// Initialize builds the HTTP server around a session.
func Initialize(mgr *manager.Manager) (*Server, error) {
	address := fmt.Sprintf("%s:%d", mgr.Config.GetHost(), mgr.Config.GetPort())

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.AllowAll().Handler)
	r.Use(requestLogger)

	server := &Server{
		Server: http.Server{
			Addr:    address,
			Handler: r,
		},
		manager: mgr,
	}

	r.Mount("/project", projectRoutes{manager: mgr}.Routes())
	r.Mount("/assets", assetRoutes{manager: mgr}.Routes())
	r.Mount("/clips", clipRoutes{manager: mgr}.Routes())
	r.Mount("/edit", editRoutes{manager: mgr}.Routes())

	return server, nil
}

func (s *Server) Start() error {
	logger.Infof("cutline is listening on %s", s.Addr)
	return s.ListenAndServe()
}

func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.Server.Shutdown(ctx)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debugf("%s %s (%s)", r.Method, r.URL.Path, time.Since(start).Round(time.Microsecond))
	})
}

package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jaekwang-park/compliance-api/internal/middleware"
	"github.com/jaekwang-park/compliance-api/internal/service"
)

type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

func NewServer(port string, logger *slog.Logger, checklistSvc *service.ChecklistService, itemSvc *service.ItemService, authSvc *service.AuthService, auth *middleware.Auth) *Server {
	router := NewRouter(checklistSvc, itemSvc, authSvc)

	// Apply middleware chain: recovery -> logging -> auth -> router
	var handler http.Handler = router
	if auth != nil {
		handler = auth.Middleware(handler)
	}
	chain := middleware.Recovery(logger)(middleware.Logging(logger)(handler))

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%s", port),
			Handler:      chain,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("starting server", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")
	return s.httpServer.Shutdown(ctx)
}

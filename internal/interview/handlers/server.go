package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter builds the gin engine with all module routes registered.
func NewRouter(interviews *InterviewHandler, catalog *CatalogHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")

	v1.GET("/characters", catalog.ListCharacters)
	v1.GET("/characters/:id", catalog.GetCharacter)
	v1.POST("/characters/:id/activate", catalog.ActivateCharacter)
	v1.POST("/characters/:id/deactivate", catalog.DeactivateCharacter)

	v1.GET("/companies", catalog.ListCompanies)
	v1.GET("/companies/:id", catalog.GetCompany)
	v1.POST("/companies/:id/activate", catalog.ActivateCompany)
	v1.POST("/companies/:id/deactivate", catalog.DeactivateCompany)

	v1.POST("/interviews", interviews.Create)
	v1.GET("/interviews", interviews.List)
	v1.GET("/interviews/:id", interviews.Get)
	v1.POST("/interviews/:id/start", interviews.Start)
	v1.POST("/interviews/:id/messages", interviews.SendMessage)
	v1.POST("/interviews/:id/complete", interviews.Complete)
	v1.POST("/interviews/:id/cancel", interviews.Cancel)

	return r
}

// Server wraps the HTTP server lifecycle.
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
}

// NewServer constructs a Server listening on the given port.
func NewServer(port int, engine *gin.Engine, logger *zap.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: engine,
		},
		logger: logger.Named("http_server"),
	}
}

// Start runs the HTTP server, returning on the first serve error.
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", zap.String("endpoint", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP serve error: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() {
	s.logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	s.logger.Info("Server stopped")
}

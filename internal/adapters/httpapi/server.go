// Package httpapi exposes the prediction service over HTTP for the
// browser frontend: POST /predict plus health and index routes.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/phishlens/phishlens/internal/core"
	"github.com/phishlens/phishlens/internal/utils"
)

// Server is the HTTP frontend over the prediction service.
type Server struct {
	service   *core.PredictionService
	processor *utils.TextProcessor
	logger    *zap.Logger
	engine    *gin.Engine
	srv       *http.Server
}

// NewServer builds the gin engine and routes. corsEnabled adds permissive
// CORS headers so the browser dashboard can call the API directly.
func NewServer(
	service *core.PredictionService,
	processor *utils.TextProcessor,
	logger *zap.Logger,
	addr string,
	corsEnabled bool,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		service:   service,
		processor: processor,
		logger:    logger,
		engine:    engine,
	}

	if corsEnabled {
		engine.Use(corsMiddleware())
	}
	s.setupRoutes()

	s.srv = &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) setupRoutes() {
	s.engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":   "PhishLens API running",
			"endpoints": []string{"/health", "/predict"},
		})
	})
	s.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "model_loaded": true})
	})
	s.engine.POST("/predict", s.handlePredict)
}

func (s *Server) handlePredict(c *gin.Context) {
	var msg core.Message
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	subject := s.processor.Prepare(msg.Subject)
	body := s.processor.Prepare(msg.Body)

	result, err := s.service.Predict(c.Request.Context(), subject, body)
	if err != nil {
		s.logger.Error("Prediction failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "prediction failed"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Handler exposes the HTTP handler, mainly for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ProcessMessage scores one message, satisfying ports.Frontend.
func (s *Server) ProcessMessage(ctx context.Context, subject, body string) (*core.PredictionResult, error) {
	return s.service.Predict(ctx, s.processor.Prepare(subject), s.processor.Prepare(body))
}

// Start begins serving in the background.
func (s *Server) Start() error {
	go func() {
		s.logger.Info("HTTP API listening", zap.String("address", s.srv.Addr))
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP server error", zap.Error(err))
		}
	}()
	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.srv.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

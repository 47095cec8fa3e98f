package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/seedscan/seedscan-daemon/internal/core/application"
)

// Service is the HTTP front door of the daemon.
type Service struct {
	scanner *application.ScannerService
	server  *http.Server
}

// ServiceOpts is the struct given to the NewService method.
type ServiceOpts struct {
	Port    int
	Scanner *application.ScannerService
}

func (o ServiceOpts) validate() error {
	if o.Port <= 0 {
		return fmt.Errorf("port must be a positive number")
	}
	if o.Scanner == nil {
		return fmt.Errorf("scanner service must not be null")
	}
	return nil
}

// NewService returns a new web Service
func NewService(opts ServiceOpts) (*Service, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	service := &Service{scanner: opts.Scanner}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	router.POST("/api/scan", service.scanHandler)
	router.GET("/healthz", healthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	service.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: router,
	}
	return service, nil
}

// Start runs the HTTP server and blocks until it stops.
func (s *Service) Start() error {
	log.Infof("http interface is listening on %s", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop gracefully shuts the server down.
func (s *Service) Stop(ctx context.Context) error {
	log.Debug("stopping http interface")
	return s.server.Shutdown(ctx)
}

// requestLogger tags every request with an id and logs its outcome. Request
// bodies are never logged, they carry the seed phrase.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set("request_id", requestID)

		start := time.Now()
		c.Next()

		log.WithFields(log.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"elapsed":    time.Since(start).String(),
		}).Debug("request served")
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

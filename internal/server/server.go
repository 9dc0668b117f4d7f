// Package server exposes work items and rendered charts over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alexanderramin/gantt/internal/chart"
	"github.com/alexanderramin/gantt/internal/config"
	"github.com/alexanderramin/gantt/internal/service"
)

const shutdownTimeout = 5 * time.Second

// Options configure a Server.
type Options struct {
	Config        config.Config
	ChartObserver chart.Observer
	// AccessLog receives one line per request; nil disables request logging.
	AccessLog io.Writer
}

// Server is the gantt HTTP API.
type Server struct {
	items  service.WorkItemService
	opts   Options
	router *gin.Engine
}

// NewServer builds the router over items.
func NewServer(items service.WorkItemService, opts Options) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	if opts.AccessLog != nil {
		router.Use(gin.LoggerWithWriter(opts.AccessLog))
	}

	s := &Server{
		items:  items,
		opts:   opts,
		router: router,
	}

	router.GET("/chart.svg", s.handleChart)
	router.GET("/chart.png", s.handleChart)

	api := router.Group("/api")
	{
		api.GET("/items", s.handleListItems)
		api.GET("/items/:id", s.handleGetItem)
		api.PATCH("/items/:id", s.handleReschedule)
	}

	return s
}

// Handler returns the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving %s: %w", addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

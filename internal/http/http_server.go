package http

// this is entry point of the http request handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gitlab.com/golf-2025.net/internal/adapter/metrics"
	"gitlab.com/golf-2025.net/internal/core/ports/primary"
	"gitlab.com/golf-2025.net/internal/core/services/submission"
	"gitlab.com/golf-2025.net/internal/handlers"
	"gitlab.com/golf-2025.net/internal/handlers/solutions"
)

type ServiceProvider struct {
	submissionService submission.ISubmissionService
	jwtService        primary.JWTService
}

func NewServiceProvider(
	submissionService submission.ISubmissionService,
	jwtService primary.JWTService,
) *ServiceProvider {
	return &ServiceProvider{
		submissionService: submissionService,
		jwtService:        jwtService,
	}
}

type Server struct {
	router          *mux.Router
	srv             *http.Server
	Port            int
	ServiceName     string
	ServiceProvider ServiceProvider
	registry        *prometheus.Registry
	logger          primary.Logger
}

func NewServer(port int, serviceName string, serviceProvider ServiceProvider, registry *prometheus.Registry, logger primary.Logger) *Server {
	return &Server{
		Port:            port,
		ServiceName:     serviceName,
		ServiceProvider: serviceProvider,
		registry:        registry,
		logger:          logger,
	}
}

func (s *Server) Init() error {
	r := mux.NewRouter()
	r.Use(metrics.NewHTTPMetrics(s.registry).Middleware)

	mw := handlers.New(s.ServiceProvider.jwtService, s.logger)
	solutions.
		NewHandler(s.ServiceProvider.submissionService, s.logger).
		RegisterRoutes(r, mw)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	s.router = r
	return nil
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start(ctx context.Context) {
	// Set up server
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // a submission waits for the judge
		IdleTimeout:  60 * time.Second,
	}

	// Start the server in a goroutine
	go func() {
		s.logger.Info("Server listening", "addr", s.srv.Addr, "service", s.ServiceName)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()
}

// Stop waits for in-flight requests until ctx expires
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down http server...")
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

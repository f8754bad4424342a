// Package server exposes footprint assessments over HTTP using gin.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rshade/carbonlens/internal/logging"
)

// Route paths.
const (
	PathHealth          = "/healthz"
	PathFootprint       = "/v1/footprint"
	PathFootprintChart  = "/v1/footprint/chart"
	PathFootprintReport = "/v1/footprint/report"

	// TraceIDHeader carries the request trace ID in both directions.
	TraceIDHeader = "X-Trace-ID"

	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
)

// Server is the HTTP front end.
type Server struct {
	addr   string
	router *gin.Engine
	logger zerolog.Logger
}

// New builds a server listening on addr. The logger is attached to every
// request context so handlers and the engine log with trace IDs.
func New(addr string, assessor Assessor, logger zerolog.Logger) *Server {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	h := NewFootprintHandler(assessor)
	router.GET(PathHealth, h.Health)
	router.POST(PathFootprint, h.Calculate)
	router.POST(PathFootprintChart, h.Chart)
	router.POST(PathFootprintReport, h.Report)

	return &Server{addr: addr, router: router, logger: logger}
}

// Handler returns the routed http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().
			Str("component", "server").
			Str("addr", s.addr).
			Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving on %s: %w", s.addr, err)
	case <-ctx.Done():
	}

	s.logger.Info().Str("component", "server").Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	return nil
}

// requestLogger attaches a trace ID and the logger to each request context
// and logs the completed request.
func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		traceID := c.GetHeader(TraceIDHeader)
		if traceID == "" {
			traceID = logging.GetOrGenerateTraceID(c.Request.Context())
		}
		ctx := logging.ContextWithTraceID(c.Request.Context(), traceID)
		ctx = logger.WithContext(ctx)
		c.Request = c.Request.WithContext(ctx)
		c.Header(TraceIDHeader, traceID)

		c.Next()

		logger.Info().
			Ctx(ctx).
			Str("component", "server").
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", c.Writer.Status()).
			Dur("duration_ms", time.Since(start)).
			Msg("request completed")
	}
}

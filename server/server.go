package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/npillmayer/gcl/config"
	"github.com/npillmayer/gcl/report"
)

// Server is an HTTP server for GCL analysis.
type Server struct {
	httpServer *http.Server
	conf       config.ServerConfig
	title      string
	layout     report.Layout
}

// New creates a server from a configuration. It does not start listening.
func New(conf *config.Config) *Server {
	s := &Server{
		conf:  conf.Server,
		title: conf.Report.Title,
		layout: report.Layout{
			PageLines: conf.Report.PageLines,
			LineWidth: conf.Report.LineWidth,
		},
	}
	s.httpServer = &http.Server{
		Addr:         conf.Server.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  conf.Server.ReadTimeout.Std(),
		WriteTimeout: conf.Server.WriteTimeout.Std(),
	}
	return s
}

// Handler returns the routes of the server, wrapped in request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/scan", s.handleScan)
	mux.HandleFunc("/parse", s.handleParse)
	mux.HandleFunc("/report", s.handleReport)
	return loggingMiddleware(mux)
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.conf.Addr
}

// ListenAndServe serves requests until ctx is cancelled, then shuts down
// gracefully, waiting at most for the write timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.conf.Addr)
	if err != nil {
		return fmt.Errorf("server: cannot listen on %s: %w", s.conf.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is like ListenAndServe, but accepts connections from ln.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	tracer().Infof("serving GCL analysis on %s", ln.Addr())
	errc := make(chan error, 1)
	go func() {
		errc <- s.httpServer.Serve(ln)
	}()
	select {
	case err := <-errc:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}
	tracer().Infof("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownGrace())
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

func (s *Server) shutdownGrace() time.Duration {
	if d := s.conf.WriteTimeout.Std(); d > 0 {
		return d
	}
	return 5 * time.Second
}

// loggingMiddleware traces every request.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapper := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapper, r)
		tracer().Infof("%s %s -> %d (%v)", r.Method, r.URL.Path, wrapper.statusCode, time.Since(start))
	})
}

// responseWrapper captures the status code of a response.
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (w *responseWrapper) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

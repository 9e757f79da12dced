package shell

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/five82/pokedex/internal/logging"
)

const (
	indexFile = "index.html"

	// ServerErrorMessage is the body of every 500 response.
	ServerErrorMessage = "Something went wrong on the server!"

	shutdownTimeout = 5 * time.Second
)

// Options configure a Server.
type Options struct {
	PublicDir       string
	Host            string // "" listens on all interfaces
	Port            int
	MaxPortAttempts int
}

// Server serves the application shell: static files from PublicDir, with
// index.html for every path that is not a file.
type Server struct {
	opts    Options
	metrics *metrics
	router  chi.Router
}

// New builds a Server. PublicDir must exist; a missing index.html is only
// reported when requested.
func New(opts Options) (*Server, error) {
	if opts.PublicDir == "" {
		return nil, errors.New("public dir required")
	}
	info, err := os.Stat(opts.PublicDir)
	if err != nil {
		return nil, fmt.Errorf("public dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("public dir %s is not a directory", opts.PublicDir)
	}
	if opts.MaxPortAttempts <= 0 {
		opts.MaxPortAttempts = 1
	}

	s := &Server{opts: opts, metrics: newMetrics()}
	s.router = s.routes()
	return s, nil
}

// Handler returns the HTTP handler with all middleware applied.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.instrument)
	r.Use(s.recoverer)
	r.Use(middleware.Compress(5))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", s.metrics.handler())
	r.Get("/*", s.serveApp)

	return r
}

// serveApp serves the requested file when it exists under PublicDir and
// index.html otherwise.
func (s *Server) serveApp(w http.ResponseWriter, r *http.Request) {
	rel := path.Clean("/" + r.URL.Path)
	if rel != "/" {
		if served := s.serveFile(w, r, filepath.Join(s.opts.PublicDir, filepath.FromSlash(rel))); served {
			return
		}
	}
	if !s.serveFile(w, r, filepath.Join(s.opts.PublicDir, indexFile)) {
		logging.Error().Str("public_dir", s.opts.PublicDir).Msg("index.html missing")
		http.Error(w, ServerErrorMessage, http.StatusInternalServerError)
	}
}

// serveFile writes the regular file at name and reports whether it did.
func (s *Server) serveFile(w http.ResponseWriter, r *http.Request, name string) bool {
	f, err := os.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return false
	}
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	return true
}

// instrument logs each request and counts it by status class.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		started := time.Now()

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.metrics.observe(status)
		logging.Info().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote", r.RemoteAddr).
			Int("status", status).
			Int("bytes", ww.BytesWritten()).
			Dur("elapsed", time.Since(started)).
			Msg("request")
	})
}

// recoverer turns a handler panic into a plain 500 response.
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			s.metrics.panics.Inc()
			logging.Error().
				Str("request_id", middleware.GetReqID(r.Context())).
				Interface("panic", rec).
				Msg("handler panic")
			http.Error(w, ServerErrorMessage, http.StatusInternalServerError)
		}()
		next.ServeHTTP(w, r)
	})
}

// Listen binds host:port. When the port is taken it tries the following
// ports, up to attempts in total. Other bind errors are returned at once.
func Listen(host string, port, attempts int) (net.Listener, error) {
	if attempts <= 0 {
		attempts = 1
	}
	var lastErr error
	for i := range attempts {
		p := port + i
		if port == 0 && i > 0 {
			break
		}
		ln, err := net.Listen("tcp", net.JoinHostPort(host, strconv.Itoa(p)))
		if err == nil {
			return ln, nil
		}
		if !errors.Is(err, syscall.EADDRINUSE) {
			return nil, fmt.Errorf("listen on port %d: %w", p, err)
		}
		logging.Warn().Int("port", p).Msg("port in use, trying next")
		lastErr = err
	}
	return nil, fmt.Errorf("no free port in %d-%d: %w", port, port+attempts-1, lastErr)
}

// Run listens and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := Listen(s.opts.Host, s.opts.Port, s.opts.MaxPortAttempts)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logging.Info().
		Str("addr", ln.Addr().String()).
		Str("public_dir", s.opts.PublicDir).
		Msg("shell listening")

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logging.Info().Msg("shell shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

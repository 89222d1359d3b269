// ABOUTME: HTTP UI: role side panel, rendered dashboard page, JSON view, health, and metrics.
// ABOUTME: Every request runs its own render cycle; nothing is cached between requests.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
	"github.com/harperreed/galaxydash/internal/models"
	"github.com/harperreed/galaxydash/internal/render"
)

// Renderer runs one render cycle for a role.
type Renderer interface {
	Render(ctx context.Context, role models.Role) (*render.Page, error)
}

// Server serves the dashboard over HTTP.
type Server struct {
	renderer    Renderer
	defaultRole models.Role
	logger      *log.Logger
	metrics     http.Handler
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics mounts h at /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// WithDefaultRole sets the role rendered when the request names none.
func WithDefaultRole(role models.Role) Option {
	return func(s *Server) {
		s.defaultRole = role
	}
}

// New creates a server around renderer.
func New(renderer Renderer, opts ...Option) *Server {
	s := &Server{
		renderer:    renderer,
		defaultRole: models.RoleAthlete,
		logger:      log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the routed handler with request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("GET /api/view", s.handleView)
	mux.HandleFunc("GET /api/roles", s.handleRoles)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	if s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics)
	}
	return s.logRequests(mux)
}

// Run listens on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("serving dashboard", "addr", ln.Addr().String())
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	page, ok := s.render(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := render.WriteHTML(&buf, page, navFor(page.Role)); err != nil {
		s.logger.Error("write page", "role", page.Role, "err", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	page, ok := s.render(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := render.WriteJSON(&buf, page); err != nil {
		s.logger.Error("write view", "role", page.Role, "err", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(buf.Bytes())
}

type roleInfo struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func (s *Server) handleRoles(w http.ResponseWriter, r *http.Request) {
	roles := make([]roleInfo, 0, len(models.AllRoles))
	for _, role := range models.AllRoles {
		roles = append(roles, roleInfo{Name: string(role), Slug: role.Slug()})
	}
	writeJSON(w, http.StatusOK, roles)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// render resolves the role query parameter and runs a cycle, writing the
// error response itself when it returns false.
func (s *Server) render(w http.ResponseWriter, r *http.Request) (*render.Page, bool) {
	role := s.defaultRole
	if q := r.URL.Query().Get("role"); q != "" {
		parsed, err := models.ParseRole(q)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return nil, false
		}
		role = parsed
	}

	page, err := s.renderer.Render(r.Context(), role)
	switch {
	case err == nil:
		return page, true
	case errors.Is(err, models.ErrUnknownRole):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		http.Error(w, "request cancelled", http.StatusServiceUnavailable)
	default:
		s.logger.Error("render failed", "role", role, "err", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
	}
	return nil, false
}

func navFor(active string) []render.NavItem {
	nav := make([]render.NavItem, 0, len(models.AllRoles))
	for _, role := range models.AllRoles {
		nav = append(nav, render.NavItem{
			Label:  string(role),
			Href:   "/?role=" + url.QueryEscape(role.Slug()),
			Active: string(role) == active,
		})
	}
	return nav
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"elapsed", time.Since(start))
	})
}

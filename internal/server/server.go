package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"bookreview/internal/app"
	"bookreview/internal/ratelimit"
	"bookreview/internal/util"
	"bookreview/pkg/domain"
)

// Config wires required dependencies for the HTTP server.
type Config struct {
	App                        *app.App
	RedisAddr                  string
	RedisPassword              string
	RegisterRateLimitPerMinute int
	LoginRateLimitPerMinute    int
	MaxUploadBytes             int64
	TrustedProxies             *util.TrustedProxies
}

// Server exposes the HTTP endpoints for the book-review backend.
type Server struct {
	app             *app.App
	mux             *http.ServeMux
	maxUploadBytes  int64
	registerLimiter *ratelimit.FixedWindowLimiter
	loginLimiter    *ratelimit.FixedWindowLimiter
	trustedProxies  *util.TrustedProxies
}

// New constructs the server with routes configured.
func New(cfg Config) (*Server, error) {
	registerLimit := cfg.RegisterRateLimitPerMinute
	if registerLimit <= 0 {
		registerLimit = 5
	}
	loginLimit := cfg.LoginRateLimitPerMinute
	if loginLimit <= 0 {
		loginLimit = 10
	}
	newLimiter := func(name string, limit int) (*ratelimit.FixedWindowLimiter, error) {
		prefix := "bookreview:ratelimit:" + name
		limiter, err := ratelimit.NewRedisFixedWindowLimiter(cfg.RedisAddr, cfg.RedisPassword, prefix, limit, time.Minute)
		if err != nil {
			return nil, fmt.Errorf("init %s limiter: %w", name, err)
		}
		return limiter, nil
	}
	registerLimiter, err := newLimiter("register", registerLimit)
	if err != nil {
		return nil, err
	}
	loginLimiter, err := newLimiter("login", loginLimit)
	if err != nil {
		return nil, err
	}
	s := &Server{
		app:             cfg.App,
		mux:             http.NewServeMux(),
		maxUploadBytes:  normalizeMaxBytes(cfg.MaxUploadBytes),
		registerLimiter: registerLimiter,
		loginLimiter:    loginLimiter,
		trustedProxies:  cfg.TrustedProxies,
	}
	s.routes()
	return s, nil
}

// Router returns the configured handler with middleware applied.
func (s *Server) Router() http.Handler {
	handler := util.WithRequestLog("bookreview", s.mux)
	handler = util.WithRequestID(handler)
	return util.WithSecurityHeaders(util.WithCORS(handler))
}

func (s *Server) routes() {
	s.mux.HandleFunc("/healthz", s.handleHealth)

	// auth & profile
	s.mux.HandleFunc("/api/auth/register", s.handleRegister)
	s.mux.HandleFunc("/api/auth/login", s.handleLogin)
	s.mux.Handle("/api/users/me", s.authenticated(s.handleMe))
	s.mux.Handle("/api/users/me/avatar", s.authenticated(s.handleAvatarUpload))

	// public catalog
	s.mux.HandleFunc("/api/books", s.handleListBooks)
	s.mux.HandleFunc("/api/books/", s.handleBookByID)
	s.mux.HandleFunc("/api/books/search", s.handleSearch)

	// engagement (auth required)
	s.mux.Handle("/api/statuses", s.authenticated(s.handleStatuses))
	s.mux.Handle("/api/statuses/counts", s.authenticated(s.handleStatusCounts))
	s.mux.Handle("/api/reviews", s.authenticated(s.handleReviews))
	s.mux.Handle("/api/reviews/", s.authenticated(s.handleReviewByID))
	s.mux.Handle("/api/contact", s.authenticated(s.handleContact))

	// admin
	s.mux.Handle("/api/admin/books", s.adminOnly(s.handleAdminBooks))
	s.mux.Handle("/api/admin/books/", s.adminOnly(s.handleAdminBookByID))
	s.mux.Handle("/api/admin/users", s.adminOnly(s.handleAdminUsers))
	s.mux.Handle("/api/admin/users/", s.adminOnly(s.handleAdminUserRole))
	s.mux.Handle("/api/admin/contacts", s.adminOnly(s.handleAdminContacts))
	s.mux.Handle("/api/admin/contacts/", s.adminOnly(s.handleAdminContactByID))
	s.mux.Handle("/api/admin/stats", s.adminOnly(s.handleAdminStats))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// auth wrappers
type authHandler func(http.ResponseWriter, *http.Request, domain.User)

// authenticated rejects requests without a valid bearer token before any
// store access, then loads the authoritative user row.
func (s *Server) authenticated(next authHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := s.authorize(r)
		if !ok {
			s.audit(r, "authorize", "fail")
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next(w, r, user)
	})
}

// adminOnly distinguishes unauthenticated (401) from authenticated but
// not permitted (403).
func (s *Server) adminOnly(next authHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			s.audit(r, "admin.authorize", "fail", "reason", "missing_token")
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		claims, err := s.app.Tokens().Verify(token)
		if err != nil {
			s.audit(r, "admin.authorize", "fail", "reason", "invalid_token")
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		if claims.Role != domain.RoleAdmin {
			s.audit(r, "admin.authorize", "fail", "user_id", claims.UserID, "reason", "forbidden")
			writeError(w, http.StatusForbidden, "forbidden")
			return
		}
		user, err := s.app.GetProfile(claims.UserID)
		if err != nil {
			s.audit(r, "admin.authorize", "fail", "user_id", claims.UserID, "reason", "unknown_user")
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		s.audit(r, "admin.authorize", "success", "user_id", user.ID)
		next(w, r, user)
	})
}

func (s *Server) authorize(r *http.Request) (domain.User, bool) {
	token, ok := bearerToken(r)
	if !ok {
		return domain.User{}, false
	}
	claims, err := s.app.Tokens().Verify(token)
	if err != nil {
		return domain.User{}, false
	}
	user, err := s.app.GetProfile(claims.UserID)
	if err != nil {
		return domain.User{}, false
	}
	return user, true
}

// requesterID resolves an optional bearer token on public routes; an
// absent or invalid token just means an anonymous caller.
func (s *Server) requesterID(r *http.Request) string {
	token, ok := bearerToken(r)
	if !ok {
		return ""
	}
	claims, err := s.app.Tokens().Verify(token)
	if err != nil {
		return ""
	}
	return claims.UserID
}

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(authHeader) <= len(prefix) || authHeader[:len(prefix)] != prefix {
		return "", false
	}
	return authHeader[len(prefix):], true
}

func methodNotAllowed(w http.ResponseWriter) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeAppError maps service-layer errors onto the HTTP taxonomy.
// Unexpected faults are logged and the caller sees a generic message.
func writeAppError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case app.IsValidation(err):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, app.ErrEmailAlreadyExists):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, app.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, app.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, app.ErrUserNotFound),
		errors.Is(err, app.ErrBookNotFound),
		errors.Is(err, app.ErrReviewNotFound),
		errors.Is(err, app.ErrStatusNotFound),
		errors.Is(err, app.ErrContactNotFound),
		errors.Is(err, app.ErrNoBooksMatched),
		errors.Is(err, app.ErrNoReviews):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		slog.Error("unexpected error", "path", r.URL.Path, "method", r.Method, "err", err)
		writeError(w, http.StatusInternalServerError, "something went wrong")
	}
}

func normalizeMaxBytes(value int64) int64 {
	if value <= 0 {
		return 5 * 1024 * 1024
	}
	return value
}

func (s *Server) audit(r *http.Request, event, outcome string, attrs ...any) {
	logAttrs := []any{
		"event", event,
		"outcome", outcome,
		"path", r.URL.Path,
		"method", r.Method,
		"ip", util.ClientIP(r, s.trustedProxies),
	}
	logAttrs = append(logAttrs, attrs...)
	if outcome == "success" {
		slog.Info("security_event", logAttrs...)
		return
	}
	slog.Warn("security_event", logAttrs...)
}

func (s *Server) allowRate(w http.ResponseWriter, r *http.Request, limiter *ratelimit.FixedWindowLimiter, msg string) bool {
	key := r.URL.Path + "|" + util.ClientIP(r, s.trustedProxies)
	if limiter.Allow(key) {
		return true
	}
	w.Header().Set("Retry-After", "60")
	writeError(w, http.StatusTooManyRequests, msg)
	return false
}

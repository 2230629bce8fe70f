// ABOUTME: Identity and observability middleware for the API.
// ABOUTME: Resolves the tenant session per request and records metrics.
package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/hvilches/clubtrack/internal/tenant"
	"github.com/hvilches/clubtrack/pkg/logger"
)

// Identity headers. Authentication itself is handled upstream; the API
// trusts these headers the way the legacy app trusted its session cookie.
const (
	headerEmail = "X-User-Email"
	headerUID   = "X-User-Id"
)

type contextKey string

const sessionKey contextKey = "session"

// sessionFrom returns the resolved session for a request.
func sessionFrom(ctx context.Context) tenant.Session {
	sess, _ := ctx.Value(sessionKey).(tenant.Session)
	return sess
}

// identityMiddleware resolves the caller's tenant and stores the session in
// the request context. Requests without an identity are rejected before any
// data access.
func (s *Server) identityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := r.Header.Get(headerEmail)
		if email == "" {
			writeError(w, http.StatusUnauthorized, "missing "+headerEmail+" header")
			return
		}

		sess := s.resolver.Resolve(r.Context(), email, r.Header.Get(headerUID))
		ctx := context.WithValue(r.Context(), sessionKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// observeMiddleware logs each request and records Prometheus metrics.
func (s *Server) observeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		elapsed := time.Since(start)
		route := routeTemplate(r)
		status := strconv.Itoa(wrapped.status)

		requestsTotal.WithLabelValues(route, r.Method, status).Inc()
		requestDuration.WithLabelValues(route, r.Method).Observe(elapsed.Seconds())

		s.log.Info(r.Context(), "request",
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
			logger.String("status", status),
			logger.String("elapsed", elapsed.String()))
	})
}

// statusWriter captures the response status code for observation.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Flush passes through so SSE handlers keep streaming behind the middleware.
func (w *statusWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

package rest

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/koach/internal/common"
	"github.com/dmitrijs2005/koach/internal/logging"
	"github.com/dmitrijs2005/koach/internal/server/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// TokenVerifier resolves a session token to the user id it was issued for.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// AuthGate admits a request only with a valid "Authorization: Bearer <token>"
// header and passes the verified user id to the next handler through the
// request context. Rejected requests never reach next.
func AuthGate(tokens TokenVerifier, m *Metrics, logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get(common.AuthorizationHeader)
			if !strings.HasPrefix(header, common.BearerPrefix) {
				m.GateDecisions.WithLabelValues(outcomeMissingToken).Inc()
				writeError(w, r, logger, common.ErrMissingToken)
				return
			}

			userID, err := tokens.Verify(strings.TrimPrefix(header, common.BearerPrefix))
			if err != nil {
				m.GateDecisions.WithLabelValues(outcomeInvalidToken).Inc()
				logger.Debug(r.Context(), "token rejected",
					"request_id", middleware.GetReqID(r.Context()), "error", err)
				writeError(w, r, logger, common.ErrInvalidToken)
				return
			}

			m.GateDecisions.WithLabelValues(outcomeAuthorized).Inc()
			next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
		})
	}
}

// accessLog logs one line per request and feeds the request metrics.
func accessLog(logger logging.Logger, m *Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			elapsed := time.Since(start)
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}

			m.RequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
			m.RequestDuration.WithLabelValues(r.Method, route).Observe(elapsed.Seconds())

			logger.Info(r.Context(), "http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"bytes", ww.BytesWritten(),
				"duration", elapsed,
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

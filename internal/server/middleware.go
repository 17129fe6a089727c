package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"weatherapi-mcp/internal/logger"
)

// RequestLogger logs method, path, status, latency, and the chi request ID
// for every HTTP request.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		logger.L().Info().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int64("latency_ms", time.Since(start).Milliseconds()).
			Str("client_ip", r.RemoteAddr).
			Msg("http_request")
	})
}

package middleware

import (
	"net/http"

	"notes-server/pkg/logger"
)

const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware reuses an incoming X-Request-ID or generates one, and
// echoes it on the response.
func RequestIDMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := logger.NewRequestIDContext(r.Context(), r.Header.Get(RequestIDHeader))
			if id, ok := logger.GetRequestID(ctx); ok {
				w.Header().Set(RequestIDHeader, id)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

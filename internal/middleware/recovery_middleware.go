package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"notes-server/pkg/logger"
	"notes-server/pkg/response"

	"go.uber.org/zap"
)

func RecoveryMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				ctx := r.Context()
				logger.Log(ctx).Error(ctx, "Server panic",
					zap.String("error", fmt.Sprintf("%v", rec)),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("stack", string(debug.Stack())),
				)

				response.InternalError(w, "Internal server error")
			}()

			next.ServeHTTP(w, r)
		})
	}
}

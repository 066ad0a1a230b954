package api

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// RequestTimeout bounds every request; queries are in-memory so anything
// near this long is a bug, not a slow backend
const RequestTimeout = 10 * time.Second

// TimeoutMiddleware adds request timeout to prevent long-running requests
func TimeoutMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), RequestTimeout)
		defer cancel()
		r = r.WithContext(ctx)

		done := make(chan struct{})
		go func() {
			next.ServeHTTP(w, r)
			close(done)
		}()

		select {
		case <-done:
		case <-ctx.Done():
			if ctx.Err() == context.DeadlineExceeded {
				zap.S().Warnw("request timeout",
					"path", r.URL.Path,
					"method", r.Method,
					"timeout", RequestTimeout,
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusRequestTimeout)
				w.Write([]byte(`{"code": "TIMEOUT", "message": "the request took too long to process"}`))
			}
		}
	})
}

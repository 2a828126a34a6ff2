package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"
)

// Middleware turns new requests away with 503 once ongoingCtx is cancelled
// and shutdown has been flagged. Keep-alive connections are asked to close so
// clients reconnect to another instance.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isShuttingDown.Load() {
				w.Header().Set("Connection", "close")

				if ongoingCtx.Err() != nil {
					http.Error(w, "Service is shutting down", http.StatusServiceUnavailable)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

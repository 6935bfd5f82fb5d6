package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// deadlineWriter suppresses handler writes once the request deadline fired,
// so the timeout response is the only thing the client sees.
type deadlineWriter struct {
	http.ResponseWriter
	mu       sync.Mutex
	timedOut bool
	written  bool
}

func (dw *deadlineWriter) WriteHeader(code int) {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	if dw.timedOut || dw.written {
		return
	}
	dw.written = true
	dw.ResponseWriter.WriteHeader(code)
}

func (dw *deadlineWriter) Write(b []byte) (int, error) {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	if dw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if !dw.written {
		dw.written = true
	}
	return dw.ResponseWriter.Write(b)
}

func (dw *deadlineWriter) markTimedOut() (alreadyWritten bool) {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	dw.timedOut = true
	return dw.written
}

func RequestTimeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			r = r.WithContext(ctx)
			dw := &deadlineWriter{ResponseWriter: w}

			done := make(chan struct{})
			go func() {
				next.ServeHTTP(dw, r)
				close(done)
			}()

			select {
			case <-done:
			case <-ctx.Done():
				if !dw.markTimedOut() {
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusServiceUnavailable)
					_, _ = w.Write([]byte(`{"success":false,"error":"Request timeout"}`))
				}
			}
		})
	}
}

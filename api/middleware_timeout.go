package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// TimeoutMiddleware adds request timeout to prevent long-running requests.
// Once the timeout response is sent, anything the handler still writes is
// dropped so the two never interleave on the same ResponseWriter.
func TimeoutMiddleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			r = r.WithContext(ctx)
			tw := &timeoutWriter{ResponseWriter: w}

			done := make(chan struct{})
			go func() {
				next.ServeHTTP(tw, r)
				close(done)
			}()

			select {
			case <-done:
			case <-ctx.Done():
				if ctx.Err() == context.DeadlineExceeded {
					zap.S().Warnw("request timeout",
						"path", r.URL.Path,
						"method", r.Method,
						"timeout", timeout)
					tw.timeout([]byte(`{"message":"the request took too long to process"}`))
				}
			}
		})
	}
}

// timeoutWriter serializes access to the underlying ResponseWriter and
// silently discards handler writes that arrive after the timeout fired
type timeoutWriter struct {
	http.ResponseWriter
	mu       sync.Mutex
	timedOut bool
}

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.timedOut {
		return
	}
	tw.ResponseWriter.WriteHeader(code)
}

func (tw *timeoutWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.timedOut {
		return len(b), nil
	}
	return tw.ResponseWriter.Write(b)
}

func (tw *timeoutWriter) timeout(body []byte) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	tw.timedOut = true
	tw.ResponseWriter.WriteHeader(http.StatusRequestTimeout)
	tw.ResponseWriter.Write(body)
}

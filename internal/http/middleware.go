package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/fairyhunter13/sri-rajeswari-provisions/internal/obs"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

type ctxKey int

const (
	ctxKeyRequestID ctxKey = iota
)

const routeUnmatched = "unmatched"

func RequestIDFromContext(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyRequestID).(string)
	return v
}

type statusRecorder struct {
	h  http.ResponseWriter
	st int
	n  int
}

func (w *statusRecorder) Header() http.Header { return w.h.Header() }
func (w *statusRecorder) WriteHeader(code int) {
	w.st = code
	w.h.WriteHeader(code)
}
func (w *statusRecorder) Write(b []byte) (int, error) {
	n, err := w.h.Write(b)
	w.n += n
	return n, err
}

// routeTemplate returns the matched route pattern so metrics labels stay bounded.
func routeTemplate(r *http.Request) string {
	if cr := mux.CurrentRoute(r); cr != nil {
		if tpl, err := cr.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return routeUnmatched
}

func WithRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-Id")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", reqID)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKeyRequestID, reqID)))
	})
}

func WithLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sr := &statusRecorder{h: w, st: 200}
		next.ServeHTTP(sr, r)
		lat := time.Since(start)
		obs.Logger.Info("http_request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sr.st,
			"bytes", sr.n,
			"latency_ms", float64(lat.Microseconds())/1000.0,
			"request_id", RequestIDFromContext(r.Context()),
		)
	})
}

// WithRecover turns a handler panic into a 500 response.
func WithRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				if v == http.ErrAbortHandler {
					panic(v)
				}
				obs.Logger.Error("handler_panic",
					"panic", v,
					"path", r.URL.Path,
					"request_id", RequestIDFromContext(r.Context()),
				)
				WriteJSONError(w, http.StatusInternalServerError, detailInternal)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// withMetrics must run inside the router so the matched route is known.
func withMetrics(service string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sr := &statusRecorder{h: w, st: 200}
			next.ServeHTTP(sr, r)
			obs.RecordRequest(service, r.Method, routeTemplate(r), sr.st, time.Since(start))
		})
	}
}

// withRateLimit rejects requests once the process-wide token bucket is empty.
// A nil limiter disables the check.
func withRateLimit(l *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if l == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allow() {
				w.Header().Set("Retry-After", "1")
				WriteJSONError(w, http.StatusTooManyRequests, detailTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

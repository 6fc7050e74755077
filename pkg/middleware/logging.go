package middleware

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/goretsky-band/dodo-reports/pkg/log"
)

// LoggingMiddleware logs every HTTP request with a fresh correlation id.
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			log.L.WithFields(log.Fields{
				"correlation_id": correlationID,
				"method":         r.Method,
				"path":           r.URL.Path,
			}).Info("request started")

			next.ServeHTTP(lrw, r)

			responseTime := time.Since(startTime)
			logger := log.L.WithFields(log.Fields{
				"correlation_id": correlationID,
				"method":         r.Method,
				"path":           r.URL.Path,
				"duration_ms":    responseTime.Milliseconds(),
				"status_code":    lrw.statusCode,
			})

			switch {
			case lrw.statusCode >= 500:
				logger.Error("request failed")
			case lrw.statusCode >= 400:
				logger.Warn("request finished with warning")
			default:
				logger.Info("request finished")
			}

			if responseTime > 500*time.Millisecond {
				log.L.Warnf("slow request: %s %s (%s)", r.Method, r.URL.Path, formatDuration(responseTime))
			}
		})
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%d µs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%d ms", d.Milliseconds())
	}
	return fmt.Sprintf("%.2f s", d.Seconds())
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{w, http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware turns handler panics into logged 500 responses.
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := make([]byte, 4096)
					stackSize := runtime.Stack(stack, false)

					logger := log.L.WithFields(log.Fields{
						"correlation_id": log.GetCorrelationID(r.Context()),
						"panic_error":    err,
						"method":         r.Method,
						"path":           r.URL.Path,
					})
					logger.Error("unhandled panic")
					logger.WithField("stack_trace", string(stack[:stackSize])).Error("panic stack trace")

					http.Error(w, "internal server error", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

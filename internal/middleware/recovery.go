package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jaekwang-park/userpool-auth/internal/logging"
)

// committedWriter remembers whether the response has started, after which
// an error envelope can no longer be sent.
type committedWriter struct {
	http.ResponseWriter
	committed bool
}

func (w *committedWriter) WriteHeader(code int) {
	w.committed = true
	w.ResponseWriter.WriteHeader(code)
}

func (w *committedWriter) Write(b []byte) (int, error) {
	w.committed = true
	return w.ResponseWriter.Write(b)
}

func (w *committedWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// panicError converts a recovered value into an error.
func panicError(v any) error {
	if err, ok := v.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", v)
}

// Recovery turns a handler panic into a 500 INTERNAL_ERROR envelope, the same
// response a failed auth operation gets. Inside Logging the request-scoped
// logger is used so the log line carries the request id. http.ErrAbortHandler
// is re-raised for net/http to abort the connection.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cw := &committedWriter{ResponseWriter: w}

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				err := panicError(v)
				if errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				log := logger
				if GetRequestID(r.Context()) != "" {
					log = logging.FromContext(r.Context())
				}
				log.ErrorContext(r.Context(), "panic recovered",
					"error", err,
					"method", r.Method,
					"path", r.URL.Path,
					"committed", cw.committed,
					"stack", string(debug.Stack()),
				)

				if !cw.committed {
					writeError(cw, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
				}
			}()

			next.ServeHTTP(cw, r)
		})
	}
}

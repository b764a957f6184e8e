package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/pkg"

	log "github.com/sirupsen/logrus"
)

type panicResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

// PanicRecovery turns a panicking handler into a JSON 500 carrying the request id,
// so a failed save can be matched with its log line.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				if recovered == http.ErrAbortHandler {
					panic(recovered)
				}

				requestID := w.Header().Get(RequestIDHeader)
				if requestID == "" {
					requestID = r.Header.Get(RequestIDHeader)
				}
				log.WithFields(log.Fields{
					"method":     r.Method,
					"path":       r.URL.Path,
					"request_id": requestID,
				}).Errorf("panic serving request: %v\n%s", recovered, debug.Stack())

				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				pkg.WriteJSON(w, panicResponse{
					Error:     fmt.Sprintf("internal server error [%s %s]", r.Method, r.URL.Path),
					RequestID: requestID,
				}, http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}

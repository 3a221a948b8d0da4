package gcplog

import (
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"time"
)

// HTTPRequest represents the GCP Cloud Logging httpRequest structure
// See: https://cloud.google.com/logging/docs/reference/v2/rest/v2/LogEntry#HttpRequest
type HTTPRequest struct {
	RequestMethod string `json:"requestMethod,omitempty"`
	RequestURL    string `json:"requestUrl,omitempty"`
	RequestSize   int64  `json:"requestSize,omitempty,string"`
	Status        int    `json:"status,omitempty"`
	ResponseSize  int64  `json:"responseSize,omitempty,string"`
	UserAgent     string `json:"userAgent,omitempty"`
	RemoteIP      string `json:"remoteIp,omitempty"`
	Referer       string `json:"referer,omitempty"`
	Latency       string `json:"latency,omitempty"`
	Protocol      string `json:"protocol,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code and bytes written
type responseWriter struct {
	http.ResponseWriter
	status       int
	bytesWritten int64
	wroteHeader  bool
}

func (w *responseWriter) WriteHeader(status int) {
	if !w.wroteHeader {
		w.status = status
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.wroteHeader = true
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytesWritten += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// HTTPMiddleware returns a middleware that logs HTTP requests in GCP format.
// Requests whose path is listed in skip (e.g. health probes) are not logged.
func HTTPMiddleware(logger *slog.Logger, skip ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if slices.Contains(skip, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			wrapped := &responseWriter{
				ResponseWriter: w,
				status:         http.StatusOK,
			}

			next.ServeHTTP(wrapped, r)

			latency := time.Since(start)
			httpReq := HTTPRequest{
				RequestMethod: r.Method,
				RequestURL:    r.URL.String(),
				RequestSize:   max(r.ContentLength, 0),
				Status:        wrapped.status,
				ResponseSize:  wrapped.bytesWritten,
				UserAgent:     r.UserAgent(),
				RemoteIP:      r.RemoteAddr,
				Referer:       r.Referer(),
				Latency:       formatLatency(latency),
				Protocol:      r.Proto,
			}

			level := slog.LevelInfo
			if wrapped.status >= 500 {
				level = slog.LevelError
			} else if wrapped.status >= 400 {
				level = slog.LevelWarn
			}

			logger.Log(r.Context(), level, "HTTP request",
				"httpRequest", httpReq,
				"path", r.URL.Path,
				"status", wrapped.status,
				"duration_ms", latency.Milliseconds(),
			)
		})
	}
}

// formatLatency renders d the way Cloud Logging expects, e.g. "0.012345s"
func formatLatency(d time.Duration) string {
	return fmt.Sprintf("%.6fs", d.Seconds())
}

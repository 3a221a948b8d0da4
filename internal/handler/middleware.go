package handler

import (
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/knorx/knorx-site/internal/appctx"
)

// CanonicalHost redirects page requests for other hosts (e.g. the apex domain)
// to the host in BASE_URL. Local hosts, health probes and non-GET requests pass through.
func (h *Handler) CanonicalHost(next http.Handler) http.Handler {
	canonical := h.config.Server.CanonicalHost()
	if canonical == "" {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Host == canonical || isLocalHost(r.Host) || r.URL.Path == "/health" {
			next.ServeHTTP(w, r)
			return
		}
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			next.ServeHTTP(w, r)
			return
		}

		http.Redirect(w, r, h.config.Server.URL(r.URL.RequestURI()), http.StatusMovedPermanently)
	})
}

func isLocalHost(hostport string) bool {
	host := hostport
	if h, _, err := net.SplitHostPort(hostport); err == nil {
		host = h
	}
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

// Recoverer turns handler panics into 500 responses. API routes keep their
// fixed JSON error body.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			appctx.GetLogger(r.Context()).Error("panic while serving request",
				slog.Any("panic", rec),
				slog.String("stack", string(debug.Stack())),
			)

			if strings.HasPrefix(r.URL.Path, "/api/") {
				writeJSON(w, http.StatusInternalServerError, contactError)
				return
			}
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}

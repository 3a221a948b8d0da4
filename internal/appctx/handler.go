package appctx

import (
	"log/slog"
	"net/http"
)

// Middleware is the signature shared by every HTTP middleware in the app
type Middleware func(http.Handler) http.Handler

// Handler wraps h with the request logger followed by the given middlewares.
// Middlewares run in order, so the first one sees the request first.
func Handler(h http.Handler, logger *slog.Logger, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return LoggerMiddleware(logger)(h)
}

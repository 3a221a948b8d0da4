package handler

import (
	"embed"
	"net/http"
)

//go:embed static
var staticFiles embed.FS

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {

	// Register static files route first to avoid pattern conflicts
	mux.Handle("GET /static/", cacheStatic(http.FileServer(http.FS(staticFiles))))

	// Landing page
	mux.HandleFunc("GET /{$}", h.Home)

	// Contact form: JSON endpoint used by contact.js, form post for no-JS browsers
	mux.HandleFunc("POST /api/contact", h.ContactAPI)
	mux.HandleFunc("POST /contact", h.ContactForm)

	// Operational and SEO routes
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /sitemap.xml", h.Sitemap)
	mux.HandleFunc("GET /robots.txt", h.Robots)

	// Everything else
	mux.HandleFunc("/", h.NotFound)
}

// cacheStatic lets browsers keep embedded assets for a day
func cacheStatic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=86400")
		next.ServeHTTP(w, r)
	})
}

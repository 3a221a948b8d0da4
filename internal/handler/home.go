package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/samber/lo"

	"github.com/knorx/knorx-site/internal/handler/components"
)

// Home renders the home page
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	view := h.homeView(r)
	view.Contact.Success = r.URL.Query().Get("sent") == "1"

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	lo.Must0(components.HomePage(view).Render(r.Context(), w))
}

// NotFound renders the 404 page
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	templ.Handler(
		components.NotFoundPage(h.now().Year()),
		templ.WithStatus(http.StatusNotFound),
	).ServeHTTP(w, r)
}

func (h *Handler) homeView(r *http.Request) components.HomeView {
	return components.HomeView{
		Page: components.PageConfig{
			URL:     h.baseURL(r) + "/",
			OGImage: h.baseURL(r) + "/static/images/logo.svg",
		},
		Year: h.now().Year(),
	}
}

// baseURL returns the configured public URL, or one derived from the request
func (h *Handler) baseURL(r *http.Request) string {
	if h.config.Server.BaseURL != "" {
		return h.config.Server.URL("")
	}

	scheme := "https"
	if r.TLS == nil {
		scheme = "http"
	}
	return scheme + "://" + r.Host
}

package handler

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"time"
)

// URLSet represents the root element of the sitemap
type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// URL represents a single URL entry in the sitemap
type URL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float64 `xml:"priority,omitempty"`
}

// sitemapPages are the indexable pages of the site
var sitemapPages = []struct {
	path       string
	changefreq string
	priority   float64
}{
	{"/", "weekly", 1.0},
}

// Sitemap generates and serves the sitemap.xml
func (h *Handler) Sitemap(w http.ResponseWriter, r *http.Request) {
	baseURL := h.baseURL(r)

	urlSet := URLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  []URL{},
	}

	now := h.now().Format(time.DateOnly)
	for _, page := range sitemapPages {
		urlSet.URLs = append(urlSet.URLs, URL{
			Loc:        baseURL + page.path,
			LastMod:    now,
			ChangeFreq: page.changefreq,
			Priority:   page.priority,
		})
	}

	out, err := xml.MarshalIndent(urlSet, "", "  ")
	if err != nil {
		http.Error(w, "Failed to generate sitemap", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(xml.Header))
	w.Write(out)
}

// Robots serves robots.txt pointing crawlers at the sitemap
func (h *Handler) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", h.baseURL(r))
}

// Health reports liveness
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

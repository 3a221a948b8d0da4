package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/knorx/knorx-site/internal/config"
)

func TestSitemap(t *testing.T) {
	// Create a test config
	cfg := &config.Config{
		Server: config.ServerConfig{
			BaseURL: "https://www.knorx.tech",
		},
	}

	// Create handler
	h := &Handler{
		config: cfg,
		now:    func() time.Time { return time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC) },
	}

	// Create test request
	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	w := httptest.NewRecorder()

	// Call the handler
	h.Sitemap(w, req)

	// Check status code
	if w.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, w.Code)
	}

	// Check content type
	contentType := w.Header().Get("Content-Type")
	if !strings.Contains(contentType, "application/xml") {
		t.Errorf("Expected content type to contain 'application/xml', got %s", contentType)
	}

	body := w.Body.String()

	// Check for XML declaration
	if !strings.Contains(body, "<?xml version") {
		t.Error("Expected XML declaration in response")
	}

	// Check for urlset element
	if !strings.Contains(body, "<urlset") {
		t.Error("Expected <urlset> element in response")
	}

	if !strings.Contains(body, "<loc>https://www.knorx.tech/</loc>") {
		t.Error("Expected landing page URL in sitemap")
	}

	if !strings.Contains(body, "<lastmod>2026-03-14</lastmod>") {
		t.Error("Expected <lastmod> from handler clock")
	}

	// Check for SEO attributes
	if !strings.Contains(body, "<changefreq>") {
		t.Error("Expected <changefreq> elements in sitemap")
	}

	if !strings.Contains(body, "<priority>") {
		t.Error("Expected <priority> elements in sitemap")
	}
}

func TestSitemap_NoBaseURL(t *testing.T) {
	// Create a test config without base URL
	cfg := &config.Config{
		Server: config.ServerConfig{
			BaseURL: "",
		},
	}

	// Create handler
	h := &Handler{
		config: cfg,
		now:    time.Now,
	}

	// Create test request with host
	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	req.Host = "example.com"
	w := httptest.NewRecorder()

	// Call the handler
	h.Sitemap(w, req)

	// Check status code
	if w.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, w.Code)
	}

	// Check that URLs use the request host
	body := w.Body.String()
	if !strings.Contains(body, "http://example.com/") {
		t.Error("Expected URLs to use request host when BASE_URL is not set")
	}
}

func TestRobots(t *testing.T) {
	h := &Handler{
		config: &config.Config{Server: config.ServerConfig{BaseURL: "https://www.knorx.tech/"}},
		now:    time.Now,
	}

	w := httptest.NewRecorder()
	h.Robots(w, httptest.NewRequest(http.MethodGet, "/robots.txt", nil))

	if w.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, w.Code)
	}
	if !strings.Contains(w.Body.String(), "Sitemap: https://www.knorx.tech/sitemap.xml") {
		t.Errorf("Expected sitemap link in robots.txt, got %q", w.Body.String())
	}
}

package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/Abhinay9346/portfolio/internal/service"
)

type SEOHandler struct {
	sitemapService *service.SitemapService
	baseURL        string
}

func NewSEOHandler(blogService *service.BlogService, baseURL string) *SEOHandler {
	return &SEOHandler{
		sitemapService: service.NewSitemapService(blogService, baseURL),
		baseURL:        strings.TrimRight(baseURL, "/"),
	}
}

// Robots serves static/robots.txt when present, else allows everything and
// points at the sitemap.
func (h *SEOHandler) Robots(w http.ResponseWriter, r *http.Request) {
	content, err := os.ReadFile(filepath.Join("static", "robots.txt"))
	if err != nil {
		content = fmt.Appendf(nil, "User-agent: *\nAllow: /\nSitemap: %s/sitemap.xml\n", h.baseURL)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, err = w.Write(content)
	if err != nil {
		slog.Error("failed to write robots.txt", "error", err)
	}
}

func (h *SEOHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	sitemap, err := h.sitemapService.GenerateSitemap()
	if err != nil {
		slog.Error("failed to generate sitemap", "error", err)
		http.Error(w, "Failed to generate sitemap", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, err = w.Write(sitemap)
	if err != nil {
		slog.Error("failed to write sitemap", "error", err)
	}
}

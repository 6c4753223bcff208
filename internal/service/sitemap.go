package service

import (
	"encoding/xml"
	"net/url"
	"strings"
	"time"

	"github.com/Abhinay9346/portfolio/internal/model"
)

// publicRoutes defines all static public routes that should be included in the sitemap
var publicRoutes = []struct {
	Path       string
	Priority   string
	ChangeFreq string
}{
	{"/", "1.0", "monthly"},
	{"/blog", "0.8", "weekly"},
}

type SitemapService struct {
	blogService *BlogService
	baseURL     string
	now         func() time.Time
}

// NewSitemapService creates a new sitemap service
func NewSitemapService(blogService *BlogService, baseURL string) *SitemapService {
	// Ensure baseURL doesn't have trailing slash
	baseURL = strings.TrimSuffix(baseURL, "/")

	return &SitemapService{
		blogService: blogService,
		baseURL:     baseURL,
		now:         time.Now,
	}
}

// GenerateSitemap generates a complete sitemap including all pages
func (s *SitemapService) GenerateSitemap() ([]byte, error) {
	sitemap := model.Sitemap{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  []model.SitemapURL{},
	}

	sitemap.URLs = append(sitemap.URLs, s.staticURLs()...)
	sitemap.URLs = append(sitemap.URLs, s.blogURLs()...)

	output, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, err
	}

	result := xml.Header + string(output)
	return []byte(result), nil
}

func (s *SitemapService) staticURLs() []model.SitemapURL {
	today := s.now().Format("2006-01-02")
	urls := make([]model.SitemapURL, 0, len(publicRoutes))

	for _, route := range publicRoutes {
		urls = append(urls, model.SitemapURL{
			Loc:        s.baseURL + route.Path,
			LastMod:    today,
			ChangeFreq: route.ChangeFreq,
			Priority:   route.Priority,
		})
	}

	return urls
}

// blogURLs returns post URLs in declaration order followed by tag pages
func (s *SitemapService) blogURLs() []model.SitemapURL {
	today := s.now().Format("2006-01-02")
	posts := s.blogService.Posts()
	urls := make([]model.SitemapURL, 0, len(posts))

	for _, post := range posts {
		lastMod := today
		if !post.PublishedAt.IsZero() {
			lastMod = post.PublishedAt.Format("2006-01-02")
		}

		urls = append(urls, model.SitemapURL{
			Loc:        s.baseURL + "/blog/" + post.Slug,
			LastMod:    lastMod,
			ChangeFreq: "monthly",
			Priority:   "0.7",
		})
	}

	for _, tag := range s.blogService.Tags() {
		urls = append(urls, model.SitemapURL{
			Loc:        s.baseURL + "/blog/tag/" + url.PathEscape(tag),
			LastMod:    today,
			ChangeFreq: "weekly",
			Priority:   "0.5",
		})
	}

	return urls
}

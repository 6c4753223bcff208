package service

import (
	"encoding/xml"
	"testing"
	"time"

	"github.com/Abhinay9346/portfolio/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapService_GenerateSitemap(t *testing.T) {
	blog := NewStaticBlogService([]*model.BlogPost{
		{Slug: "dated", Tags: []string{"Node.js", "QR Code"}, PublishedAt: time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)},
		{Slug: "undated", Tags: []string{"node.js"}},
	})

	s := NewSitemapService(blog, "https://example.com/")
	s.now = func() time.Time { return time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC) }

	out, err := s.GenerateSitemap()
	require.NoError(t, err)
	assert.Contains(t, string(out), `<?xml version="1.0" encoding="UTF-8"?>`)

	var sitemap model.Sitemap
	require.NoError(t, xml.Unmarshal(out, &sitemap))

	locs := make([]string, len(sitemap.URLs))
	for i, u := range sitemap.URLs {
		locs[i] = u.Loc
	}
	assert.Equal(t, []string{
		"https://example.com/",
		"https://example.com/blog",
		"https://example.com/blog/dated",
		"https://example.com/blog/undated",
		"https://example.com/blog/tag/Node.js",
		"https://example.com/blog/tag/QR%20Code",
	}, locs)

	assert.Equal(t, "2025-11-01", sitemap.URLs[2].LastMod)
	assert.Equal(t, "2026-10-14", sitemap.URLs[3].LastMod)
}

package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Abhinay9346/portfolio/internal/model"
	"github.com/Abhinay9346/portfolio/internal/repository"
	"github.com/Abhinay9346/portfolio/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPosts = []*model.BlogPost{
	{Slug: "first", Title: "First", Tags: []string{"Go"}, Content: "## One\nbody"},
	{Slug: "second", Title: "Second", Tags: []string{"go", "Security"}, Content: "text"},
	{Slug: "third", Title: "Third", Tags: []string{"Security"}, Content: "- item"},
}

type memoryRepo struct {
	messages []*model.ContactMessage
	err      error
}

func (r *memoryRepo) Create(m *model.ContactMessage) error {
	if r.err != nil {
		return r.err
	}
	m.ID = "id"
	r.messages = append(r.messages, m)
	return nil
}

func (r *memoryRepo) ByID(string) (*model.ContactMessage, error) {
	return nil, repository.ErrMessageNotFound
}

func (r *memoryRepo) Recent(int) ([]*model.ContactMessage, error) {
	return r.messages, nil
}

type nopNotifier struct{}

func (nopNotifier) SendContactNotification(context.Context, *model.ContactMessage) error { return nil }

func get(t *testing.T, h http.HandlerFunc, pattern, target string) *httptest.ResponseRecorder {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc(pattern, h)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestBlogHandler_ShowPost(t *testing.T) {
	h := NewBlogHandler(service.NewStaticBlogService(testPosts))

	rec := get(t, h.ShowPost, "GET /blog/{slug}", "/blog/second")
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `href="/blog/first"`)
	assert.Contains(t, body, `href="/blog/third"`)

	rec = get(t, h.ShowPost, "GET /blog/{slug}", "/blog/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page not found")
}

func TestBlogHandler_ListPosts(t *testing.T) {
	h := NewBlogHandler(service.NewStaticBlogService(testPosts))

	rec := get(t, h.ListPosts, "GET /blog", "/blog")
	assert.Equal(t, http.StatusOK, rec.Code)
	for _, p := range testPosts {
		assert.Contains(t, rec.Body.String(), `href="/blog/`+p.Slug+`"`)
	}
}

func TestBlogHandler_ListByTag(t *testing.T) {
	h := NewBlogHandler(service.NewStaticBlogService(testPosts))

	rec := get(t, h.ListByTag, "GET /blog/tag/{tag}", "/blog/tag/GO")
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `href="/blog/first"`)
	assert.Contains(t, body, `href="/blog/second"`)
	assert.NotContains(t, body, `href="/blog/third"`)

	rec = get(t, h.ListByTag, "GET /blog/tag/{tag}", "/blog/tag/rust")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHomeHandler(t *testing.T) {
	h := NewHomeHandler(service.NewPortfolioService(), service.NewStaticBlogService(testPosts))

	rec := get(t, h.HomePage, "GET /{$}", "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `id="contact-form"`)

	rec = get(t, h.NotFoundPage, "/{path...}", "/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSEOHandler(t *testing.T) {
	h := NewSEOHandler(service.NewStaticBlogService(testPosts), "https://example.com/")

	rec := get(t, h.Robots, "GET /robots.txt", "/robots.txt")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sitemap: https://example.com/sitemap.xml")

	rec = get(t, h.Sitemap, "GET /sitemap.xml", "/sitemap.xml")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/xml")
	assert.Contains(t, rec.Body.String(), "<loc>https://example.com/blog/third</loc>")
}

func postContact(h *ContactHandler, form url.Values, fragment bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if fragment {
		req.Header.Set(FragmentHeader, "fetch")
	}
	rec := httptest.NewRecorder()
	h.Submit(rec, req)
	return rec
}

func TestContactHandler_Submit(t *testing.T) {
	valid := url.Values{"name": {"Ada"}, "email": {"ada@example.com"}, "message": {"Hello there"}}

	t.Run("success fragment", func(t *testing.T) {
		repo := &memoryRepo{}
		h := NewContactHandler(service.NewContactService(repo, nopNotifier{}), service.NewPortfolioService(), service.NewStaticBlogService(testPosts))

		rec := postContact(h, valid, true)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `role="status"`)
		assert.NotContains(t, rec.Body.String(), "<html")
		require.Len(t, repo.messages, 1)
		assert.Equal(t, "Ada", repo.messages[0].Name)
	})

	t.Run("validation error keeps values", func(t *testing.T) {
		repo := &memoryRepo{}
		h := NewContactHandler(service.NewContactService(repo, nopNotifier{}), service.NewPortfolioService(), service.NewStaticBlogService(testPosts))

		form := url.Values{"name": {"Ada"}, "email": {"not-an-email"}, "message": {"Hello"}}
		rec := postContact(h, form, true)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), `role="alert"`)
		assert.Contains(t, rec.Body.String(), `value="not-an-email"`)
		assert.Empty(t, repo.messages)
	})

	t.Run("storage failure", func(t *testing.T) {
		repo := &memoryRepo{err: errors.New("disk full")}
		h := NewContactHandler(service.NewContactService(repo, nopNotifier{}), service.NewPortfolioService(), service.NewStaticBlogService(testPosts))

		rec := postContact(h, valid, true)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "Something went wrong")
		assert.NotContains(t, rec.Body.String(), "disk full")
	})

	t.Run("plain post renders full page", func(t *testing.T) {
		h := NewContactHandler(service.NewContactService(&memoryRepo{}, nopNotifier{}), service.NewPortfolioService(), service.NewStaticBlogService(testPosts))

		rec := postContact(h, valid, false)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "<!DOCTYPE html>")
		assert.Contains(t, rec.Body.String(), `role="status"`)
	})
}

type presigner struct{}

func (presigner) Save(context.Context, string, io.Reader, string) error { return nil }

func (presigner) PresignedURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://bucket.example.com/" + key + "?sig=1", nil
}

func TestResumeHandler(t *testing.T) {
	t.Run("storage redirect", func(t *testing.T) {
		h := NewResumeHandler(service.NewResumeService(presigner{}, "Resume.pdf", "", time.Minute))

		rec := get(t, h.Download, "GET /resume", "/resume")
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "https://bucket.example.com/Resume.pdf?sig=1", rec.Header().Get("Location"))
	})

	t.Run("local file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "Resume.pdf")
		require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 test"), 0o644))
		h := NewResumeHandler(service.NewResumeService(nil, "", path, 0))

		rec := get(t, h.Download, "GET /resume", "/resume")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "%PDF-1.4 test", rec.Body.String())
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "Resume.pdf")
	})

	t.Run("missing", func(t *testing.T) {
		h := NewResumeHandler(service.NewResumeService(nil, "", filepath.Join(t.TempDir(), "none.pdf"), 0))

		rec := get(t, h.Download, "GET /resume", "/resume")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

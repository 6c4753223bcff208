package pages

import (
	"bytes"
	"context"
	"testing"

	"github.com/Abhinay9346/portfolio/internal/config"
	"github.com/Abhinay9346/portfolio/internal/ctxkeys"
	"github.com/Abhinay9346/portfolio/internal/model"
	"github.com/Abhinay9346/portfolio/internal/service"
	"github.com/Abhinay9346/portfolio/internal/ui/blocks"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, path string, c templ.Component) string {
	t.Helper()
	ctx := ctxkeys.WithConfig(context.Background(), &config.Config{AppName: "Nagireddi Abhinay"})
	ctx = ctxkeys.WithURLPath(ctx, path)
	ctx = templ.WithNonce(ctx, "n0nce")

	var buf bytes.Buffer
	require.NoError(t, c.Render(ctx, &buf))
	return buf.String()
}

var testPosts = []*model.BlogPost{
	{Slug: "first", Title: "First Post", Description: "one", Date: "Jan 2026", ReadTime: "3 min read", Tags: []string{"Go"}, Content: "## Intro\nHello *world*"},
	{Slug: "second", Title: "Second Post", Description: "two", Date: "Feb 2026", ReadTime: "5 min read", Tags: []string{"Security"}},
}

func TestHome(t *testing.T) {
	p := service.NewPortfolioService().Portfolio()
	out := render(t, "/", Home(p, testPosts, blocks.ContactFormState{}))

	assert.Contains(t, out, "<title>Nagireddi Abhinay | Full Stack Developer</title>")
	assert.Contains(t, out, `<script defer nonce="n0nce" src="/assets/js/app.js">`)
	for _, id := range []string{"about", "skills", "projects", "publications", "certifications", "blog", "education", "contact"} {
		assert.Contains(t, out, `<section id="`+id+`"`, id)
	}
	assert.Contains(t, out, `href="/blog/first"`)
	assert.Contains(t, out, `href="/resume"`)
	assert.Contains(t, out, "Certificate Automation &amp; Verification System")
}

func TestBlogPost(t *testing.T) {
	out := render(t, "/blog/first", BlogPost(testPosts[0], nil, testPosts[1]))

	assert.Contains(t, out, "<title>First Post | Nagireddi Abhinay</title>")
	assert.Contains(t, out, ">Intro</h2>")
	assert.Contains(t, out, "Hello <em>world</em>")
	assert.Contains(t, out, `href="/blog/tag/Go"`)
	assert.Contains(t, out, `href="/blog/second"`)
	assert.Contains(t, out, "Next &rarr;")
	assert.NotContains(t, out, "&larr; Previous")
}

func TestBlogList(t *testing.T) {
	out := render(t, "/blog", BlogList(testPosts, []string{"Go", "Security"}))
	assert.Contains(t, out, `href="/blog/first"`)
	assert.Contains(t, out, `href="/blog/second"`)
	assert.Contains(t, out, `href="/blog/tag/Security"`)

	out = render(t, "/blog/tag/security", BlogList(testPosts[1:], nil, "security"))
	assert.Contains(t, out, "<title>Security | Nagireddi Abhinay</title>")
	assert.Contains(t, out, "Articles tagged security")
	assert.NotContains(t, out, `href="/blog/first"`)

	out = render(t, "/blog/tag/none", BlogList(nil, nil, "none"))
	assert.Contains(t, out, "No articles yet.")
}

func TestNotFound(t *testing.T) {
	out := render(t, "/missing", NotFound())
	assert.Contains(t, out, "Page not found")
	assert.Contains(t, out, "<title>Not Found | Nagireddi Abhinay</title>")
}

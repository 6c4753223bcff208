package service

import (
	"errors"
	"testing"
	"testing/fstest"
	"time"

	"github.com/Abhinay9346/portfolio"
	"github.com/Abhinay9346/portfolio/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"content/blog/01-first-post.md": {Data: []byte(`---
slug: first-post
title: "First Post"
description: "The first one"
date: "Jan 2026"
readTime: "3 min read"
tags:
  - "Go"
  - "Web"
---
## Hello

First body.
`)},
		"content/blog/02-second-post.md": {Data: []byte(`---
description: "No slug or title"
date: "sometime"
tags:
  - "go"
---
Second body.
`)},
		"content/blog/03-third.md": {Data: []byte("Third body without frontmatter.\n")},
		"content/blog/notes.txt":     {Data: []byte("ignored")},
	}
}

func TestNewBlogService(t *testing.T) {
	s, err := NewBlogService(testFS())
	require.NoError(t, err)

	posts := s.Posts()
	require.Len(t, posts, 3)

	first := posts[0]
	assert.Equal(t, "first-post", first.Slug)
	assert.Equal(t, "First Post", first.Title)
	assert.Equal(t, "The first one", first.Description)
	assert.Equal(t, "Jan 2026", first.Date)
	assert.Equal(t, "3 min read", first.ReadTime)
	assert.Equal(t, []string{"Go", "Web"}, first.Tags)
	assert.Equal(t, "## Hello\n\nFirst body.\n", first.Content)
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), first.PublishedAt)

	second := posts[1]
	assert.Equal(t, "second-post", second.Slug)
	assert.Equal(t, "Second Post", second.Title)
	assert.Equal(t, "1 min read", second.ReadTime)
	assert.True(t, second.PublishedAt.IsZero())

	third := posts[2]
	assert.Equal(t, "third", third.Slug)
	assert.Equal(t, "Third", third.Title)
	assert.Empty(t, third.Tags)
}

func TestNewBlogService_DuplicateSlug(t *testing.T) {
	fsys := fstest.MapFS{
		"content/blog/01-a.md": {Data: []byte("---\nslug: same\n---\nx\n")},
		"content/blog/02-b.md": {Data: []byte("---\nslug: same\n---\ny\n")},
	}

	_, err := NewBlogService(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate blog slug "same"`)
}

func TestBlogService_Post(t *testing.T) {
	s, err := NewBlogService(testFS())
	require.NoError(t, err)

	post, err := s.Post("first-post")
	require.NoError(t, err)
	assert.Equal(t, "First Post", post.Title)

	_, err = s.Post("missing")
	assert.True(t, errors.Is(err, ErrPostNotFound))
}

func TestBlogService_Neighbors(t *testing.T) {
	s, err := NewBlogService(testFS())
	require.NoError(t, err)

	prev, next := s.Neighbors("first-post")
	assert.Nil(t, prev)
	require.NotNil(t, next)
	assert.Equal(t, "second-post", next.Slug)

	prev, next = s.Neighbors("second-post")
	assert.Equal(t, "first-post", prev.Slug)
	assert.Equal(t, "third", next.Slug)

	prev, next = s.Neighbors("third")
	assert.Equal(t, "second-post", prev.Slug)
	assert.Nil(t, next)

	prev, next = s.Neighbors("missing")
	assert.Nil(t, prev)
	assert.Nil(t, next)
}

func TestBlogService_Tags(t *testing.T) {
	s, err := NewBlogService(testFS())
	require.NoError(t, err)

	assert.Equal(t, []string{"Go", "Web"}, s.Tags())
	assert.Len(t, s.PostsByTag("GO"), 2)
	assert.Len(t, s.PostsByTag("web"), 1)
	assert.Empty(t, s.PostsByTag("rust"))
}

func TestFindBySlug_AllSlugs(t *testing.T) {
	posts := []*model.BlogPost{{Slug: "a"}, {Slug: "b"}, {Slug: "c"}}

	slugs := AllSlugs(posts)
	assert.Equal(t, []string{"a", "b", "c"}, slugs)

	for _, slug := range slugs {
		post, ok := FindBySlug(posts, slug)
		require.True(t, ok, slug)
		assert.Equal(t, slug, post.Slug)
	}

	_, ok := FindBySlug(posts, "d")
	assert.False(t, ok)
	_, ok = FindBySlug(nil, "a")
	assert.False(t, ok)
	assert.Empty(t, AllSlugs(nil))
}

func TestEmbeddedPosts(t *testing.T) {
	s, err := NewBlogService(portfolio.ContentFS)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"jwt-authentication-mern",
		"building-secure-rest-apis-nodejs",
		"certificate-automation-verification-systems",
		"mongodb-schema-design-scalability",
	}, s.Slugs())

	for _, post := range s.Posts() {
		assert.NotEmpty(t, post.Title, post.Slug)
		assert.NotEmpty(t, post.Description, post.Slug)
		assert.NotEmpty(t, post.Tags, post.Slug)
		assert.False(t, post.PublishedAt.IsZero(), post.Slug)
		assert.NotContains(t, post.Content, "slug:", post.Slug)
	}
}

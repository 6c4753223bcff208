package service

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/Abhinay9346/portfolio/internal/markdown"
	"github.com/Abhinay9346/portfolio/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var ErrPostNotFound = errors.New("blog post not found")

// orderPrefix is the "01-" style prefix that orders post files.
var orderPrefix = regexp.MustCompile(`^\d+-`)

const postDateLayout = "Jan 2006"

type BlogService struct {
	posts []*model.BlogPost
}

// NewBlogService loads every content/blog/*.md file of fsys once.
// The resulting collection is never modified.
func NewBlogService(fsys fs.FS) (*BlogService, error) {
	files, err := fs.Glob(fsys, "content/blog/*.md")
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}

	parser := markdown.NewParser()
	seen := make(map[string]string, len(files))
	posts := make([]*model.BlogPost, 0, len(files))

	for _, file := range files {
		source, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}

		post := parsePost(parser, path.Base(file), source)
		if prev, ok := seen[post.Slug]; ok {
			return nil, fmt.Errorf("duplicate blog slug %q in %s and %s", post.Slug, prev, file)
		}
		seen[post.Slug] = file
		posts = append(posts, post)
	}

	return &BlogService{posts: posts}, nil
}

// NewStaticBlogService wraps an already built collection.
func NewStaticBlogService(posts []*model.BlogPost) *BlogService {
	return &BlogService{posts: posts}
}

func parsePost(parser *markdown.Parser, filename string, source []byte) *model.BlogPost {
	meta := parser.ExtractFrontmatter(source)
	body := string(parser.Body(source))

	post := &model.BlogPost{
		Slug:    orderPrefix.ReplaceAllString(strings.TrimSuffix(filename, ".md"), ""),
		Content: body,
	}

	slug, ok := meta["slug"].(string)
	if ok && slug != "" {
		post.Slug = slug
	}

	post.Title, _ = meta["title"].(string)
	if post.Title == "" {
		post.Title = cases.Title(language.English).String(strings.ReplaceAll(post.Slug, "-", " "))
	}

	post.Description, _ = meta["description"].(string)

	post.Date, _ = meta["date"].(string)
	if post.Date != "" {
		publishedAt, err := time.Parse(postDateLayout, post.Date)
		if err == nil {
			post.PublishedAt = publishedAt
		}
	}

	post.ReadTime, _ = meta["readTime"].(string)
	if post.ReadTime == "" {
		post.ReadTime = fmt.Sprintf("%d min read", calculateReadTime(body))
	}

	tags, ok := meta["tags"].([]any)
	if ok {
		for _, tag := range tags {
			tagStr, ok := tag.(string)
			if ok {
				post.Tags = append(post.Tags, tagStr)
			}
		}
	}

	return post
}

// Posts returns all posts in declaration order.
func (s *BlogService) Posts() []*model.BlogPost {
	return s.posts
}

func (s *BlogService) Post(slug string) (*model.BlogPost, error) {
	post, ok := FindBySlug(s.posts, slug)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPostNotFound, slug)
	}
	return post, nil
}

func (s *BlogService) Slugs() []string {
	return AllSlugs(s.posts)
}

// Neighbors returns the posts before and after slug in declaration order.
// Either may be nil.
func (s *BlogService) Neighbors(slug string) (prev, next *model.BlogPost) {
	return Adjacent(s.posts, slug)
}

func (s *BlogService) PostsByTag(tag string) []*model.BlogPost {
	var posts []*model.BlogPost
	for _, post := range s.posts {
		for _, postTag := range post.Tags {
			if strings.EqualFold(postTag, tag) {
				posts = append(posts, post)
				break
			}
		}
	}
	return posts
}

// Tags returns every distinct tag, case-insensitively, in first-seen order.
func (s *BlogService) Tags() []string {
	seen := make(map[string]bool)
	var tags []string
	for _, post := range s.posts {
		for _, tag := range post.Tags {
			key := strings.ToLower(tag)
			if seen[key] {
				continue
			}
			seen[key] = true
			tags = append(tags, tag)
		}
	}
	return tags
}

func FindBySlug(posts []*model.BlogPost, slug string) (*model.BlogPost, bool) {
	for _, post := range posts {
		if post.Slug == slug {
			return post, true
		}
	}
	return nil, false
}

func AllSlugs(posts []*model.BlogPost) []string {
	slugs := make([]string, 0, len(posts))
	for _, post := range posts {
		slugs = append(slugs, post.Slug)
	}
	return slugs
}

func Adjacent(posts []*model.BlogPost, slug string) (prev, next *model.BlogPost) {
	for i, post := range posts {
		if post.Slug != slug {
			continue
		}
		if i > 0 {
			prev = posts[i-1]
		}
		if i < len(posts)-1 {
			next = posts[i+1]
		}
		return prev, next
	}
	return nil, nil
}

func calculateReadTime(content string) int {
	words := strings.Fields(content)
	wordsPerMinute := 200
	readTime := len(words) / wordsPerMinute
	if readTime < 1 {
		readTime = 1
	}
	return readTime
}

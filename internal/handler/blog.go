package handler

import (
	"net/http"

	"github.com/Abhinay9346/portfolio/internal/service"
	"github.com/Abhinay9346/portfolio/internal/ui"
	"github.com/Abhinay9346/portfolio/internal/ui/pages"
)

type BlogHandler struct {
	blogService *service.BlogService
}

func NewBlogHandler(blogService *service.BlogService) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
	}
}

func (h *BlogHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, pages.BlogList(h.blogService.Posts(), h.blogService.Tags()))
}

// ShowPost answers unknown slugs with the 404 page without rendering any
// post content.
func (h *BlogHandler) ShowPost(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	post, err := h.blogService.Post(slug)
	if err != nil {
		notFound(w, r)
		return
	}

	prev, next := h.blogService.Neighbors(post.Slug)
	ui.Render(w, r, pages.BlogPost(post, prev, next))
}

func (h *BlogHandler) ListByTag(w http.ResponseWriter, r *http.Request) {
	tag := r.PathValue("tag")

	posts := h.blogService.PostsByTag(tag)
	if len(posts) == 0 {
		notFound(w, r)
		return
	}

	ui.Render(w, r, pages.BlogList(posts, nil, tag))
}

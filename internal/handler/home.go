package handler

import (
	"net/http"

	"github.com/Abhinay9346/portfolio/internal/service"
	"github.com/Abhinay9346/portfolio/internal/ui"
	"github.com/Abhinay9346/portfolio/internal/ui/blocks"
	"github.com/Abhinay9346/portfolio/internal/ui/pages"
)

type HomeHandler struct {
	portfolioService *service.PortfolioService
	blogService      *service.BlogService
}

func NewHomeHandler(portfolioService *service.PortfolioService, blogService *service.BlogService) *HomeHandler {
	return &HomeHandler{
		portfolioService: portfolioService,
		blogService:      blogService,
	}
}

func (h *HomeHandler) HomePage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, pages.Home(h.portfolioService.Portfolio(), h.blogService.Posts(), blocks.ContactFormState{}))
}

func (h *HomeHandler) NotFoundPage(w http.ResponseWriter, r *http.Request) {
	notFound(w, r)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	ui.RenderStatus(w, r, http.StatusNotFound, pages.NotFound())
}

package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Abhinay9346/portfolio/internal/middleware"
	"github.com/Abhinay9346/portfolio/internal/service"
	"github.com/Abhinay9346/portfolio/internal/ui"
	"github.com/Abhinay9346/portfolio/internal/ui/blocks"
	"github.com/Abhinay9346/portfolio/internal/ui/pages"
)

// FragmentHeader marks requests sent by assets/js/app.js that want only the
// contact form back.
const FragmentHeader = "X-Requested-With"

type ContactHandler struct {
	contactService   *service.ContactService
	portfolioService *service.PortfolioService
	blogService      *service.BlogService
}

func NewContactHandler(contactService *service.ContactService, portfolioService *service.PortfolioService, blogService *service.BlogService) *ContactHandler {
	return &ContactHandler{
		contactService:   contactService,
		portfolioService: portfolioService,
		blogService:      blogService,
	}
}

func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	form := service.ContactForm{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Message: r.PostFormValue("message"),
	}

	status := http.StatusOK
	state := blocks.ContactFormState{Success: true}

	_, err := h.contactService.Submit(r.Context(), form, middleware.ClientIP(r))
	if err != nil {
		state = blocks.ContactFormState{Name: form.Name, Email: form.Email, Message: form.Message}

		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			status = http.StatusUnprocessableEntity
			state.Field = validationErr.Field
			state.Error = validationErr.Reason
		} else {
			slog.Error("failed to submit contact message", "error", err)
			status = http.StatusInternalServerError
			state.Error = "Something went wrong. Please try again later."
		}
	}

	if r.Header.Get(FragmentHeader) == "fetch" {
		ui.RenderStatus(w, r, status, blocks.ContactForm(state))
		return
	}

	ui.RenderStatus(w, r, status, pages.Home(h.portfolioService.Portfolio(), h.blogService.Posts(), state))
}

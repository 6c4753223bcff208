package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Abhinay9346/portfolio/internal/service"
)

type ResumeHandler struct {
	resumeService *service.ResumeService
}

func NewResumeHandler(resumeService *service.ResumeService) *ResumeHandler {
	return &ResumeHandler{
		resumeService: resumeService,
	}
}

func (h *ResumeHandler) Download(w http.ResponseWriter, r *http.Request) {
	loc, err := h.resumeService.Locate(r.Context())
	if errors.Is(err, service.ErrResumeUnavailable) {
		notFound(w, r)
		return
	}
	if err != nil {
		slog.Error("failed to locate resume", "error", err)
		http.Error(w, "Failed to load resume", http.StatusInternalServerError)
		return
	}

	if loc.URL != "" {
		http.Redirect(w, r, loc.URL, http.StatusFound)
		return
	}

	w.Header().Set("Content-Disposition", `inline; filename="Resume.pdf"`)
	http.ServeFile(w, r, loc.Path)
}

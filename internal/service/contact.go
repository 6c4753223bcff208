package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Abhinay9346/portfolio/internal/model"
	"github.com/Abhinay9346/portfolio/internal/repository"
	"github.com/Abhinay9346/portfolio/internal/validation"
)

// ContactNotifier delivers stored contact messages to the site owner.
type ContactNotifier interface {
	SendContactNotification(ctx context.Context, message *model.ContactMessage) error
}

// ContactForm is the raw visitor input.
type ContactForm struct {
	Name    string
	Email   string
	Message string
}

// ValidationError carries the first invalid field and a user-facing reason.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

type ContactService struct {
	repo     repository.ContactRepository
	notifier ContactNotifier
}

func NewContactService(repo repository.ContactRepository, notifier ContactNotifier) *ContactService {
	return &ContactService{
		repo:     repo,
		notifier: notifier,
	}
}

// Normalize trims the form fields and lowercases the email.
func (f ContactForm) Normalize() ContactForm {
	return ContactForm{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(strings.ToLower(f.Email)),
		Message: strings.TrimSpace(f.Message),
	}
}

func (f ContactForm) Validate() error {
	err := validation.ValidateName(f.Name)
	if err != nil {
		return &ValidationError{Field: "name", Reason: err.Error()}
	}

	err = validation.ValidateEmail(f.Email)
	if err != nil {
		return &ValidationError{Field: "email", Reason: err.Error()}
	}

	err = validation.ValidateMessage(f.Message)
	if err != nil {
		return &ValidationError{Field: "message", Reason: err.Error()}
	}

	return nil
}

// Submit validates and stores a message, then notifies the owner.
// A failed notification is logged but does not fail the submission, the
// message is already stored.
func (s *ContactService) Submit(ctx context.Context, form ContactForm, remoteAddr string) (*model.ContactMessage, error) {
	form = form.Normalize()

	err := form.Validate()
	if err != nil {
		return nil, err
	}

	message := &model.ContactMessage{
		Name:       form.Name,
		Email:      form.Email,
		Message:    form.Message,
		RemoteAddr: remoteAddr,
	}

	err = s.repo.Create(message)
	if err != nil {
		return nil, fmt.Errorf("failed to store contact message: %w", err)
	}

	slog.Info("contact message stored", "id", message.ID, "email", message.Email)

	err = s.notifier.SendContactNotification(ctx, message)
	if err != nil {
		slog.Error("contact notification failed", "error", err, "id", message.ID)
	}

	return message, nil
}

func (s *ContactService) Recent(limit int) ([]*model.ContactMessage, error) {
	return s.repo.Recent(limit)
}

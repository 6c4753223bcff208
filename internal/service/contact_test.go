package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Abhinay9346/portfolio/internal/model"
	"github.com/Abhinay9346/portfolio/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryContactRepo struct {
	messages []*model.ContactMessage
	err      error
}

func (r *memoryContactRepo) Create(message *model.ContactMessage) error {
	if r.err != nil {
		return r.err
	}
	message.ID = "msg-1"
	r.messages = append(r.messages, message)
	return nil
}

func (r *memoryContactRepo) ByID(id string) (*model.ContactMessage, error) {
	for _, m := range r.messages {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, repository.ErrMessageNotFound
}

func (r *memoryContactRepo) Recent(limit int) ([]*model.ContactMessage, error) {
	if len(r.messages) < limit {
		limit = len(r.messages)
	}
	return r.messages[:limit], nil
}

type recordingNotifier struct {
	sent []*model.ContactMessage
	err  error
}

func (n *recordingNotifier) SendContactNotification(_ context.Context, message *model.ContactMessage) error {
	n.sent = append(n.sent, message)
	return n.err
}

func TestContactService_Submit(t *testing.T) {
	repo := &memoryContactRepo{}
	notifier := &recordingNotifier{}
	s := NewContactService(repo, notifier)

	message, err := s.Submit(context.Background(), ContactForm{
		Name:    "  Ada  ",
		Email:   " Ada@Example.com ",
		Message: " Let's work together. ",
	}, "10.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, "msg-1", message.ID)
	assert.Equal(t, "Ada", message.Name)
	assert.Equal(t, "ada@example.com", message.Email)
	assert.Equal(t, "Let's work together.", message.Message)
	assert.Equal(t, "10.0.0.1", message.RemoteAddr)
	assert.Len(t, repo.messages, 1)
	assert.Len(t, notifier.sent, 1)
}

func TestContactService_Submit_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		form  ContactForm
		field string
	}{
		{name: "missing name", form: ContactForm{Email: "a@b.co", Message: "hi"}, field: "name"},
		{name: "bad email", form: ContactForm{Name: "A", Email: "nope", Message: "hi"}, field: "email"},
		{name: "missing message", form: ContactForm{Name: "A", Email: "a@b.co", Message: "  "}, field: "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memoryContactRepo{}
			notifier := &recordingNotifier{}
			s := NewContactService(repo, notifier)

			_, err := s.Submit(context.Background(), tt.form, "")

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
			assert.Empty(t, repo.messages)
			assert.Empty(t, notifier.sent)
		})
	}
}

func TestContactService_Submit_StoreFails(t *testing.T) {
	s := NewContactService(&memoryContactRepo{err: errors.New("disk full")}, &recordingNotifier{})

	_, err := s.Submit(context.Background(), ContactForm{Name: "A", Email: "a@b.co", Message: "hi"}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestContactService_Submit_NotifyFailsStillStores(t *testing.T) {
	repo := &memoryContactRepo{}
	s := NewContactService(repo, &recordingNotifier{err: errors.New("resend down")})

	message, err := s.Submit(context.Background(), ContactForm{Name: "A", Email: "a@b.co", Message: "hi"}, "")
	require.NoError(t, err)
	assert.Equal(t, "msg-1", message.ID)
	assert.Len(t, repo.messages, 1)
}

func TestEmailService_DevModeLogsOnly(t *testing.T) {
	s := NewEmailService("", "noreply@example.com", "owner@example.com", "Portfolio", true)
	err := s.SendContactNotification(context.Background(), &model.ContactMessage{Name: "A", Email: "a@b.co"})
	assert.NoError(t, err)
}

func TestEmailService_Unconfigured(t *testing.T) {
	s := NewEmailService("", "noreply@example.com", "owner@example.com", "Portfolio", false)
	err := s.SendContactNotification(context.Background(), &model.ContactMessage{Name: "A", Email: "a@b.co"})
	assert.EqualError(t, err, "email service not configured (missing RESEND_API_KEY)")
}

func TestContactNotificationTemplate(t *testing.T) {
	subject, body := contactNotificationTemplate(&model.ContactMessage{
		ID:      "id-1",
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "Hello",
	}, "Portfolio")

	assert.Equal(t, "New message from Ada via Portfolio", subject)
	assert.Contains(t, body, "Ada <ada@example.com> wrote:")
	assert.Contains(t, body, "Hello")
	assert.Contains(t, body, "Message ID: id-1")
}

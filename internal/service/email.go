package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Abhinay9346/portfolio/internal/model"
	"github.com/resend/resend-go/v2"
)

type EmailService struct {
	client    *resend.Client
	fromEmail string
	toEmail   string
	isDev     bool
	appName   string
}

func NewEmailService(apiKey, fromEmail, toEmail, appName string, isDev bool) *EmailService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &EmailService{
		client:    client,
		fromEmail: fromEmail,
		toEmail:   toEmail,
		isDev:     isDev,
		appName:   appName,
	}
}

// SendContactNotification forwards a contact form message to the site owner.
// Replies go straight to the visitor.
func (s *EmailService) SendContactNotification(ctx context.Context, message *model.ContactMessage) error {
	subject, body := contactNotificationTemplate(message, s.appName)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "contact", "to", s.toEmail, "subject", subject, "from", message.Email)
		return nil
	}

	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{s.toEmail},
		ReplyTo: message.Email,
		Subject: subject,
		Text:    body,
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send contact notification: %w", err)
	}

	slog.Info("email sent", "type", "contact", "to", s.toEmail, "message_id", message.ID)
	return nil
}

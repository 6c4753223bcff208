package service

import (
	"fmt"

	"github.com/Abhinay9346/portfolio/internal/model"
)

func contactNotificationTemplate(message *model.ContactMessage, appName string) (string, string) {
	subject := fmt.Sprintf("New message from %s via %s", message.Name, appName)
	body := fmt.Sprintf(`%s <%s> wrote:

%s

Reply to this email to answer them directly.

Message ID: %s
Received: %s`,
		message.Name,
		message.Email,
		message.Message,
		message.ID,
		message.CreatedAt.Format("January 2, 2006 15:04 MST"),
	)

	return subject, body
}

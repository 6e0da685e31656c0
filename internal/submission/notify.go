package submission

import (
	"fmt"

	"github.com/Kyz7/corporate-site/internal/logger"
	"github.com/Kyz7/corporate-site/internal/mail"
	"github.com/Kyz7/corporate-site/internal/settings"
	"go.uber.org/zap"
)

// Notifier queues outgoing mail without blocking.
type Notifier interface {
	Enqueue(msg mail.Message) bool
}

var (
	notifier      Notifier
	fallbackAdmin string
)

// Init wires the mail queue and the recipient used when the settings row
// has no admin email.
func Init(n Notifier, adminFallback string) {
	notifier = n
	fallbackAdmin = adminFallback
}

// notifyAdmin runs after the submission is stored. Every failure here is
// logged and never reaches the visitor.
func notifyAdmin(subject, replyTo string, fields []mail.Field) {
	if notifier == nil {
		return
	}

	to := settings.AdminEmail(fallbackAdmin)
	if to == "" {
		logger.Log.Warn("no admin email configured, notification skipped", zap.String("subject", subject))
		return
	}

	html, err := mail.RenderNotification(subject, fields)
	if err != nil {
		logger.Log.Error("failed to render notification", zap.Error(err))
		return
	}

	notifier.Enqueue(mail.Message{
		To:      []string{to},
		Subject: subject,
		HTML:    html,
		ReplyTo: replyTo,
	})
}

func subjectLine(kind, detail string) string {
	if detail == "" {
		return kind
	}
	return fmt.Sprintf("%s: %s", kind, detail)
}

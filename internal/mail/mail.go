package mail

import (
	"context"
	"fmt"

	"github.com/Kyz7/corporate-site/internal/config"
	"github.com/Kyz7/corporate-site/internal/logger"
	"go.uber.org/zap"
)

// Message is one outgoing HTML email.
type Message struct {
	To      []string
	Subject string
	HTML    string
	ReplyTo string
}

// Sender delivers a message synchronously.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// New picks the transport configured by MAIL_DRIVER.
func New(cfg config.MailConfig) (Sender, error) {
	from := cfg.From
	if cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.FromName, cfg.From)
	}

	switch cfg.Driver {
	case "smtp":
		if cfg.SMTPHost == "" {
			return nil, fmt.Errorf("mail: SMTP_HOST is required for the smtp driver")
		}
		return NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.From, from), nil
	case "resend":
		if cfg.ResendAPIKey == "" {
			return nil, fmt.Errorf("mail: RESEND_API_KEY is required for the resend driver")
		}
		return NewResendSender(cfg.ResendAPIKey, from), nil
	case "log", "":
		return LogSender{}, nil
	default:
		return nil, fmt.Errorf("mail: unknown driver %q", cfg.Driver)
	}
}

// LogSender only records messages; it is the development default.
type LogSender struct{}

func (LogSender) Send(_ context.Context, msg Message) error {
	logger.Log.Info("mail (log driver)",
		zap.Strings("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("reply_to", msg.ReplyTo),
	)
	return nil
}

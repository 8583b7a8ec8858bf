package email

import (
	"skillswap_backend/internal/config"
	"skillswap_backend/internal/logger"

	"gopkg.in/gomail.v2"
)

// Sender delivers notification emails. Delivery is best-effort everywhere it
// is used: a failed send never fails the triggering operation.
type Sender interface {
	Send(to, subject, body string) error
}

// SMTPSender sends mail through the configured SMTP relay.
type SMTPSender struct {
	cfg *config.Config
}

func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (e *SMTPSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", e.cfg.Email.FromEmail)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		e.cfg.Email.SMTPHost,
		e.cfg.Email.SMTPPort,
		e.cfg.Email.SMTPUser,
		e.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}

// NoopSender is used when email is disabled in config.
type NoopSender struct{}

func (NoopSender) Send(to, subject, body string) error {
	logger.Debug("email disabled, dropping message", "to", to, "subject", subject)
	return nil
}

// NewSender picks the sender implementation from config.
func NewSender(cfg *config.Config) Sender {
	if cfg.Email.Enabled && cfg.Email.SMTPHost != "" {
		return NewSMTPSender(cfg)
	}
	return NoopSender{}
}

package email

import (
	"fmt"

	"tunzacare_backend/internal/config"
	"tunzacare_backend/internal/logger"

	"gopkg.in/gomail.v2"
)

// Provider sends transactional mail. Callers treat failures as non-fatal:
// notification delivery never blocks the operation that triggered it.
type Provider interface {
	Send(to, subject, body string) error
	SendVerificationDecision(to, firstName, decision, reason string) error
}

type gomailProvider struct {
	cfg *config.Config
}

func NewProvider(cfg *config.Config) Provider {
	if !cfg.Email.Enabled {
		return &noopProvider{}
	}
	return &gomailProvider{cfg: cfg}
}

func (p *gomailProvider) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(p.cfg.Email.FromEmail, p.cfg.Email.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPUsername,
		p.cfg.Email.SMTPPassword,
	)
	return d.DialAndSend(m)
}

func (p *gomailProvider) SendVerificationDecision(to, firstName, decision, reason string) error {
	var subject, body string
	switch decision {
	case "verified":
		subject = "Your caregiver profile has been verified"
		body = fmt.Sprintf(
			"<p>Hi %s,</p><p>Your caregiver profile has been verified. "+
				"Activate a subscription to become discoverable to clients.</p>",
			firstName,
		)
	default:
		subject = "Your caregiver profile verification was declined"
		body = fmt.Sprintf(
			"<p>Hi %s,</p><p>Your caregiver profile verification was declined.</p>",
			firstName,
		)
		if reason != "" {
			body += fmt.Sprintf("<p>Reason: %s</p>", reason)
		}
	}
	return p.Send(to, subject, body)
}

// noopProvider is used when mail is disabled in config. It logs instead of
// sending, so dev and test environments need no SMTP server.
type noopProvider struct{}

func (p *noopProvider) Send(to, subject, _ string) error {
	logger.Debug("email suppressed", "to", to, "subject", subject)
	return nil
}

func (p *noopProvider) SendVerificationDecision(to, _, decision, _ string) error {
	logger.Debug("verification email suppressed", "to", to, "decision", decision)
	return nil
}

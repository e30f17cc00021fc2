// Confirmation-mail delivery. The core only produces tokens and links; how
// the mail leaves the building is a collaborator concern behind Mailer.
package client

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"time"

	"github.com/Jonny137/cocktail-bar-backend/internal/config"
	"github.com/Jonny137/cocktail-bar-backend/internal/template"
)

type Mailer interface {
	SendConfirmation(ctx context.Context, email, confirmURL string, maxAge time.Duration) error
}

// NewMailer returns an SMTP mailer when a host is configured, otherwise a
// logging stand-in so local runs work without a mail server.
func NewMailer(cfg config.MailConfig, logger *slog.Logger) Mailer {
	if cfg.Host == "" {
		return &LogMailer{logger: logger}
	}
	return &SMTPMailer{cfg: cfg}
}

type SMTPMailer struct {
	cfg config.MailConfig
}

func (m *SMTPMailer) SendConfirmation(ctx context.Context, email, confirmURL string, maxAge time.Duration) error {
	body := template.RenderConfirmation(template.DefaultConfirmationBody, template.ConfirmationData{
		Email:  email,
		URL:    confirmURL,
		MaxAge: maxAge,
	})

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: Confirm your email\r\n\r\n%s\r\n",
		m.cfg.From, email, body)

	addr := net.JoinHostPort(m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{email}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send confirmation mail: %w", err)
	}
	return nil
}

// LogMailer writes the confirmation link to the log instead of sending mail.
type LogMailer struct {
	logger *slog.Logger
}

func (m *LogMailer) SendConfirmation(ctx context.Context, email, confirmURL string, maxAge time.Duration) error {
	m.logger.InfoContext(ctx, "confirmation mail (SMTP not configured)",
		"email", email, "url", confirmURL)
	return nil
}

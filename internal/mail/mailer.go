package mail

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"

	"github.com/BruksfildServices01/marketplace-api/internal/config"
)

// Mailer sends transactional email through resend. With no API key
// configured every send is a no-op, so local setups work without one.
type Mailer struct {
	client *resend.Client
	from   string
	appURL string
}

func New(cfg *config.Config) *Mailer {
	m := &Mailer{
		from:   cfg.FromEmail,
		appURL: cfg.AppURL,
	}
	if cfg.ResendAPIKey != "" {
		m.client = resend.NewClient(cfg.ResendAPIKey)
	}
	return m
}

func (m *Mailer) send(toEmail, subject, html string) error {
	if m.client == nil {
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Marketplace <%s>", m.from),
		To:      []string{toEmail},
		Subject: subject,
		Html:    html,
	}

	_, err := m.client.Emails.Send(params)
	return err
}

func (m *Mailer) SendWelcome(ctx context.Context, toEmail, fullName string) error {
	html := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your account is ready. Log in at <a href=%q>%s</a> to browse services or manage your bookings.</p>",
		fullName, m.appURL, m.appURL,
	)
	return m.send(toEmail, "Welcome to Marketplace", html)
}

func (m *Mailer) SendConfirmation(ctx context.Context, toEmail, fullName, token string) error {
	link := fmt.Sprintf("%s/confirm-email?token=%s", m.appURL, token)
	html := fmt.Sprintf(
		"<p>Hi %s,</p><p>Confirm your e-mail to activate your account: <a href=%q>confirm e-mail</a>.</p><p>The link expires in 48 hours.</p>",
		fullName, link,
	)
	return m.send(toEmail, "Confirm your e-mail", html)
}

func (m *Mailer) SendBookingUpdate(ctx context.Context, toEmail, fullName, subject, message string) error {
	html := fmt.Sprintf(
		"<p>Hi %s,</p><p>%s</p><p>See the details on your <a href=%q>dashboard</a>.</p>",
		fullName, message, m.appURL,
	)
	return m.send(toEmail, subject, html)
}

// Package mailer dispatches password-reset tokens over SMTP.
package mailer

import (
	"context"
	"fmt"
	"time"

	"gocart/internal/config"

	"github.com/rs/zerolog"
	"github.com/wneessen/go-mail"
)

// Mailer sends transactional mail. There is only one message kind today.
type Mailer interface {
	// SendPasswordReset delivers the reset token to the given address.
	SendPasswordReset(ctx context.Context, to, resetToken string, validFor time.Duration) error
}

// smtpMailer implements Mailer over an authenticated SMTP connection.
type smtpMailer struct {
	client *mail.Client
	from   string
	logger zerolog.Logger
}

// NewSMTPMailer creates an SMTP-backed mailer from the configuration.
func NewSMTPMailer(cfg config.SMTPConfig, logger zerolog.Logger) (Mailer, error) {
	logger = logger.With().Str("component", "smtp-mailer").Logger()

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	logger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Msg("SMTP mailer initialised")

	return &smtpMailer{
		client: client,
		from:   cfg.From,
		logger: logger,
	}, nil
}

// SendPasswordReset sends the plain-text reset message.
func (m *smtpMailer) SendPasswordReset(ctx context.Context, to, resetToken string, validFor time.Duration) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("invalid sender address %q: %w", m.from, err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address %q: %w", to, err)
	}

	msg.Subject("Reset Password")
	msg.SetBodyString(mail.TypeTextPlain,
		fmt.Sprintf("Token: %s will expire in %d minutes.", resetToken, int(validFor.Minutes())))

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		m.logger.Error().Err(err).Str("to", to).Msg("failed to send password reset email")
		return fmt.Errorf("failed to send password reset email: %w", err)
	}

	m.logger.Info().Str("to", to).Msg("password reset email sent")

	return nil
}

package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/letsgoparty/letsgoparty_backend/internal/core/domain"
	"github.com/letsgoparty/letsgoparty_backend/internal/middleware"
	"github.com/letsgoparty/letsgoparty_backend/internal/platform/config"
	"github.com/wneessen/go-mail"
)

const (
	senderName  = "Let's Go Party"
	sendTimeout = 15 * time.Second
	implicitTLS = 465
)

// SMTPMailer delivers MailMessages through an authenticated SMTP relay.
type SMTPMailer struct {
	client *mail.Client
	from   string
}

// NewSMTPMailer configures a client for cfg's relay. Port 465 uses implicit
// TLS; any other port must offer STARTTLS.
func NewSMTPMailer(cfg *config.Config) (*SMTPMailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.EmailUser),
		mail.WithPassword(cfg.EmailPassword),
		mail.WithTimeout(sendTimeout),
	}
	if cfg.SMTPPort == implicitTLS {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}

	client, err := mail.NewClient(cfg.SMTPHost, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}
	return &SMTPMailer{client: client, from: cfg.EmailUser}, nil
}

// Send opens a connection, delivers msg and closes it again.
func (m *SMTPMailer) Send(ctx context.Context, msg domain.MailMessage) error {
	out, err := buildMessage(m.from, msg)
	if err != nil {
		return err
	}
	if err := m.client.DialAndSendWithContext(ctx, out); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", msg.To, err)
	}
	logSent(ctx, msg)
	return nil
}

func logSent(ctx context.Context, msg domain.MailMessage) {
	middleware.GetLoggerFromCtx(ctx).Debug("Mail sent",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
	)
}

func buildMessage(from string, msg domain.MailMessage) (*mail.Msg, error) {
	out := mail.NewMsg()
	if err := out.FromFormat(senderName, from); err != nil {
		return nil, fmt.Errorf("invalid sender address %q: %w", from, err)
	}
	if err := out.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient address %q: %w", msg.To, err)
	}
	if msg.ReplyTo != "" {
		if err := out.ReplyTo(msg.ReplyTo); err != nil {
			return nil, fmt.Errorf("invalid reply-to address %q: %w", msg.ReplyTo, err)
		}
	}
	out.Subject(msg.Subject)
	out.SetBodyString(mail.TypeTextHTML, msg.HTMLBody)
	return out, nil
}

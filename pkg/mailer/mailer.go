package mailer

import (
	"context"
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"golf-arbitri/backend/config"
)

// Message is one outbound mail.
type Message struct {
	To          []string
	Subject     string
	Body        string
	Attachments []string // document paths, already generated elsewhere
}

// Mailer sends mail. Implementations must treat delivery as best-effort:
// callers never roll back business writes on a send failure.
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}

// SMTPMailer sends via SMTP using gomail.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer builds a mailer from the mail configuration.
func NewSMTPMailer(cfg *config.MailConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// Send delivers one message. The context bounds the whole dial+send.
func (m *SMTPMailer) Send(ctx context.Context, msg *Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("mailer: no recipients")
	}

	gm := gomail.NewMessage()
	gm.SetHeader("From", m.from)
	gm.SetHeader("To", msg.To...)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/plain", msg.Body)
	for _, a := range msg.Attachments {
		gm.Attach(a)
	}

	// gomail has no context support; run the send in a goroutine and
	// honor cancellation on our side.
	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(gm)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("mailer: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("mailer: %w", ctx.Err())
	}
}

package mailer

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
)

type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type Message struct {
	To      []string
	Bcc     []string
	Subject string
	Text    string
}

// Mailer sends plain text mail.
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}

type SMTPMailer struct {
	cfg  *Config
	send func(addr string, a smtp.Auth, e *email.Email) error
}

func NewSMTPMailer(cfg *Config) *SMTPMailer {
	return &SMTPMailer{
		cfg: cfg,
		send: func(addr string, a smtp.Auth, e *email.Email) error {
			return e.Send(addr, a)
		},
	}
}

func (m *SMTPMailer) auth() smtp.Auth {
	if m.cfg.User == "" {
		return nil
	}
	return smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
}

func (m *SMTPMailer) Send(ctx context.Context, msg *Message) error {
	if len(msg.To) == 0 && len(msg.Bcc) == 0 {
		return fmt.Errorf("mailer: no recipients")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	e := email.NewEmail()
	e.From = m.cfg.From
	e.To = msg.To
	e.Bcc = msg.Bcc
	e.Subject = msg.Subject
	e.Text = []byte(msg.Text)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	if err := m.send(addr, m.auth(), e); err != nil {
		return fmt.Errorf("failed to send mail %q: %w", msg.Subject, err)
	}
	return nil
}

// Package mailer turns contact submissions into outbound email.
package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/camionrouge/vitrine/config"
	"github.com/camionrouge/vitrine/internal/domain"
)

// Sender delivers one contact submission. Implementations do not retry and
// do not queue; the transport call's own result is the only delivery signal.
type Sender interface {
	Send(sub domain.ContactSubmission) error
}

// SmtpSender relays submissions through a configured SMTP transport. The
// message is addressed from and to the operator mailbox; the visitor's
// address only appears in the body.
type SmtpSender struct {
	cfg config.SmtpConfig
}

// NewSmtpSender builds a sender from SMTP configuration.
func NewSmtpSender(cfg config.SmtpConfig) *SmtpSender {
	return &SmtpSender{cfg: cfg}
}

// buildMessage composes the relay message for one submission.
func (s *SmtpSender) buildMessage(sub domain.ContactSubmission) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.Mailbox)
	m.SetHeader("To", s.cfg.Mailbox)
	m.SetHeader("Subject", fmt.Sprintf("Nouveau message de %s", sub.Name))
	m.SetBody("text/plain", fmt.Sprintf("Nom: %s\nEmail: %s\n\nMessage:\n%s\n",
		sub.Name, sub.Email, sub.Message))
	return m
}

// Send composes and delivers the relay message.
func (s *SmtpSender) Send(sub domain.ContactSubmission) error {
	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	d.SSL = s.cfg.Ssl

	if err := d.DialAndSend(s.buildMessage(sub)); err != nil {
		return fmt.Errorf("smtp delivery: %w", err)
	}
	return nil
}

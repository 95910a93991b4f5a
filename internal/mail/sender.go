package mail

import (
	"log/slog"

	"gopkg.in/gomail.v2"
)

// Sender delivers outbound mail to a single recipient.
type Sender interface {
	Send(to, subject, body string) error
}

// SMTPSender sends mail through an SMTP relay.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender creates a Sender over the given SMTP relay.
func NewSMTPSender(host string, port int, username, password, from string) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (s *SMTPSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	return s.dialer.DialAndSend(m)
}

// LogSender logs mail instead of delivering it. Used when SMTP is not
// configured so the OTP flow stays exercisable in development.
type LogSender struct{}

func (LogSender) Send(to, subject, body string) error {
	slog.Info("mail suppressed, no SMTP configured", "to", to, "subject", subject)
	return nil
}

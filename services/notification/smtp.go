package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPMailer sends through a single configured SMTP relay.
type SMTPMailer struct {
	dialer dialer
	domain string
}

func NewSMTPMailer(host string, port int, user, pass string, secure bool, from string) *SMTPMailer {
	d := gomail.NewDialer(host, port, user, pass)
	d.SSL = secure

	domain := host
	if at := strings.LastIndex(from, "@"); at >= 0 {
		domain = strings.TrimRight(from[at+1:], ">")
	}
	return &SMTPMailer{dialer: d, domain: domain}
}

func (m *SMTPMailer) Send(ctx context.Context, msg EmailMessage) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id := fmt.Sprintf("<%s@%s>", uuid.NewString(), m.domain)

	message := gomail.NewMessage()
	message.SetHeader("From", msg.From)
	message.SetHeader("To", msg.To)
	message.SetHeader("Subject", msg.Subject)
	message.SetHeader("Message-ID", id)
	message.SetBody("text/html", msg.HTML)

	if err := m.dialer.DialAndSend(message); err != nil {
		return "", err
	}
	return id, nil
}

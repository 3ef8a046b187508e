// Package mailer sends transactional email. The SendGrid implementation
// is used in deployments; the console one everywhere else.
package mailer

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type Message struct {
	To      string
	Subject string
	HTML    string
}

type Mailer interface {
	Send(msg Message) error
}

type SendGridMailer struct {
	client    *sendgrid.Client
	fromName  string
	fromEmail string
}

func NewSendGrid(apiKey, fromName, fromEmail string) *SendGridMailer {
	return &SendGridMailer{
		client:    sendgrid.NewSendClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

func (m *SendGridMailer) Send(msg Message) error {
	from := mail.NewEmail(m.fromName, m.fromEmail)
	to := mail.NewEmail("", msg.To)
	email := mail.NewSingleEmail(from, msg.Subject, to, "", msg.HTML)
	resp, err := m.client.Send(email)
	if err != nil {
		return fmt.Errorf("mailer: send to %s: %w", msg.To, err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("mailer: send to %s: status %d", msg.To, resp.StatusCode)
	}
	return nil
}

// ConsoleMailer logs messages instead of sending them.
type ConsoleMailer struct{}

func NewConsole() *ConsoleMailer { return &ConsoleMailer{} }

func (m *ConsoleMailer) Send(msg Message) error {
	log.Printf("mail (console): to=%s subject=%q", msg.To, msg.Subject)
	return nil
}

package mailer

import (
	"auth-backend/pkg/config"

	gomail "github.com/wneessen/go-mail"
)

// Mailer delivers a single HTML email. Failures propagate to the caller;
// nothing in this package retries.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

type smtpMailer struct {
	host string
	port int
	user string
	pass string
	from string
}

// NewSMTPMailer creates a Mailer backed by a plain SMTP account.
func NewSMTPMailer(cfg *config.Config) Mailer {
	return &smtpMailer{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
		from: cfg.MailFrom,
	}
}

func (m *smtpMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlBody)

	client, err := gomail.NewClient(m.host,
		gomail.WithPort(m.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.user),
		gomail.WithPassword(m.pass),
	)
	if err != nil {
		return err
	}

	return client.DialAndSend(msg)
}

package mailer

import (
	"fmt"
	"net/url"
)

// MailService composes the transactional emails the auth flows send. The raw
// token is embedded in the link; only its fingerprint is ever stored.
type MailService struct {
	mailer Mailer
	appURL string
}

func NewMailService(mailer Mailer, appURL string) *MailService {
	return &MailService{
		mailer: mailer,
		appURL: appURL,
	}
}

func (s *MailService) SendVerifyEmail(email, token string) error {
	link := fmt.Sprintf("%s/api/auth/verify-email?token=%s", s.appURL, url.QueryEscape(token))
	body := fmt.Sprintf(`<p>Verify your email:</p><p><a href="%s">%s</a></p>`, link, link)
	return s.mailer.Send(email, "Verify your email", body)
}

func (s *MailService) SendResetPassword(email, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", s.appURL, url.QueryEscape(token))
	body := fmt.Sprintf(`<p>Reset your password:</p><p><a href="%s">%s</a></p>`, link, link)
	return s.mailer.Send(email, "Reset your password", body)
}

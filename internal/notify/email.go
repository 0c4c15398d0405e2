// Package notify sends transactional email in the background. Delivery is
// best-effort: failures are logged and never fail the triggering request.
package notify

import (
	"fmt"
	"net/url"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/vida-hq/vida-admin/internal/config"
)

// Sender delivers a single email.
type Sender interface {
	Send(to, subject, htmlBody string) error
}

// SMTPSender implements Sender over an SMTP dialer.
type SMTPSender struct {
	cfg config.Email
}

// NewSMTPSender creates a new SMTP backed sender.
func NewSMTPSender(cfg config.Email) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// Send delivers one HTML email through the configured SMTP transport.
func (s *SMTPSender) Send(to, subject, htmlBody string) error {
	if s.cfg.Host == "" || s.cfg.User == "" || s.cfg.From == "" {
		return fmt.Errorf("email config missing")
	}

	if strings.TrimSpace(to) == "" {
		return fmt.Errorf("empty recipient")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Pass)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	return nil
}

// RegistrationSubject is the subject line of the registration email.
const RegistrationSubject = "Welcome to Vida - Complete Your Registration"

// RegistrationBody builds the HTML body of the registration email. The link
// embeds the recipient's email and points at the public base URL.
func RegistrationBody(baseURL, email string) string {
	link := fmt.Sprintf("%s/reset-password?email=%s", baseURL, url.QueryEscape(email))

	return fmt.Sprintf(`
<h1>Welcome to Vida!</h1>
<p>We're excited to have you on board. To get started with your admin account, complete your registration.</p>
<p>You can complete your registration and set a new password by clicking on the link below:</p>
<a href="%s" target="_blank">Complete Registration</a>
<p>If the above link doesn't work, please copy and paste the following URL into your browser:</p>
<p>%s</p>
<p>If you have any questions or need assistance, feel free to contact our support team.</p>
<p>Best Regards,</p>
<p>Vida Team</p>
`, link, link)
}

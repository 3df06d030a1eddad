package email

import (
	"fmt"

	"barberia_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// SMTPProvider sends mail through the configured SMTP relay.
type SMTPProvider struct {
	cfg *config.Config
}

func NewSMTPProvider(cfg *config.Config) (Provider, error) {
	if cfg.Email.SMTPHost == "" {
		return nil, fmt.Errorf("smtp host not configured")
	}
	return &SMTPProvider{cfg: cfg}, nil
}

func (p *SMTPProvider) Send(email *Email) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.cfg.Email.FromEmail, p.cfg.Email.FromName)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/html", email.Body)

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPUsername,
		p.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}

func (p *SMTPProvider) SendWelcome(to, name string) error {
	body := fmt.Sprintf(
		"<p>Hola %s,</p><p>Tu cuenta ha sido creada. ¡Bienvenido a la barbería!</p>",
		name,
	)
	return p.Send(&Email{
		To:      []string{to},
		Subject: "Bienvenido a la barbería",
		Body:    body,
	})
}

func (p *SMTPProvider) Close() error { return nil }

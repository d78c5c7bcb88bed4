package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPConfig configures the gomail provider.
type SMTPConfig struct {
	Host          string
	Port          int
	Username      string
	Password      string
	FromEmail     string
	FromName      string
	ResetTTLMin   int
}

// GomailProvider sends mail over SMTP via gomail.
type GomailProvider struct {
	config   *SMTPConfig
	dialer   *gomail.Dialer
	renderer *Renderer
}

func NewGomailProvider(cfg *SMTPConfig) (*GomailProvider, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("SMTP host is required")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid SMTP port: %d", cfg.Port)
	}

	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	return &GomailProvider{
		config:   cfg,
		dialer:   gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		renderer: renderer,
	}, nil
}

func (p *GomailProvider) Send(email *Email) error {
	m := gomail.NewMessage()

	from := email.From
	if from == "" {
		from = m.FormatAddress(p.config.FromEmail, p.config.FromName)
	}
	m.SetHeader("From", from)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)

	if email.HTMLBody != "" {
		m.SetBody("text/html", email.HTMLBody)
		if email.Body != "" {
			m.AddAlternative("text/plain", email.Body)
		}
	} else {
		m.SetBody("text/plain", email.Body)
	}

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (p *GomailProvider) SendPasswordReset(to, name, token string) error {
	html, err := p.renderer.Render("password_reset", TemplateData{
		"Name":          name,
		"Token":         token,
		"ExpiryMinutes": p.config.ResetTTLMin,
	})
	if err != nil {
		return err
	}
	return p.Send(&Email{
		To:       []string{to},
		Subject:  "PetTime - Recuperação de senha",
		HTMLBody: html,
	})
}

func (p *GomailProvider) SendWelcome(to, name string) error {
	html, err := p.renderer.Render("welcome", TemplateData{"Name": name})
	if err != nil {
		return err
	}
	return p.Send(&Email{
		To:       []string{to},
		Subject:  "Bem-vindo à PetTime!",
		HTMLBody: html,
	})
}

func (p *GomailProvider) Close() error {
	return nil
}

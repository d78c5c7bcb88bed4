package app

import (
	"pettime_backend/internal/email"
	"pettime_backend/internal/logger"
)

// MockEmailProvider logs instead of sending. Used when SMTP credentials are
// not configured and in tests.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(e *email.Email) error {
	logger.Info("mock email", "to", e.To, "subject", e.Subject)
	return nil
}

func (m *MockEmailProvider) SendPasswordReset(to, name, token string) error {
	logger.Info("mock password reset email", "to", to, "token", token)
	return nil
}

func (m *MockEmailProvider) SendWelcome(to, name string) error {
	logger.Info("mock welcome email", "to", to)
	return nil
}

func (m *MockEmailProvider) Close() error { return nil }

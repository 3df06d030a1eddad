package app

import "barberia_backend/internal/email"

// MockEmailProvider is used when SMTP is not configured and in tests.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(msg *email.Email) error       { return nil }
func (m *MockEmailProvider) SendWelcome(to, name string) error { return nil }
func (m *MockEmailProvider) Close() error                      { return nil }

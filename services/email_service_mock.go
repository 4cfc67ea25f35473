package services

import (
	"fmt"
	"sync"
)

// SentEmail records one email handed to the mock sender
type SentEmail struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

// MockEmailSender is a mock implementation of EmailSender for testing
type MockEmailSender struct {
	mu   sync.Mutex
	sent []SentEmail
	Fail bool
}

// NewMockEmailSender creates a new mock email sender
func NewMockEmailSender() *MockEmailSender {
	return &MockEmailSender{}
}

// SetAsMockForTesting sets this mock as the global email sender instance
func (m *MockEmailSender) SetAsMockForTesting() {
	SetEmailSender(m)
}

// SendEmail records the email, or fails when configured to
func (m *MockEmailSender) SendEmail(from string, to []string, subject, html string) error {
	if m.Fail {
		return fmt.Errorf("mock email failure")
	}
	m.mu.Lock()
	m.sent = append(m.sent, SentEmail{From: from, To: to, Subject: subject, HTML: html})
	m.mu.Unlock()
	return nil
}

// SentEmails returns everything recorded so far (for testing assertions)
func (m *MockEmailSender) SentEmails() []SentEmail {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentEmail, len(m.sent))
	copy(out, m.sent)
	return out
}

// Clear drops all recorded emails
func (m *MockEmailSender) Clear() {
	m.mu.Lock()
	m.sent = nil
	m.mu.Unlock()
}

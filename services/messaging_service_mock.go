package services

import (
	"fmt"
	"sync"
)

// SentMessage records one message handed to the mock sender
type SentMessage struct {
	Channel string // sms or whatsapp
	From    string
	To      string
	Body    string
}

// MockMessageSender is a mock implementation of MessageSender for testing
type MockMessageSender struct {
	mu           sync.Mutex
	sent         []SentMessage
	FailSMS      bool
	FailWhatsApp bool
}

// NewMockMessageSender creates a new mock message sender
func NewMockMessageSender() *MockMessageSender {
	return &MockMessageSender{}
}

// SetAsMockForTesting sets this mock as the global message sender instance
func (m *MockMessageSender) SetAsMockForTesting() {
	SetMessageSender(m)
}

// SendSMS records the SMS, or fails when configured to
func (m *MockMessageSender) SendSMS(from, to, body string) error {
	if m.FailSMS {
		return fmt.Errorf("mock sms failure")
	}
	m.mu.Lock()
	m.sent = append(m.sent, SentMessage{Channel: "sms", From: from, To: to, Body: body})
	m.mu.Unlock()
	return nil
}

// SendWhatsApp records the WhatsApp message, or fails when configured to
func (m *MockMessageSender) SendWhatsApp(from, to, body string) error {
	if m.FailWhatsApp {
		return fmt.Errorf("mock whatsapp failure")
	}
	m.mu.Lock()
	m.sent = append(m.sent, SentMessage{Channel: "whatsapp", From: from, To: to, Body: body})
	m.mu.Unlock()
	return nil
}

// SentMessages returns everything recorded so far (for testing assertions)
func (m *MockMessageSender) SentMessages() []SentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentMessage, len(m.sent))
	copy(out, m.sent)
	return out
}

// Clear drops all recorded messages
func (m *MockMessageSender) Clear() {
	m.mu.Lock()
	m.sent = nil
	m.mu.Unlock()
}

package services

import (
	"fmt"

	"github.com/resend/resend-go/v2"
)

// EmailSender sends HTML email. Failures are recorded by callers, never fatal.
type EmailSender interface {
	SendEmail(from string, to []string, subject, html string) error
}

var emailSenderInstance EmailSender

// InitResendSender initializes the global email sender with a Resend API key
func InitResendSender(apiKey string) EmailSender {
	emailSenderInstance = &ResendSender{client: resend.NewClient(apiKey)}
	return emailSenderInstance
}

// GetEmailSender returns the initialized email sender instance
func GetEmailSender() EmailSender {
	return emailSenderInstance
}

// SetEmailSender sets the email sender instance (primarily for testing)
func SetEmailSender(sender EmailSender) {
	emailSenderInstance = sender
}

// ResendSender sends email through the Resend API
type ResendSender struct {
	client *resend.Client
}

// SendEmail sends one HTML email
func (s *ResendSender) SendEmail(from string, to []string, subject, html string) error {
	params := &resend.SendEmailRequest{
		From:    from,
		To:      to,
		Subject: subject,
		Html:    html,
	}
	if _, err := s.client.Emails.Send(params); err != nil {
		return fmt.Errorf("resend send failed: %w", err)
	}
	return nil
}

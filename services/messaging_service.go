package services

import (
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// MessageSender sends SMS and WhatsApp messages. Each send may fail
// independently; callers record failures and move on.
type MessageSender interface {
	SendSMS(from, to, body string) error
	SendWhatsApp(from, to, body string) error
}

var messageSenderInstance MessageSender

// InitTwilioSender initializes the global message sender with Twilio credentials
func InitTwilioSender(accountSID, authToken string) MessageSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	messageSenderInstance = &TwilioSender{client: client}
	return messageSenderInstance
}

// GetMessageSender returns the initialized message sender instance
func GetMessageSender() MessageSender {
	return messageSenderInstance
}

// SetMessageSender sets the message sender instance (primarily for testing)
func SetMessageSender(sender MessageSender) {
	messageSenderInstance = sender
}

// TwilioSender sends messages through the Twilio REST API
type TwilioSender struct {
	client *twilio.RestClient
}

func (s *TwilioSender) send(from, to, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(from)
	params.SetTo(to)
	params.SetBody(body)
	if _, err := s.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("twilio send failed: %w", err)
	}
	return nil
}

// SendSMS sends a plain SMS
func (s *TwilioSender) SendSMS(from, to, body string) error {
	return s.send(from, to, body)
}

// SendWhatsApp sends a WhatsApp message. The from number is expected to
// already carry the whatsapp: prefix; the to number gets it added here.
func (s *TwilioSender) SendWhatsApp(from, to, body string) error {
	return s.send(from, "whatsapp:"+to, body)
}

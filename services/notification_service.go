package services

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/floranflowers/floran-api/config"
	"github.com/floranflowers/floran-api/models"
)

// statusMessages are the customer-facing texts sent when an order changes status
var statusMessages = map[string]string{
	models.StatusPreparing:      "🌸 FloranFlowers: Your order %s is being prepared! We're arranging your blooms.",
	models.StatusOutForDelivery: "🚚 FloranFlowers: Your order %s is out for delivery! Our driver is on the way.",
	models.StatusDelivered:      "🌺 FloranFlowers: Your order %s has been delivered! Thank you for choosing FloranFlowers.",
	models.StatusCancelled:      "💔 FloranFlowers: Your order %s has been cancelled. Contact us if you need help.",
}

// SendStatusNotifications sends the status message for an order over SMS and
// WhatsApp and records every attempt in order_notifications. It never returns
// an error: notification delivery is best-effort and must not affect the
// status change that triggered it.
func SendStatusNotifications(db *gorm.DB, orderID, status, phone string) {
	template, ok := statusMessages[status]
	if !ok || phone == "" {
		return
	}
	msg := fmt.Sprintf(template, orderID)

	sender := GetMessageSender()
	cfg := config.GetConfig()

	channels := []struct {
		name string
		from string
		send func(from, to, body string) error
	}{
		{"sms", cfg.TwilioPhoneNumber, func(from, to, body string) error {
			return sender.SendSMS(from, to, body)
		}},
		{"whatsapp", cfg.TwilioWhatsAppFrom, func(from, to, body string) error {
			return sender.SendWhatsApp(from, to, body)
		}},
	}

	for _, ch := range channels {
		sent := false
		if sender != nil && ch.from != "" {
			if err := ch.send(ch.from, phone, msg); err != nil {
				log.Printf("notification: %s send for order %s failed: %v", ch.name, orderID, err)
			} else {
				sent = true
			}
		}
		record := models.OrderNotification{
			OrderID: orderID,
			Channel: ch.name,
			Status:  status,
			Message: msg,
			Phone:   phone,
			Sent:    sent,
		}
		if err := db.Create(&record).Error; err != nil {
			log.Printf("notification: failed to record %s attempt for order %s: %v", ch.name, orderID, err)
		}
	}
}

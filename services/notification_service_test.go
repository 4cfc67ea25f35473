package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/floranflowers/floran-api/config"
	"github.com/floranflowers/floran-api/models"
)

func TestSendStatusNotifications(t *testing.T) {
	db := setupTestDB(t)
	_, sender := setupReminderTest(t)

	SendStatusNotifications(db, "FLRNOTE0001", models.StatusOutForDelivery, "+919876543210")

	sent := sender.SentMessages()
	assert.Len(t, sent, 2)
	for _, m := range sent {
		assert.Contains(t, m.Body, "FLRNOTE0001")
		assert.Contains(t, m.Body, "out for delivery")
		assert.Equal(t, "+919876543210", m.To)
	}

	var records []models.OrderNotification
	assert.NoError(t, db.Where("order_id = ?", "FLRNOTE0001").Find(&records).Error)
	assert.Len(t, records, 2)
	for _, r := range records {
		assert.True(t, r.Sent)
	}
}

func TestSendStatusNotifications_FailedSendStillRecorded(t *testing.T) {
	db := setupTestDB(t)
	_, sender := setupReminderTest(t)
	sender.FailWhatsApp = true

	SendStatusNotifications(db, "FLRNOTE0002", models.StatusPreparing, "+919876543210")

	assert.Len(t, sender.SentMessages(), 1, "Only SMS went out")

	var records []models.OrderNotification
	assert.NoError(t, db.Where("order_id = ?", "FLRNOTE0002").Order("channel ASC").Find(&records).Error)
	assert.Len(t, records, 2, "The failed attempt is recorded too")
	assert.Equal(t, "sms", records[0].Channel)
	assert.True(t, records[0].Sent)
	assert.Equal(t, "whatsapp", records[1].Channel)
	assert.False(t, records[1].Sent)
}

func TestSendStatusNotifications_NoPhoneDoesNothing(t *testing.T) {
	db := setupTestDB(t)
	_, sender := setupReminderTest(t)

	SendStatusNotifications(db, "FLRNOTE0003", models.StatusPreparing, "")

	assert.Empty(t, sender.SentMessages())
	var count int64
	assert.NoError(t, db.Model(&models.OrderNotification{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestSendStatusNotifications_UnknownStatusIgnored(t *testing.T) {
	db := setupTestDB(t)
	_, sender := setupReminderTest(t)

	SendStatusNotifications(db, "FLRNOTE0004", models.StatusConfirmed, "+919876543210")

	assert.Empty(t, sender.SentMessages(), "confirmed has no status message")
}

func TestSendStatusNotifications_NoSenderConfigured(t *testing.T) {
	db := setupTestDB(t)
	originalConfig := config.GetConfig()
	t.Cleanup(func() { config.SetConfig(originalConfig) })
	config.SetConfig(&config.Config{
		TwilioPhoneNumber:  "+15550000000",
		TwilioWhatsAppFrom: "whatsapp:+14155238886",
	})
	SetMessageSender(nil)

	SendStatusNotifications(db, "FLRNOTE0005", models.StatusPreparing, "+919876543210")

	// Attempts are recorded as unsent
	var records []models.OrderNotification
	assert.NoError(t, db.Where("order_id = ?", "FLRNOTE0005").Find(&records).Error)
	assert.Len(t, records, 2)
	for _, r := range records {
		assert.False(t, r.Sent)
	}
}

package models

import (
	"time"
)

// ReminderLog records that a reminder was sent for an order on a channel.
// The unique index enforces at-most-once per (order, reminder type, channel).
type ReminderLog struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	OrderID      string    `gorm:"not null;uniqueIndex:idx_reminder_once" json:"order_id"`
	ReminderType string    `gorm:"not null;uniqueIndex:idx_reminder_once" json:"reminder_type"` // e.g. "3_day", "1_day"
	Channel      string    `gorm:"not null;uniqueIndex:idx_reminder_once" json:"channel"`       // email, sms, whatsapp
	CreatedAt    time.Time `json:"created_at"`
}

// TableName specifies the table name for the ReminderLog model
func (ReminderLog) TableName() string {
	return "reminder_logs"
}

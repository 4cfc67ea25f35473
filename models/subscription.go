package models

import (
	"time"
)

// Subscription statuses
const (
	SubscriptionActive    = "active"
	SubscriptionPaused    = "paused"
	SubscriptionCancelled = "cancelled"
)

// PlanIntervals maps subscription plans to their delivery interval in days
var PlanIntervals = map[string]int{
	"weekly":   7,
	"biweekly": 14,
	"monthly":  30,
}

// Subscription is a recurring flower delivery plan
type Subscription struct {
	ID               string    `gorm:"primaryKey;size:16" json:"id"` // SUB + 8 chars
	CustomerEmail    string    `gorm:"not null;index" json:"customer_email"`
	CustomerName     string    `json:"customer_name"`
	Plan             string    `gorm:"not null" json:"plan"`  // weekly | biweekly | monthly
	Style            string    `gorm:"not null" json:"style"` // seasonal | fixed
	FixedProductID   *int      `json:"fixed_product_id"`
	FixedProductName *string   `json:"fixed_product_name"`
	Status           string    `gorm:"not null;default:'active'" json:"status"`
	NextDelivery     string    `json:"next_delivery"`
	Address          string    `json:"address"`
	SkippedCount     int       `gorm:"not null;default:0" json:"skipped_count"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Subscription model
func (Subscription) TableName() string {
	return "subscriptions"
}

// planInterval returns the delivery interval for a plan, defaulting to weekly
func planInterval(plan string) int {
	if days, ok := PlanIntervals[plan]; ok {
		return days
	}
	return 7
}

// NextDeliveryDate returns the first delivery date for a new subscription:
// one plan interval from now.
func NextDeliveryDate(plan string, now time.Time) string {
	return now.UTC().AddDate(0, 0, planInterval(plan)).Format("2006-01-02")
}

// AdvanceDeliveryDate moves a stored delivery date forward by one plan
// interval. The advance is anchored on the stored date, not on now; an
// unparsable stored date falls back to advancing from now.
func AdvanceDeliveryDate(plan, current string, now time.Time) string {
	base, err := time.Parse("2006-01-02", current)
	if err != nil {
		base = now.UTC()
	}
	return base.AddDate(0, 0, planInterval(plan)).Format("2006-01-02")
}

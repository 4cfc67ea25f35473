package models

import (
	"strings"
	"time"
)

// Corporate order statuses
const (
	CorporatePending   = "pending"
	CorporateCancelled = "cancelled"
)

// CorporateFrequencyDays maps recurring frequencies to their day offset
var CorporateFrequencyDays = map[string]int{
	"weekly":   7,
	"biweekly": 14,
	"monthly":  30,
}

var weekdayNames = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// CorporateOrder is a bulk B2B order with quantity-tiered discounts and
// optional weekday-anchored recurrence
type CorporateOrder struct {
	ID                 string    `gorm:"primaryKey;size:16" json:"id"` // CGT + 8 chars
	CompanyName        string    `gorm:"not null" json:"company_name"`
	ContactName        string    `gorm:"not null" json:"contact_name"`
	ContactEmail       string    `gorm:"not null;index" json:"contact_email"`
	ProductID          int       `json:"product_id"`
	ProductName        string    `json:"product_name"`
	Quantity           int       `gorm:"not null" json:"quantity"`
	UnitPrice          float64   `gorm:"not null" json:"unit_price"`
	DiscountPct        int       `json:"discount_pct"`
	TotalAmount        float64   `json:"total_amount"`
	FinalAmount        float64   `json:"final_amount"`
	BrandingLogoURL    *string   `json:"branding_logo_url"`
	BrandingLogoKey    *string   `json:"branding_logo_key,omitempty"` // S3 key when the logo was uploaded through us
	BrandingMessage    *string   `json:"branding_message"`
	DeliveryAddress    string    `json:"delivery_address"`
	DeliveryDate       *string   `json:"delivery_date"`
	IsRecurring        bool      `json:"is_recurring"`
	RecurringDay       *string   `json:"recurring_day"`       // weekday name
	RecurringFrequency *string   `json:"recurring_frequency"` // weekly | biweekly | monthly
	NextDelivery       *string   `json:"next_delivery"`
	Status             string    `gorm:"not null;default:'pending'" json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// TableName specifies the table name for the CorporateOrder model
func (CorporateOrder) TableName() string {
	return "corporate_orders"
}

// CorporateDiscountPct returns the discount tier for a quantity:
// 50+ gets 15%, 25+ gets 10%, 10+ gets 5%, less gets nothing.
func CorporateDiscountPct(quantity int) int {
	switch {
	case quantity >= 50:
		return 15
	case quantity >= 25:
		return 10
	case quantity >= 10:
		return 5
	default:
		return 0
	}
}

// NextCorporateDelivery computes the first recurring delivery date: the next
// occurrence of the target weekday strictly after today (same weekday rolls a
// full week), and for biweekly/monthly the frequency offset is added on top
// of that first weekly occurrence. The compounding is intentional and matches
// how corporate recurrence has always been quoted to clients.
func NextCorporateDelivery(day, frequency string, now time.Time) string {
	today := now.UTC()
	target, ok := weekdayNames[strings.ToLower(day)]
	if !ok {
		target = time.Monday
	}
	daysAhead := (int(target) - int(today.Weekday()) + 7) % 7
	if daysAhead == 0 {
		daysAhead = 7
	}
	first := today.AddDate(0, 0, daysAhead)
	switch frequency {
	case "biweekly":
		first = first.AddDate(0, 0, 14)
	case "monthly":
		first = first.AddDate(0, 0, 30)
	}
	return first.Format("2006-01-02")
}

// AdvanceCorporateDelivery moves a stored next-delivery date forward by the
// fixed per-frequency offset, anchored on the stored date. An unparsable
// stored date falls back to advancing from now.
func AdvanceCorporateDelivery(frequency, current string, now time.Time) string {
	days, ok := CorporateFrequencyDays[frequency]
	if !ok {
		days = 7
	}
	base, err := time.Parse("2006-01-02", current)
	if err != nil {
		base = now.UTC()
	}
	return base.AddDate(0, 0, days).Format("2006-01-02")
}

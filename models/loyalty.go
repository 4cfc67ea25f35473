package models

import (
	"time"
)

// Loyalty transaction types
const (
	TxnEarnedWelcome          = "earned_welcome"
	TxnEarnedPurchase         = "earned_purchase"
	TxnEarnedReferralSignup   = "earned_referral_signup"
	TxnEarnedReferralPurchase = "earned_referral_purchase"
	TxnRedeemed               = "redeemed"
)

// LoyaltyAccount tracks a customer's points balance. The balance is clamped
// at zero and the earned total only ever grows.
type LoyaltyAccount struct {
	UserEmail         string    `gorm:"primaryKey;size:255" json:"user_email"`
	PointsBalance     int       `gorm:"not null;default:0;check:points_balance >= 0" json:"points_balance"`
	PointsEarnedTotal int       `gorm:"not null;default:0" json:"points_earned_total"`
	ReferralCode      string    `gorm:"uniqueIndex;size:20;not null" json:"referral_code"`
	ReferredByCode    *string   `gorm:"size:20" json:"referred_by_code"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TableName specifies the table name for the LoyaltyAccount model
func (LoyaltyAccount) TableName() string {
	return "loyalty_accounts"
}

// LoyaltyTransaction is an append-only record of a single points mutation
type LoyaltyTransaction struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserEmail   string    `gorm:"not null;index" json:"user_email"`
	Type        string    `gorm:"not null" json:"type"`
	Points      int       `gorm:"not null" json:"points"` // signed, negative for redemptions
	Description string    `json:"description"`
	OrderID     *string   `gorm:"size:16" json:"order_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for the LoyaltyTransaction model
func (LoyaltyTransaction) TableName() string {
	return "loyalty_transactions"
}

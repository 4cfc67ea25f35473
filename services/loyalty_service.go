package services

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/floranflowers/floran-api/models"
	"github.com/floranflowers/floran-api/utils"
)

// Loyalty bonus amounts
const (
	WelcomeBonusPoints               = 100
	ReferralSignupBonusPoints        = 200
	ReferralFirstPurchaseBonusPoints = 150
)

const balanceUpdateRetries = 3

// ApplyPoints applies a signed points amount to an account and appends a
// transaction row. An account is created on first use with a fresh referral
// code. The balance is clamped at zero and the earned total only grows on
// positive awards. Balance updates are conditional on the previously read
// balance and retried, so concurrent awards cannot lose each other's update.
func ApplyPoints(db *gorm.DB, email string, points int, txnType, description string, orderID *string) error {
	for attempt := 0; ; attempt++ {
		var acct models.LoyaltyAccount
		err := db.Where("user_email = ?", email).First(&acct).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			newBalance := points
			if newBalance < 0 {
				newBalance = 0
			}
			newEarned := 0
			if points > 0 {
				newEarned = points
			}
			acct = models.LoyaltyAccount{
				UserEmail:         email,
				PointsBalance:     newBalance,
				PointsEarnedTotal: newEarned,
				ReferralCode:      utils.GenerateReferralCode(),
			}
			if err := db.Create(&acct).Error; err != nil {
				return fmt.Errorf("failed to create loyalty account: %w", err)
			}
			break
		}
		if err != nil {
			return fmt.Errorf("failed to load loyalty account: %w", err)
		}

		newBalance := acct.PointsBalance + points
		if newBalance < 0 {
			newBalance = 0
		}
		newEarned := acct.PointsEarnedTotal
		if points > 0 {
			newEarned += points
		}

		// Conditional on the balance we read; a lost race leaves zero rows
		// affected and we retry from a fresh read.
		result := db.Model(&models.LoyaltyAccount{}).
			Where("user_email = ? AND points_balance = ?", email, acct.PointsBalance).
			Updates(map[string]interface{}{
				"points_balance":      newBalance,
				"points_earned_total": newEarned,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update loyalty balance: %w", result.Error)
		}
		if result.RowsAffected > 0 {
			break
		}
		if attempt >= balanceUpdateRetries {
			return fmt.Errorf("loyalty balance contention for %s", email)
		}
	}

	txn := models.LoyaltyTransaction{
		UserEmail:   email,
		Type:        txnType,
		Points:      points,
		Description: description,
		OrderID:     orderID,
	}
	if err := db.Create(&txn).Error; err != nil {
		return fmt.Errorf("failed to record loyalty transaction: %w", err)
	}
	return nil
}

// AwardPoints is the best-effort form of ApplyPoints: loyalty accounting must
// never block the order or registration that triggered it. A failure is
// logged and returned as a warning string ("" when everything went through).
func AwardPoints(db *gorm.DB, email string, points int, txnType, description string, orderID *string) string {
	if err := ApplyPoints(db, email, points, txnType, description, orderID); err != nil {
		log.Printf("loyalty: award (%s, %d pts) for %s failed: %v", txnType, points, email, err)
		return fmt.Sprintf("loyalty award (%s) was not recorded", txnType)
	}
	return ""
}

// CreateLoyaltyAccount creates the account for a new customer, pays the
// welcome bonus, and pays the signup bonus to the referrer when the supplied
// referral code resolves. Returns the new referral code and any warnings.
func CreateLoyaltyAccount(db *gorm.DB, email, referredByCode string) (string, []string) {
	refCode := utils.GenerateReferralCode()
	var warnings []string

	var referredBy *string
	referrerEmail := ""
	if referredByCode != "" {
		var referrer models.LoyaltyAccount
		if err := db.Where("referral_code = ?", referredByCode).First(&referrer).Error; err == nil {
			referredBy = &referredByCode
			referrerEmail = referrer.UserEmail
		}
	}

	acct := models.LoyaltyAccount{
		UserEmail:      email,
		ReferralCode:   refCode,
		ReferredByCode: referredBy,
	}
	if err := db.Create(&acct).Error; err != nil {
		log.Printf("loyalty: account creation for %s failed: %v", email, err)
		warnings = append(warnings, "loyalty account was not created")
	}

	if w := AwardPoints(db, email, WelcomeBonusPoints, models.TxnEarnedWelcome,
		"Welcome bonus for joining FloranFlowers", nil); w != "" {
		warnings = append(warnings, w)
	}
	if referrerEmail != "" {
		if w := AwardPoints(db, referrerEmail, ReferralSignupBonusPoints, models.TxnEarnedReferralSignup,
			fmt.Sprintf("Referral signup bonus — %s joined", email), nil); w != "" {
			warnings = append(warnings, w)
		}
	}
	return refCode, warnings
}

// RedeemPoints deducts points at checkout when the balance covers them.
// An insufficient balance skips the redemption and surfaces a warning; the
// order itself is unaffected either way.
func RedeemPoints(db *gorm.DB, email string, points int, orderID string) (bool, string) {
	if points <= 0 {
		return false, ""
	}
	var acct models.LoyaltyAccount
	if err := db.Where("user_email = ?", email).First(&acct).Error; err != nil || acct.PointsBalance < points {
		return false, fmt.Sprintf("redemption of %d points skipped: insufficient balance", points)
	}
	if w := AwardPoints(db, email, -points, models.TxnRedeemed,
		fmt.Sprintf("Points redeemed at checkout for order %s", orderID), &orderID); w != "" {
		return false, w
	}
	return true, ""
}

// PayFirstPurchaseReferralBonus pays the referrer once the referred customer
// records their first purchase transaction. Called after the purchase earn,
// so "first purchase" means exactly one earned_purchase row exists.
func PayFirstPurchaseReferralBonus(db *gorm.DB, email string) string {
	var acct models.LoyaltyAccount
	if err := db.Where("user_email = ?", email).First(&acct).Error; err != nil || acct.ReferredByCode == nil {
		return ""
	}

	var purchases int64
	if err := db.Model(&models.LoyaltyTransaction{}).
		Where("user_email = ? AND type = ?", email, models.TxnEarnedPurchase).
		Count(&purchases).Error; err != nil {
		log.Printf("loyalty: first-purchase check for %s failed: %v", email, err)
		return ""
	}
	if purchases != 1 {
		return ""
	}

	var referrer models.LoyaltyAccount
	if err := db.Where("referral_code = ?", *acct.ReferredByCode).First(&referrer).Error; err != nil {
		return ""
	}
	return AwardPoints(db, referrer.UserEmail, ReferralFirstPurchaseBonusPoints, models.TxnEarnedReferralPurchase,
		fmt.Sprintf("Referral first-purchase bonus — %s made their first order", email), nil)
}

// PointsBalance returns the current balance for an account, zero when none exists
func PointsBalance(db *gorm.DB, email string) int {
	var acct models.LoyaltyAccount
	if err := db.Where("user_email = ?", email).First(&acct).Error; err != nil {
		return 0
	}
	return acct.PointsBalance
}

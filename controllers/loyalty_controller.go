package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/floranflowers/floran-api/config"
	"github.com/floranflowers/floran-api/middleware"
	"github.com/floranflowers/floran-api/models"
)

// GetLoyalty handles GET /api/loyalty - returns the session customer's account
// and its recent transactions
func GetLoyalty(c *gin.Context) {
	// Identity comes from the session, never from the caller
	email, err := middleware.GetUserEmail(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UNAUTHORIZED",
				"message": "Could not extract user information",
			},
		})
		return
	}

	db := config.GetDB()

	var acct models.LoyaltyAccount
	if err := db.Where("user_email = ?", email).First(&acct).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ACCOUNT_NOT_FOUND",
				"message": "No loyalty account found",
			},
		})
		return
	}

	var txns []models.LoyaltyTransaction
	if err := db.Where("user_email = ?", email).
		Order("created_at DESC").
		Limit(20).
		Find(&txns).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch loyalty transactions",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_email":          acct.UserEmail,
		"points_balance":      acct.PointsBalance,
		"points_earned_total": acct.PointsEarnedTotal,
		"referral_code":       acct.ReferralCode,
		"referred_by_code":    acct.ReferredByCode,
		"transactions":        txns,
	})
}

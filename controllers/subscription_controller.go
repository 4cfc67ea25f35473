package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/floranflowers/floran-api/config"
	"github.com/floranflowers/floran-api/middleware"
	"github.com/floranflowers/floran-api/models"
	"github.com/floranflowers/floran-api/utils"
)

// CreateSubscriptionRequest represents the request body for starting a plan
type CreateSubscriptionRequest struct {
	Customer         CustomerInfo `json:"customer" binding:"required"`
	Plan             string       `json:"plan" binding:"required,oneof=weekly biweekly monthly"`
	Style            string       `json:"style" binding:"required,oneof=seasonal fixed"`
	FixedProductID   *int         `json:"fixed_product_id"`
	FixedProductName *string      `json:"fixed_product_name"`
	Address          string       `json:"address"`
}

// CreateSubscription handles POST /api/subscriptions
func CreateSubscription(c *gin.Context) {
	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	sub := models.Subscription{
		ID:               utils.GenerateSubscriptionID(),
		CustomerEmail:    req.Customer.Email,
		CustomerName:     req.Customer.Name,
		Plan:             req.Plan,
		Style:            req.Style,
		FixedProductID:   req.FixedProductID,
		FixedProductName: req.FixedProductName,
		Status:           models.SubscriptionActive,
		NextDelivery:     models.NextDeliveryDate(req.Plan, time.Now()),
		Address:          req.Address,
	}

	if err := config.GetDB().Create(&sub).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create subscription",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"subscriptionId": sub.ID,
		"status":         sub.Status,
		"next_delivery":  sub.NextDelivery,
	})
}

// GetSubscriptions handles GET /api/subscriptions - lists the session
// customer's plans
func GetSubscriptions(c *gin.Context) {
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

	var subs []models.Subscription
	if err := config.GetDB().Where("customer_email = ?", email).
		Order("created_at DESC").Find(&subs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch subscriptions",
			},
		})
		return
	}

	c.JSON(http.StatusOK, subs)
}

// subscriptionNotFound writes the standard 404 for a missing subscription id
func subscriptionNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "SUBSCRIPTION_NOT_FOUND",
			"message": "Subscription not found",
		},
	})
}

// PauseSubscription handles PATCH /api/subscriptions/:id/pause
func PauseSubscription(c *gin.Context) {
	setSubscriptionStatus(c, models.SubscriptionPaused)
}

// ResumeSubscription handles PATCH /api/subscriptions/:id/resume
func ResumeSubscription(c *gin.Context) {
	setSubscriptionStatus(c, models.SubscriptionActive)
}

// CancelSubscription handles PATCH /api/subscriptions/:id/cancel
func CancelSubscription(c *gin.Context) {
	setSubscriptionStatus(c, models.SubscriptionCancelled)
}

func setSubscriptionStatus(c *gin.Context, status string) {
	db := config.GetDB()
	var sub models.Subscription
	if err := db.Where("id = ?", c.Param("id")).First(&sub).Error; err != nil {
		subscriptionNotFound(c)
		return
	}

	if err := db.Model(&sub).Update("status", status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update subscription",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": status})
}

// SkipSubscriptionDelivery handles PATCH /api/subscriptions/:id/skip - pushes
// the next delivery out by one plan interval and counts the skip
func SkipSubscriptionDelivery(c *gin.Context) {
	db := config.GetDB()
	var sub models.Subscription
	if err := db.Where("id = ?", c.Param("id")).First(&sub).Error; err != nil {
		subscriptionNotFound(c)
		return
	}

	next := models.AdvanceDeliveryDate(sub.Plan, sub.NextDelivery, time.Now())
	if err := db.Model(&sub).Updates(map[string]interface{}{
		"next_delivery": next,
		"skipped_count": sub.SkippedCount + 1,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to skip delivery",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        "skipped",
		"next_delivery": next,
	})
}

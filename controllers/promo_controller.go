package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/floranflowers/floran-api/catalog"
	"github.com/floranflowers/floran-api/config"
	"github.com/floranflowers/floran-api/models"
)

// PromoValidateRequest represents the request body for validating a promo code
type PromoValidateRequest struct {
	Code          string  `json:"code" binding:"required"`
	OrderTotal    float64 `json:"order_total"`
	CustomerEmail string  `json:"customer_email"`
}

// ValidatePromo handles POST /api/promo/validate - checks a code against the
// order total and, for first-order codes, the customer's order history
func ValidatePromo(c *gin.Context) {
	var req PromoValidateRequest
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

	code := strings.ToUpper(strings.TrimSpace(req.Code))
	promo, ok := catalog.PromoCodes[code]
	if !ok || !promo.Active {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "PROMO_NOT_FOUND",
				"message": "Invalid promo code",
			},
		})
		return
	}

	if req.OrderTotal < promo.MinOrder {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "BELOW_MINIMUM",
				"message": fmt.Sprintf("Minimum order ₹%.0f required for this code", promo.MinOrder),
			},
		})
		return
	}

	if promo.FirstOrderOnly {
		firstOrderErr := gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FIRST_ORDER_ONLY",
				"message": "Code valid for first order only",
			},
		}
		if req.CustomerEmail == "" {
			c.JSON(http.StatusBadRequest, firstOrderErr)
			return
		}
		var count int64
		db := config.GetDB()
		if err := db.Model(&models.Order{}).
			Where("customer_email = ?", req.CustomerEmail).
			Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": "Failed to check order history",
				},
			})
			return
		}
		if count > 0 {
			c.JSON(http.StatusBadRequest, firstOrderErr)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":           true,
		"code":            code,
		"discount_type":   promo.Type,
		"discount_value":  promo.Value,
		"discount_amount": promo.DiscountAmount(req.OrderTotal),
		"description":     promo.Description,
	})
}

// GetOffers handles GET /api/offers - returns seasonal offers and enriched bundle deals
func GetOffers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"seasonal_offers": catalog.SeasonalOffers,
		"bundle_deals":    catalog.EnrichedBundles(),
	})
}

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

// CreateCorporateOrderRequest represents the request body for a bulk order
type CreateCorporateOrderRequest struct {
	CompanyName        string  `json:"company_name" binding:"required"`
	ContactName        string  `json:"contact_name" binding:"required"`
	ContactEmail       string  `json:"contact_email" binding:"required,email"`
	ProductID          int     `json:"product_id"`
	ProductName        string  `json:"product_name"`
	Quantity           int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice          float64 `json:"unit_price" binding:"required,gt=0"`
	BrandingLogoURL    *string `json:"branding_logo_url"`
	BrandingMessage    *string `json:"branding_message"`
	DeliveryAddress    string  `json:"delivery_address"`
	DeliveryDate       *string `json:"delivery_date"`
	IsRecurring        bool    `json:"is_recurring"`
	RecurringDay       *string `json:"recurring_day"`
	RecurringFrequency *string `json:"recurring_frequency"`
}

// CreateCorporateOrder handles POST /api/corporate-orders - prices the order
// with the quantity discount tier and schedules recurrence when requested
func CreateCorporateOrder(c *gin.Context) {
	var req CreateCorporateOrderRequest
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

	discount := models.CorporateDiscountPct(req.Quantity)
	total := utils.Round2(req.UnitPrice * float64(req.Quantity))
	final := utils.Round2(total * (1 - float64(discount)/100))

	order := models.CorporateOrder{
		ID:              utils.GenerateCorporateOrderID(),
		CompanyName:     req.CompanyName,
		ContactName:     req.ContactName,
		ContactEmail:    req.ContactEmail,
		ProductID:       req.ProductID,
		ProductName:     req.ProductName,
		Quantity:        req.Quantity,
		UnitPrice:       req.UnitPrice,
		DiscountPct:     discount,
		TotalAmount:     total,
		FinalAmount:     final,
		BrandingLogoURL: req.BrandingLogoURL,
		BrandingMessage: req.BrandingMessage,
		DeliveryAddress: req.DeliveryAddress,
		DeliveryDate:    req.DeliveryDate,
		IsRecurring:     req.IsRecurring,
		Status:          models.CorporatePending,
	}

	if req.IsRecurring {
		day := "monday"
		if req.RecurringDay != nil && *req.RecurringDay != "" {
			day = *req.RecurringDay
		}
		frequency := "weekly"
		if req.RecurringFrequency != nil && *req.RecurringFrequency != "" {
			frequency = *req.RecurringFrequency
		}
		next := models.NextCorporateDelivery(day, frequency, time.Now())
		order.RecurringDay = &day
		order.RecurringFrequency = &frequency
		order.NextDelivery = &next
	}

	if err := config.GetDB().Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create corporate order",
			},
		})
		return
	}

	resp := gin.H{
		"orderId":      order.ID,
		"status":       order.Status,
		"discount_pct": discount,
		"total_amount": total,
		"final_amount": final,
	}
	if order.NextDelivery != nil {
		resp["next_delivery"] = *order.NextDelivery
	}
	c.JSON(http.StatusOK, resp)
}

// GetCorporateOrders handles GET /api/corporate-orders - lists the session
// contact's orders
func GetCorporateOrders(c *gin.Context) {
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

	var orders []models.CorporateOrder
	if err := config.GetDB().Where("contact_email = ?", email).
		Order("created_at DESC").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch corporate orders",
			},
		})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// corporateOrderNotFound writes the standard 404 for a missing corporate order
func corporateOrderNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "ORDER_NOT_FOUND",
			"message": "Corporate order not found",
		},
	})
}

// CancelCorporateOrder handles PATCH /api/corporate-orders/:id/cancel
func CancelCorporateOrder(c *gin.Context) {
	db := config.GetDB()
	var order models.CorporateOrder
	if err := db.Where("id = ?", c.Param("id")).First(&order).Error; err != nil {
		corporateOrderNotFound(c)
		return
	}

	if err := db.Model(&order).Update("status", models.CorporateCancelled).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to cancel corporate order",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": models.CorporateCancelled})
}

// SkipCorporateDelivery handles PATCH /api/corporate-orders/:id/skip - pushes
// the next recurring delivery out by one frequency interval
func SkipCorporateDelivery(c *gin.Context) {
	db := config.GetDB()
	var order models.CorporateOrder
	if err := db.Where("id = ?", c.Param("id")).First(&order).Error; err != nil {
		corporateOrderNotFound(c)
		return
	}

	if !order.IsRecurring {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_OPERATION",
				"message": "Only recurring corporate orders can skip a delivery",
			},
		})
		return
	}

	frequency := "weekly"
	if order.RecurringFrequency != nil {
		frequency = *order.RecurringFrequency
	}
	current := ""
	if order.NextDelivery != nil {
		current = *order.NextDelivery
	}
	next := models.AdvanceCorporateDelivery(frequency, current, time.Now())

	if err := db.Model(&order).Update("next_delivery", next).Error; err != nil {
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

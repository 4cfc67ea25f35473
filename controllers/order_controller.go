package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/floranflowers/floran-api/catalog"
	"github.com/floranflowers/floran-api/config"
	"github.com/floranflowers/floran-api/middleware"
	"github.com/floranflowers/floran-api/models"
	"github.com/floranflowers/floran-api/services"
	"github.com/floranflowers/floran-api/utils"
)

// OrderItemRequest is one product line submitted at checkout
type OrderItemRequest struct {
	ProductID int     `json:"productId" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
}

// CustomerInfo identifies the customer on a checkout request
type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CreateOrderRequest represents the request body for checkout
type CreateOrderRequest struct {
	Items            []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	Total            float64            `json:"total"`
	Customer         CustomerInfo       `json:"customer" binding:"required"`
	DeliveryType     string             `json:"delivery_type"`
	DeliveryDatetime string             `json:"delivery_datetime"`
	PointsRedeemed   int                `json:"points_redeemed"`
	PromoCode        string             `json:"promo_code"`
	IsRecurring      bool               `json:"is_recurring"`
	RecurrenceType   string             `json:"recurrence_type"` // 'annual'
}

// UpdateDeliveryRequest represents the request body for rescheduling delivery
type UpdateDeliveryRequest struct {
	DeliveryType     string `json:"delivery_type" binding:"required"`
	DeliveryDatetime string `json:"delivery_datetime"`
}

// StatusUpdateRequest represents the request body for a status transition
type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateOrder handles POST /api/orders - persists the order with its items and
// applies loyalty redemption and earning afterwards. Loyalty failures never
// roll back the order; they come back as warnings.
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
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

	orderID := utils.GenerateOrderID()
	deliveryType := req.DeliveryType
	if deliveryType == "" {
		deliveryType = "immediate"
	}

	nextRecurrence := ""
	if req.IsRecurring && req.RecurrenceType == "annual" && req.DeliveryDatetime != "" {
		nextRecurrence = models.AnnualRecurrenceDate(req.DeliveryDatetime)
	}

	order := models.Order{
		ID:                 orderID,
		CustomerEmail:      req.Customer.Email,
		CustomerName:       req.Customer.Name,
		CustomerPhone:      req.Customer.Phone,
		Total:              req.Total,
		Status:             models.StatusConfirmed,
		DeliveryType:       deliveryType,
		DeliveryDatetime:   req.DeliveryDatetime,
		IsRecurring:        req.IsRecurring,
		RecurrenceType:     req.RecurrenceType,
		NextRecurrenceDate: nextRecurrence,
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, models.OrderItem{
			OrderID:   orderID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	// Header and lines commit together; readers never see a partial order
	db := config.GetDB()
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items", "Notifications").Create(&order).Error; err != nil {
			return err
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create order",
			},
		})
		return
	}

	pointsEarned := 0
	newBalance := 0
	warnings := []string{}

	if req.Customer.Email != "" {
		email := req.Customer.Email

		if _, w := services.RedeemPoints(db, email, req.PointsRedeemed, orderID); w != "" {
			warnings = append(warnings, w)
		}

		// 1 point per currency unit of the final total
		pointsEarned = int(req.Total)
		if w := services.AwardPoints(db, email, pointsEarned, models.TxnEarnedPurchase,
			fmt.Sprintf("Points earned for order %s", orderID), &orderID); w != "" {
			warnings = append(warnings, w)
		}

		if w := services.PayFirstPurchaseReferralBonus(db, email); w != "" {
			warnings = append(warnings, w)
		}

		newBalance = services.PointsBalance(db, email)
	}

	c.JSON(http.StatusOK, gin.H{
		"orderId":       orderID,
		"status":        models.StatusConfirmed,
		"points_earned": pointsEarned,
		"new_balance":   newBalance,
		"warnings":      warnings,
	})
}

// GetOrders handles GET /api/orders - lists the session customer's orders
// with item lines (images joined from the catalog) and notification history
func GetOrders(c *gin.Context) {
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
	var orders []models.Order
	if err := db.Where("customer_email = ?", email).
		Preload("Items").
		Preload("Notifications", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("sent_at ASC")
		}).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch orders",
			},
		})
		return
	}

	for i := range orders {
		for j := range orders[i].Items {
			if product, ok := catalog.ProductByID(orders[i].Items[j].ProductID); ok {
				orders[i].Items[j].Image = product.Image
			}
		}
	}

	c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus handles PATCH /api/orders/:id/status - applies a status
// transition and dispatches the matching customer notification
func UpdateOrderStatus(c *gin.Context) {
	var req StatusUpdateRequest
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

	db := config.GetDB()
	var order models.Order
	if err := db.Where("id = ?", c.Param("id")).First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ORDER_NOT_FOUND",
				"message": "Order not found",
			},
		})
		return
	}

	if !order.CanTransitionTo(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_TRANSITION",
				"message": fmt.Sprintf("Cannot transition from '%s' to '%s'", order.Status, req.Status),
			},
		})
		return
	}

	if err := db.Model(&order).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update order status",
			},
		})
		return
	}

	services.SendStatusNotifications(db, order.ID, req.Status, order.CustomerPhone)

	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}

// CancelOrder handles PATCH /api/orders/:id/cancel - cancels an order still
// in a cancellable state
func CancelOrder(c *gin.Context) {
	db := config.GetDB()
	var order models.Order
	if err := db.Where("id = ?", c.Param("id")).First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ORDER_NOT_FOUND",
				"message": "Order not found",
			},
		})
		return
	}

	if !order.CanCancel() {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_OPERATION",
				"message": "Only confirmed or preparing orders can be cancelled",
			},
		})
		return
	}

	if err := db.Model(&order).Update("status", models.StatusCancelled).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to cancel order",
			},
		})
		return
	}

	services.SendStatusNotifications(db, order.ID, models.StatusCancelled, order.CustomerPhone)

	c.JSON(http.StatusOK, gin.H{"status": models.StatusCancelled})
}

// UpdateDelivery handles PATCH /api/orders/:id/delivery - reschedules delivery
// for any order that has not been cancelled
func UpdateDelivery(c *gin.Context) {
	var req UpdateDeliveryRequest
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

	db := config.GetDB()
	var order models.Order
	if err := db.Where("id = ?", c.Param("id")).First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ORDER_NOT_FOUND",
				"message": "Order not found",
			},
		})
		return
	}

	if order.Status == models.StatusCancelled {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_OPERATION",
				"message": "Cannot update delivery for a cancelled order",
			},
		})
		return
	}

	if err := db.Model(&order).Updates(map[string]interface{}{
		"delivery_type":     req.DeliveryType,
		"delivery_datetime": req.DeliveryDatetime,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update delivery",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

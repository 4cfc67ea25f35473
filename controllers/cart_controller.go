package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/floranflowers/floran-api/catalog"
	"github.com/floranflowers/floran-api/config"
	"github.com/floranflowers/floran-api/middleware"
	"github.com/floranflowers/floran-api/models"
)

// CartItemRequest represents the request body for upserting a cart item
type CartItemRequest struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity" binding:"required,gt=0"`
}

// cartEntry joins a stored cart row with its catalog product
type cartEntry struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// cartUser resolves the session email the cart rows are keyed on. Writes the
// standard 401 and returns false when no session identity is present.
func cartUser(c *gin.Context) (string, bool) {
	email, err := middleware.GetUserEmail(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UNAUTHORIZED",
				"message": "Could not extract user information",
			},
		})
		return "", false
	}
	return email, true
}

// GetCart handles GET /api/cart - returns the session user's cart joined with
// catalog products
func GetCart(c *gin.Context) {
	userID, ok := cartUser(c)
	if !ok {
		return
	}

	db := config.GetDB()
	var items []models.CartItem
	if err := db.Where("user_id = ?", userID).Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch cart",
			},
		})
		return
	}

	cart := make([]cartEntry, 0, len(items))
	for _, item := range items {
		// Rows referencing products no longer in the catalog are dropped
		if product, ok := catalog.ProductByID(item.ProductID); ok {
			cart = append(cart, cartEntry{Product: product, Quantity: item.Quantity})
		}
	}

	c.JSON(http.StatusOK, cart)
}

// UpsertCartItem handles POST /api/cart/items - inserts or updates one cart row
func UpsertCartItem(c *gin.Context) {
	userID, ok := cartUser(c)
	if !ok {
		return
	}

	var req CartItemRequest
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
	var existing models.CartItem
	err := db.Where("user_id = ? AND product_id = ?", userID, req.ProductID).First(&existing).Error
	switch {
	case err == nil:
		err = db.Model(&existing).Update("quantity", req.Quantity).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		err = db.Create(&models.CartItem{
			UserID:    userID,
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
		}).Error
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update cart",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// RemoveCartItem handles DELETE /api/cart/items/:productId - removes one cart row
func RemoveCartItem(c *gin.Context) {
	userID, ok := cartUser(c)
	if !ok {
		return
	}

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "A numeric productId is required",
			},
		})
		return
	}

	db := config.GetDB()
	if err := db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartItem{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to remove cart item",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ClearCart handles DELETE /api/cart - removes every row in the user's cart
func ClearCart(c *gin.Context) {
	userID, ok := cartUser(c)
	if !ok {
		return
	}

	db := config.GetDB()
	if err := db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to clear cart",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

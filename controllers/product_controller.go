package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/floranflowers/floran-api/catalog"
)

// ListProducts handles GET /api/products - lists the catalog, optionally filtered by category
func ListProducts(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		c.JSON(http.StatusOK, catalog.ByCategory(category))
		return
	}
	c.JSON(http.StatusOK, catalog.Products)
}

// ListCategories handles GET /api/products/categories - lists the sorted distinct categories
func ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Categories())
}

// GetProduct handles GET /api/products/:id - returns a single product
func GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Product id must be an integer",
			},
		})
		return
	}

	product, ok := catalog.ProductByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "PRODUCT_NOT_FOUND",
				"message": "Product not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, product)
}

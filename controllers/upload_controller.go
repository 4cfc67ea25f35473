package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/floranflowers/floran-api/config"
	"github.com/floranflowers/floran-api/models"
	"github.com/floranflowers/floran-api/services"
	"github.com/floranflowers/floran-api/utils"
)

// UploadBrandingLogo handles POST /api/corporate-orders/:id/logo - uploads a
// PNG branding logo to S3 and stores the key and presigned URL on the order
func UploadBrandingLogo(c *gin.Context) {
	db := config.GetDB()
	var order models.CorporateOrder
	if err := db.Where("id = ?", c.Param("id")).First(&order).Error; err != nil {
		corporateOrderNotFound(c)
		return
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "logo file is required",
			},
		})
		return
	}

	logoService := services.GetLogoService()
	if logoService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UPLOAD_UNAVAILABLE",
				"message": "Logo storage is not configured",
			},
		})
		return
	}

	key, err := logoService.UploadLogo(fileHeader)
	if err != nil {
		var uploadErr *utils.FileUploadError
		if errors.As(err, &uploadErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    uploadErr.Code,
					"message": uploadErr.Message,
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UPLOAD_FAILED",
				"message": "Failed to upload logo",
			},
		})
		return
	}

	url, err := logoService.GetLogoURL(key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UPLOAD_FAILED",
				"message": "Failed to generate logo URL",
			},
		})
		return
	}

	// Best-effort cleanup of a previously uploaded logo
	if order.BrandingLogoKey != nil && *order.BrandingLogoKey != key {
		_ = logoService.DeleteLogo(*order.BrandingLogoKey)
	}

	if err := db.Model(&order).Updates(map[string]interface{}{
		"branding_logo_key": key,
		"branding_logo_url": url,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to save logo reference",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"branding_logo_url": url,
		"branding_logo_key": key,
	})
}

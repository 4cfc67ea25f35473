package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/floranflowers/floran-api/config"
	"github.com/floranflowers/floran-api/middleware"
	"github.com/floranflowers/floran-api/models"
	"github.com/floranflowers/floran-api/services"
	"github.com/floranflowers/floran-api/utils"
)

// RegisterRequest represents the request body for registering a user
type RegisterRequest struct {
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	ReferralCode string `json:"referral_code"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func userResponse(user models.User) gin.H {
	return gin.H{
		"id":        user.ID,
		"firstName": user.FirstName,
		"lastName":  user.LastName,
		"email":     user.Email,
	}
}

// Register handles POST /api/auth/register - creates a user, issues a session,
// and opens a loyalty account with the welcome bonus
func Register(c *gin.Context) {
	var req RegisterRequest
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

	var existing models.User
	if err := db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "EMAIL_TAKEN",
				"message": "Email already registered",
			},
		})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to check existing users",
			},
		})
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "HASHING_ERROR",
				"message": "Failed to process password",
			},
		})
		return
	}

	user := models.User{
		Email:     req.Email,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if err := db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create user",
			},
		})
		return
	}

	token := ""
	if store := services.GetSessionStore(); store != nil {
		if token, err = store.Create(c.Request.Context(), user.Email); err != nil {
			log.Printf("auth: session creation for %s failed: %v", user.Email, err)
		}
	}

	// Loyalty side effects never block registration
	_, warnings := services.CreateLoyaltyAccount(db, user.Email, req.ReferralCode)

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"user":     userResponse(user),
		"warnings": warnings,
	})
}

// Login handles POST /api/auth/login - verifies credentials and issues a session
func Login(c *gin.Context) {
	var req LoginRequest
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

	var user models.User
	if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_CREDENTIALS",
				"message": "Invalid credentials",
			},
		})
		return
	}

	if !utils.VerifyPassword(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_CREDENTIALS",
				"message": "Invalid credentials",
			},
		})
		return
	}

	token := ""
	if store := services.GetSessionStore(); store != nil {
		var err error
		if token, err = store.Create(c.Request.Context(), user.Email); err != nil {
			log.Printf("auth: session creation for %s failed: %v", user.Email, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  userResponse(user),
	})
}

// Logout handles POST /api/auth/logout - invalidates the presented session
func Logout(c *gin.Context) {
	token, err := middleware.GetSessionToken(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UNAUTHORIZED",
				"message": "Could not extract session information",
			},
		})
		return
	}

	if store := services.GetSessionStore(); store != nil {
		if err := store.Invalidate(c.Request.Context(), token); err != nil {
			log.Printf("auth: session invalidation failed: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

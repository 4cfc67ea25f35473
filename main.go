package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/floranflowers/floran-api/config"
	"github.com/floranflowers/floran-api/controllers"
	"github.com/floranflowers/floran-api/middleware"
	"github.com/floranflowers/floran-api/models"
	"github.com/floranflowers/floran-api/services"
)

func main() {
	log.Println("Starting FloranFlowers API server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := db.AutoMigrate(
		&models.User{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderNotification{},
		&models.LoyaltyAccount{},
		&models.LoyaltyTransaction{},
		&models.CartItem{},
		&models.Subscription{},
		&models.CorporateOrder{},
		&models.ReminderLog{},
		&models.Contact{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	initServices(cfg)

	router := setupRouter()

	port := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// initServices wires the session store and outbound integrations. Each
// integration is optional; a missing credential leaves its feature degraded
// rather than failing startup.
func initServices(cfg *config.Config) {
	if cfg.RedisURL != "" {
		store, err := services.NewRedisSessionStore(cfg.RedisURL)
		if err != nil {
			log.Printf("Redis session store unavailable (%v), falling back to in-memory sessions", err)
			services.SetSessionStore(services.NewMemorySessionStore())
		} else {
			log.Println("Using Redis session store")
			services.SetSessionStore(store)
		}
	} else {
		log.Println("REDIS_URL not set, using in-memory session store")
		services.SetSessionStore(services.NewMemorySessionStore())
	}

	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" {
		services.InitTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken)
		log.Println("Twilio messaging enabled")
	} else {
		log.Println("Twilio credentials not set, SMS/WhatsApp notifications disabled")
	}

	if cfg.ResendAPIKey != "" {
		services.InitResendSender(cfg.ResendAPIKey)
		log.Println("Resend email enabled")
	} else {
		log.Println("RESEND_API_KEY not set, email reminders disabled")
	}

	if cfg.AWSS3Bucket != "" {
		s3Service, err := services.InitS3Service()
		if err != nil {
			log.Printf("S3 unavailable (%v), branding logo uploads disabled", err)
		} else {
			services.InitLogoService(s3Service)
			log.Println("S3 branding logo storage enabled")
		}
	} else {
		log.Println("AWS_S3_BUCKET not set, branding logo uploads disabled")
	}
}

// setupRouter builds the Gin engine with CORS and all API routes
func setupRouter() *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	api := router.Group("/api")
	{
		api.GET("/health", healthCheck)
		api.GET("/database/status", databaseStatus)

		// Catalog
		api.GET("/products", controllers.ListProducts)
		api.GET("/products/categories", controllers.ListCategories)
		api.GET("/products/:id", controllers.GetProduct)
		api.GET("/offers", controllers.GetOffers)

		// Auth
		api.POST("/auth/register", controllers.Register)
		api.POST("/auth/login", controllers.Login)
		api.POST("/auth/logout", middleware.RequireSession(), controllers.Logout)

		// Contact
		api.POST("/contact", controllers.SubmitContact)

		// Loyalty
		api.GET("/loyalty", middleware.RequireSession(), controllers.GetLoyalty)

		// Promo codes
		api.POST("/promo/validate", controllers.ValidatePromo)

		// Cart
		cart := api.Group("/cart", middleware.RequireSession())
		{
			cart.GET("", controllers.GetCart)
			cart.POST("/items", controllers.UpsertCartItem)
			cart.DELETE("/items/:productId", controllers.RemoveCartItem)
			cart.DELETE("", controllers.ClearCart)
		}

		// Orders
		api.POST("/orders", controllers.CreateOrder)
		api.GET("/orders", middleware.RequireSession(), controllers.GetOrders)
		api.PATCH("/orders/:id/status", controllers.UpdateOrderStatus)
		api.PATCH("/orders/:id/cancel", controllers.CancelOrder)
		api.PATCH("/orders/:id/delivery", controllers.UpdateDelivery)

		// Subscriptions
		api.POST("/subscriptions", controllers.CreateSubscription)
		api.GET("/subscriptions", middleware.RequireSession(), controllers.GetSubscriptions)
		api.PATCH("/subscriptions/:id/pause", controllers.PauseSubscription)
		api.PATCH("/subscriptions/:id/resume", controllers.ResumeSubscription)
		api.PATCH("/subscriptions/:id/skip", controllers.SkipSubscriptionDelivery)
		api.PATCH("/subscriptions/:id/cancel", controllers.CancelSubscription)

		// Corporate orders
		api.POST("/corporate-orders", controllers.CreateCorporateOrder)
		api.GET("/corporate-orders", middleware.RequireSession(), controllers.GetCorporateOrders)
		api.PATCH("/corporate-orders/:id/cancel", controllers.CancelCorporateOrder)
		api.PATCH("/corporate-orders/:id/skip", controllers.SkipCorporateDelivery)
		api.POST("/corporate-orders/:id/logo", controllers.UploadBrandingLogo)

		// Delivery reminders
		api.POST("/reminders/send", controllers.SendReminders)
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "FloranFlowers API is running",
	})
}

// databaseStatus checks database connectivity and returns table information
func databaseStatus(c *gin.Context) {
	db := config.GetDB()

	sqlDB, err := db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to get database instance",
			},
		})
		return
	}

	if err := sqlDB.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_CONNECTION_ERROR",
				"message": "Database connection failed",
			},
		})
		return
	}

	var tables []string
	if err := db.Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public'").Scan(&tables).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_QUERY_ERROR",
				"message": "Failed to query tables",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected",
		"tables":  tables,
	})
}

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/floranflowers/floran-api/config"
	"github.com/floranflowers/floran-api/models"
	"github.com/floranflowers/floran-api/services"
)

// setupIntegrationRouter wires the full API router against an in-memory
// database with mock outbound integrations.
func setupIntegrationRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err, "Failed to open test database")

	err = db.AutoMigrate(
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
	)
	assert.NoError(t, err, "Failed to migrate test database")

	config.SetDB(db)
	t.Cleanup(func() { config.SetDB(nil) })

	services.SetSessionStore(services.NewMemorySessionStore())
	services.SetMessageSender(services.NewMockMessageSender())
	services.SetEmailSender(services.NewMockEmailSender())
	t.Cleanup(func() {
		services.SetMessageSender(nil)
		services.SetEmailSender(nil)
	})

	return setupRouter()
}

func doJSON(router *gin.Engine, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// TestCustomerJourney walks the main flow end to end: register, browse,
// build a cart, place an order, and watch the loyalty balance move.
func TestCustomerJourney(t *testing.T) {
	router := setupIntegrationRouter(t)

	// Register a customer
	w := doJSON(router, "POST", "/api/auth/register", "", gin.H{
		"firstName": "Priya",
		"lastName":  "Sharma",
		"email":     "priya@example.com",
		"password":  "secret-pass-1",
	})
	assert.Equal(t, http.StatusOK, w.Code, "Response body: %s", w.Body.String())

	var registerResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &registerResp))
	token := registerResp["token"].(string)
	assert.NotEmpty(t, token)

	// Welcome bonus is in place
	w = doJSON(router, "GET", "/api/loyalty", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var loyaltyResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &loyaltyResp))
	assert.Equal(t, float64(100), loyaltyResp["points_balance"])

	// Browse the catalog
	w = doJSON(router, "GET", "/api/products/1", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Add to cart
	w = doJSON(router, "POST", "/api/cart/items", token, gin.H{
		"product_id": 1,
		"quantity":   2,
	})
	assert.Equal(t, http.StatusOK, w.Code, "Response body: %s", w.Body.String())

	w = doJSON(router, "GET", "/api/cart", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var cart []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	assert.Len(t, cart, 1)

	// Place an order
	w = doJSON(router, "POST", "/api/orders", "", gin.H{
		"customer": gin.H{
			"name":  "Priya Sharma",
			"email": "priya@example.com",
			"phone": "+15550001111",
		},
		"items": []gin.H{
			{"productId": 1, "name": "Red Rose Bouquet", "price": 49.99, "quantity": 2},
		},
		"total":             99.98,
		"delivery_type":     "scheduled",
		"delivery_datetime": "2026-09-10T14:00",
	})
	assert.Equal(t, http.StatusOK, w.Code, "Response body: %s", w.Body.String())

	var orderResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &orderResp))
	orderID := orderResp["orderId"].(string)
	assert.Len(t, orderID, 11)
	assert.Equal(t, "confirmed", orderResp["status"])
	assert.Equal(t, float64(99), orderResp["points_earned"])

	// Balance reflects the purchase points
	w = doJSON(router, "GET", "/api/loyalty", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &loyaltyResp))
	assert.Equal(t, float64(199), loyaltyResp["points_balance"])

	// Order shows up in history
	w = doJSON(router, "GET", "/api/orders", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var orders []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	assert.Len(t, orders, 1)

	// Walk the order through fulfillment
	for _, status := range []string{"preparing", "out_for_delivery", "delivered"} {
		w = doJSON(router, "PATCH", fmt.Sprintf("/api/orders/%s/status", orderID), "", gin.H{
			"status": status,
		})
		assert.Equal(t, http.StatusOK, w.Code, "Transition to %s failed: %s", status, w.Body.String())
	}

	// Delivered orders cannot be cancelled
	w = doJSON(router, "PATCH", fmt.Sprintf("/api/orders/%s/cancel", orderID), "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestSubscriptionJourney covers creating and managing a subscription through
// the public API.
func TestSubscriptionJourney(t *testing.T) {
	router := setupIntegrationRouter(t)

	w := doJSON(router, "POST", "/api/auth/register", "", gin.H{
		"firstName": "Marco",
		"lastName":  "Rossi",
		"email":     "marco@example.com",
		"password":  "secret-pass-2",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var registerResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &registerResp))
	token := registerResp["token"].(string)

	w = doJSON(router, "POST", "/api/subscriptions", "", gin.H{
		"customer": gin.H{
			"name":  "Marco Rossi",
			"email": "marco@example.com",
		},
		"plan":    "weekly",
		"style":   "seasonal",
		"address": "Via Roma 1",
	})
	assert.Equal(t, http.StatusOK, w.Code, "Response body: %s", w.Body.String())

	var subResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &subResp))
	subID := subResp["subscriptionId"].(string)
	assert.Equal(t, "active", subResp["status"])

	// Pause, resume, skip, cancel
	w = doJSON(router, "PATCH", fmt.Sprintf("/api/subscriptions/%s/pause", subID), "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "PATCH", fmt.Sprintf("/api/subscriptions/%s/resume", subID), "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "PATCH", fmt.Sprintf("/api/subscriptions/%s/skip", subID), "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, "GET", "/api/subscriptions", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var subs []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &subs))
	assert.Len(t, subs, 1)
	assert.Equal(t, float64(1), subs[0]["skipped_count"])

	w = doJSON(router, "PATCH", fmt.Sprintf("/api/subscriptions/%s/cancel", subID), "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

// TestSessionRequiredRoutes verifies account-scoped routes reject anonymous
// requests.
func TestSessionRequiredRoutes(t *testing.T) {
	router := setupIntegrationRouter(t)

	protected := []struct {
		method string
		path   string
	}{
		{"GET", "/api/loyalty"},
		{"GET", "/api/cart"},
		{"GET", "/api/orders"},
		{"GET", "/api/subscriptions"},
		{"GET", "/api/corporate-orders"},
		{"POST", "/api/auth/logout"},
	}

	for _, route := range protected {
		w := doJSON(router, route.method, route.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s should require a session", route.method, route.path)
	}
}

// TestAccountScopedIsolation verifies one customer's session can never read
// another customer's account data, no matter what query parameters it sends.
func TestAccountScopedIsolation(t *testing.T) {
	router := setupIntegrationRouter(t)

	register := func(first, last, email string) string {
		w := doJSON(router, "POST", "/api/auth/register", "", gin.H{
			"firstName": first,
			"lastName":  last,
			"email":     email,
			"password":  "secret-pass-3",
		})
		assert.Equal(t, http.StatusOK, w.Code, "Response body: %s", w.Body.String())
		var resp map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp["token"].(string)
	}

	register("Vera", "Ito", "vera@example.com")
	intruderToken := register("Ivan", "Petrov", "ivan@example.com")

	w := doJSON(router, "POST", "/api/orders", "", gin.H{
		"customer": gin.H{"name": "Vera Ito", "email": "vera@example.com"},
		"items": []gin.H{
			{"productId": 1, "name": "Red Rose Bouquet", "price": 49.99, "quantity": 1},
		},
		"total": 49.99,
	})
	assert.Equal(t, http.StatusOK, w.Code, "Response body: %s", w.Body.String())
	var orderResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &orderResp))
	veraOrderID := orderResp["orderId"].(string)

	// The email parameter is ignored; only the session identity scopes the read
	w = doJSON(router, "GET", "/api/orders?email=vera@example.com", intruderToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), veraOrderID)

	var orders []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	assert.Empty(t, orders)

	// Same for the loyalty account
	w = doJSON(router, "GET", "/api/loyalty?email=vera@example.com", intruderToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var loyaltyResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &loyaltyResp))
	assert.Equal(t, "ivan@example.com", loyaltyResp["user_email"])
}

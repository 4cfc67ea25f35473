package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/floranflowers/floran-api/config"
	"github.com/floranflowers/floran-api/models"
)

func TestCreateSubscription(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	router := setupTestRouter()
	router.POST("/api/subscriptions", CreateSubscription)

	tests := []struct {
		name         string
		plan         string
		intervalDays int
	}{
		{"Weekly plan", "weekly", 7},
		{"Biweekly plan", "biweekly", 14},
		{"Monthly plan", "monthly", 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, router, "/api/subscriptions", gin.H{
				"customer": gin.H{"name": "Priya Sharma", "email": "priya@example.com"},
				"plan":     tt.plan,
				"style":    "seasonal",
				"address":  "12 Rose Lane",
			})
			assert.Equal(t, http.StatusOK, w.Code, "Response body: %s", w.Body.String())
			response := parseBody(t, w)

			subID := response["subscriptionId"].(string)
			assert.True(t, strings.HasPrefix(subID, "SUB"))
			assert.Len(t, subID, 11)
			assert.Equal(t, models.SubscriptionActive, response["status"])

			expected := time.Now().UTC().AddDate(0, 0, tt.intervalDays).Format("2006-01-02")
			assert.Equal(t, expected, response["next_delivery"])
		})
	}
}

func TestCreateSubscription_FixedStyle(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	router := setupTestRouter()
	router.POST("/api/subscriptions", CreateSubscription)

	w := postJSON(t, router, "/api/subscriptions", gin.H{
		"customer":           gin.H{"name": "Priya Sharma", "email": "priya@example.com"},
		"plan":               "weekly",
		"style":              "fixed",
		"fixed_product_id":   1,
		"fixed_product_name": "Red Rose Bouquet",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	response := parseBody(t, w)

	var sub models.Subscription
	assert.NoError(t, db.Where("id = ?", response["subscriptionId"]).First(&sub).Error)
	assert.Equal(t, "fixed", sub.Style)
	assert.NotNil(t, sub.FixedProductID)
	assert.Equal(t, 1, *sub.FixedProductID)
}

func TestCreateSubscription_InvalidPlan(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	router := setupTestRouter()
	router.POST("/api/subscriptions", CreateSubscription)

	w := postJSON(t, router, "/api/subscriptions", gin.H{
		"customer": gin.H{"email": "priya@example.com"},
		"plan":     "daily",
		"style":    "seasonal",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(parseBody(t, w)))
}

func TestGetSubscriptions(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	assert.NoError(t, db.Create(&models.Subscription{
		ID:            "SUBLIST0001",
		CustomerEmail: "priya@example.com",
		Plan:          "weekly",
		Style:         "seasonal",
		Status:        models.SubscriptionActive,
	}).Error)
	assert.NoError(t, db.Create(&models.Subscription{
		ID:            "SUBLIST0002",
		CustomerEmail: "other@example.com",
		Plan:          "monthly",
		Style:         "seasonal",
		Status:        models.SubscriptionActive,
	}).Error)

	router := setupTestRouter()
	router.GET("/api/subscriptions", asUser("priya@example.com"), GetSubscriptions)

	req := httptest.NewRequest(http.MethodGet, "/api/subscriptions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var subs []models.Subscription
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &subs))
	assert.Len(t, subs, 1)
	assert.Equal(t, "SUBLIST0001", subs[0].ID)
}

func TestGetSubscriptions_ScopedToSessionUser(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	assert.NoError(t, db.Create(&models.Subscription{
		ID:            "SUBVICTIM01",
		CustomerEmail: "victim@example.com",
		Plan:          "weekly",
		Style:         "seasonal",
		Status:        models.SubscriptionActive,
	}).Error)

	router := setupTestRouter()
	router.GET("/api/subscriptions", asUser("attacker@example.com"), GetSubscriptions)

	// A caller-supplied email parameter must not widen the query
	req := httptest.NewRequest(http.MethodGet, "/api/subscriptions?email=victim@example.com", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var subs []models.Subscription
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &subs))
	assert.Empty(t, subs, "Another customer's subscriptions must not be readable")
}

func TestSubscriptionLifecycle(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	sub := models.Subscription{
		ID:            "SUBLIFE0001",
		CustomerEmail: "priya@example.com",
		Plan:          "weekly",
		Style:         "seasonal",
		Status:        models.SubscriptionActive,
	}
	assert.NoError(t, db.Create(&sub).Error)

	router := setupTestRouter()
	router.PATCH("/api/subscriptions/:id/pause", PauseSubscription)
	router.PATCH("/api/subscriptions/:id/resume", ResumeSubscription)
	router.PATCH("/api/subscriptions/:id/cancel", CancelSubscription)

	steps := []struct {
		action string
		status string
	}{
		{"pause", models.SubscriptionPaused},
		{"resume", models.SubscriptionActive},
		{"cancel", models.SubscriptionCancelled},
	}

	for _, step := range steps {
		req := httptest.NewRequest(http.MethodPatch, "/api/subscriptions/"+sub.ID+"/"+step.action, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "Action %s: %s", step.action, w.Body.String())

		var after models.Subscription
		assert.NoError(t, db.Where("id = ?", sub.ID).First(&after).Error)
		assert.Equal(t, step.status, after.Status)
	}
}

func TestSubscriptionActions_NotFound(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	router := setupTestRouter()
	router.PATCH("/api/subscriptions/:id/pause", PauseSubscription)
	router.PATCH("/api/subscriptions/:id/skip", SkipSubscriptionDelivery)

	for _, action := range []string{"pause", "skip"} {
		req := httptest.NewRequest(http.MethodPatch, "/api/subscriptions/SUBMISSING1/"+action, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "SUBSCRIPTION_NOT_FOUND", errorCode(parseBody(t, w)))
	}
}

func TestSkipSubscriptionDelivery(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	stored := time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02")
	sub := models.Subscription{
		ID:            "SUBSKIP0001",
		CustomerEmail: "priya@example.com",
		Plan:          "weekly",
		Style:         "seasonal",
		Status:        models.SubscriptionActive,
		NextDelivery:  stored,
	}
	assert.NoError(t, db.Create(&sub).Error)

	router := setupTestRouter()
	router.PATCH("/api/subscriptions/:id/skip", SkipSubscriptionDelivery)

	req := httptest.NewRequest(http.MethodPatch, "/api/subscriptions/"+sub.ID+"/skip", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	response := parseBody(t, w)

	// The skip is anchored on the stored date, one interval further out
	expected := time.Now().UTC().AddDate(0, 0, 14).Format("2006-01-02")
	assert.Equal(t, expected, response["next_delivery"])

	var after models.Subscription
	assert.NoError(t, db.Where("id = ?", sub.ID).First(&after).Error)
	assert.Equal(t, expected, after.NextDelivery)
	assert.Equal(t, 1, after.SkippedCount)

	// A second skip stacks on top of the first
	req = httptest.NewRequest(http.MethodPatch, "/api/subscriptions/"+sub.ID+"/skip", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	assert.NoError(t, db.Where("id = ?", sub.ID).First(&after).Error)
	assert.Equal(t, time.Now().UTC().AddDate(0, 0, 21).Format("2006-01-02"), after.NextDelivery)
	assert.Equal(t, 2, after.SkippedCount)
}

package controllers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/floranflowers/floran-api/config"
	"github.com/floranflowers/floran-api/models"
	"github.com/floranflowers/floran-api/services"
)

// createLogoUploadRequest builds a multipart request carrying one logo file
func createLogoUploadRequest(t *testing.T, url, filename string, content []byte) *http.Request {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if filename != "" {
		part, err := writer.CreateFormFile("logo", filename)
		assert.NoError(t, err)
		_, err = part.Write(content)
		assert.NoError(t, err)
	}
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, url, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func setupLogoService(t *testing.T) *services.MockS3Service {
	mockS3 := services.NewMockS3Service()
	mockS3.SetAsMockForTesting()
	services.InitLogoService(mockS3)
	t.Cleanup(func() {
		services.SetLogoService(nil)
		services.SetS3Service(nil)
	})
	return mockS3
}

func TestUploadBrandingLogo(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)
	mockS3 := setupLogoService(t)

	order := models.CorporateOrder{
		ID:           "CGTLOGO0001",
		CompanyName:  "Bloomtech Pvt Ltd",
		ContactName:  "Ravi Kumar",
		ContactEmail: "ravi@bloomtech.example",
		Quantity:     25,
		UnitPrice:    80,
		Status:       models.CorporatePending,
	}
	assert.NoError(t, db.Create(&order).Error)

	router := setupTestRouter()
	router.POST("/api/corporate-orders/:id/logo", UploadBrandingLogo)

	req := createLogoUploadRequest(t, "/api/corporate-orders/"+order.ID+"/logo", "logo.png", []byte("fake png content"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "Response body: %s", w.Body.String())
	response := parseBody(t, w)

	key := response["branding_logo_key"].(string)
	assert.True(t, mockS3.FileExists(key))
	assert.Contains(t, response["branding_logo_url"].(string), key)

	var after models.CorporateOrder
	assert.NoError(t, db.Where("id = ?", order.ID).First(&after).Error)
	assert.NotNil(t, after.BrandingLogoKey)
	assert.Equal(t, key, *after.BrandingLogoKey)
	assert.NotNil(t, after.BrandingLogoURL)
}

func TestUploadBrandingLogo_ReplacesPreviousLogo(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)
	mockS3 := setupLogoService(t)

	order := models.CorporateOrder{
		ID:           "CGTLOGO0002",
		CompanyName:  "Bloomtech Pvt Ltd",
		ContactName:  "Ravi Kumar",
		ContactEmail: "ravi@bloomtech.example",
		Quantity:     25,
		UnitPrice:    80,
		Status:       models.CorporatePending,
	}
	assert.NoError(t, db.Create(&order).Error)

	router := setupTestRouter()
	router.POST("/api/corporate-orders/:id/logo", UploadBrandingLogo)

	req := createLogoUploadRequest(t, "/api/corporate-orders/"+order.ID+"/logo", "first.png", []byte("first"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	firstKey := parseBody(t, w)["branding_logo_key"].(string)

	req = createLogoUploadRequest(t, "/api/corporate-orders/"+order.ID+"/logo", "second.png", []byte("second"))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	secondKey := parseBody(t, w)["branding_logo_key"].(string)

	assert.NotEqual(t, firstKey, secondKey)
	assert.False(t, mockS3.FileExists(firstKey), "The replaced logo is cleaned up")
	assert.True(t, mockS3.FileExists(secondKey))
}

func TestUploadBrandingLogo_InvalidFormat(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)
	setupLogoService(t)

	order := models.CorporateOrder{
		ID:           "CGTLOGO0003",
		CompanyName:  "Bloomtech Pvt Ltd",
		ContactName:  "Ravi Kumar",
		ContactEmail: "ravi@bloomtech.example",
		Quantity:     25,
		UnitPrice:    80,
		Status:       models.CorporatePending,
	}
	assert.NoError(t, db.Create(&order).Error)

	router := setupTestRouter()
	router.POST("/api/corporate-orders/:id/logo", UploadBrandingLogo)

	req := createLogoUploadRequest(t, "/api/corporate-orders/"+order.ID+"/logo", "logo.jpg", []byte("jpeg content"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_FILE_FORMAT", errorCode(parseBody(t, w)))
}

func TestUploadBrandingLogo_MissingFile(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)
	setupLogoService(t)

	order := models.CorporateOrder{
		ID:           "CGTLOGO0004",
		CompanyName:  "Bloomtech Pvt Ltd",
		ContactName:  "Ravi Kumar",
		ContactEmail: "ravi@bloomtech.example",
		Quantity:     25,
		UnitPrice:    80,
		Status:       models.CorporatePending,
	}
	assert.NoError(t, db.Create(&order).Error)

	router := setupTestRouter()
	router.POST("/api/corporate-orders/:id/logo", UploadBrandingLogo)

	req := createLogoUploadRequest(t, "/api/corporate-orders/"+order.ID+"/logo", "", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(parseBody(t, w)))
}

func TestUploadBrandingLogo_OrderNotFound(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)
	setupLogoService(t)

	router := setupTestRouter()
	router.POST("/api/corporate-orders/:id/logo", UploadBrandingLogo)

	req := createLogoUploadRequest(t, "/api/corporate-orders/CGTMISSING1/logo", "logo.png", []byte("png"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ORDER_NOT_FOUND", errorCode(parseBody(t, w)))
}

func TestUploadBrandingLogo_ServiceUnavailable(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)
	services.SetLogoService(nil)

	order := models.CorporateOrder{
		ID:           "CGTLOGO0005",
		CompanyName:  "Bloomtech Pvt Ltd",
		ContactName:  "Ravi Kumar",
		ContactEmail: "ravi@bloomtech.example",
		Quantity:     25,
		UnitPrice:    80,
		Status:       models.CorporatePending,
	}
	assert.NoError(t, db.Create(&order).Error)

	router := setupTestRouter()
	router.POST("/api/corporate-orders/:id/logo", UploadBrandingLogo)

	req := createLogoUploadRequest(t, "/api/corporate-orders/"+order.ID+"/logo", "logo.png", []byte("png"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "UPLOAD_UNAVAILABLE", errorCode(parseBody(t, w)))
}

package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/floranflowers/floran-api/catalog"
)

func TestListProducts(t *testing.T) {
	router := setupTestRouter()
	router.GET("/api/products", ListProducts)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var products []catalog.Product
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, len(catalog.Products))
}

func TestListProducts_CategoryFilter(t *testing.T) {
	router := setupTestRouter()
	router.GET("/api/products", ListProducts)

	req := httptest.NewRequest(http.MethodGet, "/api/products?category=Bouquets", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var products []catalog.Product
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.NotEmpty(t, products)
	for _, p := range products {
		assert.Equal(t, "Bouquets", p.Category)
	}
}

func TestListProducts_UnknownCategoryIsEmpty(t *testing.T) {
	router := setupTestRouter()
	router.GET("/api/products", ListProducts)

	req := httptest.NewRequest(http.MethodGet, "/api/products?category=cacti", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestListCategories(t *testing.T) {
	router := setupTestRouter()
	router.GET("/api/products/categories", ListCategories)

	req := httptest.NewRequest(http.MethodGet, "/api/products/categories", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var categories []string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	assert.NotEmpty(t, categories)

	// Sorted, no duplicates
	seen := map[string]bool{}
	for i, cat := range categories {
		assert.False(t, seen[cat], "Category %q appears twice", cat)
		seen[cat] = true
		if i > 0 {
			assert.Less(t, categories[i-1], cat)
		}
	}
}

func TestGetProduct(t *testing.T) {
	router := setupTestRouter()
	router.GET("/api/products/:id", GetProduct)

	first := catalog.Products[0]
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/products/%d", first.ID), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var product catalog.Product
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))
	assert.Equal(t, first.ID, product.ID)
	assert.Equal(t, first.Name, product.Name)
	assert.Equal(t, first.Price, product.Price)
}

func TestGetProduct_NotFound(t *testing.T) {
	router := setupTestRouter()
	router.GET("/api/products/:id", GetProduct)

	req := httptest.NewRequest(http.MethodGet, "/api/products/99999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "PRODUCT_NOT_FOUND", errorCode(parseBody(t, w)))
}

func TestGetProduct_InvalidID(t *testing.T) {
	router := setupTestRouter()
	router.GET("/api/products/:id", GetProduct)

	req := httptest.NewRequest(http.MethodGet, "/api/products/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(parseBody(t, w)))
}

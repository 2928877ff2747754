package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"storefront/controllers"
	"storefront/models"
)

// --- Mock StatsService ---

type mockStatsService struct {
	statsFn func(ctx context.Context) *models.Stats
}

func (m *mockStatsService) GetStats(ctx context.Context) *models.Stats {
	return m.statsFn(ctx)
}

func TestController_GetStats(t *testing.T) {
	svc := &mockStatsService{
		statsFn: func(_ context.Context) *models.Stats {
			return &models.Stats{
				TotalOrders:         2,
				TotalItemsPurchased: 5,
				TotalPurchaseAmount: 350,
				TotalDiscountAmount: 10,
				CouponsIssued: []models.Coupon{
					{Code: "DISC10-2", Used: true},
				},
			}
		},
	}

	r := gin.New()
	sc := controllers.NewStatsController(svc)
	r.GET("/admin/stats", sc.GetStats)

	req, _ := http.NewRequest(http.MethodGet, "/admin/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, 2.0, resp["totalOrders"])
	assert.Equal(t, 5.0, resp["totalItemsPurchased"])
	assert.Equal(t, 350.0, resp["totalPurchaseAmount"])
	assert.Equal(t, 10.0, resp["totalDiscountAmount"])
	assert.Len(t, resp["couponsIssued"], 1)
}

func TestController_ListProducts(t *testing.T) {
	r := gin.New()
	pc := controllers.NewProductController(&staticCatalog{})
	r.GET("/products", pc.ListProducts)

	req, _ := http.NewRequest(http.MethodGet, "/products", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var products []models.Product
	_ = json.Unmarshal(w.Body.Bytes(), &products)
	assert.Len(t, products, 2)
}

type staticCatalog struct{}

func (s *staticCatalog) ListProducts(_ context.Context) []models.Product {
	return []models.Product{
		{ID: 1, Name: "AirWave Pro Headphones", Price: 299.99},
		{ID: 2, Name: "Quantum Watch Ultra", Price: 549.99},
	}
}

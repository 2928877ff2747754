package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"storefront/controllers"
	"storefront/models"
	"storefront/services"
)

// --- Mock CheckoutService ---

type mockCheckoutService struct {
	checkoutFn func(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutResponse, *services.ServiceError)
}

func (m *mockCheckoutService) Checkout(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutResponse, *services.ServiceError) {
	return m.checkoutFn(ctx, req)
}

func setupCheckoutRouter(svc *mockCheckoutService) *gin.Engine {
	r := gin.New()
	cc := controllers.NewCheckoutController(svc)
	r.POST("/checkout", cc.Checkout)
	return r
}

// --- Tests ---

func TestController_Checkout_Success(t *testing.T) {
	newCoupon := "DISC10-2"
	svc := &mockCheckoutService{
		checkoutFn: func(_ context.Context, req *models.CheckoutRequest) (*models.CheckoutResponse, *services.ServiceError) {
			assert.Equal(t, "u1", req.UserID)
			return &models.CheckoutResponse{
				Message:     "Order placed successfully",
				Total:       200,
				Discount:    0,
				FinalAmount: 200,
				NewCoupon:   &newCoupon,
			}, nil
		},
	}
	r := setupCheckoutRouter(svc)

	body, _ := json.Marshal(models.CheckoutRequest{UserID: "u1"})
	req, _ := http.NewRequest(http.MethodPost, "/checkout", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "Order placed successfully", resp["message"])
	assert.Equal(t, 200.0, resp["finalAmount"])
	assert.Equal(t, "DISC10-2", resp["newCoupon"])
}

func TestController_Checkout_NewCouponNullWhenNoneMinted(t *testing.T) {
	svc := &mockCheckoutService{
		checkoutFn: func(_ context.Context, _ *models.CheckoutRequest) (*models.CheckoutResponse, *services.ServiceError) {
			return &models.CheckoutResponse{
				Message:     "Order placed successfully",
				Total:       50,
				FinalAmount: 50,
			}, nil
		},
	}
	r := setupCheckoutRouter(svc)

	body, _ := json.Marshal(models.CheckoutRequest{UserID: "u1"})
	req, _ := http.NewRequest(http.MethodPost, "/checkout", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	val, present := resp["newCoupon"]
	assert.True(t, present)
	assert.Nil(t, val)
}

func TestController_Checkout_EmptyCart(t *testing.T) {
	svc := &mockCheckoutService{
		checkoutFn: func(_ context.Context, _ *models.CheckoutRequest) (*models.CheckoutResponse, *services.ServiceError) {
			return nil, services.ErrEmptyCart
		},
	}
	r := setupCheckoutRouter(svc)

	body, _ := json.Marshal(models.CheckoutRequest{UserID: "u1"})
	req, _ := http.NewRequest(http.MethodPost, "/checkout", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "Cart empty", resp["error"])
}

func TestController_Checkout_InvalidPayload(t *testing.T) {
	svc := &mockCheckoutService{}
	r := setupCheckoutRouter(svc)

	req, _ := http.NewRequest(http.MethodPost, "/checkout", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront/models"
	"storefront/repository"
)

// discountRate is the fixed discount a coupon grants on the order total.
const discountRate = 0.10

// CheckoutService defines the interface for placing orders.
type CheckoutService interface {
	Checkout(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutResponse, *ServiceError)
}

type checkoutServiceImpl struct {
	store  *repository.Store
	logger *zap.Logger
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(store *repository.Store, logger *zap.Logger) CheckoutService {
	return &checkoutServiceImpl{store: store, logger: logger}
}

// Checkout places an order for the user's current cart. The store
// applies the whole transition under its lock — total the cart, redeem
// the coupon if one was supplied, record the order, clear the cart,
// advance the order counter and mint a new coupon when due — so a
// concurrent cart add or another checkout can never interleave with
// it. An unknown or already-used coupon aborts the whole checkout
// before any state changes.
func (s *checkoutServiceImpl) Checkout(_ context.Context, req *models.CheckoutRequest) (*models.CheckoutResponse, *ServiceError) {
	order, newCode, err := s.store.Checkout(models.Order{
		ID:        uuid.New(),
		UserID:    req.UserID,
		CreatedAt: time.Now(),
	}, req.CouponCode, discountRate)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEmptyCart):
			return nil, ErrEmptyCart
		case errors.Is(err, repository.ErrCouponNotFound):
			return nil, ErrInvalidCoupon
		}
		s.logger.Error("Checkout failed", zap.String("user_id", req.UserID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to place order"}
	}

	var newCoupon *string
	if newCode != "" {
		newCoupon = &newCode
	}

	s.logger.Info("Order placed",
		zap.String("user_id", req.UserID),
		zap.Float64("total", order.Total),
		zap.Float64("discount", order.Discount),
	)

	return &models.CheckoutResponse{
		Message:     "Order placed successfully",
		Total:       order.Total,
		Discount:    order.Discount,
		FinalAmount: order.FinalAmount,
		NewCoupon:   newCoupon,
	}, nil
}

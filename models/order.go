package models

import (
	"time"

	"github.com/google/uuid"
)

// Order is an immutable record of a completed checkout, appended to the
// order history and never modified afterwards.
type Order struct {
	ID                  uuid.UUID `json:"id"`
	UserID              string    `json:"userId"`
	Total               float64   `json:"total"`
	Discount            float64   `json:"discount"`
	FinalAmount         float64   `json:"finalAmount"`
	TotalItemsPurchased int       `json:"totalItemsPurchased"`
	CreatedAt           time.Time `json:"createdAt"`
}

// CheckoutRequest is the payload for placing an order.
type CheckoutRequest struct {
	UserID     string `json:"userId" binding:"required"`
	CouponCode string `json:"couponCode"`
}

// CheckoutResponse is returned after a successful checkout. NewCoupon is
// null unless this order crossed the every-Nth-order threshold.
type CheckoutResponse struct {
	Message     string  `json:"message"`
	Total       float64 `json:"total"`
	Discount    float64 `json:"discount"`
	FinalAmount float64 `json:"finalAmount"`
	NewCoupon   *string `json:"newCoupon"`
}

package models

import "fmt"

// couponCodePrefix is the fixed prefix of auto-minted discount codes;
// the suffix is the order count the coupon was minted at.
const couponCodePrefix = "DISC10-"

// CouponCode derives the deterministic code for the coupon minted at
// the given order count.
func CouponCode(orderCount int) string {
	return fmt.Sprintf("%s%d", couponCodePrefix, orderCount)
}

// Coupon is a single-use 10% discount code. Used flips true exactly once
// and never back; coupons are never deleted.
type Coupon struct {
	Code string `json:"code"`
	Used bool   `json:"used"`
}

// ValidateCouponRequest is the payload for checking a coupon code.
type ValidateCouponRequest struct {
	CouponCode string `json:"couponCode" binding:"required"`
}

// ValidateCouponResponse reports whether a coupon can still be redeemed.
// An unknown code and an already-used code both come back invalid; the
// two cases are intentionally not distinguished on the wire.
type ValidateCouponResponse struct {
	Valid bool `json:"valid"`
}

// GenerateCouponResponse is returned by the manual admin issuance route.
type GenerateCouponResponse struct {
	Coupon string `json:"coupon"`
}

package services

// ServiceError represents a typed error with an HTTP status code.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// Business errors surfaced by the checkout and coupon flows. Messages
// match what the storefront UI displays.
var (
	ErrEmptyCart     = &ServiceError{StatusCode: 400, Message: "Cart empty"}
	ErrInvalidCoupon = &ServiceError{StatusCode: 400, Message: "Invalid or already used coupon"}
	ErrCouponNotDue  = &ServiceError{StatusCode: 400, Message: "Coupon not eligible yet"}
)

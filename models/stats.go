package models

// Stats is the admin dashboard aggregate: a read-only fold over the
// order history plus every coupon ever issued.
type Stats struct {
	TotalOrders         int      `json:"totalOrders"`
	TotalItemsPurchased int      `json:"totalItemsPurchased"`
	TotalPurchaseAmount float64  `json:"totalPurchaseAmount"`
	TotalDiscountAmount float64  `json:"totalDiscountAmount"`
	CouponsIssued       []Coupon `json:"couponsIssued"`
}

package models

// Product is a catalog entry shown on the storefront. The catalog is
// static; products are never created or modified at runtime.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image"`
}

package models

// CartItem is a single line in a user's cart.
type CartItem struct {
	ItemID   int     `json:"itemId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// AddItemRequest is the payload for adding an item to a cart.
//
// Price and quantity signs are deliberately not validated here; the
// storefront UI is trusted to send sane values.
type AddItemRequest struct {
	UserID   string  `json:"userId" binding:"required"`
	ItemID   int     `json:"itemId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// AddItemResponse echoes the updated cart after an add.
type AddItemResponse struct {
	Message string     `json:"message"`
	Cart    []CartItem `json:"cart"`
}

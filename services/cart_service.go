package services

import (
	"context"

	"go.uber.org/zap"

	"storefront/models"
	"storefront/repository"
)

// CartService defines the interface for cart operations.
type CartService interface {
	AddItem(ctx context.Context, req *models.AddItemRequest) []models.CartItem
	GetCart(ctx context.Context, userID string) []models.CartItem
}

type cartServiceImpl struct {
	store  *repository.Store
	logger *zap.Logger
}

// NewCartService creates a new CartService backed by the shared store.
func NewCartService(store *repository.Store, logger *zap.Logger) CartService {
	return &cartServiceImpl{store: store, logger: logger}
}

// AddItem appends a line to the user's cart and returns the updated
// cart. Adding always succeeds; the cart is created on first add.
func (s *cartServiceImpl) AddItem(_ context.Context, req *models.AddItemRequest) []models.CartItem {
	item := models.CartItem{
		ItemID:   req.ItemID,
		Name:     req.Name,
		Price:    req.Price,
		Quantity: req.Quantity,
	}

	cart := s.store.AppendCartItem(req.UserID, item)

	s.logger.Info("Item added to cart",
		zap.String("user_id", req.UserID),
		zap.Int("item_id", req.ItemID),
		zap.Int("cart_size", len(cart)),
	)
	return cart
}

// GetCart returns the user's cart, empty when nothing has been added.
func (s *cartServiceImpl) GetCart(_ context.Context, userID string) []models.CartItem {
	return s.store.GetCart(userID)
}

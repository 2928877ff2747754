package services

import (
	"context"

	"storefront/models"
)

// CatalogService defines the interface for the product catalog. The
// catalog is a fixed demo set; there is no create/update path.
type CatalogService interface {
	ListProducts(ctx context.Context) []models.Product
}

type catalogServiceImpl struct {
	products []models.Product
}

// NewCatalogService creates a CatalogService serving the built-in
// storefront catalog.
func NewCatalogService() CatalogService {
	return &catalogServiceImpl{products: defaultCatalog()}
}

// ListProducts returns the full catalog.
func (s *catalogServiceImpl) ListProducts(_ context.Context) []models.Product {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

func defaultCatalog() []models.Product {
	return []models.Product{
		{ID: 1, Name: "AirWave Pro Headphones", Price: 299.99, Description: "Wireless over-ear headphones with active noise cancellation", Image: "🎧"},
		{ID: 2, Name: "Quantum Watch Ultra", Price: 549.99, Description: "Smartwatch with always-on display and week-long battery", Image: "⌚"},
		{ID: 3, Name: "ErgoLift Pro Stand", Price: 89.99, Description: "Adjustable aluminium laptop stand", Image: "💻"},
		{ID: 4, Name: "HyperHub USB-C Elite", Price: 79.99, Description: "8-in-1 USB-C hub with 4K HDMI and 100W passthrough", Image: "🔌"},
		{ID: 5, Name: "Mech RGB Keyboard", Price: 189.99, Description: "Hot-swappable mechanical keyboard with per-key RGB", Image: "⌨️"},
		{ID: 6, Name: "PrecisionX Pro Mouse", Price: 129.99, Description: "Lightweight gaming mouse with 26K DPI sensor", Image: "🖱️"},
	}
}

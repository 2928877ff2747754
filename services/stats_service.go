package services

import (
	"context"

	"storefront/models"
	"storefront/repository"
)

// StatsService defines the interface for the admin dashboard aggregates.
type StatsService interface {
	GetStats(ctx context.Context) *models.Stats
}

type statsServiceImpl struct {
	store *repository.Store
}

// NewStatsService creates a new StatsService.
func NewStatsService(store *repository.Store) StatsService {
	return &statsServiceImpl{store: store}
}

// GetStats folds the order history into summary counters. Read-only;
// calling it never changes state.
func (s *statsServiceImpl) GetStats(_ context.Context) *models.Stats {
	orders := s.store.Orders()

	stats := &models.Stats{
		TotalOrders:   len(orders),
		CouponsIssued: s.store.Coupons(),
	}
	for _, order := range orders {
		stats.TotalItemsPurchased += order.TotalItemsPurchased
		stats.TotalPurchaseAmount += order.Total
		stats.TotalDiscountAmount += order.Discount
	}
	return stats
}

package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"storefront/models"
	"storefront/repository"
	"storefront/services"
)

func TestStatsService_EmptyState(t *testing.T) {
	store := repository.NewStore(3)
	svc := services.NewStatsService(store)

	stats := svc.GetStats(context.Background())

	assert.Equal(t, 0, stats.TotalOrders)
	assert.Equal(t, 0, stats.TotalItemsPurchased)
	assert.Equal(t, 0.0, stats.TotalPurchaseAmount)
	assert.Equal(t, 0.0, stats.TotalDiscountAmount)
	assert.Empty(t, stats.CouponsIssued)
}

func TestStatsService_AggregatesOrderHistory(t *testing.T) {
	store := repository.NewStore(100)
	svc := services.NewStatsService(store)

	// u1 checks out 100 with a coupon, u2 checks out 250 without one.
	store.AddCouponIfAbsent("DISC10-2")
	store.AppendCartItem("u1", models.CartItem{ItemID: 1, Price: 100, Quantity: 1})
	_, _, err := store.Checkout(models.Order{ID: uuid.New(), UserID: "u1", CreatedAt: time.Now()}, "DISC10-2", 0.10)
	assert.NoError(t, err)

	store.AppendCartItem("u2", models.CartItem{ItemID: 2, Price: 62.5, Quantity: 4})
	_, _, err = store.Checkout(models.Order{ID: uuid.New(), UserID: "u2", CreatedAt: time.Now()}, "", 0.10)
	assert.NoError(t, err)

	stats := svc.GetStats(context.Background())

	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, 5, stats.TotalItemsPurchased)
	assert.Equal(t, 350.0, stats.TotalPurchaseAmount)
	assert.Equal(t, 10.0, stats.TotalDiscountAmount)
}

func TestStatsService_IncludesCouponRegistry(t *testing.T) {
	store := repository.NewStore(3)
	svc := services.NewStatsService(store)

	store.AddCouponIfAbsent("DISC10-2")
	store.AddCouponIfAbsent("DISC10-4")
	store.RedeemCoupon("DISC10-2")

	stats := svc.GetStats(context.Background())

	assert.Len(t, stats.CouponsIssued, 2)
	assert.True(t, stats.CouponsIssued[0].Used)
	assert.False(t, stats.CouponsIssued[1].Used)
}

func TestStatsService_ReadOnly(t *testing.T) {
	store := repository.NewStore(100)
	svc := services.NewStatsService(store)

	store.AppendCartItem("u1", models.CartItem{ItemID: 1, Price: 100, Quantity: 1})
	_, _, err := store.Checkout(models.Order{ID: uuid.New(), UserID: "u1", CreatedAt: time.Now()}, "", 0.10)
	assert.NoError(t, err)

	first := svc.GetStats(context.Background())
	second := svc.GetStats(context.Background())

	assert.Equal(t, first.TotalOrders, second.TotalOrders)
	assert.Len(t, store.Orders(), 1)
}

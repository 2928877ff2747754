package services

import (
	"context"

	"go.uber.org/zap"

	"storefront/models"
	"storefront/repository"
)

// CouponService defines the interface for the coupon registry.
type CouponService interface {
	// IssueIfDue mints a coupon when the running order count is a
	// positive multiple of the configured threshold. The returned flag
	// is false when nothing new was minted, either because the count is
	// not due or because the coupon for this count already exists.
	IssueIfDue(ctx context.Context) (string, bool)
	// Validate reports whether an unredeemed coupon with this code
	// exists. Unknown and already-used codes are indistinguishable.
	Validate(ctx context.Context, code string) bool
	// Generate is the manual admin issuance path.
	Generate(ctx context.Context) (string, *ServiceError)
	// Redeem marks an unused coupon as used, reporting success.
	Redeem(ctx context.Context, code string) bool
	// List returns every coupon ever issued.
	List(ctx context.Context) []models.Coupon
}

type couponServiceImpl struct {
	store  *repository.Store
	logger *zap.Logger
}

// NewCouponService creates a new CouponService. The every-Nth-order
// threshold lives in the store.
func NewCouponService(store *repository.Store, logger *zap.Logger) CouponService {
	return &couponServiceImpl{store: store, logger: logger}
}

// IssueIfDue mints the coupon for the current order count when due.
func (s *couponServiceImpl) IssueIfDue(_ context.Context) (string, bool) {
	code, issued := s.store.IssueCouponIfDue()
	if issued {
		s.logger.Info("Coupon issued", zap.String("code", code))
	}
	return code, issued
}

// Validate checks that an unused coupon with this code exists.
func (s *couponServiceImpl) Validate(_ context.Context, code string) bool {
	_, ok := s.store.FindUnusedCoupon(code)
	return ok
}

// Generate handles the manual admin issuance route. It fails with
// ErrCouponNotDue before the threshold is reached; when the coupon for
// the current count was already minted it returns that code again.
func (s *couponServiceImpl) Generate(ctx context.Context) (string, *ServiceError) {
	code, _ := s.IssueIfDue(ctx)
	if code == "" {
		return "", ErrCouponNotDue
	}
	return code, nil
}

// Redeem flips a coupon's used flag, exactly once per coupon.
func (s *couponServiceImpl) Redeem(_ context.Context, code string) bool {
	redeemed := s.store.RedeemCoupon(code)
	if redeemed {
		s.logger.Info("Coupon redeemed", zap.String("code", code))
	}
	return redeemed
}

// List returns the full coupon registry.
func (s *couponServiceImpl) List(_ context.Context) []models.Coupon {
	return s.store.Coupons()
}

package repository

import (
	"errors"
	"sync"

	"storefront/models"
)

// Sentinel errors returned by the checkout transition.
var (
	ErrEmptyCart      = errors.New("cart empty")
	ErrCouponNotFound = errors.New("coupon not found or already used")
)

// Store holds every collection the storefront operates on: per-user
// carts, the append-only order history, the coupon registry and the
// running order counter, together with the every-Nth-order issuance
// threshold. Nothing is persisted; the store's lifetime is the process
// lifetime and state resets on restart.
//
// A single mutex guards all collections and is held across the whole
// checkout transition, so callers observe the same serialized mutation
// order the storefront relies on: a cart add can never interleave with
// a checkout of the same cart. Accessors return copies; callers never
// alias internal slices.
type Store struct {
	mu         sync.Mutex
	carts      map[string][]models.CartItem
	orders     []models.Order
	coupons    []models.Coupon
	orderCount int
	nthOrder   int
}

// NewStore creates an empty store. nthOrder is the coupon issuance
// threshold and must be positive. Tests construct one store per test
// instead of resetting shared state.
func NewStore(nthOrder int) *Store {
	return &Store{
		carts:    make(map[string][]models.CartItem),
		nthOrder: nthOrder,
	}
}

// AppendCartItem adds an item to the user's cart, creating the cart on
// first use, and returns the updated cart.
func (s *Store) AppendCartItem(userID string, item models.CartItem) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[userID] = append(s.carts[userID], item)
	return copyItems(s.carts[userID])
}

// GetCart returns the user's cart, or an empty cart if none exists yet.
func (s *Store) GetCart(userID string) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return copyItems(s.carts[userID])
}

// Checkout atomically converts the user's cart into a completed order:
// it totals the cart, redeems couponCode when one is given, appends the
// order to the history, clears the cart, advances the order counter and
// mints a new coupon when the counter crosses the issuance threshold.
// The caller supplies the order identity (ID, user, timestamp) and the
// discount rate a coupon grants; totals are computed here, under the
// lock, from the cart as it stands.
//
// On ErrEmptyCart or ErrCouponNotFound nothing has changed.
func (s *Store) Checkout(order models.Order, couponCode string, discountRate float64) (models.Order, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[order.UserID]
	if len(cart) == 0 {
		return models.Order{}, "", ErrEmptyCart
	}

	var total float64
	var itemCount int
	for _, item := range cart {
		total += item.Price * float64(item.Quantity)
		itemCount += item.Quantity
	}

	if couponCode != "" {
		if !s.redeemCoupon(couponCode) {
			return models.Order{}, "", ErrCouponNotFound
		}
		order.Discount = total * discountRate
	}

	order.Total = total
	order.FinalAmount = total - order.Discount
	order.TotalItemsPurchased = itemCount

	s.orders = append(s.orders, order)
	s.carts[order.UserID] = []models.CartItem{}
	s.orderCount++

	var newCoupon string
	if code, issued := s.issueCouponIfDue(); issued {
		newCoupon = code
	}
	return order, newCoupon, nil
}

// FindUnusedCoupon reports whether an unredeemed coupon with the given
// code exists.
func (s *Store) FindUnusedCoupon(code string) (models.Coupon, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.coupons {
		if c.Code == code && !c.Used {
			return c, true
		}
	}
	return models.Coupon{}, false
}

// RedeemCoupon marks the matching unused coupon as used. It returns
// false when no such coupon exists, so a code can be redeemed at most
// once no matter how many callers race on it.
func (s *Store) RedeemCoupon(code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.redeemCoupon(code)
}

func (s *Store) redeemCoupon(code string) bool {
	for i := range s.coupons {
		if s.coupons[i].Code == code && !s.coupons[i].Used {
			s.coupons[i].Used = true
			return true
		}
	}
	return false
}

// IssueCouponIfDue mints the coupon for the current order count when
// the count is a positive multiple of the issuance threshold. The
// returned flag is false when nothing new was minted, either because
// the count is not due or because the coupon for this count already
// exists.
func (s *Store) IssueCouponIfDue() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.issueCouponIfDue()
}

func (s *Store) issueCouponIfDue() (string, bool) {
	if s.orderCount == 0 || s.orderCount%s.nthOrder != 0 {
		return "", false
	}
	code := models.CouponCode(s.orderCount)
	if !s.addCouponIfAbsent(code) {
		return code, false
	}
	return code, true
}

// AddCouponIfAbsent registers a new unused coupon unless one with the
// same code already exists. Returns true when the coupon was added.
func (s *Store) AddCouponIfAbsent(code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.addCouponIfAbsent(code)
}

func (s *Store) addCouponIfAbsent(code string) bool {
	for _, c := range s.coupons {
		if c.Code == code {
			return false
		}
	}
	s.coupons = append(s.coupons, models.Coupon{Code: code})
	return true
}

// Coupons returns every coupon ever issued, used or not.
func (s *Store) Coupons() []models.Coupon {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Coupon, len(s.coupons))
	copy(out, s.coupons)
	return out
}

// Orders returns the full order history.
func (s *Store) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// OrderCount returns the number of orders placed so far. The counter
// never decreases.
func (s *Store) OrderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.orderCount
}

func copyItems(items []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, len(items))
	copy(out, items)
	return out
}

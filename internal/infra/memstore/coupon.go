// Package memstore keeps coupons and admins in process memory. It backs
// unit tests and single-instance demos; nothing survives a restart.
package memstore

import (
	"context"
	"sync"
	"time"

	"couponhub/internal/domain/coupon"
	"couponhub/internal/infra"

	"github.com/google/uuid"
)

type CouponRepository struct {
	mu      sync.RWMutex
	order   []uuid.UUID
	coupons map[uuid.UUID]*coupon.Coupon
}

func NewCouponRepository() *CouponRepository {
	return &CouponRepository{
		coupons: make(map[uuid.UUID]*coupon.Coupon),
	}
}

func (r *CouponRepository) List(_ context.Context) ([]*coupon.Coupon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*coupon.Coupon, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, clone(r.coupons[id]))
	}
	return result, nil
}

func (r *CouponRepository) Create(_ context.Context, c *coupon.Coupon) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.coupons[c.ID()]; exists {
		return infra.WrapRepoErr("coupon id already exists", nil, infra.KindDuplicateKey)
	}
	r.coupons[c.ID()] = clone(c)
	r.order = append(r.order, c.ID())
	return nil
}

func (r *CouponRepository) Update(_ context.Context, id uuid.UUID, content coupon.Content, now time.Time) (*coupon.Coupon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.coupons[id]
	if !ok {
		return nil, infra.NotFound("coupon not found")
	}
	c.UpdateContent(content, now)
	return clone(c), nil
}

func (r *CouponRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.coupons[id]; !ok {
		return nil
	}
	delete(r.coupons, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *CouponRepository) FindByID(_ context.Context, id uuid.UUID) (*coupon.Coupon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.coupons[id]
	if !ok {
		return nil, infra.NotFound("coupon not found")
	}
	return clone(c), nil
}

func (r *CouponRepository) Increment(_ context.Context, id uuid.UUID, counter coupon.Counter) error {
	if !counter.IsValid() {
		return infra.WrapRepoErr("unsupported counter "+counter.String(), coupon.ErrUnknownCounter)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.coupons[id]; ok {
		c.Increment(counter)
	}
	return nil
}

// clone keeps callers from mutating stored entities outside the lock.
func clone(c *coupon.Coupon) *coupon.Coupon {
	return coupon.Reconstruct(
		c.ID(), c.Content(),
		c.Used(), c.Today(), c.ThumbsUp(), c.ThumbsDown(),
		c.CreatedAt(), c.UpdatedAt(),
	)
}

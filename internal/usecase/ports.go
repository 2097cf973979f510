package usecase

import (
	"context"
	"time"

	"couponhub/internal/domain/admin"
	"couponhub/internal/domain/coupon"

	"github.com/google/uuid"
)

// CouponRepository is implemented by every storage backend. Missing ids
// surface as infra.KindNotFound from FindByID and Update; Delete and
// Increment treat them as a no-op.
type CouponRepository interface {
	List(ctx context.Context) ([]*coupon.Coupon, error)
	Create(ctx context.Context, c *coupon.Coupon) error
	Update(ctx context.Context, id uuid.UUID, content coupon.Content, now time.Time) (*coupon.Coupon, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error)
	// Increment must be a single atomic add at the storage layer.
	Increment(ctx context.Context, id uuid.UUID, counter coupon.Counter) error
}

type AdminRepository interface {
	FindByUsername(ctx context.Context, username admin.Username) (*admin.Admin, error)
	// Upsert replaces the password hash when the username already exists.
	Upsert(ctx context.Context, a *admin.Admin) (*admin.Admin, error)
}

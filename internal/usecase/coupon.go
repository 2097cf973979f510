package usecase

import (
	"context"
	"log/slog"

	"couponhub/internal/domain/coupon"
	"couponhub/internal/infra"
	"couponhub/internal/pkg/clock"
	"couponhub/internal/pkg/errs"
	"couponhub/internal/pkg/metrics"
	"couponhub/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var ErrCouponNotFound = errs.ErrCouponNotFound

type CouponUseCase interface {
	List(ctx context.Context) ([]*readmodel.CouponRM, error)
	Create(ctx context.Context, content coupon.Content) (*readmodel.CouponRM, error)
	// Update returns nil without error when the coupon does not exist.
	Update(ctx context.Context, id uuid.UUID, content coupon.Content) (*readmodel.CouponRM, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetInteractions(ctx context.Context, id uuid.UUID) (*readmodel.InteractionsRM, error)
	RecordInteraction(ctx context.Context, id uuid.UUID, counter coupon.Counter) error
}

type couponUseCaseImpl struct {
	repo  CouponRepository
	clock clock.Clock
}

func NewCouponUseCase(repo CouponRepository, clk clock.Clock) CouponUseCase {
	return &couponUseCaseImpl{
		repo:  repo,
		clock: clk,
	}
}

func (u *couponUseCaseImpl) List(ctx context.Context) ([]*readmodel.CouponRM, error) {
	coupons, err := u.repo.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	result := make([]*readmodel.CouponRM, 0, len(coupons))
	for _, c := range coupons {
		result = append(result, toCouponRM(c))
	}
	return result, nil
}

func (u *couponUseCaseImpl) Create(ctx context.Context, content coupon.Content) (*readmodel.CouponRM, error) {
	c := coupon.NewCoupon(content, u.clock.Now())
	if err := u.repo.Create(ctx, c); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return toCouponRM(c), nil
}

func (u *couponUseCaseImpl) Update(ctx context.Context, id uuid.UUID, content coupon.Content) (*readmodel.CouponRM, error) {
	c, err := u.repo.Update(ctx, id, content, u.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Debug("update of missing coupon ignored", "coupon_id", id.String())
			return nil, nil
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return toCouponRM(c), nil
}

func (u *couponUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *couponUseCaseImpl) GetInteractions(ctx context.Context, id uuid.UUID) (*readmodel.InteractionsRM, error) {
	c, err := u.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	i := c.Interactions()
	return &readmodel.InteractionsRM{
		ThumbsUp:   i.ThumbsUp,
		ThumbsDown: i.ThumbsDown,
		Clicks:     i.Clicks,
	}, nil
}

func (u *couponUseCaseImpl) RecordInteraction(ctx context.Context, id uuid.UUID, counter coupon.Counter) error {
	if !counter.IsValid() {
		return coupon.ErrUnknownCounter
	}
	if err := u.repo.Increment(ctx, id, counter); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	metrics.RecordInteraction(counter.String())
	return nil
}

func toCouponRM(c *coupon.Coupon) *readmodel.CouponRM {
	content := c.Content()
	return &readmodel.CouponRM{
		ID:         c.ID(),
		Offer:      content.Offer(),
		Code:       content.Code(),
		Link:       content.Link(),
		Used:       c.Used(),
		Today:      c.Today(),
		ThumbsUp:   c.ThumbsUp(),
		ThumbsDown: c.ThumbsDown(),
		CreatedAt:  c.CreatedAt(),
		UpdatedAt:  c.UpdatedAt(),
	}
}

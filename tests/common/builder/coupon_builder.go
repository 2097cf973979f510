//go:build unit || e2e

package builder

import (
	"time"

	"couponhub/internal/domain/coupon"
	reqdto "couponhub/internal/handler/dto/request"
	"couponhub/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type CouponBuilder struct {
	ID         uuid.UUID
	Offer      string
	Code       string
	Link       string
	Used       int64
	Today      int64
	ThumbsUp   int64
	ThumbsDown int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewCouponBuilder() *CouponBuilder {
	now := time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)
	return &CouponBuilder{
		ID:        uuid.New(),
		Offer:     "20% off running shoes",
		Code:      "RUN20",
		Link:      "https://shop.example.com/running",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

func (b *CouponBuilder) WithCounters(used, today, up, down int64) *CouponBuilder {
	b.Used, b.Today, b.ThumbsUp, b.ThumbsDown = used, today, up, down
	return b
}

func (b *CouponBuilder) BuildDTO() reqdto.CouponRequest {
	return reqdto.CouponRequest{
		Offer: reqdto.Text(b.Offer),
		Code:  reqdto.Text(b.Code),
		Link:  reqdto.Text(b.Link),
	}
}

func (b *CouponBuilder) BuildContent() coupon.Content {
	return coupon.NewContent(b.Offer, b.Code, b.Link)
}

func (b *CouponBuilder) BuildDomain() *coupon.Coupon {
	return coupon.Reconstruct(
		b.ID, b.BuildContent(),
		b.Used, b.Today, b.ThumbsUp, b.ThumbsDown,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *CouponBuilder) BuildReadModel() *readmodel.CouponRM {
	return &readmodel.CouponRM{
		ID:         b.ID,
		Offer:      b.Offer,
		Code:       b.Code,
		Link:       b.Link,
		Used:       b.Used,
		Today:      b.Today,
		ThumbsUp:   b.ThumbsUp,
		ThumbsDown: b.ThumbsDown,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

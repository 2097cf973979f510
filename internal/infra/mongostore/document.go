package mongostore

import (
	"time"

	"couponhub/internal/domain/admin"
	"couponhub/internal/domain/coupon"

	"github.com/google/uuid"
)

// Ids are stored as canonical UUID strings so both backends expose the same _id values.
type couponDocument struct {
	ID         string    `bson:"_id"`
	Seq        int64     `bson:"seq"`
	Offer      string    `bson:"offer"`
	Code       string    `bson:"code"`
	Link       string    `bson:"link"`
	Used       int64     `bson:"used"`
	Today      int64     `bson:"today"`
	ThumbsUp   int64     `bson:"thumbsUp"`
	ThumbsDown int64     `bson:"thumbsDown"`
	CreatedAt  time.Time `bson:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt"`
}

type adminDocument struct {
	ID           string    `bson:"_id"`
	Username     string    `bson:"username"`
	PasswordHash string    `bson:"password"`
	CreatedAt    time.Time `bson:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}

func newCouponDocument(c *coupon.Coupon, seq int64) couponDocument {
	content := c.Content()
	return couponDocument{
		ID:         c.ID().String(),
		Seq:        seq,
		Offer:      content.Offer(),
		Code:       content.Code(),
		Link:       content.Link(),
		Used:       c.Used(),
		Today:      c.Today(),
		ThumbsUp:   c.ThumbsUp(),
		ThumbsDown: c.ThumbsDown(),
		CreatedAt:  c.CreatedAt().UTC(),
		UpdatedAt:  c.UpdatedAt().UTC(),
	}
}

func (d couponDocument) toEntity() (*coupon.Coupon, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	return coupon.Reconstruct(
		id,
		coupon.NewContent(d.Offer, d.Code, d.Link),
		d.Used, d.Today, d.ThumbsUp, d.ThumbsDown,
		d.CreatedAt, d.UpdatedAt,
	), nil
}

func (d adminDocument) toEntity() (*admin.Admin, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	username, err := admin.NewUsername(d.Username)
	if err != nil {
		return nil, err
	}
	return admin.Reconstruct(id, username, d.PasswordHash), nil
}

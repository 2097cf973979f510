package coupon

import (
	"time"

	"github.com/google/uuid"
)

// Coupon is a discount offer shown on the public pages. Counters start at
// zero and only ever grow.
type Coupon struct {
	id         uuid.UUID
	content    Content
	used       int64
	today      int64
	thumbsUp   int64
	thumbsDown int64
	createdAt  time.Time
	updatedAt  time.Time
}

func NewCoupon(content Content, now time.Time) *Coupon {
	return &Coupon{
		id:        uuid.New(),
		content:   content,
		createdAt: now,
		updatedAt: now,
	}
}

// Reconstruct rebuilds a coupon from persisted state.
func Reconstruct(
	id uuid.UUID,
	content Content,
	used, today, thumbsUp, thumbsDown int64,
	createdAt, updatedAt time.Time,
) *Coupon {
	return &Coupon{
		id:         id,
		content:    content,
		used:       used,
		today:      today,
		thumbsUp:   thumbsUp,
		thumbsDown: thumbsDown,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (c *Coupon) UpdateContent(content Content, now time.Time) {
	c.content = content
	c.updatedAt = now
}

func (c *Coupon) Increment(counter Counter) {
	switch counter {
	case CounterClick:
		c.used++
		c.today++
	case CounterThumbsUp:
		c.thumbsUp++
	case CounterThumbsDown:
		c.thumbsDown++
	}
}

func (c *Coupon) Interactions() Interactions {
	return Interactions{
		ThumbsUp:   c.thumbsUp,
		ThumbsDown: c.thumbsDown,
		Clicks:     c.used,
	}
}

func (c *Coupon) ID() uuid.UUID        { return c.id }
func (c *Coupon) Content() Content     { return c.content }
func (c *Coupon) Used() int64          { return c.used }
func (c *Coupon) Today() int64         { return c.today }
func (c *Coupon) ThumbsUp() int64      { return c.thumbsUp }
func (c *Coupon) ThumbsDown() int64    { return c.thumbsDown }
func (c *Coupon) CreatedAt() time.Time { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time { return c.updatedAt }

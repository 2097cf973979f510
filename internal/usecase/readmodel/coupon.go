package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type CouponRM struct {
	ID         uuid.UUID `json:"id"`
	Offer      string    `json:"offer"`
	Code       string    `json:"code"`
	Link       string    `json:"link"`
	Used       int64     `json:"used"`
	Today      int64     `json:"today"`
	ThumbsUp   int64     `json:"thumbs_up"`
	ThumbsDown int64     `json:"thumbs_down"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type InteractionsRM struct {
	ThumbsUp   int64 `json:"thumbs_up"`
	ThumbsDown int64 `json:"thumbs_down"`
	Clicks     int64 `json:"clicks"`
}

package response

import (
	"time"

	"couponhub/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CouponResponse struct {
	ID         string    `json:"_id"`
	Offer      string    `json:"offer"`
	Code       string    `json:"code"`
	Link       string    `json:"link"`
	Used       int64     `json:"used"`
	Today      int64     `json:"today"`
	ThumbsUp   int64     `json:"thumbsUp"`
	ThumbsDown int64     `json:"thumbsDown"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type InteractionsResponse struct {
	ThumbsUp   int64 `json:"thumbsUp"`
	ThumbsDown int64 `json:"thumbsDown"`
	Clicks     int64 `json:"clicks"`
}

var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
	},
}

func FromCouponRM(rm *readmodel.CouponRM) (*CouponResponse, error) {
	if rm == nil {
		return nil, nil
	}
	var res CouponResponse
	if err := copier.CopyWithOption(&res, rm, copyOption); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromCouponList(items []*readmodel.CouponRM) ([]*CouponResponse, error) {
	res := make([]*CouponResponse, 0, len(items))
	for _, it := range items {
		c, err := FromCouponRM(it)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, nil
}

func FromInteractionsRM(rm *readmodel.InteractionsRM) *InteractionsResponse {
	return &InteractionsResponse{
		ThumbsUp:   rm.ThumbsUp,
		ThumbsDown: rm.ThumbsDown,
		Clicks:     rm.Clicks,
	}
}

package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"couponhub/internal/domain/coupon"
)

// CouponRequest fields are free text and stored as given; missing keys become "".
type CouponRequest struct {
	Offer Text `json:"offer" swaggertype:"string"`
	Code  Text `json:"code" swaggertype:"string"`
	Link  Text `json:"link" swaggertype:"string"`
}

func (r *CouponRequest) ToDomain() coupon.Content {
	return coupon.NewContent(string(r.Offer), string(r.Code), string(r.Link))
}

// Text takes any JSON scalar and keeps its text form: 5 becomes "5", true becomes "true", null becomes "".
// Objects and arrays are rejected.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}

	switch x := v.(type) {
	case nil:
		*t = ""
	case string:
		*t = Text(x)
	case bool:
		*t = Text(strconv.FormatBool(x))
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			*t = Text(x.String())
			return nil
		}
		*t = Text(strconv.FormatFloat(f, 'f', -1, 64))
	default:
		return fmt.Errorf("expected a string, number or boolean, got %s", bytes.TrimSpace(data)[:1])
	}
	return nil
}

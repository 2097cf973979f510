//go:build unit

package request_test

import (
	"encoding/json"
	"testing"

	"couponhub/internal/domain/coupon"
	reqdto "couponhub/internal/handler/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCouponRequest_Unmarshal(t *testing.T) {
	tests := []struct {
		name string
		body string
		want coupon.Content
	}{
		{"strings kept", `{"offer":"10% off","code":"TEN","link":"https://x.example"}`, coupon.NewContent("10% off", "TEN", "https://x.example")},
		{"integer", `{"offer":5}`, coupon.NewContent("5", "", "")},
		{"float", `{"offer":2.50}`, coupon.NewContent("2.5", "", "")},
		{"whole float", `{"offer":5.0}`, coupon.NewContent("5", "", "")},
		{"negative", `{"offer":-3}`, coupon.NewContent("-3", "", "")},
		{"booleans", `{"code":true,"link":false}`, coupon.NewContent("", "true", "false")},
		{"null", `{"offer":null,"code":"C"}`, coupon.NewContent("", "C", "")},
		{"unknown keys ignored", `{"offer":"o","extra":{"a":1}}`, coupon.NewContent("o", "", "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req reqdto.CouponRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.want, req.ToDomain())
		})
	}
}

func TestCouponRequest_UnmarshalRejectsCompositeValues(t *testing.T) {
	for name, body := range map[string]string{
		"object": `{"offer":{"a":1}}`,
		"array":  `{"code":[1,2]}`,
	} {
		t.Run(name, func(t *testing.T) {
			var req reqdto.CouponRequest
			assert.Error(t, json.Unmarshal([]byte(body), &req))
		})
	}
}

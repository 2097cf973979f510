//go:build e2e

package coupon_test

import (
	"net/http"
	"testing"

	"couponhub/internal/pkg/config"
	"couponhub/tests/common/authtest"
	"couponhub/tests/common/builder"
	"couponhub/tests/common/httptest"
	"couponhub/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type protectedWritesSuite struct {
	e2e.SharedSuite
}

func TestProtectedWritesSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(protectedWritesSuite))
}

func (s *protectedWritesSuite) SetupSuite() {
	s.SetupSharedSuite(s.T(), func(cfg *config.Config) {
		cfg.Auth.ProtectWrites = true
	})
}

func (s *protectedWritesSuite) TestWritesRequireToken() {
	s.Run("create without token is forbidden", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, couponsURL, builder.NewCouponBuilder().BuildDTO(), "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Access denied")
	})

	s.Run("update and delete without token are forbidden", func() {
		id := uuid.NewString()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, couponsURL+"/"+id, builder.NewCouponBuilder().BuildDTO(), "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Access denied")

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, couponsURL+"/"+id, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Access denied")
	})

	s.Run("admin token unlocks writes", func() {
		t := s.T()
		token := authtest.SeedAndLogin(t, s.AdminRepo, s.Router, "admin", "correct-horse-battery")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, couponsURL, builder.NewCouponBuilder().BuildDTO(), token)
		httptest.AssertMessageResponse(t, w, http.StatusCreated, "Coupon added successfully")
	})

	s.Run("reads and interactions stay public", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, couponsURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, couponsURL+"/"+uuid.NewString()+"/click", nil, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

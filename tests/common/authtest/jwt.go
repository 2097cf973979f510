//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"couponhub/internal/pkg/clock"
	"couponhub/internal/pkg/config"
	"couponhub/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, adminID uuid.UUID) string {
	t.Helper()
	return h.generateAt(t, adminID, time.Now())
}

// issues a token whose lifetime ended a minute ago
func (h *JWTHelper) CreateExpiredToken(t *testing.T, adminID uuid.UUID) string {
	t.Helper()
	duration := h.duration(t)
	return h.generateAt(t, adminID, time.Now().Add(-duration-time.Minute))
}

// signs with a different secret so signature verification fails
func (h *JWTHelper) CreateForeignToken(t *testing.T, adminID uuid.UUID) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret+"-other", h.duration(t), nil)
	token, err := service.GenerateToken(adminID)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) generateAt(t *testing.T, adminID uuid.UUID, issuedAt time.Time) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.duration(t), clock.NewMockClock(issuedAt))
	token, err := service.GenerateToken(adminID)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) duration(t *testing.T) time.Duration {
	t.Helper()
	d, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	return d
}

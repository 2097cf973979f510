//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"couponhub/internal/handler/middleware"
	"couponhub/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func preflight(r *gin.Engine, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodOptions, "/api/coupons", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	base := config.CORSConfig{
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}

	t.Run("listed origin allowed with credentials", func(t *testing.T) {
		cfg := base
		cfg.AllowOrigins = []string{"https://coupons.example"}
		r := gin.New()
		r.Use(middleware.NewCORSMiddleware(cfg))

		rec := preflight(r, "https://coupons.example")
		assert.Equal(t, "https://coupons.example", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

		rec = preflight(r, "https://evil.example")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("empty list allows any origin without credentials", func(t *testing.T) {
		r := gin.New()
		r.Use(middleware.NewCORSMiddleware(base))

		rec := preflight(r, "https://anywhere.example")
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
	})
}

//go:build unit

package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"couponhub/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T, level string) (*Logger, *bytes.Buffer) {
	t.Helper()

	prevMode, prevDefault := gin.Mode(), slog.Default()
	gin.SetMode(gin.ReleaseMode)
	t.Cleanup(func() {
		gin.SetMode(prevMode)
		slog.SetDefault(prevDefault)
	})

	var buf bytes.Buffer
	cfg := config.NewTestConfig().Log
	cfg.Level = level
	return newLogger(cfg, &buf), &buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m), line)
		out = append(out, m)
	}
	return out
}

func TestLoggingMiddleware(t *testing.T) {
	logger, buf := newTestLogger(t, "info")
	adminID := uuid.New()

	r := gin.New()
	r.Use(logger.LoggingMiddleware())
	r.GET("/api/coupons", func(c *gin.Context) {
		c.JSON(http.StatusOK, []string{})
	})
	r.GET("/api/admin/validateToken", func(c *gin.Context) {
		c.Set(ctxJWTClaimsKey, map[string]any{"id": adminID.String()})
		c.JSON(http.StatusOK, gin.H{"message": "Token is valid"})
	})
	r.GET("/broken", func(c *gin.Context) {
		c.Status(http.StatusInternalServerError)
	})

	t.Run("request id header and completion record", func(t *testing.T) {
		buf.Reset()
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/coupons", nil))

		requestID := rec.Header().Get(requestIDHeader)
		require.NotEmpty(t, requestID)

		lines := decodeLines(t, buf)
		require.Len(t, lines, 2)
		assert.Equal(t, "Request started", lines[0]["msg"])
		assert.Equal(t, "Request completed", lines[1]["msg"])
		assert.Equal(t, requestID, lines[1]["request_id"])
		assert.Equal(t, float64(http.StatusOK), lines[1]["status_code"])
		assert.NotContains(t, lines[1], "admin_id")
	})

	t.Run("authenticated request logs admin id", func(t *testing.T) {
		buf.Reset()
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/admin/validateToken", nil))

		lines := decodeLines(t, buf)
		require.Len(t, lines, 2)
		assert.Equal(t, adminID.String(), lines[1]["admin_id"])
	})

	t.Run("server errors log at error level", func(t *testing.T) {
		buf.Reset()
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/broken", nil))

		lines := decodeLines(t, buf)
		require.Len(t, lines, 2)
		assert.Equal(t, "ERROR", lines[1]["level"])
	})
}

func TestLoggerLevelFilter(t *testing.T) {
	logger, buf := newTestLogger(t, "warn")

	logger.GetSlogLogger().Info("dropped")
	logger.GetSlogLogger().Warn("kept")
	slog.Warn("default logger is installed")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "kept", lines[0]["msg"])
	assert.Equal(t, "default logger is installed", lines[1]["msg"])
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLevel(in), "level %q", in)
	}
}

func TestGetRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Empty(t, GetRequestID(c))

	c.Set(ctxRequestIDKey, "20250101000000-abcd")
	assert.Equal(t, "20250101000000-abcd", GetRequestID(c))
}

//go:build unit || e2e

package authtest

import (
	"context"
	"net/http"
	"testing"

	"couponhub/internal/handler/dto/request"
	resdto "couponhub/internal/handler/dto/response"
	"couponhub/internal/usecase"
	"couponhub/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func LoginAdmin(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/admin/login",
		request.LoginRequest{Username: username, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res resdto.LoginResponse
	httptest.DecodeResponseBody(t, w.Body, &res)
	require.NotEmpty(t, res.Token, "login response carried no token")

	return res.Token
}

// provisions the admin through the same path couponctl uses
func SeedAdmin(t *testing.T, repo usecase.AdminRepository, username, password string) uuid.UUID {
	t.Helper()

	saved, err := usecase.NewAdminUseCase(repo).Provision(context.Background(), username, password)
	require.NoError(t, err)
	return saved.ID
}

func SeedAndLogin(t *testing.T, repo usecase.AdminRepository, router *gin.Engine, username, password string) string {
	t.Helper()
	SeedAdmin(t, repo, username, password)
	return LoginAdmin(t, router, username, password)
}

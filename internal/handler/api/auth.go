package api

import (
	"net/http"

	reqdto "couponhub/internal/handler/dto/request"
	resdto "couponhub/internal/handler/dto/response"
	"couponhub/internal/handler/httperr"
	"couponhub/internal/pkg/errs"
	"couponhub/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
}

func NewAuthHandler(authUseCase usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

// @Summary Admin login
// @Description Exchange admin credentials for a one-hour session token
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	result, err := h.authUseCase.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errs.Is(err, usecase.ErrInvalidCredentials) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid username or password")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Error during login")
		return
	}

	c.JSON(http.StatusOK, resdto.LoginResponse{Token: result.Token})
}

// @Summary Validate session token
// @Description Succeeds only when the bearer token passes the auth guard
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.MessageResponse
// @Failure 403 {object} httperr.Response
// @Router /api/admin/validateToken [get]
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Token is valid"})
}

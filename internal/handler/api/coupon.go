package api

import (
	"errors"
	"io"
	"net/http"

	"couponhub/internal/domain/coupon"
	reqdto "couponhub/internal/handler/dto/request"
	resdto "couponhub/internal/handler/dto/response"
	"couponhub/internal/handler/httperr"
	"couponhub/internal/pkg/errs"
	"couponhub/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgCouponAdded      = "Coupon added successfully"
	msgCouponDeleted    = "Coupon deleted successfully"
	msgClickRecorded    = "Coupon click count updated"
	msgThumbsUpRecord   = "Thumbs up recorded"
	msgThumbsDownRecord = "Thumbs down recorded"
)

type CouponHandler struct {
	couponUseCase usecase.CouponUseCase
}

func NewCouponHandler(couponUseCase usecase.CouponUseCase) *CouponHandler {
	return &CouponHandler{
		couponUseCase: couponUseCase,
	}
}

// @Summary List coupons
// @Description List every coupon in insertion order
// @Tags coupons
// @Produce json
// @Success 200 {array} resdto.CouponResponse
// @Failure 500 {object} httperr.Response
// @Router /api/coupons [get]
func (h *CouponHandler) List(c *gin.Context) {
	items, err := h.couponUseCase.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Error fetching coupons")
		return
	}
	res, err := resdto.FromCouponList(items)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Error fetching coupons")
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Create coupon
// @Description Create a coupon with zeroed counters
// @Tags coupons
// @Accept json
// @Produce json
// @Param request body reqdto.CouponRequest true "Coupon content"
// @Success 201 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/coupons [post]
func (h *CouponHandler) Create(c *gin.Context) {
	req, ok := bindCouponRequest(c)
	if !ok {
		return
	}
	if _, err := h.couponUseCase.Create(c.Request.Context(), req.ToDomain()); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Error adding coupon")
		return
	}
	c.JSON(http.StatusCreated, resdto.MessageResponse{Message: msgCouponAdded})
}

// @Summary Update coupon
// @Description Replace offer, code and link. Responds with null when the coupon does not exist.
// @Tags coupons
// @Accept json
// @Produce json
// @Param id path string true "Coupon ID"
// @Param request body reqdto.CouponRequest true "Coupon content"
// @Success 200 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/coupons/{id} [put]
func (h *CouponHandler) Update(c *gin.Context) {
	id, ok := parseCouponID(c)
	if !ok {
		return
	}
	req, ok := bindCouponRequest(c)
	if !ok {
		return
	}
	updated, err := h.couponUseCase.Update(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Error updating coupon")
		return
	}
	res, err := resdto.FromCouponRM(updated)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Error updating coupon")
		return
	}
	// nil renders as JSON null
	c.JSON(http.StatusOK, res)
}

// @Summary Delete coupon
// @Description Delete a coupon. Deleting a missing coupon still succeeds.
// @Tags coupons
// @Produce json
// @Param id path string true "Coupon ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/coupons/{id} [delete]
func (h *CouponHandler) Delete(c *gin.Context) {
	id, ok := parseCouponID(c)
	if !ok {
		return
	}
	if err := h.couponUseCase.Delete(c.Request.Context(), id); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Error deleting coupon")
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: msgCouponDeleted})
}

// @Summary Coupon interactions
// @Description Thumbs up, thumbs down and click totals for one coupon
// @Tags coupons
// @Produce json
// @Param id path string true "Coupon ID"
// @Success 200 {object} resdto.InteractionsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/coupons/{id}/interactions [get]
func (h *CouponHandler) Interactions(c *gin.Context) {
	id, ok := parseCouponID(c)
	if !ok {
		return
	}
	rm, err := h.couponUseCase.GetInteractions(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, usecase.ErrCouponNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Error fetching interactions")
		return
	}
	c.JSON(http.StatusOK, resdto.FromInteractionsRM(rm))
}

// @Summary Record click
// @Description Add one to used and today
// @Tags coupons
// @Produce json
// @Param id path string true "Coupon ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/coupons/{id}/click [post]
func (h *CouponHandler) Click(c *gin.Context) {
	h.record(c, coupon.CounterClick, msgClickRecorded, "Error updating click count")
}

// @Summary Record thumbs up
// @Tags coupons
// @Produce json
// @Param id path string true "Coupon ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/coupons/{id}/thumbs-up [post]
func (h *CouponHandler) ThumbsUp(c *gin.Context) {
	h.record(c, coupon.CounterThumbsUp, msgThumbsUpRecord, "Error recording thumbs up")
}

// @Summary Record thumbs down
// @Tags coupons
// @Produce json
// @Param id path string true "Coupon ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/coupons/{id}/thumbs-down [post]
func (h *CouponHandler) ThumbsDown(c *gin.Context) {
	h.record(c, coupon.CounterThumbsDown, msgThumbsDownRecord, "Error recording thumbs down")
}

func (h *CouponHandler) record(c *gin.Context, counter coupon.Counter, okMsg, errMsg string) {
	id, ok := parseCouponID(c)
	if !ok {
		return
	}
	if err := h.couponUseCase.RecordInteraction(c.Request.Context(), id, counter); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, errMsg)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: okMsg})
}

func parseCouponID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrInvalidCouponID), "Invalid coupon id")
		return uuid.Nil, false
	}
	return id, true
}

// An empty body is accepted and stores empty fields.
func bindCouponRequest(c *gin.Context) (reqdto.CouponRequest, bool) {
	var req reqdto.CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body")
		return req, false
	}
	return req, true
}

package handlers

import (
	"errors"
	"net/http"

	request "paintmarket/internal/adapter/http/dto/request"
	response "paintmarket/internal/adapter/http/dto/response"
	"paintmarket/internal/usecase"
	"paintmarket/pkg"

	"github.com/gin-gonic/gin"
)

// DiscountHandler serves /api/discounts.
type DiscountHandler struct {
	usecase usecase.IDiscountUseCase
}

func NewDiscountHandler(uc usecase.IDiscountUseCase) *DiscountHandler {
	return &DiscountHandler{usecase: uc}
}

// ListActive is public.
func (h *DiscountHandler) ListActive(c *gin.Context) {
	discounts, err := h.usecase.ListActive(c.Request.Context())
	if err != nil {
		writeError(c, mapDiscountError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPublicDiscounts(discounts))
}

// Validate checks a promo code against a project and previews the amount.
func (h *DiscountHandler) Validate(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var payload request.ValidateCodeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	res, err := h.usecase.ValidateCode(c.Request.Context(), p, payload.ToCodeCheck())
	if err != nil {
		writeError(c, mapDiscountError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCodeValidation(res))
}

func (h *DiscountHandler) Create(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	in, ok := bindDiscountInput(c)
	if !ok {
		return
	}

	d, err := h.usecase.Create(c.Request.Context(), p, in)
	if err != nil {
		writeError(c, mapDiscountError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromDiscount(d))
}

func (h *DiscountHandler) Update(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	in, ok := bindDiscountInput(c)
	if !ok {
		return
	}

	d, err := h.usecase.Update(c.Request.Context(), p, c.Param("id"), in)
	if err != nil {
		writeError(c, mapDiscountError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDiscount(d))
}

func (h *DiscountHandler) Delete(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), p, c.Param("id")); err != nil {
		writeError(c, mapDiscountError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DiscountHandler) Analytics(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	a, err := h.usecase.Analytics(c.Request.Context(), p)
	if err != nil {
		writeError(c, mapDiscountError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAnalytics(a))
}

func bindDiscountInput(c *gin.Context) (usecase.DiscountInput, bool) {
	var payload request.DiscountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return usecase.DiscountInput{}, false
	}
	in, err := payload.ToInput()
	if err != nil {
		badRequest(c, err.Error())
		return usecase.DiscountInput{}, false
	}
	return in, true
}

func mapDiscountError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDiscount), errors.Is(err, usecase.ErrDiscountInputMissing):
		return pkg.NewDomainError("INVALID_DISCOUNT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDiscountID), errors.Is(err, usecase.ErrInvalidPromoCode),
		errors.Is(err, usecase.ErrInvalidBaseAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDiscountCodeTaken):
		return pkg.NewDomainErrorSimple("DISCOUNT_CODE_TAKEN", "Discount code already in use", http.StatusConflict)
	case errors.Is(err, usecase.ErrDiscountNotFound):
		return pkg.NewDomainErrorSimple("DISCOUNT_NOT_FOUND", "Discount not found", http.StatusNotFound)
	default:
		return mapAccessError(err)
	}
}

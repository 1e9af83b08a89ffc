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

// BudgetHandler serves the public paint calculator and /api/budget.
type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc}
}

func (h *BudgetHandler) EstimatePaint(c *gin.Context) {
	var payload request.PaintEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	q, err := h.usecase.QuotePaint(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaintQuote(q))
}

func (h *BudgetHandler) Create(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var payload request.BudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	b, err := h.usecase.Create(c.Request.Context(), p, payload.ToInput())
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromBudget(b))
}

func (h *BudgetHandler) ListByUser(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	budgets, err := h.usecase.ListByUser(c.Request.Context(), p, c.Param("userId"))
	if err != nil {
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudgets(budgets))
}

func mapBudgetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaintInput), errors.Is(err, usecase.ErrInvalidBudgetInput),
		errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	default:
		return mapAccessError(err)
	}
}

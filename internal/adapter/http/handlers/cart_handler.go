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

// CartHandler serves /api/cart. Every route acts on the caller's own cart.
type CartHandler struct {
	usecase usecase.ICartUseCase
}

func NewCartHandler(uc usecase.ICartUseCase) *CartHandler {
	return &CartHandler{usecase: uc}
}

func (h *CartHandler) Get(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	cart, err := h.usecase.Get(c.Request.Context(), p)
	if err != nil {
		writeError(c, mapCartError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

func (h *CartHandler) Add(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var payload request.AddToCartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	cart, err := h.usecase.AddItem(c.Request.Context(), p, payload.EstimateID)
	if err != nil {
		writeError(c, mapCartError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

func (h *CartHandler) Remove(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	cart, err := h.usecase.RemoveItem(c.Request.Context(), p, c.Param("itemId"))
	if err != nil {
		writeError(c, mapCartError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

func (h *CartHandler) Clear(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	cart, err := h.usecase.Clear(c.Request.Context(), p)
	if err != nil {
		writeError(c, mapCartError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

func mapCartError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrInvalidCartItemID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotOrderable):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_ORDERABLE", "Estimate cannot be ordered in its current status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateAlreadyInCart):
		return pkg.NewDomainErrorSimple("ESTIMATE_ALREADY_IN_CART", "Estimate already in cart", http.StatusConflict)
	case errors.Is(err, usecase.ErrCartConflict):
		return pkg.NewDomainErrorSimple("CART_CONFLICT", "Cart was modified concurrently, retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCartItemNotFound):
		return pkg.NewDomainErrorSimple("CART_ITEM_NOT_FOUND", "Cart item not found", http.StatusNotFound)
	default:
		return mapAccessError(err)
	}
}

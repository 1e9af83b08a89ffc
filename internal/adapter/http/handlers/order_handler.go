package handlers

import (
	"errors"
	"net/http"

	request "paintmarket/internal/adapter/http/dto/request"
	response "paintmarket/internal/adapter/http/dto/response"
	"paintmarket/internal/domain/entities"
	"paintmarket/internal/usecase"
	"paintmarket/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OrderHandler serves /api/orders: checkout, payment and the order lifecycle.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// Create turns the caller's cart into a pending order.
func (h *OrderHandler) Create(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var payload request.CreateOrderRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			writeError(c, errInvalidPayload)
			return
		}
	}

	order, err := h.usecase.Create(c.Request.Context(), p, payload.Notes)
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// ProcessPayment charges the order with the submitted card.
func (h *OrderHandler) ProcessPayment(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var payload request.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	card := payload.ToCard()

	zap.L().Info("[payment][handler] process start", zap.String("order_id", payload.OrderID), zap.String("user_id", p.UserID))
	order, err := h.usecase.ProcessPayment(c.Request.Context(), p, payload.OrderID, card)
	if err != nil {
		zap.L().Info("[payment][handler] process failed", zap.String("order_id", payload.OrderID), zap.Error(err))
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaidOrder(order))
}

func (h *OrderHandler) ListMine(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	orders, err := h.usecase.ListMine(c.Request.Context(), p)
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func (h *OrderHandler) Get(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	order, err := h.usecase.Get(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) Cancel(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var payload request.CancelOrderRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			writeError(c, errInvalidPayload)
			return
		}
	}

	order, err := h.usecase.Cancel(c.Request.Context(), p, c.Param("id"), payload.Reason)
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// UpdateStatus is used by the contractors on the order.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	order, err := h.usecase.UpdateStatus(c.Request.Context(), p, c.Param("id"), entities.OrderStatus(payload.Status))
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCardNumber), errors.Is(err, usecase.ErrInvalidCardCVV),
		errors.Is(err, usecase.ErrInvalidCardExpiry):
		return pkg.NewDomainErrorSimple("INVALID_CARD", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentDeclined):
		return pkg.NewDomainError("PAYMENT_DECLINED", "Payment was declined", err, http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrEmptyCart):
		return pkg.NewDomainErrorSimple("EMPTY_CART", "Cart is empty", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidOrderStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderAlreadyPaid):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_PAID", "Order already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotPayable):
		return pkg.NewDomainErrorSimple("ORDER_NOT_PAYABLE", "Order cannot be paid in its current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidOrderTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Order status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrCartConflict):
		return pkg.NewDomainErrorSimple("CART_CONFLICT", "Cart changed during checkout, retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfig):
		return pkg.NewDomainError("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", err, http.StatusServiceUnavailable)
	default:
		return mapAccessError(err)
	}
}

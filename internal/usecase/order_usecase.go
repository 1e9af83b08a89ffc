package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"paintmarket/internal/domain/entities"
	"paintmarket/internal/domain/pricing"
	"paintmarket/internal/infrastructure/auth"
	"paintmarket/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const orderSequenceName = "orders"

var (
	ErrOrderNotFound           = errors.New("order not found")
	ErrInvalidOrderID          = errors.New("invalid order id")
	ErrEmptyCart               = errors.New("cart is empty")
	ErrOrderAlreadyPaid        = errors.New("order already paid")
	ErrOrderNotPayable         = errors.New("order cannot be paid in its current status")
	ErrPaymentDeclined         = errors.New("payment declined")
	ErrInvalidOrderStatus      = errors.New("invalid order status")
	ErrInvalidOrderTransition  = errors.New("order status transition not allowed")
	ErrPaymentGatewayNotConfig = errors.New("payment gateway not configured")
)

// OrderOptions tunes checkout.
type OrderOptions struct {
	TaxRate      float64
	PaymentDelay time.Duration
}

// IOrderUseCase turns carts into orders and drives the order lifecycle.
//
//	pending -> confirmed (payment) -> in_progress -> completed
//	cancelled from any non-terminal status

type IOrderUseCase interface {
	Create(ctx context.Context, p auth.Principal, notes string) (entities.Order, error)
	ProcessPayment(ctx context.Context, p auth.Principal, orderID string, card CardInput) (entities.Order, error)
	Cancel(ctx context.Context, p auth.Principal, orderID, reason string) (entities.Order, error)
	UpdateStatus(ctx context.Context, p auth.Principal, orderID string, status entities.OrderStatus) (entities.Order, error)
	ListMine(ctx context.Context, p auth.Principal) ([]entities.Order, error)
	Get(ctx context.Context, p auth.Principal, orderID string) (entities.Order, error)
}

type OrderUseCase struct {
	orders      interfaces.IOrderRepository
	carts       interfaces.ICartRepository
	sequences   interfaces.ISequenceRepository
	contractors interfaces.IContractorRepository
	gateway     interfaces.IPaymentGateway
	opts        OrderOptions
	now         func() time.Time
	sleep       func(ctx context.Context, d time.Duration) error
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(
	orders interfaces.IOrderRepository,
	carts interfaces.ICartRepository,
	sequences interfaces.ISequenceRepository,
	contractors interfaces.IContractorRepository,
	gateway interfaces.IPaymentGateway,
	opts OrderOptions,
) *OrderUseCase {
	return &OrderUseCase{
		orders:      orders,
		carts:       carts,
		sequences:   sequences,
		contractors: contractors,
		gateway:     gateway,
		opts:        opts,
		now:         utcNow,
		sleep:       sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Create snapshots the caller's cart into a pending order and empties the
// cart in the same write.
func (u *OrderUseCase) Create(ctx context.Context, p auth.Principal, notes string) (entities.Order, error) {
	cart, err := u.carts.GetByUserID(ctx, p.UserID)
	if err != nil {
		return entities.Order{}, err
	}
	if len(cart.Items) == 0 {
		return entities.Order{}, ErrEmptyCart
	}
	cart = pricing.RecomputeTotals(cart)

	seq, err := u.sequences.Next(ctx, orderSequenceName)
	if err != nil {
		zap.L().Error("[order][usecase] order sequence failed", zap.Error(err))
		return entities.Order{}, err
	}

	now := u.now()
	items := make([]entities.OrderItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, entities.OrderItem{
			EstimateID:     it.EstimateID,
			ContractorID:   it.ContractorID,
			ProjectDetails: it.ProjectDetails,
			Pricing:        it.Pricing,
			Timeline:       it.Timeline,
		})
	}
	subtotal := cart.FinalAmount
	tax := pricing.Round2(subtotal * u.opts.TaxRate)
	o := entities.Order{
		ID:            uuid.NewString(),
		OrderNumber:   formatOrderNumber(now, seq),
		UserID:        p.UserID,
		Items:         items,
		Subtotal:      subtotal,
		TotalDiscount: cart.TotalDiscount,
		Tax:           tax,
		Total:         pricing.Round2(subtotal + tax),
		Payment: entities.Payment{
			Method: entities.PaymentMethodCard,
			Status: entities.PaymentStatusPending,
		},
		Status:    entities.OrderStatusPending,
		Notes:     strings.TrimSpace(notes),
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.orders.CreateFromCart(ctx, o, cart)
	if errors.Is(err, interfaces.ErrCartVersionConflict) {
		return entities.Order{}, ErrCartConflict
	}
	if err != nil {
		zap.L().Error("[order][usecase] create failed", zap.String("order_id", o.ID), zap.Error(err))
		return entities.Order{}, err
	}
	zap.L().Info("[order][usecase] order created",
		zap.String("order_id", created.ID),
		zap.String("order_number", created.OrderNumber),
		zap.Int("items", len(created.Items)),
		zap.Float64("total", created.Total))
	return created, nil
}

func formatOrderNumber(now time.Time, seq int64) string {
	return fmt.Sprintf("ORD-%d-%04d", now.UnixMilli(), seq)
}

// ProcessPayment validates the card and charges the order total. A declined
// or malformed card marks the payment failed and leaves the order status
// alone; the client may try again.
func (u *OrderUseCase) ProcessPayment(ctx context.Context, p auth.Principal, orderID string, card CardInput) (entities.Order, error) {
	o, err := u.loadOwned(ctx, p, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	switch {
	case o.Payment.Status == entities.PaymentStatusCompleted || o.Payment.Status == entities.PaymentStatusRefunded:
		return entities.Order{}, ErrOrderAlreadyPaid
	case o.Status != entities.OrderStatusPending:
		return entities.Order{}, ErrOrderNotPayable
	}
	if u.gateway == nil {
		return entities.Order{}, ErrPaymentGatewayNotConfig
	}

	zap.L().Info("[payment][usecase] processing payment", zap.String("order_id", o.ID), zap.Float64("amount", o.Total))
	if err := u.sleep(ctx, u.opts.PaymentDelay); err != nil {
		return entities.Order{}, err
	}

	now := u.now()
	if err := validateCard(card, now); err != nil {
		o.Payment.Status = entities.PaymentStatusFailed
		o.Payment.FailureReason = err.Error()
		o.UpdatedAt = now
		if _, uerr := u.orders.Update(ctx, o); uerr != nil {
			return entities.Order{}, uerr
		}
		zap.L().Info("[payment][usecase] card rejected", zap.String("order_id", o.ID), zap.Error(err))
		return entities.Order{}, err
	}

	details := redactCard(card)
	o.Payment.CardDetails = &details
	txID, providerStatus, err := u.gateway.Charge(ctx, interfaces.PaymentCharge{
		OrderID:     o.ID,
		OrderNumber: o.OrderNumber,
		Amount:      o.Total,
		PayerEmail:  p.Email,
		Card:        details,
		CardToken:   card.Token,
	})
	o.Payment.ProviderStatus = providerStatus
	o.UpdatedAt = u.now()
	if err != nil {
		o.Payment.Status = entities.PaymentStatusFailed
		o.Payment.FailureReason = err.Error()
		if _, uerr := u.orders.Update(ctx, o); uerr != nil {
			return entities.Order{}, uerr
		}
		zap.L().Warn("[payment][usecase] charge failed", zap.String("order_id", o.ID), zap.Error(err))
		return entities.Order{}, fmt.Errorf("%w: %w", ErrPaymentDeclined, err)
	}

	paidAt := o.UpdatedAt
	o.Payment.Status = entities.PaymentStatusCompleted
	o.Payment.TransactionID = txID
	o.Payment.FailureReason = ""
	o.Payment.PaidAt = &paidAt
	o.Status = entities.OrderStatusConfirmed

	updated, err := u.orders.MarkPaid(ctx, o)
	if errors.Is(err, interfaces.ErrOrderPaymentConflict) {
		zap.L().Error("[payment][usecase] order settled by a concurrent payment",
			zap.String("order_id", o.ID), zap.String("transaction_id", txID))
		return entities.Order{}, ErrOrderAlreadyPaid
	}
	if err != nil {
		zap.L().Error("[payment][usecase] order update after charge failed",
			zap.String("order_id", o.ID), zap.String("transaction_id", txID), zap.Error(err))
		return entities.Order{}, err
	}
	zap.L().Info("[payment][usecase] payment completed",
		zap.String("order_id", o.ID), zap.String("transaction_id", txID), zap.String("brand", details.Brand))
	return updated, nil
}

// Cancel cancels a non-terminal order. A completed payment is marked refunded.
func (u *OrderUseCase) Cancel(ctx context.Context, p auth.Principal, orderID, reason string) (entities.Order, error) {
	o, err := u.loadOwned(ctx, p, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if !o.Status.CanTransitionTo(entities.OrderStatusCancelled) {
		return entities.Order{}, ErrInvalidOrderTransition
	}

	now := u.now()
	o.Status = entities.OrderStatusCancelled
	o.CancellationReason = strings.TrimSpace(reason)
	o.UpdatedAt = now
	if o.Payment.Status == entities.PaymentStatusCompleted {
		o.Payment.Status = entities.PaymentStatusRefunded
		o.Payment.RefundedAt = &now
	}

	updated, err := u.orders.Update(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	zap.L().Info("[order][usecase] order cancelled",
		zap.String("order_id", o.ID), zap.String("payment_status", string(o.Payment.Status)))
	return updated, nil
}

// UpdateStatus lets a contractor on the order (or an admin) move a paid
// order to in_progress and then completed.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, p auth.Principal, orderID string, status entities.OrderStatus) (entities.Order, error) {
	if status != entities.OrderStatusInProgress && status != entities.OrderStatusCompleted {
		return entities.Order{}, ErrInvalidOrderStatus
	}
	o, err := u.load(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if !p.IsAdmin() {
		c, err := contractorOf(ctx, u.contractors, p)
		if errors.Is(err, ErrContractorProfileReq) {
			return entities.Order{}, ErrForbidden
		}
		if err != nil {
			return entities.Order{}, err
		}
		if !o.HasContractor(c.ID) {
			return entities.Order{}, ErrForbidden
		}
	}
	if !o.Status.CanTransitionTo(status) {
		return entities.Order{}, ErrInvalidOrderTransition
	}

	prev := o.Status
	o.Status = status
	o.UpdatedAt = u.now()
	updated, err := u.orders.Update(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	zap.L().Info("[order][usecase] order status updated",
		zap.String("order_id", o.ID), zap.String("from", string(prev)), zap.String("to", string(status)))
	return updated, nil
}

func (u *OrderUseCase) ListMine(ctx context.Context, p auth.Principal) ([]entities.Order, error) {
	return u.orders.ListByUserID(ctx, p.UserID)
}

// Get returns the order to its owner, a contractor on it or an admin.
func (u *OrderUseCase) Get(ctx context.Context, p auth.Principal, orderID string) (entities.Order, error) {
	o, err := u.load(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.UserID == p.UserID || p.IsAdmin() {
		return o, nil
	}
	if p.IsContractor() {
		c, err := contractorOf(ctx, u.contractors, p)
		if err != nil && !errors.Is(err, ErrContractorProfileReq) {
			return entities.Order{}, err
		}
		if err == nil && o.HasContractor(c.ID) {
			return o, nil
		}
	}
	return entities.Order{}, ErrForbidden
}

func (u *OrderUseCase) loadOwned(ctx context.Context, p auth.Principal, orderID string) (entities.Order, error) {
	o, err := u.load(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.UserID != p.UserID && !p.IsAdmin() {
		return entities.Order{}, ErrForbidden
	}
	return o, nil
}

func (u *OrderUseCase) load(ctx context.Context, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

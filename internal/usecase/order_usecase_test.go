package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"paintmarket/internal/domain/entities"
	"paintmarket/internal/usecase/interfaces"
	mock_interfaces "paintmarket/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type orderMocks struct {
	orders      *mock_interfaces.MockIOrderRepository
	carts       *mock_interfaces.MockICartRepository
	sequences   *mock_interfaces.MockISequenceRepository
	contractors *mock_interfaces.MockIContractorRepository
	gateway     *mock_interfaces.MockIPaymentGateway
}

func newOrderUseCase(t *testing.T) (*OrderUseCase, orderMocks) {
	ctrl := gomock.NewController(t)
	m := orderMocks{
		orders:      mock_interfaces.NewMockIOrderRepository(ctrl),
		carts:       mock_interfaces.NewMockICartRepository(ctrl),
		sequences:   mock_interfaces.NewMockISequenceRepository(ctrl),
		contractors: mock_interfaces.NewMockIContractorRepository(ctrl),
		gateway:     mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	uc := NewOrderUseCase(m.orders, m.carts, m.sequences, m.contractors, m.gateway, OrderOptions{TaxRate: 0.08, PaymentDelay: 2 * time.Second})
	uc.now = func() time.Time { return fixedNow }
	uc.sleep = func(context.Context, time.Duration) error { return nil }
	return uc, m
}

func validCard() CardInput {
	return CardInput{Number: "4111 1111 1111 1234", ExpiryMonth: 12, ExpiryYear: 30, CVV: "123"}
}

func pendingOrder() entities.Order {
	return entities.Order{
		ID:          "ord-1",
		OrderNumber: "ORD-1-0001",
		UserID:      "user-1",
		Items:       []entities.OrderItem{{EstimateID: "est-1", ContractorID: "ctr-1"}},
		Total:       108,
		Payment:     entities.Payment{Method: entities.PaymentMethodCard, Status: entities.PaymentStatusPending},
		Status:      entities.OrderStatusPending,
	}
}

func echoOrder(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil }

func TestOrderUseCase_Create(t *testing.T) {
	t.Run("empty cart creates nothing", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.carts.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.Cart{UserID: "user-1"}, nil)

		if _, err := uc.Create(context.Background(), client, ""); !errors.Is(err, ErrEmptyCart) {
			t.Fatalf("expected ErrEmptyCart, got %v", err)
		}
	})

	t.Run("snapshots cart with tax and order number", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		cart := entities.Cart{UserID: "user-1", Version: 4, Items: []entities.CartItem{
			{ID: "i-1", EstimateID: "est-1", ContractorID: "ctr-1", Pricing: entities.Pricing{OriginalAmount: 120, TotalDiscount: 20, FinalAmount: 100}},
		}}
		m.carts.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(cart, nil)
		m.sequences.EXPECT().Next(gomock.Any(), "orders").Return(int64(7), nil)
		m.orders.EXPECT().CreateFromCart(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order, c entities.Cart) (entities.Order, error) {
				if c.Version != 4 {
					t.Fatalf("expected cart version 4, got %d", c.Version)
				}
				return o, nil
			},
		)

		o, err := uc.Create(context.Background(), client, " please call first ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Subtotal != 100 || o.TotalDiscount != 20 || o.Tax != 8 || o.Total != 108 {
			t.Fatalf("unexpected amounts: %+v", o)
		}
		if !regexp.MustCompile(`^ORD-\d+-0007$`).MatchString(o.OrderNumber) {
			t.Fatalf("unexpected order number %q", o.OrderNumber)
		}
		if o.Status != entities.OrderStatusPending || o.Payment.Status != entities.PaymentStatusPending || o.Notes != "please call first" {
			t.Fatalf("unexpected order: %+v", o)
		}
		if len(o.Items) != 1 || o.Items[0].EstimateID != "est-1" {
			t.Fatalf("unexpected items: %+v", o.Items)
		}
	})

	t.Run("cart changed meanwhile", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.carts.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.Cart{UserID: "user-1", Items: []entities.CartItem{{ID: "i-1"}}}, nil)
		m.sequences.EXPECT().Next(gomock.Any(), "orders").Return(int64(1), nil)
		m.orders.EXPECT().CreateFromCart(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Order{}, interfaces.ErrCartVersionConflict)

		if _, err := uc.Create(context.Background(), client, ""); !errors.Is(err, ErrCartConflict) {
			t.Fatalf("expected ErrCartConflict, got %v", err)
		}
	})
}

func TestFormatOrderNumber(t *testing.T) {
	got := formatOrderNumber(time.UnixMilli(1700000000123), 42)
	if got != "ORD-1700000000123-0042" {
		t.Fatalf("unexpected order number %q", got)
	}
}

func TestOrderUseCase_ProcessPayment(t *testing.T) {
	t.Run("not owner", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)

		if _, err := uc.ProcessPayment(context.Background(), contractor, "ord-1", validCard()); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		o := pendingOrder()
		o.Payment.Status = entities.PaymentStatusCompleted
		o.Status = entities.OrderStatusConfirmed
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(o, nil)

		if _, err := uc.ProcessPayment(context.Background(), client, "ord-1", validCard()); !errors.Is(err, ErrOrderAlreadyPaid) {
			t.Fatalf("expected ErrOrderAlreadyPaid, got %v", err)
		}
	})

	t.Run("fifteen digit card fails payment and keeps order pending", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		card := validCard()
		card.Number = "411111111111123"
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
		m.orders.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.Payment.Status != entities.PaymentStatusFailed || o.Status != entities.OrderStatusPending {
					t.Fatalf("unexpected order after failure: %+v", o)
				}
				return o, nil
			},
		)

		if _, err := uc.ProcessPayment(context.Background(), client, "ord-1", card); !errors.Is(err, ErrInvalidCardNumber) {
			t.Fatalf("expected ErrInvalidCardNumber, got %v", err)
		}
	})

	t.Run("gateway decline", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
		m.gateway.EXPECT().Charge(gomock.Any(), gomock.Any()).Return("", "rejected", errors.New("insufficient funds"))
		m.orders.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoOrder)

		if _, err := uc.ProcessPayment(context.Background(), client, "ord-1", validCard()); !errors.Is(err, ErrPaymentDeclined) {
			t.Fatalf("expected ErrPaymentDeclined, got %v", err)
		}
	})

	t.Run("valid card confirms order", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
		m.gateway.EXPECT().Charge(gomock.Any(), interfaces.PaymentCharge{
			OrderID:     "ord-1",
			OrderNumber: "ORD-1-0001",
			Amount:      108,
			PayerEmail:  "client@example.com",
			Card:        entities.CardDetails{Last4: "1234", Brand: "visa"},
		}).Return("TXN-1", "approved", nil)
		m.orders.EXPECT().MarkPaid(gomock.Any(), gomock.Any()).DoAndReturn(echoOrder)

		o, err := uc.ProcessPayment(context.Background(), client, "ord-1", validCard())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Payment.Status != entities.PaymentStatusCompleted || o.Status != entities.OrderStatusConfirmed {
			t.Fatalf("unexpected statuses: %+v", o)
		}
		if o.Payment.TransactionID != "TXN-1" || o.Payment.PaidAt == nil {
			t.Fatalf("unexpected payment: %+v", o.Payment)
		}
		if o.Payment.CardDetails == nil || o.Payment.CardDetails.Last4 != "1234" || o.Payment.CardDetails.Brand != "visa" {
			t.Fatalf("unexpected card details: %+v", o.Payment.CardDetails)
		}
	})

	t.Run("malformed expiry fails payment", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		card := validCard()
		card.ExpiryMonth, card.ExpiryYear = 0, 0
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
		m.orders.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.Payment.Status != entities.PaymentStatusFailed {
					t.Fatalf("expected failed payment, got %+v", o.Payment)
				}
				return o, nil
			},
		)

		if _, err := uc.ProcessPayment(context.Background(), client, "ord-1", card); !errors.Is(err, ErrInvalidCardExpiry) {
			t.Fatalf("expected ErrInvalidCardExpiry, got %v", err)
		}
	})

	t.Run("card token reaches the gateway", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		card := validCard()
		card.Token = "tok-abc"
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
		m.gateway.EXPECT().Charge(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, charge interfaces.PaymentCharge) (string, string, error) {
				if charge.CardToken != "tok-abc" {
					t.Fatalf("expected card token tok-abc, got %q", charge.CardToken)
				}
				return "TXN-2", "approved", nil
			},
		)
		m.orders.EXPECT().MarkPaid(gomock.Any(), gomock.Any()).DoAndReturn(echoOrder)

		if _, err := uc.ProcessPayment(context.Background(), client, "ord-1", card); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("order settled concurrently", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
		m.gateway.EXPECT().Charge(gomock.Any(), gomock.Any()).Return("TXN-3", "approved", nil)
		m.orders.EXPECT().MarkPaid(gomock.Any(), gomock.Any()).Return(entities.Order{}, interfaces.ErrOrderPaymentConflict)

		if _, err := uc.ProcessPayment(context.Background(), client, "ord-1", validCard()); !errors.Is(err, ErrOrderAlreadyPaid) {
			t.Fatalf("expected ErrOrderAlreadyPaid, got %v", err)
		}
	})

	t.Run("cancelled context during delay", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		uc.sleep = sleepContext
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := uc.ProcessPayment(ctx, client, "ord-1", validCard()); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})
}

func TestOrderUseCase_Cancel(t *testing.T) {
	t.Run("completed order cannot be cancelled", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		o := pendingOrder()
		o.Status = entities.OrderStatusCompleted
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(o, nil)

		if _, err := uc.Cancel(context.Background(), client, "ord-1", ""); !errors.Is(err, ErrInvalidOrderTransition) {
			t.Fatalf("expected ErrInvalidOrderTransition, got %v", err)
		}
	})

	t.Run("paid order is refunded", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		o := pendingOrder()
		o.Status = entities.OrderStatusConfirmed
		o.Payment.Status = entities.PaymentStatusCompleted
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(o, nil)
		m.orders.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoOrder)

		res, err := uc.Cancel(context.Background(), client, "ord-1", " changed plans ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.OrderStatusCancelled || res.Payment.Status != entities.PaymentStatusRefunded || res.Payment.RefundedAt == nil {
			t.Fatalf("unexpected order: %+v", res)
		}
		if res.CancellationReason != "changed plans" {
			t.Fatalf("unexpected reason %q", res.CancellationReason)
		}
	})

	t.Run("unpaid order keeps payment status", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
		m.orders.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoOrder)

		res, err := uc.Cancel(context.Background(), client, "ord-1", "")
		if err != nil || res.Payment.Status != entities.PaymentStatusPending {
			t.Fatalf("unexpected result %+v err=%v", res, err)
		}
	})
}

func TestOrderUseCase_UpdateStatus(t *testing.T) {
	confirmed := pendingOrder()
	confirmed.Status = entities.OrderStatusConfirmed

	t.Run("contractor on order starts work", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(confirmed, nil)
		m.contractors.EXPECT().GetByUserID(gomock.Any(), "user-c").Return(availableContractor(), nil)
		m.orders.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoOrder)

		res, err := uc.UpdateStatus(context.Background(), contractor, "ord-1", entities.OrderStatusInProgress)
		if err != nil || res.Status != entities.OrderStatusInProgress {
			t.Fatalf("unexpected result %+v err=%v", res, err)
		}
	})

	t.Run("client forbidden", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(confirmed, nil)

		if _, err := uc.UpdateStatus(context.Background(), client, "ord-1", entities.OrderStatusInProgress); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("cannot skip steps", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(confirmed, nil)

		if _, err := uc.UpdateStatus(context.Background(), admin, "ord-1", entities.OrderStatusCompleted); !errors.Is(err, ErrInvalidOrderTransition) {
			t.Fatalf("expected ErrInvalidOrderTransition, got %v", err)
		}
	})

	t.Run("confirmed is reserved for payment", func(t *testing.T) {
		uc, _ := newOrderUseCase(t)
		if _, err := uc.UpdateStatus(context.Background(), admin, "ord-1", entities.OrderStatusConfirmed); !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})
}

func TestOrderUseCase_Get(t *testing.T) {
	t.Run("contractor on order", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
		m.contractors.EXPECT().GetByUserID(gomock.Any(), "user-c").Return(availableContractor(), nil)

		if _, err := uc.Get(context.Background(), contractor, "ord-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing", func(t *testing.T) {
		uc, m := newOrderUseCase(t)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{}, nil)

		if _, err := uc.Get(context.Background(), client, "ord-1"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

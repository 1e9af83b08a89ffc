package interfaces

import (
	"context"
	"errors"
	"paintmarket/internal/domain/entities"
)

// ErrOrderPaymentConflict is returned by MarkPaid when the stored order is no
// longer pending or its payment already completed.
var ErrOrderPaymentConflict = errors.New("order payment was settled concurrently")

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// CreateFromCart stores the order and empties the cart in one transaction;
// it fails with ErrCartVersionConflict when the cart changed meanwhile.
// MarkPaid writes a successful payment only while the stored order is still
// pending and unpaid.

type IOrderRepository interface {
	CreateFromCart(ctx context.Context, o entities.Order, cart entities.Cart) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Order, error)
	Update(ctx context.Context, o entities.Order) (entities.Order, error)
	MarkPaid(ctx context.Context, o entities.Order) (entities.Order, error)
}

// ISequenceRepository hands out monotonically increasing numbers per name.
type ISequenceRepository interface {
	Next(ctx context.Context, name string) (int64, error)
}

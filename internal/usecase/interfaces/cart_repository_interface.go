package interfaces

import (
	"context"
	"errors"
	"paintmarket/internal/domain/entities"
)

// ErrCartVersionConflict is returned when the cart changed since it was read.
var ErrCartVersionConflict = errors.New("cart was modified concurrently")

// ICartRepository abstracts DynamoDB persistence for Cart.
//
// Save writes the cart only if the stored version still equals c.Version and
// returns the cart with its incremented version.

type ICartRepository interface {
	GetByUserID(ctx context.Context, userID string) (entities.Cart, error)
	Save(ctx context.Context, c entities.Cart) (entities.Cart, error)
}

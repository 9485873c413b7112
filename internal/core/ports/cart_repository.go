package ports

import (
	"context"

	"github.com/quickmart/store-api/internal/core/domain"
)

// CartRepository persists carts keyed by user id (one cart per user).
//
// AddLine is the critical operation: it must merge atomically so that two
// concurrent adds for the same (user, product) end at quantity 2, never 1.
// Implementations may not read-modify-write without serialization.
type CartRepository interface {
	// Get returns the user's cart or domain.ErrCartNotFound if none was
	// ever created.
	Get(ctx context.Context, userID string) (*domain.Cart, error)
	// AddLine increments the quantity of an existing line for productID by
	// one, or appends a new line with quantity 1, creating the cart lazily
	// when the user has none.
	AddLine(ctx context.Context, userID, productID string) error
	// RemoveLine deletes the line for productID. Removing a product that
	// is not in the cart is a no-op; a missing cart is
	// domain.ErrCartNotFound.
	RemoveLine(ctx context.Context, userID, productID string) error
}

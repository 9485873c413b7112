package ports

import (
	"context"

	"github.com/quickmart/store-api/internal/core/domain"
)

// CartService is the cart use-case layer. Every operation returns the cart
// with product references resolved into full snapshots at read time.
type CartService interface {
	// Get never fails for a valid user: a user without a cart gets an
	// empty resolved cart.
	Get(ctx context.Context, userID string) (*domain.ResolvedCart, error)
	AddItem(ctx context.Context, userID, productID string) (*domain.ResolvedCart, error)
	RemoveItem(ctx context.Context, userID, productID string) (*domain.ResolvedCart, error)
}

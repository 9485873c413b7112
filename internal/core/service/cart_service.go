package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/quickmart/store-api/internal/core/domain"
	"github.com/quickmart/store-api/internal/core/ports"
)

// CartService implements the cart use cases over the cart and product
// repositories. The stored cart holds only (product id, quantity) pairs;
// product data is joined in on every read so price changes stay live.
type CartService struct {
	carts    ports.CartRepository
	products ports.ProductRepository
	logger   zerolog.Logger
}

func NewCartService(carts ports.CartRepository, products ports.ProductRepository, logger zerolog.Logger) *CartService {
	return &CartService{carts: carts, products: products, logger: logger}
}

// Get returns the user's resolved cart. A user who never added anything
// gets an empty cart, not an error.
func (s *CartService) Get(ctx context.Context, userID string) (*domain.ResolvedCart, error) {
	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrCartNotFound) {
			return &domain.ResolvedCart{UserID: userID, Items: []domain.ResolvedLine{}}, nil
		}
		return nil, err
	}
	return s.resolve(ctx, cart)
}

// AddItem merges productID into the user's cart: an existing line gains
// quantity, a new line starts at 1. The repository performs the merge
// atomically, so concurrent adds for the same product never lose an
// increment.
func (s *CartService) AddItem(ctx context.Context, userID, productID string) (*domain.ResolvedCart, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	if err := s.carts.AddLine(ctx, userID, productID); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Str("product_id", productID).Msg("cart item added")
	return s.Get(ctx, userID)
}

// RemoveItem drops the line for productID. Removing a product that was
// never added succeeds and leaves the cart unchanged; only a user with no
// cart at all gets ErrCartNotFound.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID string) (*domain.ResolvedCart, error) {
	if err := s.carts.RemoveLine(ctx, userID, productID); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Str("product_id", productID).Msg("cart item removed")
	return s.Get(ctx, userID)
}

// resolve expands product references into full snapshots. Lines whose
// product has since been deleted are skipped rather than failing the whole
// read.
func (s *CartService) resolve(ctx context.Context, cart *domain.Cart) (*domain.ResolvedCart, error) {
	ids := make([]string, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		ids = append(ids, line.ProductID)
	}

	snapshots, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	resolved := &domain.ResolvedCart{UserID: cart.UserID, Items: []domain.ResolvedLine{}}
	for _, line := range cart.Lines {
		product, ok := snapshots[line.ProductID]
		if !ok {
			continue
		}
		resolved.Items = append(resolved.Items, domain.ResolvedLine{
			Product:  product,
			Quantity: line.Quantity,
		})
		resolved.Total += product.Price * float64(line.Quantity)
	}
	return resolved, nil
}

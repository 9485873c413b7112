package ports

import (
	"context"

	"github.com/quickmart/store-api/internal/core/domain"
)

// ProductRepository persists catalog entries.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	// List returns the whole catalog in insertion order. No pagination at
	// this scale.
	List(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// FindByIDs resolves a set of product ids in one round trip. Missing
	// ids are silently absent from the result.
	FindByIDs(ctx context.Context, ids []string) (map[string]domain.Product, error)
}

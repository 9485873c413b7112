package ports

import (
	"context"

	"github.com/quickmart/store-api/internal/core/domain"
)

// CreateProductInput carries the fields accepted when adding a product.
type CreateProductInput struct {
	Name        string
	Price       float64
	Image       string
	Description string
}

type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
}

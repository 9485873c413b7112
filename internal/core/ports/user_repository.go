package ports

import (
	"context"

	"github.com/quickmart/store-api/internal/core/domain"
)

// UserRepository persists credentials. Uniqueness of usernames is enforced
// by the store (unique index) rather than by a read-then-write check.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

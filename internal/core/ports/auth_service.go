package ports

import (
	"context"

	"github.com/quickmart/store-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}

// TokenService issues and verifies the signed bearer tokens carried in the
// Authorization header. Verification is stateless; there is no revocation.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	Verify(token string) (*domain.TokenClaims, error)
}

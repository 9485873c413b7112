package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/quickmart/store-api/internal/core/domain"
)

// tokenTTL is fixed at one hour; expiry is not configurable.
const tokenTTL = time.Hour

// TokenService signs and verifies HS256 bearer tokens. The signing secret
// is process-wide configuration handed in once at construction.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue produces a signed token carrying the user's identity, expiring
// exactly one hour from now.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"username": user.Username,
		"user_id":  user.ID,
		"exp":      time.Now().Add(tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates a token string. Malformed, expired, and
// badly signed tokens all come back as domain.ErrInvalidToken.
func (s *TokenService) Verify(token string) (*domain.TokenClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	username, _ := claims["username"].(string)
	userID, _ := claims["user_id"].(string)
	if username == "" || userID == "" {
		return nil, domain.ErrInvalidToken
	}

	return &domain.TokenClaims{UserID: userID, Username: username}, nil
}

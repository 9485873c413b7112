package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/quickmart/store-api/internal/core/domain"
	"github.com/quickmart/store-api/internal/core/ports"
)

// usernamePattern: 3-30 chars, letters, digits, underscore.
var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,30}$`)

const minPasswordLen = 6

// AuthService implements registration and login over a UserRepository.
type AuthService struct {
	repo   ports.UserRepository
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, logger: logger}
}

// Register validates the credentials, hashes the password with bcrypt, and
// persists the user. The plaintext password is never stored or logged.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if !usernamePattern.MatchString(username) {
		return nil, fmt.Errorf("%w: username must be 3-30 characters of letters, numbers, and underscores", domain.ErrValidation)
	}
	if len(password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLen)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Login verifies the credentials and issues a bearer token. A missing user
// and a wrong password return the same error so callers cannot probe for
// registered usernames; repository failures propagate untouched.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("username", user.Username).Msg("user logged in")
	return token, user, nil
}

package domain

import (
	"errors"
	"time"
)

// ErrInvalidCredentials covers both "no such user" and "wrong password" so
// login failures never reveal which one happened.
var ErrInvalidCredentials = errors.New("invalid username or password")

var ErrDuplicateUsername = errors.New("username already taken")
var ErrUserNotFound = errors.New("user not found")
var ErrValidation = errors.New("validation failed")

// User models a registered account.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

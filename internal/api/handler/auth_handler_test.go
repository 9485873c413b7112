package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickmart/store-api/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, username, password string) (*domain.User, error)
	loginFn    func(ctx context.Context, username, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	return s.registerFn(ctx, username, password)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, username, password)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newEcho()
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(_ context.Context, username, password string) (*domain.User, error) {
			assert.Equal(t, "alice123", username)
			assert.Equal(t, "secret1", password)
			return &domain.User{ID: "u1", Username: username}, nil
		},
	})

	body := strings.NewReader(`{"username":"alice123","password":"secret1"}`)
	req := httptest.NewRequest(http.MethodPost, "/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Register(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	user, ok := resp["user"].(map[string]any)
	require.True(t, ok, "expected user in response")
	assert.Equal(t, "alice123", user["username"])
	assert.NotContains(t, rec.Body.String(), "password", "no password material may leak")
}

func TestAuthHandler_Register_RejectsBadUsernameBeforeService(t *testing.T) {
	e := newEcho()
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(context.Context, string, string) (*domain.User, error) {
			t.Fatal("service must not be called for invalid input")
			return nil, nil
		},
	})

	body := strings.NewReader(`{"username":"a!","password":"secret1"}`)
	req := httptest.NewRequest(http.MethodPost, "/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Register(c)
	require.Error(t, err)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	e := newEcho()
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(context.Context, string, string) (*domain.User, error) {
			return nil, domain.ErrDuplicateUsername
		},
	})

	body := strings.NewReader(`{"username":"alice123","password":"secret1"}`)
	req := httptest.NewRequest(http.MethodPost, "/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.Register(e.NewContext(req, rec))
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername,
		"domain errors pass through to the central error handler")
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newEcho()
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(_ context.Context, username, password string) (string, *domain.User, error) {
			return "tok123", &domain.User{ID: "u1", Username: username}, nil
		},
	})

	body := strings.NewReader(`{"username":"alice123","password":"secret1"}`)
	req := httptest.NewRequest(http.MethodPost, "/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Login(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "tok123", resp["token"])
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newEcho()
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	})

	body := strings.NewReader(`{"username":"alice123","password":"wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.Login(e.NewContext(req, rec))
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

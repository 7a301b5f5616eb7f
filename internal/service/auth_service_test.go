package service

import (
	"context"
	"testing"
	"time"

	"vastratrota-backend/internal/models"
	"vastratrota-backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(ttl time.Duration) *AuthService {
	s := store.NewStore()
	s.CreateUser(&models.User{ID: "1", Username: "admin", Password: "admin123", Role: models.RoleAdmin})
	return NewAuthService(s, nil, ttl)
}

func TestLogin(t *testing.T) {
	svc := newTestAuthService(time.Hour)

	resp, err := svc.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.RoleAdmin, resp.User.Role)

	claims, err := svc.Validate(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "1", claims.UserID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestLoginBadCredentials(t *testing.T) {
	svc := newTestAuthService(time.Hour)

	_, err := svc.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateUnknownToken(t *testing.T) {
	svc := newTestAuthService(time.Hour)

	_, err := svc.Validate(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSessionExpiry(t *testing.T) {
	svc := newTestAuthService(-time.Minute) // already expired on issue

	resp, err := svc.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)

	_, err = svc.Validate(context.Background(), resp.Token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

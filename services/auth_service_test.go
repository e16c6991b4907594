package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"movie-watchlist/models"
	"movie-watchlist/testutil"
)

func TestRegisterAndLogin(t *testing.T) {
	svc := NewAuthService(testutil.NewUserStore())
	ctx := context.Background()

	user, err := svc.Register(ctx, "u@example.com", "pw1")
	assert.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "u@example.com", user.Email)
	assert.NotEqual(t, "pw1", user.Password) // stored hashed
	assert.Empty(t, user.Movies)

	loggedIn, err := svc.Login(ctx, "u@example.com", "pw1")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewAuthService(testutil.NewUserStore())
	ctx := context.Background()

	_, err := svc.Register(ctx, "u@example.com", "pw1")
	assert.NoError(t, err)

	_, err = svc.Login(ctx, "u@example.com", "wrong")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(testutil.NewUserStore())

	_, err := svc.Login(context.Background(), "nobody@example.com", "pw1")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewAuthService(testutil.NewUserStore())
	ctx := context.Background()

	_, err := svc.Register(ctx, "u@example.com", "pw1")
	assert.NoError(t, err)

	_, err = svc.Register(ctx, "u@example.com", "other")
	assert.ErrorIs(t, err, models.ErrEmailTaken)
}

func TestRegisterNormalizesEmail(t *testing.T) {
	svc := NewAuthService(testutil.NewUserStore())
	ctx := context.Background()

	_, err := svc.Register(ctx, "  U@Example.com ", "pw1")
	assert.NoError(t, err)

	_, err = svc.Login(ctx, "u@example.com", "pw1")
	assert.NoError(t, err)
}

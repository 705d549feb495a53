package service

import (
	"alcyxob/fitness-portal/internal/domain"
	"alcyxob/fitness-portal/internal/repository"
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret"

func TestAuthService_RegisterAndLogin(t *testing.T) {
	users := newUserRepoMock()
	svc := NewAuthService(users, testJWTSecret, 30*time.Minute)
	ctx := context.Background()
	email := gofakeit.Email()

	user, err := svc.Register(ctx, "Dana", email, "correct horse", domain.RoleMember)
	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
	assert.Equal(t, domain.RoleMember, user.Role)

	token, loggedIn, err := svc.Login(ctx, email, "correct horse")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.Empty(t, loggedIn.PasswordHash)

	claims := &jwtClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, domain.RoleMember, claims.Role)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAt.Time, time.Minute)
}

func TestAuthService_RegisterRejects(t *testing.T) {
	users := newUserRepoMock()
	svc := NewAuthService(users, testJWTSecret, time.Hour)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Dana", "dana@example.com", "short", domain.RoleMember)
	assert.ErrorIs(t, err, ErrInvalidRegistration)

	_, err = svc.Register(ctx, "Dana", "dana@example.com", "long enough", domain.Role("admin"))
	assert.ErrorIs(t, err, ErrInvalidRegistration)

	_, err = svc.Register(ctx, "", "dana@example.com", "long enough", domain.RoleMember)
	assert.ErrorIs(t, err, ErrInvalidRegistration)

	_, err = svc.Register(ctx, "Dana", "Dana@Example.com", "long enough", domain.RoleTrainer)
	require.NoError(t, err)
	_, err = svc.Register(ctx, "Other Dana", "dana@example.com", "long enough", domain.RoleMember)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthService_RegisterLosesRaceOnUniqueIndex(t *testing.T) {
	users := newUserRepoMock()
	users.createErr = repository.ErrDuplicateKey
	svc := NewAuthService(users, testJWTSecret, time.Hour)

	_, err := svc.Register(context.Background(), "Dana", "dana@example.com", "long enough", domain.RoleMember)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthService_LoginFailures(t *testing.T) {
	users := newUserRepoMock()
	svc := NewAuthService(users, testJWTSecret, time.Hour)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Dana", "dana@example.com", "long enough", domain.RoleMember)
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "dana@example.com", "wrong password")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	_, _, err = svc.Login(ctx, "nobody@example.com", "long enough")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	_, _, err = svc.Login(ctx, "", "")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	token, _, err := svc.Login(ctx, " DANA@example.com ", "long enough")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

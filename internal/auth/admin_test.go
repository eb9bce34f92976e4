package auth

import (
	"context"
	"testing"
	"time"

	"grocery-be/internal/apperr"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthenticator(t *testing.T) *Authenticator {
	t.Helper()
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	return NewAuthenticator("admin", hash, "test-secret")
}

func TestAuthenticator_Login(t *testing.T) {
	a := newTestAuthenticator(t)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		sess, err := a.Login(ctx, "admin", "s3cret")
		require.NoError(t, err)
		assert.NotEmpty(t, sess.Token)
		assert.Equal(t, "admin", sess.Username)

		claims, err := a.Parse(sess.Token)
		require.NoError(t, err)
		assert.Equal(t, RoleAdmin, claims.Role)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, err := a.Login(ctx, "admin", "nope")
		assert.ErrorIs(t, err, apperr.ErrUnauthorized)
	})

	t.Run("WrongUsername", func(t *testing.T) {
		_, err := a.Login(ctx, "root", "s3cret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("MissingFields", func(t *testing.T) {
		_, err := a.Login(ctx, "", "")
		assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	})
}

func TestAuthenticator_Parse(t *testing.T) {
	a := newTestAuthenticator(t)

	t.Run("Expired", func(t *testing.T) {
		a.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
		sess, err := a.Login(context.Background(), "admin", "s3cret")
		require.NoError(t, err)
		a.now = time.Now

		_, err = a.Parse(sess.Token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
			Role: RoleAdmin,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		signed, err := token.SignedString([]byte("other"))
		require.NoError(t, err)

		_, err = a.Parse(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("NonAdminRole", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
			Role: "customer",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		signed, err := token.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = a.Parse(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := a.Parse("")
		assert.ErrorIs(t, err, ErrMissingToken)
	})
}

func TestClaimsContext(t *testing.T) {
	_, ok := ClaimsFrom(context.Background())
	assert.False(t, ok)

	ctx := WithClaims(context.Background(), &Claims{Username: "admin"})
	c, ok := ClaimsFrom(ctx)
	assert.True(t, ok)
	assert.Equal(t, "admin", c.Username)
}

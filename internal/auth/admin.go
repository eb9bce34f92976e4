package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"grocery-be/internal/apperr"
	"grocery-be/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	RoleAdmin = "admin"
	tokenTTL  = 24 * time.Hour
)

var (
	ErrInvalidCredentials = apperr.New(apperr.ErrUnauthorized, "invalid_credentials", "invalid username or password")
	ErrInvalidToken       = apperr.New(apperr.ErrUnauthorized, "invalid_token", "invalid or expired token")
	ErrMissingToken       = apperr.New(apperr.ErrUnauthorized, "missing_token", "authentication required")
)

type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Session is the result of a successful admin login.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Username  string    `json:"username"`
}

// Authenticator checks the single configured admin account and issues tokens.
type Authenticator struct {
	username     string
	passwordHash string
	secret       []byte
	now          func() time.Time
}

func NewAuthenticator(username, passwordHash, secret string) *Authenticator {
	return &Authenticator{
		username:     username,
		passwordHash: passwordHash,
		secret:       []byte(secret),
		now:          time.Now,
	}
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func (a *Authenticator) Login(ctx context.Context, username, password string) (*Session, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "auth"),
		zap.String("method", "Login"),
		zap.String("username", username),
	)

	if username == "" || password == "" {
		return nil, apperr.Invalid("username and password are required")
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	// bcrypt runs even on a username mismatch so both failures cost the same.
	passErr := bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(password))
	if !userOK || passErr != nil {
		log.Warn("admin login rejected")
		return nil, ErrInvalidCredentials
	}

	expiresAt := a.now().Add(tokenTTL)
	claims := Claims{
		Username: a.username,
		Role:     RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   a.username,
			IssuedAt:  jwt.NewNumericDate(a.now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		log.Error("failed to sign token", zap.Error(err))
		return nil, err
	}

	log.Info("admin login success")
	return &Session{Token: token, ExpiresAt: expiresAt, Username: a.username}, nil
}

func (a *Authenticator) Parse(tokenStr string) (*Claims, error) {
	if tokenStr == "" {
		return nil, ErrMissingToken
	}

	token, err := jwt.ParseWithClaims(
		tokenStr,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return a.secret, nil
		},
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Role != RoleAdmin {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

type ctxKey string

const claimsKey ctxKey = "admin_claims"

func WithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

func ClaimsFrom(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(claimsKey).(*Claims)
	return c, ok
}

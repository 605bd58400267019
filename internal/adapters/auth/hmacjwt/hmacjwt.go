// Package hmacjwt implementa auth.Verifier y auth.Issuer con JWT HS256.
// El secreto viene de env (JWT_SECRET); si no está seteado, el router
// queda en modo dev (X-Debug-User-ID).
package hmacjwt

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-cry-monitor/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNotConfigured = errors.New("hmacjwt: secret not configured")
	ErrTokenEmpty    = errors.New("hmacjwt: token is empty")
	ErrTokenInvalid  = errors.New("hmacjwt: token invalid")
)

const defaultTTL = 24 * time.Hour

type Authority struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func New(secret string, ttl time.Duration) *Authority {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Authority{
		secret: []byte(strings.TrimSpace(secret)),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (a *Authority) IsConfigured() bool {
	return a != nil && len(a.secret) > 0
}

func (a *Authority) Issue(ctx context.Context, userID string) (string, error) {
	if !a.IsConfigured() {
		return "", ErrNotConfigured
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", errors.New("hmacjwt: user id required")
	}

	now := a.now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(a.ttl).Unix(),
	})
	signed, err := tok.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("hmacjwt: sign: %w", err)
	}
	return signed, nil
}

func (a *Authority) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if !a.IsConfigured() {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.secret, nil
	}, jwt.WithTimeFunc(a.now))
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return auth.Claims{}, ErrTokenInvalid
	}

	sub, _ := claims["sub"].(string)
	sub = strings.TrimSpace(sub)
	if sub == "" {
		return auth.Claims{}, fmt.Errorf("%w: missing sub", ErrTokenInvalid)
	}

	return auth.Claims{UserID: sub}, nil
}

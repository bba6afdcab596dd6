// identity проверяет access-токены внешнего провайдера идентичности и хранит
// результат проверки в контексте запроса.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pribylovaa/go-recipes/internal/config"
)

var (
	// ErrInvalidToken — подпись, формат, issuer/audience или claims не прошли проверку.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired — срок действия токена истёк.
	ErrTokenExpired = errors.New("token expired")
)

// Identity — аутентифицированный пользователь.
type Identity struct {
	UserID        string
	Email         string
	EmailVerified bool
}

type accessClaims struct {
	UserID        string `json:"uid"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	jwt.RegisteredClaims
}

// Verifier проверяет HS256-токены с фиксированными issuer и audience.
type Verifier struct {
	secret   []byte
	issuer   string
	audience []string
	leeway   time.Duration
}

// NewVerifier создаёт Verifier из секции auth.
func NewVerifier(cfg config.AuthConfig) *Verifier {
	return &Verifier{
		secret:   []byte(cfg.JWTSecret),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		leeway:   5 * time.Second,
	}
}

// Verify разбирает и проверяет токен.
func (v *Verifier) Verify(tokenStr string) (Identity, error) {
	const op = "identity.Verify"

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(v.leeway),
		jwt.WithIssuer(v.issuer),
	}
	if len(v.audience) > 0 {
		opts = append(opts, jwt.WithAudience(v.audience...))
	}

	token, err := jwt.ParseWithClaims(strings.TrimSpace(tokenStr), &accessClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
			}

			return v.secret, nil
		},
		opts...,
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, fmt.Errorf("%s: %w", op, ErrTokenExpired)
		}

		return Identity{}, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid || strings.TrimSpace(claims.UserID) == "" {
		return Identity{}, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return Identity{
		UserID:        claims.UserID,
		Email:         claims.Email,
		EmailVerified: claims.EmailVerified,
	}, nil
}

// Issue подписывает токен для identity со сроком действия ttl.
// Сервис токены не выпускает: метод нужен локальной разработке и тестам.
func (v *Verifier) Issue(id Identity, now time.Time, ttl time.Duration) (string, error) {
	const op = "identity.Issue"

	claims := accessClaims{
		UserID:        id.UserID,
		Email:         id.Email,
		EmailVerified: id.EmailVerified,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    v.issuer,
			Subject:   id.UserID,
			Audience:  jwt.ClaimStrings(v.audience),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return signed, nil
}

type ctxKey struct{}

// Into кладёт identity в контекст.
func Into(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// From возвращает identity из контекста. ok=false — запрос анонимный.
func From(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	if !ok || id.UserID == "" {
		return Identity{}, false
	}

	return id, true
}

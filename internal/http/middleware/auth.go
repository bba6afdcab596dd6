package middleware

import (
	"net/http"
	"strings"

	apierrors "github.com/pribylovaa/go-recipes/internal/errors"
	"github.com/pribylovaa/go-recipes/internal/identity"
	logctx "github.com/pribylovaa/go-recipes/pkg/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// TokenVerifier проверяет access-токен провайдера идентичности.
type TokenVerifier interface {
	Verify(token string) (identity.Identity, error)
}

// Auth извлекает Bearer-токен из Authorization и кладёт identity в контекст.
//   - заголовка нет (или схема не Bearer) — запрос идёт дальше анонимно;
//   - токен не прошёл проверку — 401 сразу, без вызова хендлера;
//   - email не подтверждён и allowUnverified=false — запрос идёт дальше анонимно.
//
// Требовать пользователя или нет, решают хендлеры.
func Auth(v TokenVerifier, allowUnverified bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const prefix = "Bearer "

			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, prefix) {
				next.ServeHTTP(w, r)
				return
			}

			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			id, err := v.Verify(token)
			if err != nil {
				logctx.From(r.Context()).Warn("auth_token_rejected", "err", err.Error())
				apierrors.WriteError(w, r, status.Error(codes.Unauthenticated, "invalid token"))
				return
			}

			if !id.EmailVerified && !allowUnverified {
				logctx.From(r.Context()).Info("auth_email_not_verified", "user_id", id.UserID)
				next.ServeHTTP(w, r)
				return
			}

			ctx := identity.Into(r.Context(), id)
			ctx = logctx.With(ctx, "user_id", id.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

package middleware

import (
	"log/slog"
	"net/http"

	apierrors "github.com/pribylovaa/go-recipes/internal/errors"
	logctx "github.com/pribylovaa/go-recipes/pkg/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Recover превращает panic хендлера в 500/internal.
// Если ответ уже начат, тело ошибки не дописывается: клиент получит обрыв.
// http.ErrAbortHandler пробрасывается дальше, это штатный способ оборвать ответ.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := newStatusWriter(w)

			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logctx.From(r.Context()).LogAttrs(r.Context(), slog.LevelError, "panic_recovered",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Bool("committed", sw.committed()),
					slog.Any("reason", rec),
				)

				if !sw.committed() {
					apierrors.WriteError(sw, r, status.Error(codes.Internal, "internal"))
				}
			}()

			next.ServeHTTP(sw, r)
		})
	}
}

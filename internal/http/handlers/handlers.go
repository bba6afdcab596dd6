package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pribylovaa/go-recipes/internal/identity"
	"github.com/pribylovaa/go-recipes/internal/service"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Handlers агрегирует зависимости HTTP-слоя.
type Handlers struct {
	Service *service.Service
}

func New(s *service.Service) *Handlers {
	return &Handlers{Service: s}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// statusErrorInvalidArgument — вспомогалка: локальная ошибка парсинга -> gRPC InvalidArgument.
func statusErrorInvalidArgument() error {
	return status.Error(codes.InvalidArgument, "invalid argument")
}

// statusUnauthenticated — операция требует пользователя, а запрос анонимный.
func statusUnauthenticated() error {
	return status.Error(codes.Unauthenticated, "unauthenticated")
}

// viewerID — id пользователя запроса или пустая строка для анонима.
func viewerID(ctx context.Context) string {
	id, _ := identity.From(ctx)
	return id.UserID
}

// toStatus переводит сервисные ошибки в gRPC-статусы (таксономия apierrors).
func toStatus(err error) error {
	var ve *service.ValidationError

	switch {
	case errors.As(err, &ve):
		return status.Error(codes.InvalidArgument, ve.Reason)
	case errors.Is(err, service.ErrValidation):
		return statusErrorInvalidArgument()
	case errors.Is(err, service.ErrUnauthenticated):
		return statusUnauthenticated()
	case errors.Is(err, service.ErrForbidden):
		return status.Error(codes.PermissionDenied, "permission denied")
	case errors.Is(err, service.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, service.ErrStoreUnavailable):
		return status.Error(codes.Unavailable, "store unavailable")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	default:
		return status.Error(codes.Internal, "internal")
	}
}

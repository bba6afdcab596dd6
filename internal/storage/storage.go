// storage содержит контракты слоя хранилища recipes-service.
//
// Хранилище документное: документ рецепта (лайки + плоский список комментариев) и документ
// пользователя (профиль + избранное). Поддерживаются чтение, частичная запись (merge)
// и атомарные операции над множествами в полях-массивах.
package storage

import (
	"context"
	"errors"

	"github.com/pribylovaa/go-recipes/internal/models"
)

var (
	// ErrNotFound — документ отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
)

// ProfileUpdate — частичный апдейт профиля (merge-write).
// Параметры задаются pointer-полями: в документ записываются только непустые указатели.
type ProfileUpdate struct {
	Username *string
	FullName *string
	Location *string
	Gender   *string
	Age      *int
	Bio      *string
}

// Engagements — операции над документом вовлечённости рецепта.
type Engagements interface {
	// EnsureEngagement возвращает документ рецепта, создавая пустой
	// {liked_by: [], comments: []}, если его нет. Существующие данные не перезаписываются.
	EnsureEngagement(ctx context.Context, recipeID string) (*models.Engagement, error)

	// AddRecipeLike атомарно добавляет userID в множество лайков рецепта.
	AddRecipeLike(ctx context.Context, recipeID, userID string) error

	// RemoveRecipeLike атомарно удаляет userID из множества лайков рецепта.
	RemoveRecipeLike(ctx context.Context, recipeID, userID string) error

	// AppendComment дописывает комментарий в конец массива (без перезаписи документа).
	AppendComment(ctx context.Context, recipeID string, comment models.Comment) error

	// ReplaceComments целиком перезаписывает массив комментариев.
	// Это read-modify-write на стороне вызывающего: параллельные писатели теряют обновления.
	ReplaceComments(ctx context.Context, recipeID string, comments []models.Comment) error
}

// Profiles — операции над документом пользователя.
type Profiles interface {
	// ProfileByID возвращает профиль. Если документа нет — ErrNotFound.
	ProfileByID(ctx context.Context, userID string) (*models.Profile, error)

	// UpsertProfile выполняет merge-write полей профиля.
	// При создании документа проставляет created_at, при каждом вызове — updated_at.
	UpsertProfile(ctx context.Context, userID string, update ProfileUpdate) (*models.Profile, error)

	// SetFavorites перезаписывает список избранного (merge-write одного поля, upsert).
	SetFavorites(ctx context.Context, userID string, favorites []models.RecipeSnapshot) error
}

// Storage — верхнеуровневый интерфейс хранилища.
type Storage interface {
	Engagements
	Profiles

	// Close закрывает соединения/ресурсы хранилища.
	Close(ctx context.Context) error
}

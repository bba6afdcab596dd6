// service содержит бизнес-логику recipes-service: вовлечённость (лайки, комментарии),
// избранное, профили и работу с каталогом рецептов.
package service

import (
	"context"
	"errors"
	"hash/fnv"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pribylovaa/go-recipes/internal/config"
	"github.com/pribylovaa/go-recipes/internal/models"
	"github.com/pribylovaa/go-recipes/internal/storage"
)

var (
	// ErrUnauthenticated — операция требует пользователя.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrValidation — неверные входные параметры.
	ErrValidation = errors.New("validation failed")
	// ErrForbidden — пользователь не владелец ресурса.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound — рецепт, комментарий или профиль не найдены.
	ErrNotFound = errors.New("not found")
	// ErrStoreUnavailable — хранилище недоступно или вернуло ошибку.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// RecipeSource — каталог рецептов. Сбои каталога не возвращаются: вместо них пустой список.
type RecipeSource interface {
	LookupByID(ctx context.Context, id string) []models.Meal
	SearchByName(ctx context.Context, name string) []models.Meal
	SearchByFirstLetter(ctx context.Context, letter string) []models.Meal
	FilterByCategory(ctx context.Context, category string) []models.Meal
	FilterByArea(ctx context.Context, area string) []models.Meal
	FilterByIngredient(ctx context.Context, ingredient string) []models.Meal
	ListCategories(ctx context.Context) []models.Category
}

// Service — бизнес-логика recipes-service.
//
// Документы вовлечённости кэшируются локально: решения о toggle принимаются по локальному
// представлению, как в клиенте, который уже показал пользователю текущее состояние.
// Мутации одного рецепта (и избранного одного пользователя) сериализуются внутри процесса;
// между процессами остаётся last-writer-wins на перезаписи массива comments.
type Service struct {
	storage storage.Storage
	recipes RecipeSource
	cfg     config.Config

	cache *lru.Cache[string, models.Engagement]
	locks *keyedMutex

	now   func() time.Time
	newID func() (string, error)
}

// New создает новый экземпляр Service.
func New(storage storage.Storage, recipes RecipeSource, cfg config.Config) *Service {
	size := cfg.Engagement.CacheSize
	if size <= 0 {
		size = 1024
	}

	// lru.New возвращает ошибку только для size <= 0.
	cache, _ := lru.New[string, models.Engagement](size)

	return &Service{
		storage: storage,
		recipes: recipes,
		cfg:     cfg,
		cache:   cache,
		locks:   newKeyedMutex(32),
		now:     time.Now,
		newID:   newCommentID,
	}
}

// newCommentID — упорядоченный по времени идентификатор комментария.
func newCommentID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

// keyedMutex — набор мьютексов, ключ выбирает полосу по хэшу.
type keyedMutex struct {
	stripes []sync.Mutex
}

func newKeyedMutex(n int) *keyedMutex {
	return &keyedMutex{stripes: make([]sync.Mutex, n)}
}

// lock захватывает полосу ключа и возвращает функцию освобождения.
func (k *keyedMutex) lock(key string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))

	mu := &k.stripes[h.Sum32()%uint32(len(k.stripes))]
	mu.Lock()

	return mu.Unlock
}

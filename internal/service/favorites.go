package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pribylovaa/go-recipes/internal/models"
	"github.com/pribylovaa/go-recipes/internal/storage"
	"github.com/pribylovaa/go-recipes/pkg/log"
	"github.com/thoas/go-funk"
)

func favoritesKey(userID string) string { return "user:" + userID }

// Favorites возвращает избранное пользователя. Отсутствующий профиль — пустой список.
func (s *Service) Favorites(ctx context.Context, userID string) ([]models.RecipeSnapshot, error) {
	const op = "service/favorites/Favorites"

	if userID == "" {
		log.From(ctx).Warn("unauthenticated: empty user_id", "op", op)
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	favs, err := s.favorites(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return favs, nil
}

func (s *Service) favorites(ctx context.Context, userID string) ([]models.RecipeSnapshot, error) {
	p, err := s.storage.ProfileByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []models.RecipeSnapshot{}, nil
		}

		log.From(ctx).Error("storage error on ProfileByID", "user_id", userID, "err", err)
		return nil, ErrStoreUnavailable
	}

	if p.FavoriteMeals == nil {
		return []models.RecipeSnapshot{}, nil
	}

	return p.FavoriteMeals, nil
}

// ToggleFavorite добавляет снимок рецепта в избранное или убирает его оттуда.
//
// Поведение:
//   - полное чтение списка, наличие определяется по ID (idMeal);
//   - новый список записывается целиком (merge-write одного поля, upsert);
//   - между процессами last-writer-wins.
//
// Ошибки: ErrUnauthenticated, ErrValidation (пустой ID снимка), ErrStoreUnavailable.
func (s *Service) ToggleFavorite(ctx context.Context, userID string, snap models.RecipeSnapshot) ([]models.RecipeSnapshot, error) {
	const op = "service/favorites/ToggleFavorite"

	snap.ID = strings.TrimSpace(snap.ID)
	lg := log.From(ctx).With("op", op, "user_id", userID, "meal_id", snap.ID)

	if userID == "" {
		lg.Warn("unauthenticated: empty user_id")
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	if snap.ID == "" {
		lg.Warn("invalid argument: empty meal id")
		return nil, fmt.Errorf("%s: %w", op, ErrValidation)
	}

	defer s.locks.lock(favoritesKey(userID))()

	current, err := s.favorites(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// rest короче current, только если снимок уже был в избранном.
	rest := funk.Filter(current, func(f models.RecipeSnapshot) bool { return f.ID != snap.ID }).([]models.RecipeSnapshot)

	next := rest
	if len(rest) == len(current) {
		// Клиент может прислать только idMeal: снимок тогда снимается с каталога.
		if strings.TrimSpace(snap.Name) == "" {
			meals := s.recipes.LookupByID(ctx, snap.ID)
			if len(meals) == 0 {
				lg.Warn("recipe not found in catalog")
				return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
			}
			snap = models.NewSnapshot(meals[0])
		}

		next = append(append(make([]models.RecipeSnapshot, 0, len(current)+1), current...), snap)
	}

	if err := s.storage.SetFavorites(ctx, userID, next); err != nil {
		lg.Error("storage error on SetFavorites", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrStoreUnavailable)
	}

	return next, nil
}

// IsFavorite — есть ли рецепт в избранном пользователя.
func (s *Service) IsFavorite(ctx context.Context, userID, mealID string) (bool, error) {
	const op = "service/favorites/IsFavorite"

	mealID = strings.TrimSpace(mealID)

	if userID == "" {
		log.From(ctx).Warn("unauthenticated: empty user_id", "op", op)
		return false, fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	if mealID == "" {
		log.From(ctx).Warn("invalid argument: empty meal id", "op", op)
		return false, fmt.Errorf("%s: %w", op, ErrValidation)
	}

	favs, err := s.favorites(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return models.Profile{UserID: userID, FavoriteMeals: favs}.HasFavorite(mealID), nil
}

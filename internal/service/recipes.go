package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pribylovaa/go-recipes/internal/models"
	"github.com/pribylovaa/go-recipes/pkg/log"
)

// SearchInput — критерии поиска по каталогу. Используется первый непустой
// в порядке: Search, Category, Area, Ingredient, Letter.
type SearchInput struct {
	Search     string
	Category   string
	Area       string
	Ingredient string
	Letter     string
}

// Recipe возвращает рецепт с нормализованными ингредиентами.
//
// Ошибки: ErrValidation (пустой id), ErrNotFound (каталог ничего не вернул).
func (s *Service) Recipe(ctx context.Context, id string) (*models.Recipe, error) {
	const op = "service/recipes/Recipe"

	id = strings.TrimSpace(id)
	lg := log.From(ctx).With("op", op, "recipe_id", id)

	if id == "" {
		lg.Warn("invalid argument: empty recipe_id")
		return nil, fmt.Errorf("%s: %w", op, ErrValidation)
	}

	meals := s.recipes.LookupByID(ctx, id)
	if len(meals) == 0 {
		lg.Warn("recipe not found")
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	r := models.NewRecipe(meals[0])

	return &r, nil
}

// Search ищет рецепты по одному критерию. Без критериев — ErrValidation.
func (s *Service) Search(ctx context.Context, in SearchInput) ([]models.Meal, error) {
	const op = "service/recipes/Search"

	switch {
	case strings.TrimSpace(in.Search) != "":
		return s.recipes.SearchByName(ctx, in.Search), nil
	case strings.TrimSpace(in.Category) != "":
		return s.recipes.FilterByCategory(ctx, in.Category), nil
	case strings.TrimSpace(in.Area) != "":
		return s.recipes.FilterByArea(ctx, in.Area), nil
	case strings.TrimSpace(in.Ingredient) != "":
		return s.recipes.FilterByIngredient(ctx, in.Ingredient), nil
	case strings.TrimSpace(in.Letter) != "":
		letter := strings.TrimSpace(in.Letter)
		if len([]rune(letter)) != 1 {
			log.From(ctx).Warn("invalid argument: letter must be a single character", "op", op)
			return nil, fmt.Errorf("%s: %w", op, ErrValidation)
		}
		return s.recipes.SearchByFirstLetter(ctx, letter), nil
	default:
		log.From(ctx).Warn("invalid argument: no search criteria", "op", op)
		return nil, fmt.Errorf("%s: %w", op, ErrValidation)
	}
}

// Categories возвращает категории каталога.
func (s *Service) Categories(ctx context.Context) []models.Category {
	return s.recipes.ListCategories(ctx)
}

package models

import "time"

// Profile — профиль пользователя (документ users/<uid>).
// UserID — идентификатор внешнего провайдера идентичности.
// FavoriteMeals — полные снимки рецептов, а не только идентификаторы.
type Profile struct {
	UserID        string
	Username      string
	FullName      string
	Location      string
	Gender        string
	Age           int
	Bio           string
	FavoriteMeals []RecipeSnapshot
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasFavorite — есть ли рецепт с данным idMeal в избранном.
func (p Profile) HasFavorite(mealID string) bool {
	for _, f := range p.FavoriteMeals {
		if f.ID == mealID {
			return true
		}
	}

	return false
}

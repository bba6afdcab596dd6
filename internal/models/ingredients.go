package models

import (
	"fmt"
	"strings"
)

// ExtractIngredients превращает разреженные пары ingredient/measure в упорядоченный список.
//
// Правила:
//   - порядок — по возрастанию индекса 1..20;
//   - индекс с пустым (после TrimSpace) названием пропускается;
//   - название и мера обрезаются, отсутствующая мера — пустая строка;
//   - ImageURL строится из обрезанного названия по IngredientImageURL.
//
// Чистая функция: без побочных эффектов, на одинаковый вход — одинаковый результат.
func ExtractIngredients(m Meal) []Ingredient {
	out := make([]Ingredient, 0, MaxIngredients)

	for i := 0; i < MaxIngredients; i++ {
		name := strings.TrimSpace(m.IngredientNames[i])
		if name == "" {
			continue
		}

		out = append(out, Ingredient{
			Name:     name,
			Measure:  strings.TrimSpace(m.Measures[i]),
			ImageURL: ImageURLFor(name),
		})
	}

	return out
}

// ImageURLFor возвращает адрес картинки ингредиента по его названию.
func ImageURLFor(name string) string {
	return fmt.Sprintf(IngredientImageURL, strings.TrimSpace(name))
}

// NewRecipe собирает рецепт с нормализованными ингредиентами.
func NewRecipe(m Meal) Recipe {
	return Recipe{
		Meal:        m,
		Ingredients: ExtractIngredients(m),
	}
}

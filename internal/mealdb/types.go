package mealdb

import (
	"fmt"
	"strings"

	"github.com/pribylovaa/go-recipes/internal/models"
)

// mealsResponse — общий ответ lookup/search/filter.
// Каталог отдаёт "meals": null, если ничего не найдено.
// Запись декодируется в map, т.к. 20 пар strIngredientN/strMeasureN проще читать по ключу,
// а любое поле может прийти null.
type mealsResponse struct {
	Meals []map[string]*string `json:"meals"`
}

type categoriesResponse struct {
	Categories []categoryDTO `json:"categories"`
}

type categoryDTO struct {
	ID          string `json:"idCategory"`
	Name        string `json:"strCategory"`
	Thumb       string `json:"strCategoryThumb"`
	Description string `json:"strCategoryDescription"`
}

func field(raw map[string]*string, key string) string {
	if v, ok := raw[key]; ok && v != nil {
		return *v
	}

	return ""
}

// toMeal переводит сырую запись каталога в models.Meal.
// Пары ингредиентов сохраняются в исходной разреженной раскладке, нормализация — models.ExtractIngredients.
func toMeal(raw map[string]*string) models.Meal {
	m := models.Meal{
		ID:           strings.TrimSpace(field(raw, "idMeal")),
		Name:         field(raw, "strMeal"),
		Category:     field(raw, "strCategory"),
		Area:         field(raw, "strArea"),
		Instructions: field(raw, "strInstructions"),
		Thumb:        field(raw, "strMealThumb"),
		Tags:         field(raw, "strTags"),
		YouTube:      field(raw, "strYoutube"),
		Source:       field(raw, "strSource"),
	}

	for i := 0; i < models.MaxIngredients; i++ {
		m.IngredientNames[i] = field(raw, fmt.Sprintf("strIngredient%d", i+1))
		m.Measures[i] = field(raw, fmt.Sprintf("strMeasure%d", i+1))
	}

	return m
}

func (d categoryDTO) toModel() models.Category {
	return models.Category{
		ID:          d.ID,
		Name:        d.Name,
		Thumb:       d.Thumb,
		Description: d.Description,
	}
}

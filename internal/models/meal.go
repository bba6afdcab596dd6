package models

import (
	"strings"

	"github.com/jinzhu/copier"
)

// MaxIngredients — число пар strIngredientN/strMeasureN в записи каталога.
const MaxIngredients = 20

// IngredientImageURL — шаблон картинки ингредиента в каталоге.
const IngredientImageURL = "https://www.themealdb.com/images/ingredients/%s.png"

// Meal — запись рецепта из внешнего каталога (Recipe Source).
// IngredientNames/Measures хранят разреженную кодировку каталога: индекс i соответствует
// полям strIngredient{i+1}/strMeasure{i+1}, отсутствующее значение — пустая строка.
// Фильтрующие эндпоинты каталога возвращают только ID, Name и Thumb.
type Meal struct {
	ID              string
	Name            string
	Category        string
	Area            string
	Instructions    string
	Thumb           string
	Tags            string
	YouTube         string
	Source          string
	IngredientNames [MaxIngredients]string
	Measures        [MaxIngredients]string
}

// Ingredient — нормализованный ингредиент рецепта.
type Ingredient struct {
	Name     string
	Measure  string
	ImageURL string
}

// Recipe — рецепт с нормализованным списком ингредиентов (экран деталей).
type Recipe struct {
	Meal
	Ingredients []Ingredient
}

// Category — категория каталога.
type Category struct {
	ID          string
	Name        string
	Thumb       string
	Description string
}

// RecipeSnapshot — денормализованная копия рецепта внутри избранного пользователя.
// Хранит полную запись (инструкции, источник, ингредиенты): экран деталей открывается
// из избранного без обращения к каталогу. Не синхронизируется с каталогом; идентичность — ID (idMeal).
// Ingredients == nil — у снимка нет ингредиентов.
type RecipeSnapshot struct {
	ID           string
	Name         string
	Category     string
	Area         string
	Instructions string
	Thumb        string
	Tags         string
	YouTube      string
	Source       string
	Ingredients  []Ingredient
}

// NewSnapshot снимает копию рецепта для избранного.
func NewSnapshot(m Meal) RecipeSnapshot {
	var snap RecipeSnapshot
	// Поля совпадают по именам, ошибка возможна только при nil-аргументах.
	_ = copier.Copy(&snap, &m)

	snap.ID = strings.TrimSpace(snap.ID)
	if ings := ExtractIngredients(m); len(ings) > 0 {
		snap.Ingredients = ings
	}

	return snap
}


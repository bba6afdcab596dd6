package service

import (
	"context"
	"math/rand/v2"
	"sort"

	"github.com/pribylovaa/go-recipes/internal/models"
	"github.com/pribylovaa/go-recipes/pkg/log"
)

const (
	popularLetters = "abcdefghijklmnopqrstuvwxyz"
	// popularConcurrency — сколько букв каталога запрашивается одновременно.
	popularConcurrency = 6
)

// IngredientStat — ингредиент и число рецептов, в которых он встречается.
type IngredientStat struct {
	Name     string
	Count    int
	ImageURL string
}

// PopularSection — раздел «популярное» главного экрана.
type PopularSection struct {
	Meals       []models.Meal
	Ingredients []IngredientStat
}

// Popular собирает каталог по первым буквам a..z и возвращает до n случайных рецептов
// и top-n ингредиентов. n <= 0 — размер из конфигурации.
func (s *Service) Popular(ctx context.Context, n int) PopularSection {
	const op = "service/popular/Popular"

	if n <= 0 {
		n = s.cfg.Popular.Size
	}

	all := s.scanCatalog(ctx)

	log.From(ctx).Debug("catalog scanned", "op", op, "meals", len(all))

	meals := append([]models.Meal(nil), all...)
	rand.Shuffle(len(meals), func(i, j int) { meals[i], meals[j] = meals[j], meals[i] })
	if len(meals) > n {
		meals = meals[:n]
	}

	return PopularSection{
		Meals:       meals,
		Ingredients: RankIngredients(all, n),
	}
}

// scanCatalog запрашивает буквы параллельно (ограничено семафором) и склеивает
// результаты в алфавитном порядке.
func (s *Service) scanCatalog(ctx context.Context) []models.Meal {
	byLetter := make([][]models.Meal, len(popularLetters))
	sem := make(chan struct{}, popularConcurrency)

loop:
	for i, r := range popularLetters {
		select {
		case <-ctx.Done():
			break loop
		case sem <- struct{}{}:
		}

		go func(i int, letter string) {
			defer func() { <-sem }()
			byLetter[i] = s.recipes.SearchByFirstLetter(ctx, letter)
		}(i, string(r))
	}

	// Дожидаемся всех запущенных запросов.
	for i := 0; i < cap(sem); i++ {
		sem <- struct{}{}
	}

	var out []models.Meal
	for _, meals := range byLetter {
		out = append(out, meals...)
	}

	return out
}

// RankIngredients считает, в скольких рецептах встречается каждый ингредиент, и
// возвращает top-n по убыванию счётчика (при равенстве по имени). Чистая функция.
func RankIngredients(meals []models.Meal, n int) []IngredientStat {
	counts := make(map[string]int)
	for _, m := range meals {
		for _, ing := range models.ExtractIngredients(m) {
			counts[ing.Name]++
		}
	}

	out := make([]IngredientStat, 0, len(counts))
	for name, c := range counts {
		out = append(out, IngredientStat{Name: name, Count: c, ImageURL: models.ImageURLFor(name)})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}

		return out[i].Name < out[j].Name
	})

	if n >= 0 && len(out) > n {
		out = out[:n]
	}

	return out
}

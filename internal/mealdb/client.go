// mealdb — клиент публичного каталога рецептов TheMealDB (Recipe Source).
//
// Клиент никогда не возвращает ошибок наружу: сбой транспорта, неуспешный статус,
// битый JSON и "meals": null превращаются в пустой список, а сам сбой пишется в лог.
// Успешные ответы кэшируются в LRU с TTL, сбои не кэшируются.
package mealdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/pribylovaa/go-recipes/internal/config"
	"github.com/pribylovaa/go-recipes/internal/models"
	"github.com/pribylovaa/go-recipes/pkg/log"
)

// maxBodySize — ограничение на размер ответа каталога.
const maxBodySize = 4 << 20

// Client реализует service.RecipeSource поверх HTTP API каталога.
type Client struct {
	baseURL string
	client  *http.Client
	cache   *expirable.LRU[string, []byte]
}

// New создаёт клиента. HTTP-клиент можно передать снаружи (тесты, прокси);
// при nil создаётся клиент с таймаутом из конфигурации.
func New(cfg config.MealDBConfig, client *http.Client) *Client {
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}

	size := cfg.CacheSize
	if size <= 0 {
		size = 512
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  client,
		cache:   expirable.NewLRU[string, []byte](size, nil, cfg.CacheTTL),
	}
}

// LookupByID — lookup.php?i=<id>.
func (c *Client) LookupByID(ctx context.Context, id string) []models.Meal {
	id = strings.TrimSpace(id)
	if id == "" {
		return []models.Meal{}
	}

	return c.meals(ctx, "lookup.php", url.Values{"i": {id}})
}

// SearchByName — search.php?s=<name>.
func (c *Client) SearchByName(ctx context.Context, name string) []models.Meal {
	return c.meals(ctx, "search.php", url.Values{"s": {strings.TrimSpace(name)}})
}

// SearchByFirstLetter — search.php?f=<letter>.
func (c *Client) SearchByFirstLetter(ctx context.Context, letter string) []models.Meal {
	letter = strings.TrimSpace(letter)
	if letter == "" {
		return []models.Meal{}
	}

	return c.meals(ctx, "search.php", url.Values{"f": {letter}})
}

// FilterByCategory — filter.php?c=<category>. Записи содержат только ID, Name, Thumb.
func (c *Client) FilterByCategory(ctx context.Context, category string) []models.Meal {
	return c.filter(ctx, "c", category)
}

// FilterByArea — filter.php?a=<area>.
func (c *Client) FilterByArea(ctx context.Context, area string) []models.Meal {
	return c.filter(ctx, "a", area)
}

// FilterByIngredient — filter.php?i=<ingredient>.
func (c *Client) FilterByIngredient(ctx context.Context, ingredient string) []models.Meal {
	return c.filter(ctx, "i", ingredient)
}

// ListCategories — categories.php.
func (c *Client) ListCategories(ctx context.Context) []models.Category {
	const op = "mealdb.ListCategories"

	lg := log.From(ctx)

	body, err := c.get(ctx, "categories.php", nil)
	if err != nil {
		lg.Warn("mealdb_request_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return []models.Category{}
	}

	var resp categoriesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		lg.Warn("mealdb_decode_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return []models.Category{}
	}

	out := make([]models.Category, 0, len(resp.Categories))
	for _, d := range resp.Categories {
		out = append(out, d.toModel())
	}

	return out
}

func (c *Client) filter(ctx context.Context, key, value string) []models.Meal {
	value = strings.TrimSpace(value)
	if value == "" {
		return []models.Meal{}
	}

	return c.meals(ctx, "filter.php", url.Values{key: {value}})
}

// meals выполняет запрос и декодирует список рецептов.
func (c *Client) meals(ctx context.Context, path string, q url.Values) []models.Meal {
	const op = "mealdb.meals"

	lg := log.From(ctx)

	body, err := c.get(ctx, path, q)
	if err != nil {
		lg.Warn("mealdb_request_failed",
			slog.String("op", op),
			slog.String("path", path),
			slog.String("query", q.Encode()),
			slog.String("err", err.Error()),
		)
		return []models.Meal{}
	}

	var resp mealsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		lg.Warn("mealdb_decode_failed",
			slog.String("op", op),
			slog.String("path", path),
			slog.String("err", err.Error()),
		)
		return []models.Meal{}
	}

	out := make([]models.Meal, 0, len(resp.Meals))
	for _, raw := range resp.Meals {
		if raw == nil {
			continue
		}
		out = append(out, toMeal(raw))
	}

	return out
}

// get возвращает тело ответа из кэша или из сети.
// В кэш попадают только ответы 200 с валидным JSON.
func (c *Client) get(ctx context.Context, path string, q url.Values) ([]byte, error) {
	const op = "mealdb.get"

	target := c.baseURL + "/" + path
	if len(q) > 0 {
		target += "?" + q.Encode()
	}

	if body, ok := c.cache.Get(target); ok {
		return body, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: new_request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: do: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%s: status=%d", op, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%s: read: %w", op, err)
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%s: invalid json", op)
	}

	c.cache.Add(target, body)

	return body, nil
}

// listing — статический список рецептов для витрины. Данных не хранит, отдаёт фиксированный набор.
package listing

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Recipe — элемент витрины.
type Recipe struct {
	RecipeID   int    `json:"recipeId"`
	Title      string `json:"title"`
	PhotoURL   string `json:"photo_url"`
	CategoryID int    `json:"categoryId"`
}

// Recipes — фиксированный список, который отдаёт GET /api/recipes.
var Recipes = []Recipe{
	{RecipeID: 1, Title: "Phở bò", PhotoURL: "https://example.com/pho.jpg", CategoryID: 1},
	{RecipeID: 2, Title: "Bánh mì", PhotoURL: "https://example.com/banhmi.jpg", CategoryID: 2},
}

// NewRouter собирает роутер витрины. CORS открыт для любого origin.
func NewRouter(log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}))

	r.Get("/api/recipes", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(Recipes); err != nil {
			log.Warn("listing_encode_failed", slog.String("err", err.Error()))
		}
	})

	return r
}

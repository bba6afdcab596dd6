package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/go-recipes/internal/http/handlers"
	"github.com/pribylovaa/go-recipes/internal/http/middleware"
	"github.com/pribylovaa/go-recipes/internal/service"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger   *slog.Logger
	Timeout  time.Duration
	BasePath string // например, "/api"; если пустой — роуты регистрируются на корне.

	Verifier        middleware.TokenVerifier
	AllowUnverified bool
	Metrics         *middleware.HTTPMetrics // nil — без метрик
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),
		middleware.RequestID(), // до логирования
		middleware.Logging(opts.Logger),
	)
	if opts.Metrics != nil {
		root.Use(opts.Metrics.Middleware())
	}
	root.Use(middleware.Auth(opts.Verifier, opts.AllowUnverified))
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout))
	}

	h := handlers.New(svc)

	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// catalog
	r.Get("/categories", h.ListCategories)
	r.Get("/recipes", h.SearchRecipes)
	r.Get("/recipes/popular", h.PopularRecipes)
	r.Get("/recipes/{id}", h.GetRecipe)

	// engagement
	r.Get("/recipes/{id}/engagement", h.GetEngagement)
	r.Post("/recipes/{id}/like", h.ToggleRecipeLike)
	r.Post("/recipes/{id}/comments", h.PostComment)
	r.Post("/recipes/{id}/comments/{comment_id}/like", h.ToggleCommentLike)
	r.Delete("/recipes/{id}/comments/{comment_id}", h.DeleteComment)

	// users
	r.Get("/users/me/favorites", h.ListFavorites)
	r.Post("/users/me/favorites", h.ToggleFavorite)
	r.Get("/users/me/favorites/{meal_id}", h.GetFavoriteState)
	r.Put("/users/me", h.SaveProfile)
	r.Get("/users/{id}", h.GetProfile)
}

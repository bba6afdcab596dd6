package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	apierrors "github.com/pribylovaa/go-recipes/internal/errors"
	"github.com/pribylovaa/go-recipes/internal/service"
)

// maxPopularSize — верхняя граница ?size= для раздела «популярное».
const maxPopularSize = 100

func (h *Handlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats := h.Service.Categories(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"categories": toCategoryDTOs(cats)})
}

func (h *Handlers) SearchRecipes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	meals, err := h.Service.Search(r.Context(), service.SearchInput{
		Search:     q.Get("search"),
		Category:   q.Get("category"),
		Area:       q.Get("area"),
		Ingredient: q.Get("ingredient"),
		Letter:     q.Get("letter"),
	})
	if err != nil {
		apierrors.WriteError(w, r, toStatus(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"meals": toMealDTOs(meals)})
}

func (h *Handlers) PopularRecipes(w http.ResponseWriter, r *http.Request) {
	size := 0
	if v := r.URL.Query().Get("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > maxPopularSize {
			apierrors.WriteError(w, r, statusErrorInvalidArgument())
			return
		}
		size = n
	}

	writeJSON(w, http.StatusOK, toPopularDTO(h.Service.Popular(r.Context(), size)))
}

func (h *Handlers) GetRecipe(w http.ResponseWriter, r *http.Request) {
	recipe, err := h.Service.Recipe(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, toStatus(err))
		return
	}

	writeJSON(w, http.StatusOK, toRecipeDTO(*recipe))
}

package handlers

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	apierrors "github.com/pribylovaa/go-recipes/internal/errors"
)

// maxSnapshotBody — предел тела ToggleFavorite (полная запись рецепта с инструкциями).
const maxSnapshotBody = 1 << 20

func (h *Handlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "me" {
		id = viewerID(r.Context())
		if id == "" {
			apierrors.WriteError(w, r, statusUnauthenticated())
			return
		}
	}

	p, err := h.Service.Profile(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, toStatus(err))
		return
	}

	writeJSON(w, http.StatusOK, toProfileDTO(*p))
}

func (h *Handlers) SaveProfile(w http.ResponseWriter, r *http.Request) {
	uid := viewerID(r.Context())
	if uid == "" {
		apierrors.WriteError(w, r, statusUnauthenticated())
		return
	}

	var in profileRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, statusErrorInvalidArgument())
		return
	}

	p, err := h.Service.SaveProfile(r.Context(), uid, in.toInput())
	if err != nil {
		apierrors.WriteError(w, r, toStatus(err))
		return
	}

	writeJSON(w, http.StatusOK, toProfileDTO(*p))
}

func (h *Handlers) ListFavorites(w http.ResponseWriter, r *http.Request) {
	favs, err := h.Service.Favorites(r.Context(), viewerID(r.Context()))
	if err != nil {
		apierrors.WriteError(w, r, toStatus(err))
		return
	}

	writeJSON(w, http.StatusOK, favoritesDTO{Favorites: toSnapshotDTOs(favs)})
}

func (h *Handlers) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	uid := viewerID(r.Context())
	if uid == "" {
		apierrors.WriteError(w, r, statusUnauthenticated())
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxSnapshotBody))
	if err != nil {
		apierrors.WriteError(w, r, statusErrorInvalidArgument())
		return
	}

	in, err := decodeSnapshot(body)
	if err != nil {
		apierrors.WriteError(w, r, statusErrorInvalidArgument())
		return
	}

	favs, err := h.Service.ToggleFavorite(r.Context(), uid, in)
	if err != nil {
		apierrors.WriteError(w, r, toStatus(err))
		return
	}

	isFav := false
	for _, f := range favs {
		if f.ID == in.ID {
			isFav = true
			break
		}
	}

	writeJSON(w, http.StatusOK, favoritesDTO{Favorites: toSnapshotDTOs(favs), IsFavorite: &isFav})
}

func (h *Handlers) GetFavoriteState(w http.ResponseWriter, r *http.Request) {
	mealID := chi.URLParam(r, "meal_id")

	ok, err := h.Service.IsFavorite(r.Context(), viewerID(r.Context()), mealID)
	if err != nil {
		apierrors.WriteError(w, r, toStatus(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"idMeal": mealID, "is_favorite": ok})
}

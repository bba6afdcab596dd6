package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	apierrors "github.com/pribylovaa/go-recipes/internal/errors"
	"github.com/pribylovaa/go-recipes/internal/service"
)

// GetEngagement отдаёт документ вовлечённости рецепта.
// Если хранилище недоступно, а рецепт уже есть в локальном представлении, ответ 200 со stale=true.
func (h *Handlers) GetEngagement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	uid := viewerID(r.Context())

	e, err := h.Service.LoadEngagement(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrStoreUnavailable) {
			if cached, ok := h.Service.Cached(id); ok {
				dto := toEngagementDTO(cached, uid)
				dto.Stale = true
				writeJSON(w, http.StatusOK, dto)
				return
			}
		}

		apierrors.WriteError(w, r, toStatus(err))
		return
	}

	writeJSON(w, http.StatusOK, toEngagementDTO(*e, uid))
}

// rollbackOnFailure — клиент просит откатить неподтверждённый лайк (?on_failure=rollback)
// вместо ответа 202 с локальным состоянием.
func rollbackOnFailure(r *http.Request) bool {
	return r.URL.Query().Get("on_failure") == "rollback"
}

func (h *Handlers) ToggleRecipeLike(w http.ResponseWriter, r *http.Request) {
	uid := viewerID(r.Context())

	m, err := h.Service.ToggleRecipeLike(r.Context(), chi.URLParam(r, "id"), uid)
	h.writeMutation(w, r, m, err, uid, rollbackOnFailure(r))
}

func (h *Handlers) ToggleCommentLike(w http.ResponseWriter, r *http.Request) {
	uid := viewerID(r.Context())

	m, err := h.Service.ToggleCommentLike(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "comment_id"), uid)
	h.writeMutation(w, r, m, err, uid, rollbackOnFailure(r))
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	uid := viewerID(r.Context())

	m, err := h.Service.DeleteComment(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "comment_id"), uid)
	h.writeMutation(w, r, m, err, uid, false)
}

func (h *Handlers) PostComment(w http.ResponseWriter, r *http.Request) {
	uid := viewerID(r.Context())
	if uid == "" {
		apierrors.WriteError(w, r, statusUnauthenticated())
		return
	}

	var in postCommentRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, statusErrorInvalidArgument())
		return
	}

	c, err := h.Service.PostComment(r.Context(), service.PostCommentInput{
		RecipeID:   chi.URLParam(r, "id"),
		UserID:     uid,
		AuthorName: h.Service.AuthorName(r.Context(), uid),
		Text:       in.Text,
		ReplyToID:  strings.TrimSpace(in.ReplyToID),
	})
	if err != nil {
		apierrors.WriteError(w, r, toStatus(err))
		return
	}

	writeJSON(w, http.StatusCreated, postCommentResponse{
		Sync:    service.SyncConfirmed.String(),
		Comment: toCommentDTO(*c, uid),
	})
}

// writeMutation отвечает на мутацию вовлечённости.
// Оптимистичная мутация, не записанная в хранилище, отдаётся как 202 с sync=remote_failed:
// клиент видит локальное состояние и может повторить запрос. С rollback локальное
// представление возвращается к состоянию до мутации, а клиент получает 503.
func (h *Handlers) writeMutation(w http.ResponseWriter, r *http.Request, m *service.Mutation, err error, uid string, rollback bool) {
	if err != nil && (m == nil || !errors.Is(err, service.ErrStoreUnavailable)) {
		apierrors.WriteError(w, r, toStatus(err))
		return
	}

	code := http.StatusOK
	if m.Sync == service.SyncRemoteFailed {
		if rollback {
			h.Service.Rollback(m)
			apierrors.WriteError(w, r, toStatus(err))
			return
		}

		code = http.StatusAccepted
	}

	writeJSON(w, code, mutationDTO{
		Sync:       m.Sync.String(),
		Engagement: toEngagementDTO(m.Engagement, uid),
	})
}

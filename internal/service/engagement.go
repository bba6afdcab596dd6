package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pribylovaa/go-recipes/internal/models"
	"github.com/pribylovaa/go-recipes/internal/storage"
	"github.com/pribylovaa/go-recipes/pkg/log"
)

// SyncState — итог синхронизации мутации с хранилищем.
type SyncState int

const (
	// SyncConfirmed — хранилище подтвердило запись.
	SyncConfirmed SyncState = iota
	// SyncRemoteFailed — локальное состояние применено, запись в хранилище не удалась.
	SyncRemoteFailed
)

func (s SyncState) String() string {
	switch s {
	case SyncConfirmed:
		return "confirmed"
	case SyncRemoteFailed:
		return "remote_failed"
	default:
		return "unknown"
	}
}

// Mutation — результат мутации документа вовлечённости.
//   - Engagement — локальное представление после применения;
//   - Previous — представление до применения (для Rollback);
//   - Sync — подтверждена ли запись хранилищем.
type Mutation struct {
	Engagement models.Engagement
	Previous   models.Engagement
	Sync       SyncState
}

// engagementKey — ключ полосы блокировки для рецепта.
func engagementKey(recipeID string) string { return "recipe:" + recipeID }

// LoadEngagement читает документ рецепта, создавая пустой при отсутствии.
// Результат замещает локальное представление.
//
// Ошибки:
//   - ErrValidation — пустой recipeID;
//   - ErrStoreUnavailable — сбой хранилища.
func (s *Service) LoadEngagement(ctx context.Context, recipeID string) (*models.Engagement, error) {
	const op = "service/engagement/LoadEngagement"

	recipeID = strings.TrimSpace(recipeID)
	if recipeID == "" {
		log.From(ctx).Warn("invalid argument: empty recipe_id", "op", op)
		return nil, fmt.Errorf("%s: %w", op, ErrValidation)
	}

	defer s.locks.lock(engagementKey(recipeID))()

	e, err := s.loadLocked(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := e.Clone()

	return &out, nil
}

// loadLocked читает документ из хранилища и кладёт его в кэш.
// Вызывается под блокировкой рецепта.
func (s *Service) loadLocked(ctx context.Context, recipeID string) (models.Engagement, error) {
	lg := log.From(ctx).With("recipe_id", recipeID)

	e, err := s.storage.EnsureEngagement(ctx, recipeID)
	if err != nil {
		lg.Error("storage error on EnsureEngagement", "err", err)
		return models.Engagement{}, ErrStoreUnavailable
	}

	s.cache.Add(recipeID, e.Clone())

	return e.Clone(), nil
}

// cachedLocked возвращает локальное представление, загружая документ при промахе кэша.
func (s *Service) cachedLocked(ctx context.Context, recipeID string) (models.Engagement, error) {
	if e, ok := s.cache.Get(recipeID); ok {
		return e.Clone(), nil
	}

	return s.loadLocked(ctx, recipeID)
}

// ToggleRecipeLike переключает лайк пользователя на рецепте.
//
// Поведение:
//   - наличие лайка определяется по локальному представлению;
//   - в хранилище уходит одна атомарная операция над множеством ($addToSet / $pull);
//   - оптимистично: локальное представление меняется до ответа хранилища и не откатывается
//     автоматически. При сбое записи возвращается Mutation с SyncRemoteFailed вместе с ошибкой.
//
// Ошибки: ErrUnauthenticated, ErrValidation, ErrStoreUnavailable.
func (s *Service) ToggleRecipeLike(ctx context.Context, recipeID, userID string) (*Mutation, error) {
	const op = "service/engagement/ToggleRecipeLike"

	recipeID = strings.TrimSpace(recipeID)
	lg := log.From(ctx).With("op", op, "recipe_id", recipeID, "user_id", userID)

	if userID == "" {
		lg.Warn("unauthenticated: empty user_id")
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	if recipeID == "" {
		lg.Warn("invalid argument: empty recipe_id")
		return nil, fmt.Errorf("%s: %w", op, ErrValidation)
	}

	defer s.locks.lock(engagementKey(recipeID))()

	prev, err := s.cachedLocked(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	liked := prev.LikedByUser(userID)

	next := prev.Clone()
	next.LikedBy = models.ToggleUser(prev.LikedBy, userID)
	s.cache.Add(recipeID, next.Clone())

	m := &Mutation{Engagement: next, Previous: prev, Sync: SyncConfirmed}

	if liked {
		err = s.storage.RemoveRecipeLike(ctx, recipeID, userID)
	} else {
		err = s.storage.AddRecipeLike(ctx, recipeID, userID)
	}

	if err != nil {
		lg.Error("storage error on recipe like", "liked", !liked, "err", err)
		m.Sync = SyncRemoteFailed
		return m, fmt.Errorf("%s: %w", op, ErrStoreUnavailable)
	}

	return m, nil
}

// ToggleCommentLike переключает лайк пользователя на комментарии.
//
// Поведение:
//   - документ перечитывается из хранилища, переключается LikedBy одного комментария,
//     затем массив comments перезаписывается целиком (между перечитыванием и записью
//     параллельный писатель из другого процесса всё ещё может потерять обновление);
//   - оптимистично, как ToggleRecipeLike.
//
// Ошибки: ErrUnauthenticated, ErrValidation, ErrNotFound, ErrStoreUnavailable.
func (s *Service) ToggleCommentLike(ctx context.Context, recipeID, commentID, userID string) (*Mutation, error) {
	const op = "service/engagement/ToggleCommentLike"

	recipeID = strings.TrimSpace(recipeID)
	commentID = strings.TrimSpace(commentID)
	lg := log.From(ctx).With("op", op, "recipe_id", recipeID, "comment_id", commentID, "user_id", userID)

	if userID == "" {
		lg.Warn("unauthenticated: empty user_id")
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	if recipeID == "" || commentID == "" {
		lg.Warn("invalid argument: empty recipe_id or comment_id")
		return nil, fmt.Errorf("%s: %w", op, ErrValidation)
	}

	defer s.locks.lock(engagementKey(recipeID))()

	// Полная перезапись: кэш может не знать о комментариях других процессов.
	prev, err := s.loadLocked(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	idx := -1
	for i, c := range prev.Comments {
		if c.ID == commentID {
			idx = i
			break
		}
	}

	if idx < 0 {
		lg.Warn("comment not found")
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	next := prev.Clone()
	next.Comments[idx].LikedBy = models.ToggleUser(prev.Comments[idx].LikedBy, userID)
	s.cache.Add(recipeID, next.Clone())

	m := &Mutation{Engagement: next, Previous: prev, Sync: SyncConfirmed}

	if err := s.storage.ReplaceComments(ctx, recipeID, next.Comments); err != nil {
		lg.Error("storage error on ReplaceComments", "err", err)
		m.Sync = SyncRemoteFailed
		return m, fmt.Errorf("%s: %w", op, ErrStoreUnavailable)
	}

	return m, nil
}

// Rollback возвращает локальное представление к состоянию до мутации.
// Решение об откате принимает вызывающий (обычно после SyncRemoteFailed).
func (s *Service) Rollback(m *Mutation) {
	if m == nil || m.Previous.RecipeID == "" {
		return
	}

	defer s.locks.lock(engagementKey(m.Previous.RecipeID))()

	s.cache.Add(m.Previous.RecipeID, m.Previous.Clone())
}

// Cached возвращает локальное представление без обращения к хранилищу.
func (s *Service) Cached(recipeID string) (models.Engagement, bool) {
	recipeID = strings.TrimSpace(recipeID)

	defer s.locks.lock(engagementKey(recipeID))()

	e, ok := s.cache.Get(recipeID)
	if !ok {
		return models.Engagement{}, false
	}

	return e.Clone(), true
}

// mapStorageErr переводит ошибки хранилища в сервисные.
func mapStorageErr(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotFound
	}

	return ErrStoreUnavailable
}

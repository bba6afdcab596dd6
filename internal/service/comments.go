package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pribylovaa/go-recipes/internal/models"
	"github.com/pribylovaa/go-recipes/pkg/log"
	"github.com/thoas/go-funk"
)

// AnonymousName — имя автора, если у пользователя нет профиля.
const AnonymousName = "Anonymous"

// PostCommentInput — создание комментария или ответа.
// Правила:
//   - UserID и Text (после TrimSpace) обязательны;
//   - ответ задаётся ReplyTo (комментарий целиком) или ReplyToID (ищется в локальном представлении,
//     при промахе — в свежем документе хранилища);
//   - пустой AuthorName заменяется на AnonymousName.
type PostCommentInput struct {
	RecipeID   string
	UserID     string
	AuthorName string
	Text       string
	ReplyTo    *models.Comment
	ReplyToID  string
}

// PostComment дописывает комментарий в конец массива comments.
//
// Не оптимистично: комментарий появляется в локальном представлении только после
// подтверждения записи хранилищем.
//
// Ошибки: ErrUnauthenticated, ErrValidation, ErrNotFound (ReplyToID не найден), ErrStoreUnavailable.
func (s *Service) PostComment(ctx context.Context, in PostCommentInput) (*models.Comment, error) {
	const op = "service/comments/PostComment"

	in.RecipeID = strings.TrimSpace(in.RecipeID)
	in.Text = strings.TrimSpace(in.Text)
	in.AuthorName = strings.TrimSpace(in.AuthorName)
	in.ReplyToID = strings.TrimSpace(in.ReplyToID)

	lg := log.From(ctx).With("op", op, "recipe_id", in.RecipeID, "user_id", in.UserID)

	if in.UserID == "" {
		lg.Warn("unauthenticated: empty user_id")
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	if in.RecipeID == "" {
		lg.Warn("invalid argument: empty recipe_id")
		return nil, fmt.Errorf("%s: %w", op, ErrValidation)
	}

	if in.Text == "" {
		lg.Warn("invalid argument: empty text")
		return nil, fmt.Errorf("%s: %w", op, ErrValidation)
	}

	if in.AuthorName == "" {
		in.AuthorName = AnonymousName
	}

	defer s.locks.lock(engagementKey(in.RecipeID))()

	prev, err := s.cachedLocked(ctx, in.RecipeID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	replyTo := in.ReplyTo
	if replyTo == nil && in.ReplyToID != "" {
		c, ok := prev.CommentByID(in.ReplyToID)
		if !ok {
			// Цель могла появиться в другом процессе: перечитываем документ.
			if prev, err = s.loadLocked(ctx, in.RecipeID); err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
			c, ok = prev.CommentByID(in.ReplyToID)
		}
		if !ok {
			lg.Warn("reply target not found", "reply_to_id", in.ReplyToID)
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		replyTo = &c
	}

	id, err := s.newID()
	if err != nil {
		lg.Error("comment id generation failed", "err", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	comment := models.Comment{
		ID:         id,
		Text:       in.Text,
		AuthorID:   in.UserID,
		AuthorName: in.AuthorName,
		CreatedAt:  s.now().UnixMilli(),
		LikedBy:    []string{},
	}

	if replyTo != nil {
		comment.ParentID = replyTo.ID
		comment.ReplyToName = replyTo.AuthorName
	}

	if err := s.storage.AppendComment(ctx, in.RecipeID, comment); err != nil {
		lg.Error("storage error on AppendComment", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrStoreUnavailable)
	}

	next := prev.Clone()
	next.Comments = append(next.Comments, comment.Clone())
	s.cache.Add(in.RecipeID, next)

	return &comment, nil
}

// DeleteComment удаляет комментарий и его прямые ответы (каскад на один уровень).
// Документ перечитывается из хранилища, массив comments перезаписывается целиком. Не оптимистично.
//
// Ошибки: ErrUnauthenticated, ErrValidation, ErrNotFound, ErrForbidden (не автор), ErrStoreUnavailable.
func (s *Service) DeleteComment(ctx context.Context, recipeID, commentID, requesterID string) (*Mutation, error) {
	const op = "service/comments/DeleteComment"

	recipeID = strings.TrimSpace(recipeID)
	commentID = strings.TrimSpace(commentID)
	lg := log.From(ctx).With("op", op, "recipe_id", recipeID, "comment_id", commentID, "user_id", requesterID)

	if requesterID == "" {
		lg.Warn("unauthenticated: empty user_id")
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	if recipeID == "" || commentID == "" {
		lg.Warn("invalid argument: empty recipe_id or comment_id")
		return nil, fmt.Errorf("%s: %w", op, ErrValidation)
	}

	defer s.locks.lock(engagementKey(recipeID))()

	prev, err := s.loadLocked(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	target, ok := prev.CommentByID(commentID)
	if !ok {
		lg.Warn("comment not found")
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	if target.AuthorID != requesterID {
		lg.Warn("forbidden: requester is not the author", "author_id", target.AuthorID)
		return nil, fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	next := prev.Clone()
	next.Comments = funk.Filter(next.Comments, func(c models.Comment) bool {
		return c.ID != commentID && c.ParentID != commentID
	}).([]models.Comment)

	if err := s.storage.ReplaceComments(ctx, recipeID, next.Comments); err != nil {
		lg.Error("storage error on ReplaceComments", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrStoreUnavailable)
	}

	s.cache.Add(recipeID, next.Clone())

	return &Mutation{Engagement: next, Previous: prev, Sync: SyncConfirmed}, nil
}

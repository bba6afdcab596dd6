package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pribylovaa/go-recipes/internal/models"
	"github.com/pribylovaa/go-recipes/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// engagementDoc — документ коллекции recipes. _id совпадает с идентификатором рецепта каталога.
type engagementDoc struct {
	ID       string       `bson:"_id"`
	LikedBy  []string     `bson:"liked_by"`
	Comments []commentDoc `bson:"comments"`
}

// commentDoc — элемент плоского массива comments.
type commentDoc struct {
	ID          string   `bson:"id"`
	Text        string   `bson:"text"`
	AuthorID    string   `bson:"author_id"`
	AuthorName  string   `bson:"author_name"`
	CreatedAt   int64    `bson:"created_at"`
	ReplyToName string   `bson:"reply_to_name,omitempty"`
	ParentID    string   `bson:"parent_id,omitempty"`
	LikedBy     []string `bson:"liked_by"`
}

// nonNil гарантирует, что в документ уйдёт [] вместо null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}

func toCommentDoc(c models.Comment) commentDoc {
	return commentDoc{
		ID:          c.ID,
		Text:        c.Text,
		AuthorID:    c.AuthorID,
		AuthorName:  c.AuthorName,
		CreatedAt:   c.CreatedAt,
		ReplyToName: c.ReplyToName,
		ParentID:    c.ParentID,
		LikedBy:     nonNil(append([]string(nil), c.LikedBy...)),
	}
}

func (d commentDoc) toModel() models.Comment {
	return models.Comment{
		ID:          d.ID,
		Text:        d.Text,
		AuthorID:    d.AuthorID,
		AuthorName:  d.AuthorName,
		CreatedAt:   d.CreatedAt,
		ReplyToName: d.ReplyToName,
		ParentID:    d.ParentID,
		LikedBy:     nonNil(d.LikedBy),
	}
}

func (d engagementDoc) toModel() *models.Engagement {
	out := &models.Engagement{
		RecipeID: d.ID,
		LikedBy:  nonNil(d.LikedBy),
		Comments: make([]models.Comment, 0, len(d.Comments)),
	}

	for _, c := range d.Comments {
		out.Comments = append(out.Comments, c.toModel())
	}

	return out
}

// EnsureEngagement возвращает документ рецепта, при отсутствии создаёт пустой.
// Гонка двух upsert'ов на один _id даёт duplicate key у проигравшего — тогда просто перечитываем.
func (m *Mongo) EnsureEngagement(ctx context.Context, recipeID string) (*models.Engagement, error) {
	const op = "storage/mongo/EnsureEngagement"

	id := strings.TrimSpace(recipeID)
	if id == "" {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	filter := bson.D{{Key: "_id", Value: id}}
	update := bson.D{{Key: "$setOnInsert", Value: bson.D{
		{Key: "liked_by", Value: bson.A{}},
		{Key: "comments", Value: bson.A{}},
	}}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc engagementDoc
	err := m.recipes.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err != nil && mongodriver.IsDuplicateKeyError(err) {
		err = m.recipes.FindOne(ctx, filter).Decode(&doc)
	}

	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return doc.toModel(), nil
}

// AddRecipeLike выполняет $addToSet по liked_by.
func (m *Mongo) AddRecipeLike(ctx context.Context, recipeID, userID string) error {
	const op = "storage/mongo/AddRecipeLike"

	if err := m.updateRecipe(ctx, recipeID, bson.D{
		{Key: "$addToSet", Value: bson.D{{Key: "liked_by", Value: userID}}},
	}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// RemoveRecipeLike выполняет $pull по liked_by.
func (m *Mongo) RemoveRecipeLike(ctx context.Context, recipeID, userID string) error {
	const op = "storage/mongo/RemoveRecipeLike"

	if err := m.updateRecipe(ctx, recipeID, bson.D{
		{Key: "$pull", Value: bson.D{{Key: "liked_by", Value: userID}}},
	}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// AppendComment выполняет $push в конец comments.
func (m *Mongo) AppendComment(ctx context.Context, recipeID string, comment models.Comment) error {
	const op = "storage/mongo/AppendComment"

	if err := m.updateRecipe(ctx, recipeID, bson.D{
		{Key: "$push", Value: bson.D{{Key: "comments", Value: toCommentDoc(comment)}}},
	}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ReplaceComments целиком перезаписывает массив comments.
func (m *Mongo) ReplaceComments(ctx context.Context, recipeID string, comments []models.Comment) error {
	const op = "storage/mongo/ReplaceComments"

	docs := make([]commentDoc, 0, len(comments))
	for _, c := range comments {
		docs = append(docs, toCommentDoc(c))
	}

	if err := m.updateRecipe(ctx, recipeID, bson.D{
		{Key: "$set", Value: bson.D{{Key: "comments", Value: docs}}},
	}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// updateRecipe применяет апдейт к документу рецепта с upsert.
func (m *Mongo) updateRecipe(ctx context.Context, recipeID string, update bson.D) error {
	id := strings.TrimSpace(recipeID)
	if id == "" {
		return storage.ErrNotFound
	}

	_, err := m.recipes.UpdateByID(ctx, id, update, options.Update().SetUpsert(true))

	return err
}

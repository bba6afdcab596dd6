package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pribylovaa/go-recipes/internal/models"
	"github.com/pribylovaa/go-recipes/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// profileDoc — документ коллекции users.
type profileDoc struct {
	ID            string        `bson:"_id"`
	Username      string        `bson:"username"`
	FullName      string        `bson:"full_name"`
	Location      string        `bson:"location"`
	Gender        string        `bson:"gender"`
	Age           int           `bson:"age"`
	Bio           string        `bson:"bio"`
	FavoriteMeals []snapshotDoc `bson:"favorite_meals"`
	CreatedAt     time.Time     `bson:"created_at"`
	UpdatedAt     time.Time     `bson:"updated_at"`
}

// snapshotDoc хранит избранный рецепт с ключами каталога, чтобы снимок читался как ответ каталога.
type snapshotDoc struct {
	ID           string          `bson:"idMeal"`
	Name         string          `bson:"strMeal"`
	Category     string          `bson:"strCategory"`
	Area         string          `bson:"strArea"`
	Instructions string          `bson:"strInstructions,omitempty"`
	Thumb        string          `bson:"strMealThumb"`
	Tags         string          `bson:"strTags"`
	YouTube      string          `bson:"strYoutube"`
	Source       string          `bson:"strSource,omitempty"`
	Ingredients  []ingredientDoc `bson:"ingredients,omitempty"`
}

type ingredientDoc struct {
	Name     string `bson:"name"`
	Measure  string `bson:"measure"`
	ImageURL string `bson:"image"`
}

func toSnapshotDoc(s models.RecipeSnapshot) snapshotDoc {
	d := snapshotDoc{
		ID:           s.ID,
		Name:         s.Name,
		Category:     s.Category,
		Area:         s.Area,
		Instructions: s.Instructions,
		Thumb:        s.Thumb,
		Tags:         s.Tags,
		YouTube:      s.YouTube,
		Source:       s.Source,
	}
	for _, ing := range s.Ingredients {
		d.Ingredients = append(d.Ingredients, ingredientDoc(ing))
	}

	return d
}

func (d snapshotDoc) toModel() models.RecipeSnapshot {
	s := models.RecipeSnapshot{
		ID:           d.ID,
		Name:         d.Name,
		Category:     d.Category,
		Area:         d.Area,
		Instructions: d.Instructions,
		Thumb:        d.Thumb,
		Tags:         d.Tags,
		YouTube:      d.YouTube,
		Source:       d.Source,
	}
	for _, ing := range d.Ingredients {
		s.Ingredients = append(s.Ingredients, models.Ingredient(ing))
	}

	return s
}

func toSnapshotDocs(in []models.RecipeSnapshot) []snapshotDoc {
	out := make([]snapshotDoc, 0, len(in))
	for _, s := range in {
		out = append(out, toSnapshotDoc(s))
	}

	return out
}

func (d profileDoc) toModel() *models.Profile {
	favs := make([]models.RecipeSnapshot, 0, len(d.FavoriteMeals))
	for _, s := range d.FavoriteMeals {
		favs = append(favs, s.toModel())
	}

	return &models.Profile{
		UserID:        d.ID,
		Username:      d.Username,
		FullName:      d.FullName,
		Location:      d.Location,
		Gender:        d.Gender,
		Age:           d.Age,
		Bio:           d.Bio,
		FavoriteMeals: favs,
		CreatedAt:     d.CreatedAt.UTC(),
		UpdatedAt:     d.UpdatedAt.UTC(),
	}
}

// MongoDB DateTime хранит миллисекунды.
func toMS(t time.Time) time.Time { return t.UTC().Truncate(time.Millisecond) }

// ProfileByID возвращает профиль пользователя.
// Если документа нет — storage.ErrNotFound.
func (m *Mongo) ProfileByID(ctx context.Context, userID string) (*models.Profile, error) {
	const op = "storage/mongo/ProfileByID"

	id := strings.TrimSpace(userID)
	if id == "" {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	var doc profileDoc
	if err := m.users.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return doc.toModel(), nil
}

// UpsertProfile — merge-write переданных полей.
// favorite_meals не трогается; при создании документа инициализируется пустым массивом.
func (m *Mongo) UpsertProfile(ctx context.Context, userID string, update storage.ProfileUpdate) (*models.Profile, error) {
	const op = "storage/mongo/UpsertProfile"

	id := strings.TrimSpace(userID)
	if id == "" {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	now := toMS(time.Now())

	set := bson.D{{Key: "updated_at", Value: now}}
	if update.Username != nil {
		set = append(set, bson.E{Key: "username", Value: *update.Username})
	}

	if update.FullName != nil {
		set = append(set, bson.E{Key: "full_name", Value: *update.FullName})
	}

	if update.Location != nil {
		set = append(set, bson.E{Key: "location", Value: *update.Location})
	}

	if update.Gender != nil {
		set = append(set, bson.E{Key: "gender", Value: *update.Gender})
	}

	if update.Age != nil {
		set = append(set, bson.E{Key: "age", Value: *update.Age})
	}

	if update.Bio != nil {
		set = append(set, bson.E{Key: "bio", Value: *update.Bio})
	}

	doc := bson.D{
		{Key: "$set", Value: set},
		{Key: "$setOnInsert", Value: bson.D{
			{Key: "created_at", Value: now},
			{Key: "favorite_meals", Value: bson.A{}},
		}},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var out profileDoc
	if err := m.users.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, doc, opts).Decode(&out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out.toModel(), nil
}

// SetFavorites перезаписывает favorite_meals. Документ создаётся при отсутствии.
func (m *Mongo) SetFavorites(ctx context.Context, userID string, favorites []models.RecipeSnapshot) error {
	const op = "storage/mongo/SetFavorites"

	id := strings.TrimSpace(userID)
	if id == "" {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	now := toMS(time.Now())
	_, err := m.users.UpdateByID(ctx, id, bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "favorite_meals", Value: toSnapshotDocs(favorites)},
			{Key: "updated_at", Value: now},
		}},
		{Key: "$setOnInsert", Value: bson.D{{Key: "created_at", Value: now}}},
	}, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

package handlers

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pribylovaa/go-recipes/internal/models"
	"github.com/pribylovaa/go-recipes/internal/service"
)

// Рецепты отдаются с ключами каталога (idMeal, strMeal, ...), т.к. мобильный клиент
// уже умеет их читать и хранит в избранном в том же виде.

type mealDTO struct {
	ID           string `json:"idMeal"`
	Name         string `json:"strMeal"`
	Category     string `json:"strCategory,omitempty"`
	Area         string `json:"strArea,omitempty"`
	Instructions string `json:"strInstructions,omitempty"`
	Thumb        string `json:"strMealThumb,omitempty"`
	Tags         string `json:"strTags,omitempty"`
	YouTube      string `json:"strYoutube,omitempty"`
	Source       string `json:"strSource,omitempty"`
}

type ingredientDTO struct {
	Name     string `json:"name"`
	Measure  string `json:"measure"`
	ImageURL string `json:"image"`
}

type recipeDTO struct {
	mealDTO
	Ingredients []ingredientDTO `json:"ingredients"`
}

type categoryDTO struct {
	ID          string `json:"idCategory"`
	Name        string `json:"strCategory"`
	Thumb       string `json:"strCategoryThumb"`
	Description string `json:"strCategoryDescription"`
}

type ingredientStatDTO struct {
	Name     string `json:"name"`
	Count    int    `json:"count"`
	ImageURL string `json:"image"`
}

type popularDTO struct {
	Meals       []mealDTO           `json:"meals"`
	Ingredients []ingredientStatDTO `json:"ingredients"`
}

// snapshotDTO — полный снимок рецепта в избранном.
// Тело ToggleFavorite принимает тот же вид, а также запись каталога или ответ GET /recipes/{id}.
type snapshotDTO struct {
	ID           string          `json:"idMeal"`
	Name         string          `json:"strMeal"`
	Category     string          `json:"strCategory,omitempty"`
	Area         string          `json:"strArea,omitempty"`
	Instructions string          `json:"strInstructions,omitempty"`
	Thumb        string          `json:"strMealThumb,omitempty"`
	Tags         string          `json:"strTags,omitempty"`
	YouTube      string          `json:"strYoutube,omitempty"`
	Source       string          `json:"strSource,omitempty"`
	Ingredients  []ingredientDTO `json:"ingredients,omitempty"`
}

type commentDTO struct {
	ID          string   `json:"id"`
	Text        string   `json:"text"`
	AuthorID    string   `json:"user_id"`
	AuthorName  string   `json:"username"`
	CreatedAt   int64    `json:"timestamp"`
	ReplyToName string   `json:"reply_to,omitempty"`
	ParentID    string   `json:"parent_id,omitempty"`
	LikedBy     []string `json:"likes"`
	LikedByMe   bool     `json:"liked_by_me"`
}

type countsDTO struct {
	Comments int `json:"comments"`
	Replies  int `json:"replies"`
}

type engagementDTO struct {
	RecipeID   string                  `json:"recipe_id"`
	LikesCount int                     `json:"likes_count"`
	LikedByMe  bool                    `json:"liked_by_me"`
	Comments   []commentDTO            `json:"comments"`
	Replies    map[string][]commentDTO `json:"replies"`
	Counts     countsDTO               `json:"counts"`
	Stale      bool                    `json:"stale,omitempty"` // хранилище недоступно, отдано локальное представление
}

type mutationDTO struct {
	Sync       string        `json:"sync"`
	Engagement engagementDTO `json:"engagement"`
}

type postCommentRequest struct {
	Text      string `json:"text"`
	ReplyToID string `json:"reply_to_id,omitempty"`
}

type postCommentResponse struct {
	Sync    string     `json:"sync"`
	Comment commentDTO `json:"comment"`
}

type profileRequest struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Location string `json:"location"`
	Gender   string `json:"gender"`
	Age      string `json:"age"`
	Bio      string `json:"bio"`
}

type profileDTO struct {
	UserID        string        `json:"user_id"`
	Username      string        `json:"username"`
	FullName      string        `json:"full_name"`
	Location      string        `json:"location"`
	Gender        string        `json:"gender,omitempty"`
	Age           int           `json:"age"`
	Bio           string        `json:"bio"`
	FavoriteMeals []snapshotDTO `json:"favorite_meals"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type favoritesDTO struct {
	Favorites  []snapshotDTO `json:"favorite_meals"`
	IsFavorite *bool         `json:"is_favorite,omitempty"`
}

func toMealDTO(m models.Meal) mealDTO {
	return mealDTO{
		ID:           m.ID,
		Name:         m.Name,
		Category:     m.Category,
		Area:         m.Area,
		Instructions: m.Instructions,
		Thumb:        m.Thumb,
		Tags:         m.Tags,
		YouTube:      m.YouTube,
		Source:       m.Source,
	}
}

func toMealDTOs(in []models.Meal) []mealDTO {
	out := make([]mealDTO, 0, len(in))
	for _, m := range in {
		out = append(out, toMealDTO(m))
	}
	return out
}

func toRecipeDTO(r models.Recipe) recipeDTO {
	out := recipeDTO{
		mealDTO:     toMealDTO(r.Meal),
		Ingredients: make([]ingredientDTO, 0, len(r.Ingredients)),
	}
	for _, ing := range r.Ingredients {
		out.Ingredients = append(out.Ingredients, ingredientDTO(ing))
	}
	return out
}

func toCategoryDTOs(in []models.Category) []categoryDTO {
	out := make([]categoryDTO, 0, len(in))
	for _, c := range in {
		out = append(out, categoryDTO(c))
	}
	return out
}

func toPopularDTO(p service.PopularSection) popularDTO {
	out := popularDTO{
		Meals:       toMealDTOs(p.Meals),
		Ingredients: make([]ingredientStatDTO, 0, len(p.Ingredients)),
	}
	for _, ing := range p.Ingredients {
		out.Ingredients = append(out.Ingredients, ingredientStatDTO(ing))
	}
	return out
}

func toSnapshotDTO(s models.RecipeSnapshot) snapshotDTO {
	out := snapshotDTO{
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
		out.Ingredients = append(out.Ingredients, ingredientDTO(ing))
	}

	return out
}

func toSnapshotDTOs(in []models.RecipeSnapshot) []snapshotDTO {
	out := make([]snapshotDTO, 0, len(in))
	for _, s := range in {
		out = append(out, toSnapshotDTO(s))
	}
	return out
}

func (d snapshotDTO) toModel() models.RecipeSnapshot {
	out := models.RecipeSnapshot{
		ID:           strings.TrimSpace(d.ID),
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
		name := strings.TrimSpace(ing.Name)
		if name == "" {
			continue
		}

		img := ing.ImageURL
		if img == "" {
			img = models.ImageURLFor(name)
		}
		out.Ingredients = append(out.Ingredients, models.Ingredient{
			Name:     name,
			Measure:  strings.TrimSpace(ing.Measure),
			ImageURL: img,
		})
	}

	return out
}

// decodeSnapshot разбирает тело ToggleFavorite.
// Неизвестные поля допускаются: клиент шлёт рецепт целиком в том виде, в каком получил.
// Если списка ingredients нет, он собирается из пар strIngredientN/strMeasureN.
func decodeSnapshot(body []byte) (models.RecipeSnapshot, error) {
	var dto snapshotDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return models.RecipeSnapshot{}, err
	}

	snap := dto.toModel()
	if len(snap.Ingredients) > 0 {
		return snap, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return models.RecipeSnapshot{}, err
	}

	var sparse models.Meal
	for i := 0; i < models.MaxIngredients; i++ {
		sparse.IngredientNames[i] = rawString(raw, fmt.Sprintf("strIngredient%d", i+1))
		sparse.Measures[i] = rawString(raw, fmt.Sprintf("strMeasure%d", i+1))
	}

	if ings := models.ExtractIngredients(sparse); len(ings) > 0 {
		snap.Ingredients = ings
	}

	return snap, nil
}

// rawString — строковое значение ключа; null, число или отсутствие дают "".
func rawString(raw map[string]json.RawMessage, key string) string {
	v, ok := raw[key]
	if !ok {
		return ""
	}

	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return ""
	}

	return s
}

func toCommentDTO(c models.Comment, viewerID string) commentDTO {
	likes := c.LikedBy
	if likes == nil {
		likes = []string{}
	}

	return commentDTO{
		ID:          c.ID,
		Text:        c.Text,
		AuthorID:    c.AuthorID,
		AuthorName:  c.AuthorName,
		CreatedAt:   c.CreatedAt,
		ReplyToName: c.ReplyToName,
		ParentID:    c.ParentID,
		LikedBy:     likes,
		LikedByMe:   viewerID != "" && c.LikedByUser(viewerID),
	}
}

func toCommentDTOs(in []models.Comment, viewerID string) []commentDTO {
	out := make([]commentDTO, 0, len(in))
	for _, c := range in {
		out = append(out, toCommentDTO(c, viewerID))
	}
	return out
}

// toEngagementDTO раскладывает документ на корни и ответы для экрана рецепта.
func toEngagementDTO(e models.Engagement, viewerID string) engagementDTO {
	p := service.PartitionComments(e.Comments)
	counts := service.Counts(p)

	replies := make(map[string][]commentDTO, len(p.Replies))
	for parent, list := range p.Replies {
		replies[parent] = toCommentDTOs(list, viewerID)
	}

	return engagementDTO{
		RecipeID:   e.RecipeID,
		LikesCount: len(e.LikedBy),
		LikedByMe:  viewerID != "" && e.LikedByUser(viewerID),
		Comments:   toCommentDTOs(p.TopLevel, viewerID),
		Replies:    replies,
		Counts:     countsDTO{Comments: counts.Comments, Replies: counts.Replies},
	}
}

func toProfileDTO(p models.Profile) profileDTO {
	return profileDTO{
		UserID:        p.UserID,
		Username:      p.Username,
		FullName:      p.FullName,
		Location:      p.Location,
		Gender:        p.Gender,
		Age:           p.Age,
		Bio:           p.Bio,
		FavoriteMeals: toSnapshotDTOs(p.FavoriteMeals),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (r profileRequest) toInput() service.ProfileInput {
	return service.ProfileInput(r)
}

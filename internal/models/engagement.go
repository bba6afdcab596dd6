package models

import "github.com/thoas/go-funk"

// Engagement — документ вовлечённости рецепта: лайки рецепта и плоский список комментариев.
// Ответы лежат в том же списке, связь задаётся Comment.ParentID.
type Engagement struct {
	RecipeID string
	LikedBy  []string
	Comments []Comment
}

// LikedByUser — лайкнул ли пользователь рецепт целиком.
func (e Engagement) LikedByUser(userID string) bool {
	return funk.ContainsString(e.LikedBy, userID)
}

// CommentByID ищет комментарий по идентификатору.
func (e Engagement) CommentByID(id string) (Comment, bool) {
	for _, c := range e.Comments {
		if c.ID == id {
			return c, true
		}
	}

	return Comment{}, false
}

// Clone — глубокая копия: изменения копии не затрагивают исходный документ.
func (e Engagement) Clone() Engagement {
	out := Engagement{
		RecipeID: e.RecipeID,
		LikedBy:  append(make([]string, 0, len(e.LikedBy)), e.LikedBy...),
		Comments: make([]Comment, 0, len(e.Comments)),
	}

	for _, c := range e.Comments {
		out.Comments = append(out.Comments, c.Clone())
	}

	return out
}

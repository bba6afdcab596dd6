// Package models содержит доменные сущности recipes-service.
// Типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"github.com/thoas/go-funk"
)

// Comment — комментарий к рецепту (корневой или ответ).
// Важно:
//   - ID — непрозрачный токен, генерируется клиентом при создании (упорядочен по времени);
//   - AuthorID/AuthorName — снимок автора на момент создания, дальше не меняются;
//   - CreatedAt — миллисекунды с начала эпохи;
//   - ParentID/ReplyToName пусты у корневых комментариев;
//   - LikedBy — множество идентификаторов пользователей (порядок не важен).
type Comment struct {
	ID          string
	Text        string
	AuthorID    string
	AuthorName  string
	CreatedAt   int64
	ReplyToName string
	ParentID    string
	LikedBy     []string
}

// IsReply сообщает, является ли комментарий ответом.
func (c Comment) IsReply() bool {
	return c.ParentID != ""
}

// LikedByUser — поставил ли пользователь лайк комментарию.
func (c Comment) LikedByUser(userID string) bool {
	return funk.ContainsString(c.LikedBy, userID)
}

// Clone возвращает копию комментария с собственным срезом LikedBy.
func (c Comment) Clone() Comment {
	out := c
	out.LikedBy = append(make([]string, 0, len(c.LikedBy)), c.LikedBy...)

	return out
}

// ToggleUser возвращает новое множество: userID удаляется, если он уже есть, иначе добавляется.
func ToggleUser(set []string, userID string) []string {
	if funk.ContainsString(set, userID) {
		return funk.Filter(set, func(id string) bool { return id != userID }).([]string)
	}

	return append(append(make([]string, 0, len(set)+1), set...), userID)
}

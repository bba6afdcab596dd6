package service

import "github.com/pribylovaa/go-recipes/internal/models"

// Partition — комментарии, разложенные для отображения.
//   - TopLevel — комментарии без ParentID в порядке хранения;
//   - Replies[id] — комментарии с ParentID == id в порядке хранения.
type Partition struct {
	TopLevel []models.Comment
	Replies  map[string][]models.Comment
}

// CommentCounts — счётчики для заголовка «N Comments | M Replies».
type CommentCounts struct {
	Comments int
	Replies  int
}

// PartitionComments раскладывает плоский список на корни и ответы. Чистая функция.
func PartitionComments(comments []models.Comment) Partition {
	p := Partition{
		TopLevel: make([]models.Comment, 0, len(comments)),
		Replies:  make(map[string][]models.Comment),
	}

	for _, c := range comments {
		if !c.IsReply() {
			p.TopLevel = append(p.TopLevel, c)
			continue
		}

		p.Replies[c.ParentID] = append(p.Replies[c.ParentID], c)
	}

	return p
}

// Counts считает корни и отображаемые ответы: ответы, чей ParentID указывает на корень.
// Ответы на ответы и ответы на удалённые комментарии в заголовок не попадают.
func Counts(p Partition) CommentCounts {
	replies := 0
	for _, c := range p.TopLevel {
		replies += len(p.Replies[c.ID])
	}

	return CommentCounts{Comments: len(p.TopLevel), Replies: replies}
}

package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pribylovaa/go-recipes/internal/models"
	"github.com/stretchr/testify/require"
)

func TestPostComment_Validation(t *testing.T) {
	s, _, _ := newServiceWithMocks(t)
	ctx := context.Background()

	_, err := s.PostComment(ctx, PostCommentInput{RecipeID: "r1", Text: "hi"})
	require.ErrorIs(t, err, ErrUnauthenticated)

	_, err = s.PostComment(ctx, PostCommentInput{RecipeID: "r1", UserID: "u1", Text: "   "})
	require.ErrorIs(t, err, ErrValidation)

	_, err = s.PostComment(ctx, PostCommentInput{UserID: "u1", Text: "hi"})
	require.ErrorIs(t, err, ErrValidation)
}

// Сценарий: корневой комментарий alice, затем ответ bob на него.
func TestPostComment_RootAndReply(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)
	ctx := context.Background()

	ms.EXPECT().EnsureEngagement(gomock.Any(), "52772").Return(emptyEngagement("52772"), nil)
	ms.EXPECT().AppendComment(gomock.Any(), "52772", gomock.Any()).Return(nil).Times(2)

	root, err := s.PostComment(ctx, PostCommentInput{
		RecipeID: "52772", UserID: "u1", AuthorName: "alice", Text: "  Great dish!  ",
	})
	require.NoError(t, err)
	require.Equal(t, "Great dish!", root.Text)
	require.Empty(t, root.ParentID)
	require.NotNil(t, root.LikedBy)
	require.Empty(t, root.LikedBy)
	require.EqualValues(t, 1_700_000_000_000, root.CreatedAt)

	reply, err := s.PostComment(ctx, PostCommentInput{
		RecipeID: "52772", UserID: "u2", AuthorName: "bob", Text: "Agreed", ReplyTo: root,
	})
	require.NoError(t, err)
	require.Equal(t, root.ID, reply.ParentID)
	require.Equal(t, "alice", reply.ReplyToName)
	require.NotEqual(t, root.ID, reply.ID)

	cached, ok := s.Cached("52772")
	require.True(t, ok)
	require.Len(t, cached.Comments, 2)
}

func TestPostComment_ReplyToIDAndAnonymous(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)
	ctx := context.Background()

	doc := emptyEngagement("r1")
	doc.Comments = []models.Comment{{ID: "p", AuthorName: "alice", LikedBy: []string{}}}
	// Второй раз документ перечитывается на промахе ReplyToID.
	ms.EXPECT().EnsureEngagement(gomock.Any(), "r1").Return(doc, nil).Times(2)
	ms.EXPECT().AppendComment(gomock.Any(), "r1", gomock.Any()).Return(nil)

	c, err := s.PostComment(ctx, PostCommentInput{RecipeID: "r1", UserID: "u2", Text: "yes", ReplyToID: "p"})
	require.NoError(t, err)
	require.Equal(t, "p", c.ParentID)
	require.Equal(t, AnonymousName, c.AuthorName)

	_, err = s.PostComment(ctx, PostCommentInput{RecipeID: "r1", UserID: "u2", Text: "yes", ReplyToID: "nope"})
	require.ErrorIs(t, err, ErrNotFound)
}

// Ответ на комментарий, которого ещё нет в кэше этого процесса.
func TestPostComment_ReplyToIDReloadsOnMiss(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)
	ctx := context.Background()

	stale := emptyEngagement("r1")
	stale.Comments = []models.Comment{{ID: "C1", AuthorName: "alice", LikedBy: []string{}}}
	fresh := emptyEngagement("r1")
	fresh.Comments = []models.Comment{stale.Comments[0], {ID: "C2", AuthorName: "bob", LikedBy: []string{}}}

	gomock.InOrder(
		ms.EXPECT().EnsureEngagement(gomock.Any(), "r1").Return(stale, nil),
		ms.EXPECT().EnsureEngagement(gomock.Any(), "r1").Return(fresh, nil),
		ms.EXPECT().AppendComment(gomock.Any(), "r1", gomock.Any()).Return(nil),
	)

	_, err := s.LoadEngagement(ctx, "r1")
	require.NoError(t, err)

	c, err := s.PostComment(ctx, PostCommentInput{RecipeID: "r1", UserID: "u3", Text: "+1", ReplyToID: "C2"})
	require.NoError(t, err)
	require.Equal(t, "C2", c.ParentID)
	require.Equal(t, "bob", c.ReplyToName)

	cached, ok := s.Cached("r1")
	require.True(t, ok)
	require.Len(t, cached.Comments, 3)
}

// Не оптимистично: при сбое записи локальное представление не меняется.
func TestPostComment_StoreFailureKeepsLocalState(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)
	ctx := context.Background()

	ms.EXPECT().EnsureEngagement(gomock.Any(), "r1").Return(emptyEngagement("r1"), nil)
	ms.EXPECT().AppendComment(gomock.Any(), "r1", gomock.Any()).Return(errBackend)

	_, err := s.PostComment(ctx, PostCommentInput{RecipeID: "r1", UserID: "u1", Text: "hi"})
	require.ErrorIs(t, err, ErrStoreUnavailable)

	cached, ok := s.Cached("r1")
	require.True(t, ok)
	require.Empty(t, cached.Comments)
}

func threadDoc() *models.Engagement {
	doc := emptyEngagement("r1")
	doc.Comments = []models.Comment{
		{ID: "P", AuthorID: "u1", LikedBy: []string{}},
		{ID: "C1", AuthorID: "u2", ParentID: "P", LikedBy: []string{}},
		{ID: "X", AuthorID: "u3", LikedBy: []string{}},
		{ID: "C2", AuthorID: "u3", ParentID: "P", LikedBy: []string{}},
		{ID: "G", AuthorID: "u4", ParentID: "C1", LikedBy: []string{}},
	}
	return doc
}

// Каскад на один уровень: удаляются P, C1, C2; внук G и посторонний X остаются.
func TestDeleteComment_SingleLevelCascade(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)
	ctx := context.Background()

	ms.EXPECT().EnsureEngagement(gomock.Any(), "r1").Return(threadDoc(), nil)
	ms.EXPECT().ReplaceComments(gomock.Any(), "r1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, comments []models.Comment) error {
			ids := make([]string, 0, len(comments))
			for _, c := range comments {
				ids = append(ids, c.ID)
			}
			require.Equal(t, []string{"X", "G"}, ids)
			return nil
		})

	m, err := s.DeleteComment(ctx, "r1", "P", "u1")
	require.NoError(t, err)
	require.Len(t, m.Engagement.Comments, 2)
	require.Len(t, m.Previous.Comments, 5)
}

func TestDeleteComment_Errors(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)
	ctx := context.Background()

	_, err := s.DeleteComment(ctx, "r1", "P", "")
	require.ErrorIs(t, err, ErrUnauthenticated)

	// Каждое удаление начинается со свежего чтения.
	ms.EXPECT().EnsureEngagement(gomock.Any(), "r1").DoAndReturn(
		func(context.Context, string) (*models.Engagement, error) { return threadDoc(), nil },
	).Times(3)

	_, err = s.DeleteComment(ctx, "r1", "P", "u2")
	require.ErrorIs(t, err, ErrForbidden)

	_, err = s.DeleteComment(ctx, "r1", "missing", "u1")
	require.ErrorIs(t, err, ErrNotFound)

	ms.EXPECT().ReplaceComments(gomock.Any(), "r1", gomock.Any()).Return(errBackend)
	_, err = s.DeleteComment(ctx, "r1", "P", "u1")
	require.ErrorIs(t, err, ErrStoreUnavailable)

	cached, ok := s.Cached("r1")
	require.True(t, ok)
	require.Len(t, cached.Comments, 5, "failed delete leaves local state unchanged")
}

// Удаление не теряет комментарии, записанные другим процессом после загрузки кэша.
func TestDeleteComment_RewritesFreshDocument(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)
	ctx := context.Background()

	stale := emptyEngagement("r1")
	stale.Comments = []models.Comment{{ID: "C1", AuthorID: "u1", LikedBy: []string{}}}
	fresh := emptyEngagement("r1")
	fresh.Comments = []models.Comment{stale.Comments[0], {ID: "C2", AuthorID: "u2", LikedBy: []string{}}}

	gomock.InOrder(
		ms.EXPECT().EnsureEngagement(gomock.Any(), "r1").Return(stale, nil),
		ms.EXPECT().EnsureEngagement(gomock.Any(), "r1").Return(fresh, nil),
		ms.EXPECT().ReplaceComments(gomock.Any(), "r1", []models.Comment{fresh.Comments[1]}).Return(nil),
	)

	_, err := s.LoadEngagement(ctx, "r1")
	require.NoError(t, err)

	m, err := s.DeleteComment(ctx, "r1", "C1", "u1")
	require.NoError(t, err)
	require.Equal(t, []models.Comment{fresh.Comments[1]}, m.Engagement.Comments)
}

func TestPartitionComments_StableOrder(t *testing.T) {
	p := PartitionComments(threadDoc().Comments)

	require.Len(t, p.TopLevel, 2)
	require.Equal(t, "P", p.TopLevel[0].ID)
	require.Equal(t, "X", p.TopLevel[1].ID)

	require.Len(t, p.Replies["P"], 2)
	require.Equal(t, "C1", p.Replies["P"][0].ID)
	require.Equal(t, "C2", p.Replies["P"][1].ID)
	require.Len(t, p.Replies["C1"], 1)

	// G отвечает на ответ и не отображается ни под одним корнем.
	require.Equal(t, CommentCounts{Comments: 2, Replies: 2}, Counts(p))
}

func TestPartitionComments_Empty(t *testing.T) {
	p := PartitionComments(nil)
	require.NotNil(t, p.TopLevel)
	require.Empty(t, p.Replies)
	require.Equal(t, CommentCounts{}, Counts(p))
}

// Разбиение без потерь и дублей: каждый комментарий попадает ровно в одно место.
func TestPartitionComments_Invariant(t *testing.T) {
	root := func(id string) models.Comment { return models.Comment{ID: id} }
	reply := func(id, parent string) models.Comment { return models.Comment{ID: id, ParentID: parent} }

	tests := []struct {
		name      string
		in        []models.Comment
		wantCount CommentCounts
	}{
		{name: "empty", in: []models.Comment{}, wantCount: CommentCounts{}},
		{name: "roots only", in: []models.Comment{root("a"), root("b")}, wantCount: CommentCounts{Comments: 2}},
		{
			name:      "root without replies",
			in:        []models.Comment{root("a"), root("b"), reply("r", "a")},
			wantCount: CommentCounts{Comments: 2, Replies: 1},
		},
		{
			name:      "orphans of deleted parent",
			in:        []models.Comment{reply("o1", "gone"), root("a"), reply("o2", "gone")},
			wantCount: CommentCounts{Comments: 1},
		},
		{
			name:      "reply chain",
			in:        []models.Comment{root("a"), reply("b", "a"), reply("c", "b"), reply("d", "c")},
			wantCount: CommentCounts{Comments: 1, Replies: 1},
		},
		{
			name:      "replies before parent",
			in:        []models.Comment{reply("r1", "a"), reply("r2", "a"), root("a")},
			wantCount: CommentCounts{Comments: 1, Replies: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PartitionComments(tt.in)

			seen := make(map[string]int, len(tt.in))
			for _, c := range p.TopLevel {
				require.False(t, c.IsReply())
				seen[c.ID]++
			}
			for parent, rs := range p.Replies {
				require.NotEmpty(t, rs)
				for _, c := range rs {
					require.Equal(t, parent, c.ParentID)
					seen[c.ID]++
				}
			}

			require.Len(t, seen, len(tt.in))
			for id, n := range seen {
				require.Equal(t, 1, n, "comment %s placed %d times", id, n)
			}

			require.Equal(t, tt.wantCount, Counts(p))
		})
	}
}

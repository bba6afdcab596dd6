package service

// Тесты сервисного слоя recipes-service.
//
//  Проверяем:
//  - fetch-or-initialize документа вовлечённости и работу локального представления;
//  - toggle лайков (рецепт/комментарий), оптимистичную семантику и Rollback;
//  - создание/удаление комментариев, каскад на один уровень, проверку автора;
//  - маппинг ошибок storage -> service.
//
// Подготовка окружения:
//   # 1) Сгенерировать моки:
//   mockgen -source=./internal/storage/storage.go -destination=./mocks/storage.go -package=mocks
//   mockgen -destination=./mocks/recipe_source.go -package=mocks github.com/pribylovaa/go-recipes/internal/service RecipeSource
//
//   # 2) Запустить тесты:
//   go test ./internal/service -v -race -count=1

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pribylovaa/go-recipes/internal/config"
	"github.com/pribylovaa/go-recipes/internal/models"
	"github.com/pribylovaa/go-recipes/mocks"
	"github.com/stretchr/testify/require"
)

var errBackend = errors.New("backend down")

// newServiceWithMocks — поднимает сервис с моками стораджа и каталога.
func newServiceWithMocks(t *testing.T) (*Service, *mocks.MockStorage, *mocks.MockRecipeSource) {
	t.Helper()
	ctrl := gomock.NewController(t)
	ms := mocks.NewMockStorage(ctrl)
	mr := mocks.NewMockRecipeSource(ctrl)

	cfg := config.Config{
		Engagement: config.EngagementConfig{CacheSize: 16},
		Popular:    config.PopularConfig{Size: 3},
	}
	s := New(ms, mr, cfg)
	s.now = func() time.Time { return time.UnixMilli(1_700_000_000_000) }

	seq := 0
	s.newID = func() (string, error) {
		seq++
		return "c" + string(rune('0'+seq)), nil
	}

	return s, ms, mr
}

func emptyEngagement(id string) *models.Engagement {
	return &models.Engagement{RecipeID: id, LikedBy: []string{}, Comments: []models.Comment{}}
}

func TestLoadEngagement_InitializesAndCaches(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)
	ctx := context.Background()

	ms.EXPECT().EnsureEngagement(gomock.Any(), "52772").Return(emptyEngagement("52772"), nil)

	e, err := s.LoadEngagement(ctx, " 52772 ")
	require.NoError(t, err)
	require.Empty(t, e.LikedBy)
	require.Empty(t, e.Comments)

	cached, ok := s.Cached("52772")
	require.True(t, ok)
	require.Equal(t, "52772", cached.RecipeID)
}

func TestLoadEngagement_Errors(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)
	ctx := context.Background()

	_, err := s.LoadEngagement(ctx, "  ")
	require.ErrorIs(t, err, ErrValidation)

	ms.EXPECT().EnsureEngagement(gomock.Any(), "1").Return(nil, errBackend)
	_, err = s.LoadEngagement(ctx, "1")
	require.ErrorIs(t, err, ErrStoreUnavailable)

	_, ok := s.Cached("1")
	require.False(t, ok)
}

// Сценарий: пустой документ -> лайк -> ["u1"] -> повтор -> [].
func TestToggleRecipeLike_Scenario(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)
	ctx := context.Background()

	gomock.InOrder(
		ms.EXPECT().EnsureEngagement(gomock.Any(), "52772").Return(emptyEngagement("52772"), nil),
		ms.EXPECT().AddRecipeLike(gomock.Any(), "52772", "u1").Return(nil),
		ms.EXPECT().RemoveRecipeLike(gomock.Any(), "52772", "u1").Return(nil),
	)

	m, err := s.ToggleRecipeLike(ctx, "52772", "u1")
	require.NoError(t, err)
	require.Equal(t, SyncConfirmed, m.Sync)
	require.Equal(t, []string{"u1"}, m.Engagement.LikedBy)
	require.Empty(t, m.Previous.LikedBy)

	m, err = s.ToggleRecipeLike(ctx, "52772", "u1")
	require.NoError(t, err)
	require.Empty(t, m.Engagement.LikedBy)
}

func TestToggleRecipeLike_Unauthenticated(t *testing.T) {
	s, _, _ := newServiceWithMocks(t)

	_, err := s.ToggleRecipeLike(context.Background(), "52772", "")
	require.ErrorIs(t, err, ErrUnauthenticated)
}

// Оптимистично: при сбое записи локальное представление уже изменено, Rollback возвращает его.
func TestToggleRecipeLike_RemoteFailureAndRollback(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)
	ctx := context.Background()

	ms.EXPECT().EnsureEngagement(gomock.Any(), "r1").Return(emptyEngagement("r1"), nil)
	ms.EXPECT().AddRecipeLike(gomock.Any(), "r1", "u1").Return(errBackend)

	m, err := s.ToggleRecipeLike(ctx, "r1", "u1")
	require.ErrorIs(t, err, ErrStoreUnavailable)
	require.NotNil(t, m)
	require.Equal(t, SyncRemoteFailed, m.Sync)
	require.Equal(t, "remote_failed", m.Sync.String())

	cached, ok := s.Cached("r1")
	require.True(t, ok)
	require.Equal(t, []string{"u1"}, cached.LikedBy)

	s.Rollback(m)

	cached, ok = s.Cached("r1")
	require.True(t, ok)
	require.Empty(t, cached.LikedBy)
}

func TestToggleCommentLike(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)
	ctx := context.Background()

	doc := emptyEngagement("r1")
	doc.Comments = []models.Comment{
		{ID: "a", AuthorID: "u1", LikedBy: []string{}},
		{ID: "b", AuthorID: "u2", LikedBy: []string{"u3"}},
	}
	ms.EXPECT().EnsureEngagement(gomock.Any(), "r1").Return(doc, nil).Times(2)

	ms.EXPECT().ReplaceComments(gomock.Any(), "r1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, comments []models.Comment) error {
			require.Len(t, comments, 2)
			require.Empty(t, comments[0].LikedBy)
			require.ElementsMatch(t, []string{"u3", "u9"}, comments[1].LikedBy)
			return nil
		})

	m, err := s.ToggleCommentLike(ctx, "r1", "b", "u9")
	require.NoError(t, err)
	require.Equal(t, SyncConfirmed, m.Sync)
	require.Equal(t, []string{"u3"}, m.Previous.Comments[1].LikedBy)

	_, err = s.ToggleCommentLike(ctx, "r1", "missing", "u9")
	require.ErrorIs(t, err, ErrNotFound)
}

// Массив comments перезаписывается целиком, поэтому основой служит свежий документ,
// а не кэш: комментарий C2 другого процесса не должен пропасть.
func TestToggleCommentLike_RewritesFreshDocument(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)
	ctx := context.Background()

	c1 := models.Comment{ID: "C1", AuthorID: "u1", LikedBy: []string{}}
	c2 := models.Comment{ID: "C2", AuthorID: "u2", LikedBy: []string{}}

	stale := emptyEngagement("r1")
	stale.Comments = []models.Comment{c1}
	fresh := emptyEngagement("r1")
	fresh.Comments = []models.Comment{c1, c2}

	gomock.InOrder(
		ms.EXPECT().EnsureEngagement(gomock.Any(), "r1").Return(stale, nil),
		ms.EXPECT().EnsureEngagement(gomock.Any(), "r1").Return(fresh, nil),
		ms.EXPECT().ReplaceComments(gomock.Any(), "r1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, comments []models.Comment) error {
				require.Len(t, comments, 2)
				require.Equal(t, []string{"u9"}, comments[0].LikedBy)
				require.Equal(t, "C2", comments[1].ID)
				return nil
			}),
	)

	_, err := s.LoadEngagement(ctx, "r1")
	require.NoError(t, err)

	m, err := s.ToggleCommentLike(ctx, "r1", "C1", "u9")
	require.NoError(t, err)
	require.Len(t, m.Engagement.Comments, 2)

	cached, ok := s.Cached("r1")
	require.True(t, ok)
	require.Len(t, cached.Comments, 2)
}

func TestToggleCommentLike_RemoteFailure(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)
	ctx := context.Background()

	doc := emptyEngagement("r1")
	doc.Comments = []models.Comment{{ID: "a", LikedBy: []string{}}}
	ms.EXPECT().EnsureEngagement(gomock.Any(), "r1").Return(doc, nil)
	ms.EXPECT().ReplaceComments(gomock.Any(), "r1", gomock.Any()).Return(errBackend)

	m, err := s.ToggleCommentLike(ctx, "r1", "a", "u1")
	require.ErrorIs(t, err, ErrStoreUnavailable)
	require.Equal(t, SyncRemoteFailed, m.Sync)
	require.Equal(t, []string{"u1"}, m.Engagement.Comments[0].LikedBy)
}

func TestRollback_NilIsNoop(t *testing.T) {
	s, _, _ := newServiceWithMocks(t)
	s.Rollback(nil)
	s.Rollback(&Mutation{})
}

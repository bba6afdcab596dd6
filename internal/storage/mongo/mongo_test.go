package mongo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-recipes/internal/config"
	"github.com/pribylovaa/go-recipes/internal/models"
	"github.com/pribylovaa/go-recipes/internal/storage"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// testTimeout — общий дедлайн на операции с БД в тестах.
const testTimeout = 10 * time.Second

// TestMain запускает MongoDB в контейнере один раз на весь пакет тестов.
// Адрес контейнера прокидывается в ENV DATABASE_URL, каждый тест работает в своей БД.
func TestMain(m *testing.M) {
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		os.Exit(m.Run())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "mongo:7.0",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForLog("Waiting for connections").WithStartupTimeout(90 * time.Second),
	}

	mongoC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start mongo testcontainer: %v\n", err)
		os.Exit(1)
	}

	host, err := mongoC.Host(ctx)
	if err != nil {
		_ = mongoC.Terminate(ctx)
		fmt.Fprintf(os.Stderr, "failed to get container host: %v\n", err)
		os.Exit(1)
	}

	port, err := mongoC.MappedPort(ctx, "27017/tcp")
	if err != nil {
		_ = mongoC.Terminate(ctx)
		fmt.Fprintf(os.Stderr, "failed to get mapped port: %v\n", err)
		os.Exit(1)
	}

	_ = os.Setenv("DATABASE_URL", fmt.Sprintf("mongodb://%s:%s", host, port.Port()))

	code := m.Run()

	_ = mongoC.Terminate(context.Background())
	os.Exit(code)
}

// mustNewMongo подключается к отдельной тестовой БД и регистрирует очистку.
// Без GO_TEST_INTEGRATION тест пропускается.
func mustNewMongo(t *testing.T) *Mongo {
	t.Helper()

	baseURL := os.Getenv("DATABASE_URL")
	if os.Getenv("GO_TEST_INTEGRATION") == "" || baseURL == "" {
		t.Skip("integration test: set GO_TEST_INTEGRATION=1")
	}

	cfg := &config.Config{DB: config.DBConfig{URL: baseURL + "/recipes_test_" + uuid.NewString()}}

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	m, err := New(ctx, cfg)
	require.NoError(t, err, "DATABASE_URL=%s", cfg.DB.URL)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
		defer cancel()
		_ = m.db.Drop(ctx)
		_ = m.Close(ctx)
	})

	return m
}

func testCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	t.Cleanup(cancel)

	return ctx
}

func TestDatabaseFromURI(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"mongodb://localhost:27017/app", "app"},
		{"mongodb://localhost:27017/app?retryWrites=true", "app"},
		{"mongodb://localhost:27017/", defaultDBName},
		{"mongodb://localhost:27017", defaultDBName},
		{"::bad::", defaultDBName},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, databaseFromURI(tt.in), tt.in)
	}
}

func TestNew_BadConfig(t *testing.T) {
	_, err := New(context.Background(), nil)
	require.Error(t, err)

	_, err = New(context.Background(), &config.Config{})
	require.Error(t, err)
}

func TestCommentDoc_NilLikedByBecomesEmpty(t *testing.T) {
	d := toCommentDoc(models.Comment{ID: "c1"})
	require.NotNil(t, d.LikedBy)
	require.Empty(t, d.LikedBy)

	e := engagementDoc{ID: "52772"}.toModel()
	require.NotNil(t, e.LikedBy)
	require.NotNil(t, e.Comments)
}

func TestEnsureEngagement_CreatesEmptyAndKeepsExisting(t *testing.T) {
	m := mustNewMongo(t)
	ctx := testCtx(t)

	e, err := m.EnsureEngagement(ctx, "52772")
	require.NoError(t, err)
	require.Equal(t, "52772", e.RecipeID)
	require.Empty(t, e.LikedBy)
	require.Empty(t, e.Comments)

	require.NoError(t, m.AddRecipeLike(ctx, "52772", "u1"))

	e, err = m.EnsureEngagement(ctx, "52772")
	require.NoError(t, err)
	require.Equal(t, []string{"u1"}, e.LikedBy)
}

func TestEnsureEngagement_ConcurrentInit(t *testing.T) {
	m := mustNewMongo(t)
	ctx := testCtx(t)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.EnsureEngagement(ctx, "r-race")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
}

func TestRecipeLikes_SetSemantics(t *testing.T) {
	m := mustNewMongo(t)
	ctx := testCtx(t)

	require.NoError(t, m.AddRecipeLike(ctx, "r1", "u1"))
	require.NoError(t, m.AddRecipeLike(ctx, "r1", "u1"))
	require.NoError(t, m.AddRecipeLike(ctx, "r1", "u2"))

	e, err := m.EnsureEngagement(ctx, "r1")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"u1", "u2"}, e.LikedBy)

	require.NoError(t, m.RemoveRecipeLike(ctx, "r1", "u1"))
	require.NoError(t, m.RemoveRecipeLike(ctx, "r1", "nobody"))

	e, err = m.EnsureEngagement(ctx, "r1")
	require.NoError(t, err)
	require.Equal(t, []string{"u2"}, e.LikedBy)
}

func TestComments_AppendAndReplace(t *testing.T) {
	m := mustNewMongo(t)
	ctx := testCtx(t)

	_, err := m.EnsureEngagement(ctx, "r1")
	require.NoError(t, err)

	root := models.Comment{ID: "c1", Text: "nice", AuthorID: "u1", AuthorName: "alice", CreatedAt: 1}
	reply := models.Comment{ID: "c2", Text: "thx", AuthorID: "u2", AuthorName: "bob", CreatedAt: 2, ParentID: "c1", ReplyToName: "alice"}

	require.NoError(t, m.AppendComment(ctx, "r1", root))
	require.NoError(t, m.AppendComment(ctx, "r1", reply))

	e, err := m.EnsureEngagement(ctx, "r1")
	require.NoError(t, err)
	require.Len(t, e.Comments, 2)
	require.Equal(t, "c1", e.Comments[0].ID)
	require.Equal(t, "c1", e.Comments[1].ParentID)
	require.Equal(t, "alice", e.Comments[1].ReplyToName)
	require.Empty(t, e.Comments[0].LikedBy)

	root.LikedBy = []string{"u3"}
	require.NoError(t, m.ReplaceComments(ctx, "r1", []models.Comment{root}))

	e, err = m.EnsureEngagement(ctx, "r1")
	require.NoError(t, err)
	require.Len(t, e.Comments, 1)
	require.Equal(t, []string{"u3"}, e.Comments[0].LikedBy)

	require.NoError(t, m.ReplaceComments(ctx, "r1", nil))
	e, err = m.EnsureEngagement(ctx, "r1")
	require.NoError(t, err)
	require.Empty(t, e.Comments)
}

func TestProfiles_UpsertMergeAndFavorites(t *testing.T) {
	m := mustNewMongo(t)
	ctx := testCtx(t)

	_, err := m.ProfileByID(ctx, "u1")
	require.True(t, errors.Is(err, storage.ErrNotFound))

	name, bio, age := "alice_1", "cook", 30
	p, err := m.UpsertProfile(ctx, "u1", storage.ProfileUpdate{Username: &name, Bio: &bio, Age: &age})
	require.NoError(t, err)
	require.Equal(t, "alice_1", p.Username)
	require.Equal(t, 30, p.Age)
	require.False(t, p.CreatedAt.IsZero())
	require.Empty(t, p.FavoriteMeals)

	snap := models.RecipeSnapshot{ID: "52772", Name: "Teriyaki Chicken Casserole", Category: "Chicken"}
	require.NoError(t, m.SetFavorites(ctx, "u1", []models.RecipeSnapshot{snap}))

	loc := "Hanoi"
	p2, err := m.UpsertProfile(ctx, "u1", storage.ProfileUpdate{Location: &loc})
	require.NoError(t, err)
	require.Equal(t, "alice_1", p2.Username, "merge-write keeps untouched fields")
	require.Equal(t, "Hanoi", p2.Location)
	require.Equal(t, p.CreatedAt, p2.CreatedAt)
	require.Equal(t, []models.RecipeSnapshot{snap}, p2.FavoriteMeals)

	got, err := m.ProfileByID(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, p2.Location, got.Location)
}

func TestSetFavorites_CreatesDocument(t *testing.T) {
	m := mustNewMongo(t)
	ctx := testCtx(t)

	require.NoError(t, m.SetFavorites(ctx, "u9", []models.RecipeSnapshot{{ID: "1"}}))

	p, err := m.ProfileByID(ctx, "u9")
	require.NoError(t, err)
	require.Len(t, p.FavoriteMeals, 1)
}

func TestSetFavorites_KeepsFullRecord(t *testing.T) {
	m := mustNewMongo(t)
	ctx := testCtx(t)

	snap := models.RecipeSnapshot{
		ID:           "52772",
		Name:         "Teriyaki Chicken Casserole",
		Instructions: "Preheat oven to 350",
		Source:       "https://example.com/teriyaki",
		Ingredients: []models.Ingredient{
			{Name: "soy sauce", Measure: "3/4 cup", ImageURL: models.ImageURLFor("soy sauce")},
		},
	}
	require.NoError(t, m.SetFavorites(ctx, "u1", []models.RecipeSnapshot{snap}))

	p, err := m.ProfileByID(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, []models.RecipeSnapshot{snap}, p.FavoriteMeals)
}

func TestSnapshotDoc_RoundTrip(t *testing.T) {
	snap := models.RecipeSnapshot{ID: "1", Name: "Soup", Source: "src"}
	require.Equal(t, snap, toSnapshotDoc(snap).toModel())
	require.Nil(t, toSnapshotDoc(snap).Ingredients)

	snap.Ingredients = []models.Ingredient{{Name: "salt", Measure: "1 tsp", ImageURL: "u"}}
	require.Equal(t, snap, toSnapshotDoc(snap).toModel())
}

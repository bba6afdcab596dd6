package mealdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pribylovaa/go-recipes/internal/config"
	"github.com/stretchr/testify/require"
)

const teriyaki = `{"meals":[{"idMeal":"52772","strMeal":"Teriyaki Chicken Casserole","strCategory":"Chicken",
"strArea":"Japanese","strInstructions":"Preheat oven","strMealThumb":"https://img/t.jpg","strTags":"Meat,Casserole",
"strYoutube":"https://youtu.be/x","strIngredient1":"soy sauce","strMeasure1":"3/4 cup",
"strIngredient2":" water ","strMeasure2":null,"strIngredient3":"","strIngredient4":null,"strIngredient5":"brown sugar","strMeasure5":"1/2 cup"}]}`

type fakeCatalog struct {
	hits   atomic.Int32
	status int
	body   string
	last   atomic.Value
}

func (f *fakeCatalog) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.hits.Add(1)
	f.last.Store(r.URL.RequestURI())

	if f.status != 0 && f.status != http.StatusOK {
		w.WriteHeader(f.status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(f.body))
}

func newTestClient(t *testing.T, f *fakeCatalog) *Client {
	t.Helper()
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)

	return New(config.MealDBConfig{
		BaseURL:   srv.URL + "/",
		Timeout:   2 * time.Second,
		CacheSize: 16,
		CacheTTL:  time.Minute,
	}, nil)
}

func TestLookupByID_DecodesMeal(t *testing.T) {
	f := &fakeCatalog{body: teriyaki}
	c := newTestClient(t, f)

	meals := c.LookupByID(context.Background(), "52772")
	require.Len(t, meals, 1)
	require.Equal(t, "/lookup.php?i=52772", f.last.Load())

	m := meals[0]
	require.Equal(t, "52772", m.ID)
	require.Equal(t, "Teriyaki Chicken Casserole", m.Name)
	require.Equal(t, "Japanese", m.Area)
	require.Equal(t, "soy sauce", m.IngredientNames[0])
	require.Equal(t, " water ", m.IngredientNames[1])
	require.Equal(t, "", m.Measures[1], "null measure decodes as empty")
	require.Equal(t, "", m.IngredientNames[3])
	require.Equal(t, "brown sugar", m.IngredientNames[4])
}

func TestMeals_CachedOnSuccess(t *testing.T) {
	f := &fakeCatalog{body: teriyaki}
	c := newTestClient(t, f)
	ctx := context.Background()

	require.Len(t, c.SearchByName(ctx, "teriyaki"), 1)
	require.Len(t, c.SearchByName(ctx, "teriyaki"), 1)
	require.EqualValues(t, 1, f.hits.Load())

	require.Len(t, c.SearchByName(ctx, "other"), 1)
	require.EqualValues(t, 2, f.hits.Load())
}

func TestMeals_NullMealsIsEmpty(t *testing.T) {
	c := newTestClient(t, &fakeCatalog{body: `{"meals":null}`})

	got := c.FilterByCategory(context.Background(), "Nothing")
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestMeals_FailuresSwallowedAndNotCached(t *testing.T) {
	tests := []struct {
		name string
		f    *fakeCatalog
	}{
		{"server error", &fakeCatalog{status: http.StatusInternalServerError}},
		{"broken json", &fakeCatalog{body: `{"meals":[`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.f)
			ctx := context.Background()

			require.Empty(t, c.FilterByArea(ctx, "Canadian"))
			require.Empty(t, c.FilterByArea(ctx, "Canadian"))
			require.EqualValues(t, 2, tt.f.hits.Load())
		})
	}
}

func TestMeals_TransportError(t *testing.T) {
	c := New(config.MealDBConfig{BaseURL: "http://127.0.0.1:1", Timeout: time.Second, CacheSize: 4, CacheTTL: time.Minute}, nil)

	require.Empty(t, c.FilterByIngredient(context.Background(), "chicken"))
}

func TestBlankArguments_NoRequest(t *testing.T) {
	f := &fakeCatalog{body: teriyaki}
	c := newTestClient(t, f)
	ctx := context.Background()

	require.Empty(t, c.LookupByID(ctx, " "))
	require.Empty(t, c.SearchByFirstLetter(ctx, ""))
	require.Empty(t, c.FilterByIngredient(ctx, ""))
	require.EqualValues(t, 0, f.hits.Load())
}

func TestListCategories(t *testing.T) {
	f := &fakeCatalog{body: `{"categories":[{"idCategory":"1","strCategory":"Beef","strCategoryThumb":"https://img/beef.png","strCategoryDescription":"Beef is..."}]}`}
	c := newTestClient(t, f)

	cats := c.ListCategories(context.Background())
	require.Len(t, cats, 1)
	require.Equal(t, "Beef", cats[0].Name)
	require.Equal(t, "/categories.php", f.last.Load())
}

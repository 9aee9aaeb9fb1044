package nutrition_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-catalog/domain"
	"recipe-catalog/pkg/nutrition"
)

func recipeWith(slugs ...string) *domain.RecipeResponse {
	recipe := &domain.RecipeResponse{ID: 1, Name: "Breakfast plate"}
	for i, slug := range slugs {
		recipe.Ingredients = append(recipe.Ingredients, domain.RecipeIngredientResponse{
			ID:         i + 1,
			Ingredient: &domain.IngredientResponse{ID: i + 1, Name: slug, Slug: slug},
			Quantity:   1,
		})
	}
	return recipe
}

func TestHTTPProviderBatchesSlugs(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "egg,bacon,sour cream", r.URL.Query().Get("slugs"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"slug":"egg","calories":155,"protein":13,"fat":11,"carbs":1.1,"source":"usda"}]}`))
	}))
	defer srv.Close()

	provider := nutrition.NewHTTPProvider(srv.URL, time.Second)
	records, err := provider.FetchNutrition(context.Background(), []string{"egg", "bacon", "sour cream"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "egg", records[0].Slug)
	require.NotNil(t, records[0].Calories)
	assert.Equal(t, 155, *records[0].Calories)
	assert.EqualValues(t, 1, calls.Load())
}

func TestHTTPProviderEmptySlugsSkipsCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("provider should not be called")
	}))
	defer srv.Close()

	records, err := nutrition.NewHTTPProvider(srv.URL, time.Second).FetchNutrition(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestHTTPProviderNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := nutrition.NewHTTPProvider(srv.URL, time.Second).FetchNutrition(context.Background(), []string{"egg"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestHTTPProviderTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	_, err := nutrition.NewHTTPProvider(srv.URL, 20*time.Millisecond).FetchNutrition(context.Background(), []string{"egg"})
	require.Error(t, err)
}

type stubProvider struct {
	records []domain.Nutrition
	err     error
	got     [][]string
}

func (p *stubProvider) FetchNutrition(_ context.Context, slugs []string) ([]domain.Nutrition, error) {
	p.got = append(p.got, slugs)
	return p.records, p.err
}

func TestEnrichRecipeMatchesCaseInsensitively(t *testing.T) {
	calories := 155
	provider := &stubProvider{records: []domain.Nutrition{{Slug: "egg", Calories: &calories}}}
	recipe := recipeWith("Egg", "Bacon")

	nutrition.NewMerger(provider, nil).EnrichRecipe(context.Background(), recipe)

	require.Len(t, provider.got, 1)
	assert.Equal(t, []string{"egg", "bacon"}, provider.got[0])

	egg := recipe.Ingredients[0].Ingredient
	require.NotNil(t, egg.Nutrition)
	assert.Equal(t, 155, *egg.Nutrition.Calories)
	assert.Nil(t, recipe.Ingredients[1].Ingredient.Nutrition)
}

func TestEnrichRecipeDeduplicatesSlugs(t *testing.T) {
	provider := &stubProvider{records: []domain.Nutrition{{Slug: "EGG"}}}
	recipe := recipeWith("egg", "Egg", "EGG")

	nutrition.NewMerger(provider, nil).EnrichRecipe(context.Background(), recipe)

	require.Len(t, provider.got, 1)
	assert.Equal(t, []string{"egg"}, provider.got[0])
	for _, ri := range recipe.Ingredients {
		assert.NotNil(t, ri.Ingredient.Nutrition)
	}
}

func TestEnrichRecipeWithoutIngredientsSkipsProvider(t *testing.T) {
	provider := &stubProvider{}
	nutrition.NewMerger(provider, nil).EnrichRecipe(context.Background(), recipeWith())
	assert.Empty(t, provider.got)
}

func TestEnrichRecipeProviderFailureLeavesViewUnenriched(t *testing.T) {
	provider := &stubProvider{err: errors.New("connection refused")}
	recipe := recipeWith("egg")

	nutrition.NewMerger(provider, nil).EnrichRecipe(context.Background(), recipe)

	assert.Nil(t, recipe.Ingredients[0].Ingredient.Nutrition)
}

package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddIngredientLinksBothSides(t *testing.T) {
	recipe := &Recipe{ID: 1, Name: "Omelette"}
	egg := &Ingredient{ID: 7, Name: "Egg", Slug: "egg"}

	ri := recipe.AddIngredient(egg, 2, "eggs", "beaten")
	require.NotNil(t, ri)

	assert.Same(t, recipe, ri.Recipe)
	assert.Same(t, egg, ri.Ingredient)
	assert.Equal(t, 1, ri.RecipeID)
	assert.Equal(t, 7, ri.IngredientID)
	assert.Equal(t, 2, ri.Quantity)
	assert.Equal(t, "eggs", ri.Unit)
	assert.Equal(t, "beaten", ri.Preparation)

	require.Len(t, recipe.Ingredients, 1)
	require.Len(t, egg.Recipes, 1)
	assert.Same(t, ri, recipe.Ingredients[0])
	assert.Same(t, ri, egg.Recipes[0])
}

func TestAddIngredientNilIsNoop(t *testing.T) {
	recipe := &Recipe{ID: 1}

	assert.Nil(t, recipe.AddIngredient(nil, 1, "g", ""))
	assert.Empty(t, recipe.Ingredients)
}

func TestAddIngredientAllowsDuplicates(t *testing.T) {
	recipe := &Recipe{ID: 1}
	salt := &Ingredient{ID: 3}

	recipe.AddIngredient(salt, 1, "pinch", "")
	recipe.AddIngredient(salt, 2, "pinch", "")

	assert.Len(t, recipe.Ingredients, 2)
	assert.Len(t, salt.Recipes, 2)
}

func TestRemoveIngredientDetachesBothSides(t *testing.T) {
	recipe := &Recipe{ID: 1}
	egg := &Ingredient{ID: 7}
	bacon := &Ingredient{ID: 8}

	recipe.AddIngredient(egg, 2, "eggs", "")
	keep := recipe.AddIngredient(bacon, 4, "strips", "crispy")

	removed := recipe.RemoveIngredient(egg)
	require.NotNil(t, removed)

	assert.Nil(t, removed.Recipe)
	assert.Nil(t, removed.Ingredient)
	assert.Zero(t, removed.RecipeID)
	assert.Zero(t, removed.IngredientID)

	assert.Empty(t, egg.Recipes)
	require.Len(t, recipe.Ingredients, 1)
	assert.Same(t, keep, recipe.Ingredients[0])
	assert.Len(t, bacon.Recipes, 1)
}

func TestRemoveIngredientMatchesByID(t *testing.T) {
	loaded := &Ingredient{ID: 7, Name: "Egg"}
	recipe := &Recipe{ID: 1}
	ri := recipe.AddIngredient(loaded, 2, "eggs", "")
	ri.ID = 11

	// a separately loaded copy of the same row
	other := &Ingredient{ID: 7, Name: "Egg"}

	removed := recipe.RemoveIngredient(other)
	require.NotNil(t, removed)
	assert.Equal(t, 11, removed.ID)
	assert.Empty(t, recipe.Ingredients)
	assert.Empty(t, loaded.Recipes)
}

func TestRemoveIngredientNotLinked(t *testing.T) {
	recipe := &Recipe{ID: 1}
	recipe.AddIngredient(&Ingredient{ID: 1}, 1, "g", "")

	assert.Nil(t, recipe.RemoveIngredient(&Ingredient{ID: 2}))
	assert.Nil(t, recipe.RemoveIngredient(nil))
	assert.Len(t, recipe.Ingredients, 1)
}

func TestRemoveIngredientRemovesFirstDuplicateOnly(t *testing.T) {
	recipe := &Recipe{ID: 1}
	salt := &Ingredient{ID: 3}

	first := recipe.AddIngredient(salt, 1, "pinch", "")
	second := recipe.AddIngredient(salt, 2, "pinch", "")

	removed := recipe.RemoveIngredient(salt)
	assert.Same(t, first, removed)
	require.Len(t, recipe.Ingredients, 1)
	assert.Same(t, second, recipe.Ingredients[0])
	require.Len(t, salt.Recipes, 1)
	assert.Same(t, second, salt.Recipes[0])
}

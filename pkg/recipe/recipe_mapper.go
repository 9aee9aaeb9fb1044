package recipe

import (
	"recipe-catalog/domain"
	"recipe-catalog/entities"
	"recipe-catalog/pkg/ingredient"
)

func ToRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	if recipe == nil {
		return domain.RecipeResponse{Ingredients: []domain.RecipeIngredientResponse{}}
	}

	res := domain.RecipeResponse{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Category:    domain.Category(recipe.Category),
		Description: recipe.Description,
		Ingredients: make([]domain.RecipeIngredientResponse, 0, len(recipe.Ingredients)),
	}
	for _, ri := range recipe.Ingredients {
		if ri == nil {
			continue
		}
		res.Ingredients = append(res.Ingredients, ToRecipeIngredientResponse(ri))
	}
	return res
}

func ToRecipeResponses(recipes []*entities.Recipe) []domain.RecipeResponse {
	res := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		res = append(res, ToRecipeResponse(recipe))
	}
	return res
}

// ToRecipeIngredientResponse copies the ingredient so enrichment of one view
// never leaks into another.
func ToRecipeIngredientResponse(ri *entities.RecipeIngredient) domain.RecipeIngredientResponse {
	res := domain.RecipeIngredientResponse{
		ID:          ri.ID,
		Quantity:    ri.Quantity,
		Unit:        ri.Unit,
		Preparation: ri.Preparation,
	}
	if ri.Ingredient != nil {
		ing := ingredient.ToIngredientResponse(ri.Ingredient)
		res.Ingredient = &ing
	}
	return res
}

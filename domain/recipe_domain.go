package domain

var (
	MessageSuccessGetRecipes       = "success get recipes"
	MessageSuccessGetRecipeDetail  = "success get recipe detail"
	MessageSuccessCreateRecipe     = "recipe created successfully"
	MessageSuccessUpdateRecipe     = "recipe updated successfully"
	MessageSuccessDeleteRecipe     = "recipe deleted successfully"
	MessageSuccessAddIngredient    = "ingredient added to recipe"
	MessageSuccessRemoveIngredient = "ingredient removed from recipe"

	MessageFailedGetRecipes       = "failed to get recipes"
	MessageFailedGetRecipeDetail  = "failed to get recipe detail"
	MessageFailedCreateRecipe     = "failed to create recipe"
	MessageFailedUpdateRecipe     = "failed to update recipe"
	MessageFailedDeleteRecipe     = "failed to delete recipe"
	MessageFailedAddIngredient    = "failed to add ingredient to recipe"
	MessageFailedRemoveIngredient = "failed to remove ingredient from recipe"

	MessageInvalidRecipeID = "Invalid recipe ID format. ID must be a positive integer."
)

type (
	RecipeRequest struct {
		Name        string `json:"name" validate:"required,notblank"`
		Category    string `json:"category" validate:"required,recipe_category"`
		Description string `json:"description" validate:"required,notblank"`
	}

	AddIngredientRequest struct {
		IngredientID int    `json:"ingredientId" validate:"required,min=1"`
		Quantity     int    `json:"quantity" validate:"required,min=1"`
		Unit         string `json:"unit" validate:"required,notblank"`
		Preparation  string `json:"preparation"`
	}

	RecipeResponse struct {
		ID          int                        `json:"id"`
		Name        string                     `json:"name"`
		Category    Category                   `json:"category"`
		Description string                     `json:"description"`
		Ingredients []RecipeIngredientResponse `json:"ingredients"`
	}

	RecipeIngredientResponse struct {
		ID          int                 `json:"id"`
		Ingredient  *IngredientResponse `json:"ingredient"`
		Quantity    int                 `json:"quantity"`
		Unit        string              `json:"unit"`
		Preparation string              `json:"preparation"`
	}
)

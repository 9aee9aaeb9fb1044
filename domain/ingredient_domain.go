package domain

var (
	MessageSuccessGetIngredients   = "success get ingredients"
	MessageSuccessGetIngredient    = "success get ingredient"
	MessageSuccessCreateIngredient = "ingredient created successfully"
	MessageSuccessUpdateIngredient = "ingredient updated successfully"
	MessageSuccessDeleteIngredient = "ingredient deleted successfully"

	MessageFailedGetIngredients   = "failed to get ingredients"
	MessageFailedGetIngredient    = "failed to get ingredient"
	MessageFailedCreateIngredient = "failed to create ingredient"
	MessageFailedUpdateIngredient = "failed to update ingredient"
	MessageFailedDeleteIngredient = "failed to delete ingredient"

	MessageInvalidIngredientID = "Invalid ingredient ID format. ID must be a positive integer."
)

type (
	IngredientRequest struct {
		Name        string `json:"name" validate:"required,notblank"`
		Type        string `json:"type" validate:"required,ingredient_type"`
		Description string `json:"description" validate:"required,notblank"`
		Slug        string `json:"slug" validate:"required,notblank"`
	}

	IngredientResponse struct {
		ID          int            `json:"id"`
		Name        string         `json:"name"`
		Type        IngredientType `json:"type"`
		Description string         `json:"description"`
		Slug        string         `json:"slug"`
		Nutrition   *Nutrition     `json:"nutrition,omitempty"`
	}
)

package entities

type Recipe struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Category    string `gorm:"type:varchar(32);not null;index" json:"category"`
	Description string `gorm:"not null" json:"description"`

	Ingredients []*RecipeIngredient `gorm:"foreignKey:RecipeID" json:"ingredients"`
	Timestamp
}

func (Recipe) TableName() string {
	return "recipes"
}

// AddIngredient links ingredient to the recipe and registers the new
// association on both sides. It does not persist anything; the caller must
// save the returned record inside its transaction. A nil ingredient is a no-op.
func (r *Recipe) AddIngredient(ingredient *Ingredient, quantity int, unit, preparation string) *RecipeIngredient {
	if ingredient == nil {
		return nil
	}

	ri := &RecipeIngredient{
		RecipeID:     r.ID,
		Recipe:       r,
		IngredientID: ingredient.ID,
		Ingredient:   ingredient,
		Quantity:     quantity,
		Unit:         unit,
		Preparation:  preparation,
	}

	r.Ingredients = append(r.Ingredients, ri)
	ingredient.Recipes = append(ingredient.Recipes, ri)
	return ri
}

// RemoveIngredient detaches the first association whose ingredient has the
// same id as ingredient. The detached record is returned with its references
// cleared so the caller can delete its row; nil means nothing matched.
func (r *Recipe) RemoveIngredient(ingredient *Ingredient) *RecipeIngredient {
	if ingredient == nil {
		return nil
	}

	idx := -1
	for i, ri := range r.Ingredients {
		if ri != nil && ri.IngredientID == ingredient.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	found := r.Ingredients[idx]
	r.Ingredients = append(r.Ingredients[:idx], r.Ingredients[idx+1:]...)
	ingredient.Recipes = removeAssociation(ingredient.Recipes, found)

	// the ingredient collection may hold a different copy of the same row
	if found.Ingredient != nil && found.Ingredient != ingredient {
		found.Ingredient.Recipes = removeAssociation(found.Ingredient.Recipes, found)
	}

	found.detach()
	return found
}

func removeAssociation(list []*RecipeIngredient, target *RecipeIngredient) []*RecipeIngredient {
	for i, ri := range list {
		if ri == target || (target.ID != 0 && ri != nil && ri.ID == target.ID) {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

package entities

type RecipeIngredient struct {
	ID           int    `gorm:"primaryKey;autoIncrement" json:"id"`
	RecipeID     int    `gorm:"not null;index" json:"recipe_id"`
	IngredientID int    `gorm:"not null;index" json:"ingredient_id"`
	Quantity     int    `gorm:"not null" json:"quantity"`
	Unit         string `json:"unit"`
	Preparation  string `json:"preparation"`

	Recipe     *Recipe     `gorm:"foreignKey:RecipeID" json:"-"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
}

func (RecipeIngredient) TableName() string {
	return "recipes_ingredients"
}

func (ri *RecipeIngredient) detach() {
	ri.Recipe = nil
	ri.Ingredient = nil
	ri.RecipeID = 0
	ri.IngredientID = 0
}

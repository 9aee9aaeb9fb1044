package entities

type Ingredient struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Type        string `gorm:"type:varchar(32);not null;index" json:"type"`
	Description string `gorm:"not null" json:"description"`
	Slug        string `json:"slug"`

	// Back-reference side of the recipe association. Only Recipe.AddIngredient
	// and Recipe.RemoveIngredient may change it.
	Recipes []*RecipeIngredient `gorm:"foreignKey:IngredientID" json:"-"`
	Timestamp
}

func (Ingredient) TableName() string {
	return "ingredients"
}

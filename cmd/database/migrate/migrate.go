package migration

import (
	"fmt"

	"gorm.io/gorm"

	"recipe-catalog/entities"
)

func Migrate(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database handle is nil")
	}

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		return fmt.Errorf("migrate users: %w", err)
	}
	if err := db.AutoMigrate(&entities.Ingredient{}); err != nil {
		return fmt.Errorf("migrate ingredients: %w", err)
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		return fmt.Errorf("migrate recipes: %w", err)
	}
	if err := db.AutoMigrate(&entities.RecipeIngredient{}); err != nil {
		return fmt.Errorf("migrate recipes_ingredients: %w", err)
	}

	return nil
}

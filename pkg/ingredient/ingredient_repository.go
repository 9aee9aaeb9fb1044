package ingredient

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"recipe-catalog/entities"
)

type (
	IngredientRepository interface {
		Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
		CreateIngredient(ctx context.Context, tx *gorm.DB, ingredient *entities.Ingredient) error
		GetIngredientByID(ctx context.Context, tx *gorm.DB, id int) (*entities.Ingredient, error)
		GetIngredients(ctx context.Context, tx *gorm.DB) ([]*entities.Ingredient, error)
		GetIngredientsByType(ctx context.Context, tx *gorm.DB, ingredientType string) ([]*entities.Ingredient, error)
		UpdateIngredient(ctx context.Context, tx *gorm.DB, ingredient *entities.Ingredient) error
		DeleteIngredient(ctx context.Context, tx *gorm.DB, id int) error
		ExistsByID(ctx context.Context, tx *gorm.DB, id int) (bool, error)
	}

	ingredientRepository struct {
		db *gorm.DB
	}
)

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) conn(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx.WithContext(ctx)
	}
	return r.db.WithContext(ctx)
}

func (r *ingredientRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *ingredientRepository) CreateIngredient(ctx context.Context, tx *gorm.DB, ingredient *entities.Ingredient) error {
	return r.conn(ctx, tx).Omit(clause.Associations).Create(ingredient).Error
}

func (r *ingredientRepository) GetIngredientByID(ctx context.Context, tx *gorm.DB, id int) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.conn(ctx, tx).Where("id = ?", id).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientRepository) GetIngredients(ctx context.Context, tx *gorm.DB) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if err := r.conn(ctx, tx).Order("id asc").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *ingredientRepository) GetIngredientsByType(ctx context.Context, tx *gorm.DB, ingredientType string) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if err := r.conn(ctx, tx).
		Where("type = ?", ingredientType).
		Order("id asc").
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *ingredientRepository) UpdateIngredient(ctx context.Context, tx *gorm.DB, ingredient *entities.Ingredient) error {
	return r.conn(ctx, tx).
		Model(ingredient).
		Select("Name", "Type", "Description", "Slug").
		Updates(ingredient).Error
}

// DeleteIngredient removes every recipe association of the ingredient before
// the ingredient row itself. Run it inside a transaction.
func (r *ingredientRepository) DeleteIngredient(ctx context.Context, tx *gorm.DB, id int) error {
	db := r.conn(ctx, tx)
	if err := db.Where("ingredient_id = ?", id).Delete(&entities.RecipeIngredient{}).Error; err != nil {
		return err
	}
	return db.Delete(&entities.Ingredient{}, id).Error
}

func (r *ingredientRepository) ExistsByID(ctx context.Context, tx *gorm.DB, id int) (bool, error) {
	var count int64
	if err := r.conn(ctx, tx).
		Model(&entities.Ingredient{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

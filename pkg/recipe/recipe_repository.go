package recipe

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"recipe-catalog/entities"
)

type (
	RecipeRepository interface {
		Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
		CreateRecipe(ctx context.Context, tx *gorm.DB, recipe *entities.Recipe) error
		GetRecipeWithIngredients(ctx context.Context, tx *gorm.DB, id int) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, tx *gorm.DB) ([]*entities.Recipe, error)
		GetRecipesByCategory(ctx context.Context, tx *gorm.DB, category string) ([]*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, tx *gorm.DB, recipe *entities.Recipe) error
		DeleteRecipe(ctx context.Context, tx *gorm.DB, id int) error
		ExistsByID(ctx context.Context, tx *gorm.DB, id int) (bool, error)
		CreateRecipeIngredient(ctx context.Context, tx *gorm.DB, ri *entities.RecipeIngredient) error
		DeleteRecipeIngredient(ctx context.Context, tx *gorm.DB, id int) error
	}

	recipeRepository struct {
		db *gorm.DB
	}

	// recipeRow is one line of the recipe/association/ingredient outer join.
	recipeRow struct {
		RecipeID              int
		RecipeName            string
		RecipeCategory        string
		RecipeDescription     string
		AssociationID         *int
		Quantity              *int
		Unit                  *string
		Preparation           *string
		IngredientID          *int
		IngredientName        *string
		IngredientType        *string
		IngredientDescription *string
		IngredientSlug        *string
	}
)

const recipeJoinColumns = `r.id AS recipe_id, r.name AS recipe_name, r.category AS recipe_category, r.description AS recipe_description,
ri.id AS association_id, ri.quantity AS quantity, ri.unit AS unit, ri.preparation AS preparation,
i.id AS ingredient_id, i.name AS ingredient_name, i.type AS ingredient_type, i.description AS ingredient_description, i.slug AS ingredient_slug`

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) conn(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx.WithContext(ctx)
	}
	return r.db.WithContext(ctx)
}

func (r *recipeRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, tx *gorm.DB, recipe *entities.Recipe) error {
	return r.conn(ctx, tx).Omit(clause.Associations).Create(recipe).Error
}

// GetRecipeWithIngredients loads the recipe, its associations and their
// ingredients with one outer join query. It returns gorm.ErrRecordNotFound
// when the recipe does not exist.
func (r *recipeRepository) GetRecipeWithIngredients(ctx context.Context, tx *gorm.DB, id int) (*entities.Recipe, error) {
	var rows []recipeRow
	if err := r.conn(ctx, tx).
		Table("recipes AS r").
		Select(recipeJoinColumns).
		Joins("LEFT JOIN recipes_ingredients AS ri ON ri.recipe_id = r.id").
		Joins("LEFT JOIN ingredients AS i ON i.id = ri.ingredient_id").
		Where("r.id = ?", id).
		Order("ri.id asc").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return assembleRecipe(rows), nil
}

func assembleRecipe(rows []recipeRow) *entities.Recipe {
	first := rows[0]
	recipe := &entities.Recipe{
		ID:          first.RecipeID,
		Name:        first.RecipeName,
		Category:    first.RecipeCategory,
		Description: first.RecipeDescription,
		Ingredients: []*entities.RecipeIngredient{},
	}

	ingredients := make(map[int]*entities.Ingredient)
	seen := make(map[int]struct{}, len(rows))
	for _, row := range rows {
		if row.AssociationID == nil || row.IngredientID == nil {
			continue
		}
		if _, dup := seen[*row.AssociationID]; dup {
			continue
		}
		seen[*row.AssociationID] = struct{}{}

		ingredient, ok := ingredients[*row.IngredientID]
		if !ok {
			ingredient = &entities.Ingredient{
				ID:          *row.IngredientID,
				Name:        deref(row.IngredientName),
				Type:        deref(row.IngredientType),
				Description: deref(row.IngredientDescription),
				Slug:        deref(row.IngredientSlug),
			}
			ingredients[ingredient.ID] = ingredient
		}

		quantity := 0
		if row.Quantity != nil {
			quantity = *row.Quantity
		}
		ri := recipe.AddIngredient(ingredient, quantity, deref(row.Unit), deref(row.Preparation))
		ri.ID = *row.AssociationID
	}
	return recipe
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (r *recipeRepository) GetRecipes(ctx context.Context, tx *gorm.DB) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.withIngredients(r.conn(ctx, tx)).
		Order("recipes.id asc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetRecipesByCategory(ctx context.Context, tx *gorm.DB, category string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.withIngredients(r.conn(ctx, tx)).
		Where("recipes.category = ?", category).
		Order("recipes.id asc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) withIngredients(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("recipes_ingredients.id asc") }).
		Preload("Ingredients.Ingredient")
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, tx *gorm.DB, recipe *entities.Recipe) error {
	return r.conn(ctx, tx).
		Model(recipe).
		Select("Name", "Category", "Description").
		Updates(recipe).Error
}

// DeleteRecipe removes the recipe's association rows and then the recipe.
// Ingredients are left untouched. Run it inside a transaction.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, tx *gorm.DB, id int) error {
	db := r.conn(ctx, tx)
	if err := db.Where("recipe_id = ?", id).Delete(&entities.RecipeIngredient{}).Error; err != nil {
		return err
	}
	return db.Delete(&entities.Recipe{}, id).Error
}

func (r *recipeRepository) ExistsByID(ctx context.Context, tx *gorm.DB, id int) (bool, error) {
	var count int64
	if err := r.conn(ctx, tx).
		Model(&entities.Recipe{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *recipeRepository) CreateRecipeIngredient(ctx context.Context, tx *gorm.DB, ri *entities.RecipeIngredient) error {
	return r.conn(ctx, tx).Omit(clause.Associations).Create(ri).Error
}

func (r *recipeRepository) DeleteRecipeIngredient(ctx context.Context, tx *gorm.DB, id int) error {
	return r.conn(ctx, tx).Delete(&entities.RecipeIngredient{}, id).Error
}

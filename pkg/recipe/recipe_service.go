package recipe

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"recipe-catalog/domain"
	"recipe-catalog/entities"
	"recipe-catalog/pkg/ingredient"
	"recipe-catalog/pkg/nutrition"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.RecipeRequest) (domain.RecipeResponse, error)
		GetRecipe(ctx context.Context, id int) (*domain.RecipeResponse, error)
		GetRecipes(ctx context.Context) ([]domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, id int, req domain.RecipeRequest) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, id int) error
		ValidatePrimaryKey(ctx context.Context, id int) bool
		AddIngredient(ctx context.Context, recipeID int, req domain.AddIngredientRequest) (domain.RecipeIngredientResponse, error)
		RemoveIngredient(ctx context.Context, recipeID, ingredientID int) (domain.RecipeResponse, error)
		SearchByCategory(ctx context.Context, value string) ([]domain.RecipeResponse, error)
	}

	recipeService struct {
		recipeRepository     RecipeRepository
		ingredientRepository ingredient.IngredientRepository
		nutrition            nutrition.Merger
		log                  *zap.Logger
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	ingredientRepository ingredient.IngredientRepository,
	merger nutrition.Merger,
	log *zap.Logger,
) RecipeService {
	if log == nil {
		log = zap.NewNop()
	}
	return &recipeService{
		recipeRepository:     recipeRepository,
		ingredientRepository: ingredientRepository,
		nutrition:            merger,
		log:                  log.Named("recipe_service"),
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.RecipeRequest) (domain.RecipeResponse, error) {
	category, ok := domain.ParseCategory(req.Category)
	if !ok {
		return domain.RecipeResponse{}, domain.NewValidationFailure(fmt.Errorf("unknown recipe category %q", req.Category))
	}

	recipe := &entities.Recipe{
		Name:        req.Name,
		Category:    string(category),
		Description: req.Description,
	}

	err := s.recipeRepository.Transaction(ctx, func(tx *gorm.DB) error {
		return s.recipeRepository.CreateRecipe(ctx, tx, recipe)
	})
	if err != nil {
		return domain.RecipeResponse{}, s.fail("create recipe", err)
	}

	return ToRecipeResponse(recipe), nil
}

// GetRecipe returns nil without error when the id does not exist. Nutrition
// facts are merged after the read has finished with the database.
func (s *recipeService) GetRecipe(ctx context.Context, id int) (*domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeWithIngredients(ctx, nil, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, s.fail(fmt.Sprintf("get recipe with ID: %d", id), err)
	}

	res := ToRecipeResponse(recipe)
	if s.nutrition != nil {
		s.nutrition.EnrichRecipe(ctx, &res)
	}
	return &res, nil
}

func (s *recipeService) GetRecipes(ctx context.Context) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx, nil)
	if err != nil {
		return nil, s.fail("get all recipes", err)
	}
	return ToRecipeResponses(recipes), nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id int, req domain.RecipeRequest) (domain.RecipeResponse, error) {
	category, ok := domain.ParseCategory(req.Category)
	if !ok {
		return domain.RecipeResponse{}, domain.NewValidationFailure(fmt.Errorf("unknown recipe category %q", req.Category))
	}

	var updated *entities.Recipe
	err := s.recipeRepository.Transaction(ctx, func(tx *gorm.DB) error {
		recipe, err := s.loadRecipe(ctx, tx, id)
		if err != nil {
			return err
		}

		recipe.Name = req.Name
		recipe.Category = string(category)
		recipe.Description = req.Description

		if err := s.recipeRepository.UpdateRecipe(ctx, tx, recipe); err != nil {
			return err
		}
		updated = recipe
		return nil
	})
	if err != nil {
		return domain.RecipeResponse{}, s.fail(fmt.Sprintf("update recipe with ID: %d", id), err)
	}

	return ToRecipeResponse(updated), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id int) error {
	err := s.recipeRepository.Transaction(ctx, func(tx *gorm.DB) error {
		exists, err := s.recipeRepository.ExistsByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if !exists {
			return domain.NewNotFound("Recipe", id)
		}
		return s.recipeRepository.DeleteRecipe(ctx, tx, id)
	})
	if err != nil {
		return s.fail(fmt.Sprintf("delete recipe with ID: %d", id), err)
	}
	return nil
}

func (s *recipeService) ValidatePrimaryKey(ctx context.Context, id int) bool {
	if id <= 0 {
		return false
	}

	exists, err := s.recipeRepository.ExistsByID(ctx, nil, id)
	if err != nil {
		s.log.Debug("recipe primary key lookup failed", zap.Int("id", id), zap.Error(err))
		return false
	}
	return exists
}

// AddIngredient links an existing ingredient to an existing recipe. The
// recipe is checked before the ingredient.
func (s *recipeService) AddIngredient(ctx context.Context, recipeID int, req domain.AddIngredientRequest) (domain.RecipeIngredientResponse, error) {
	var added *entities.RecipeIngredient
	err := s.recipeRepository.Transaction(ctx, func(tx *gorm.DB) error {
		recipe, ing, err := s.loadPair(ctx, tx, recipeID, req.IngredientID)
		if err != nil {
			return err
		}

		ri := recipe.AddIngredient(ing, req.Quantity, req.Unit, req.Preparation)
		if err := s.recipeRepository.CreateRecipeIngredient(ctx, tx, ri); err != nil {
			return err
		}
		added = ri
		return nil
	})
	if err != nil {
		return domain.RecipeIngredientResponse{}, s.fail(
			fmt.Sprintf("add ingredient %d to recipe %d", req.IngredientID, recipeID), err)
	}

	return ToRecipeIngredientResponse(added), nil
}

// RemoveIngredient unlinks the first association between the pair. A pair
// that was never linked is not an error.
func (s *recipeService) RemoveIngredient(ctx context.Context, recipeID, ingredientID int) (domain.RecipeResponse, error) {
	var updated *entities.Recipe
	err := s.recipeRepository.Transaction(ctx, func(tx *gorm.DB) error {
		recipe, ing, err := s.loadPair(ctx, tx, recipeID, ingredientID)
		if err != nil {
			return err
		}

		if removed := recipe.RemoveIngredient(ing); removed != nil {
			if err := s.recipeRepository.DeleteRecipeIngredient(ctx, tx, removed.ID); err != nil {
				return err
			}
		}
		updated = recipe
		return nil
	})
	if err != nil {
		return domain.RecipeResponse{}, s.fail(
			fmt.Sprintf("remove ingredient %d from recipe %d", ingredientID, recipeID), err)
	}

	return ToRecipeResponse(updated), nil
}

func (s *recipeService) SearchByCategory(ctx context.Context, value string) ([]domain.RecipeResponse, error) {
	category, ok := domain.ParseCategory(value)
	if !ok {
		return nil, domain.NewBadFilter("recipe category", value)
	}

	recipes, err := s.recipeRepository.GetRecipesByCategory(ctx, nil, string(category))
	if err != nil {
		return nil, s.fail("search recipes by category", err)
	}
	return ToRecipeResponses(recipes), nil
}

func (s *recipeService) loadRecipe(ctx context.Context, tx *gorm.DB, id int) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeWithIngredients(ctx, tx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFound("Recipe", id)
		}
		return nil, err
	}
	return recipe, nil
}

func (s *recipeService) loadPair(ctx context.Context, tx *gorm.DB, recipeID, ingredientID int) (*entities.Recipe, *entities.Ingredient, error) {
	recipe, err := s.loadRecipe(ctx, tx, recipeID)
	if err != nil {
		return nil, nil, err
	}

	ing, err := s.ingredientRepository.GetIngredientByID(ctx, tx, ingredientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, domain.NewNotFound("Ingredient", ingredientID)
		}
		return nil, nil, err
	}

	// share the ingredient instance already attached to the recipe, if any
	for _, ri := range recipe.Ingredients {
		if ri.Ingredient != nil && ri.Ingredient.ID == ing.ID {
			return recipe, ri.Ingredient, nil
		}
	}
	return recipe, ing, nil
}

func (s *recipeService) fail(operation string, err error) error {
	wrapped := domain.WrapPersistence(operation, err)
	if errors.Is(wrapped, domain.ErrPersistence) {
		s.log.Error("recipe persistence failure", zap.String("operation", operation), zap.Error(err))
	}
	return wrapped
}

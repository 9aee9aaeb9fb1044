package ingredient

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"recipe-catalog/domain"
	"recipe-catalog/entities"
)

type (
	IngredientService interface {
		CreateIngredient(ctx context.Context, req domain.IngredientRequest) (domain.IngredientResponse, error)
		GetIngredient(ctx context.Context, id int) (*domain.IngredientResponse, error)
		GetIngredients(ctx context.Context) ([]domain.IngredientResponse, error)
		UpdateIngredient(ctx context.Context, id int, req domain.IngredientRequest) (domain.IngredientResponse, error)
		DeleteIngredient(ctx context.Context, id int) error
		ValidatePrimaryKey(ctx context.Context, id int) bool
		SearchByType(ctx context.Context, value string) ([]domain.IngredientResponse, error)
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
		log                  *zap.Logger
	}
)

func NewIngredientService(ingredientRepository IngredientRepository, log *zap.Logger) IngredientService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ingredientService{
		ingredientRepository: ingredientRepository,
		log:                  log.Named("ingredient_service"),
	}
}

func (s *ingredientService) CreateIngredient(ctx context.Context, req domain.IngredientRequest) (domain.IngredientResponse, error) {
	ingredientType, ok := domain.ParseIngredientType(req.Type)
	if !ok {
		return domain.IngredientResponse{}, domain.NewValidationFailure(fmt.Errorf("unknown ingredient type %q", req.Type))
	}

	ingredient := &entities.Ingredient{
		Name:        req.Name,
		Type:        string(ingredientType),
		Description: req.Description,
		Slug:        req.Slug,
	}

	err := s.ingredientRepository.Transaction(ctx, func(tx *gorm.DB) error {
		return s.ingredientRepository.CreateIngredient(ctx, tx, ingredient)
	})
	if err != nil {
		return domain.IngredientResponse{}, s.fail("create ingredient", err)
	}

	return ToIngredientResponse(ingredient), nil
}

// GetIngredient returns nil without error when the id does not exist.
func (s *ingredientService) GetIngredient(ctx context.Context, id int) (*domain.IngredientResponse, error) {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, nil, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, s.fail(fmt.Sprintf("get ingredient with ID: %d", id), err)
	}

	res := ToIngredientResponse(ingredient)
	return &res, nil
}

func (s *ingredientService) GetIngredients(ctx context.Context) ([]domain.IngredientResponse, error) {
	ingredients, err := s.ingredientRepository.GetIngredients(ctx, nil)
	if err != nil {
		return nil, s.fail("get all ingredients", err)
	}
	return ToIngredientResponses(ingredients), nil
}

func (s *ingredientService) UpdateIngredient(ctx context.Context, id int, req domain.IngredientRequest) (domain.IngredientResponse, error) {
	ingredientType, ok := domain.ParseIngredientType(req.Type)
	if !ok {
		return domain.IngredientResponse{}, domain.NewValidationFailure(fmt.Errorf("unknown ingredient type %q", req.Type))
	}

	var updated *entities.Ingredient
	err := s.ingredientRepository.Transaction(ctx, func(tx *gorm.DB) error {
		ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NewNotFound("Ingredient", id)
			}
			return err
		}

		ingredient.Name = req.Name
		ingredient.Type = string(ingredientType)
		ingredient.Description = req.Description
		ingredient.Slug = req.Slug

		if err := s.ingredientRepository.UpdateIngredient(ctx, tx, ingredient); err != nil {
			return err
		}
		updated = ingredient
		return nil
	})
	if err != nil {
		return domain.IngredientResponse{}, s.fail(fmt.Sprintf("update ingredient with ID: %d", id), err)
	}

	return ToIngredientResponse(updated), nil
}

func (s *ingredientService) DeleteIngredient(ctx context.Context, id int) error {
	err := s.ingredientRepository.Transaction(ctx, func(tx *gorm.DB) error {
		if _, err := s.ingredientRepository.GetIngredientByID(ctx, tx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NewNotFound("Ingredient", id)
			}
			return err
		}
		return s.ingredientRepository.DeleteIngredient(ctx, tx, id)
	})
	if err != nil {
		return s.fail(fmt.Sprintf("delete ingredient with ID: %d", id), err)
	}
	return nil
}

func (s *ingredientService) ValidatePrimaryKey(ctx context.Context, id int) bool {
	if id <= 0 {
		return false
	}

	exists, err := s.ingredientRepository.ExistsByID(ctx, nil, id)
	if err != nil {
		s.log.Debug("ingredient primary key lookup failed", zap.Int("id", id), zap.Error(err))
		return false
	}
	return exists
}

func (s *ingredientService) SearchByType(ctx context.Context, value string) ([]domain.IngredientResponse, error) {
	ingredientType, ok := domain.ParseIngredientType(value)
	if !ok {
		return nil, domain.NewBadFilter("ingredient type", value)
	}

	ingredients, err := s.ingredientRepository.GetIngredientsByType(ctx, nil, string(ingredientType))
	if err != nil {
		return nil, s.fail("search ingredients by type", err)
	}
	return ToIngredientResponses(ingredients), nil
}

func (s *ingredientService) fail(operation string, err error) error {
	wrapped := domain.WrapPersistence(operation, err)
	if errors.Is(wrapped, domain.ErrPersistence) {
		s.log.Error("ingredient persistence failure", zap.String("operation", operation), zap.Error(err))
	}
	return wrapped
}

func ToIngredientResponse(ingredient *entities.Ingredient) domain.IngredientResponse {
	if ingredient == nil {
		return domain.IngredientResponse{}
	}
	return domain.IngredientResponse{
		ID:          ingredient.ID,
		Name:        ingredient.Name,
		Type:        domain.IngredientType(ingredient.Type),
		Description: ingredient.Description,
		Slug:        ingredient.Slug,
	}
}

func ToIngredientResponses(ingredients []*entities.Ingredient) []domain.IngredientResponse {
	res := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		res = append(res, ToIngredientResponse(ingredient))
	}
	return res
}

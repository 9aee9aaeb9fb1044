package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"recipe-catalog/domain"
	"recipe-catalog/internal/api/presenters"
	"recipe-catalog/pkg/recipe"
)

type (
	RecipeHandler interface {
		GetRecipes(c *fiber.Ctx) error
		GetRecipe(c *fiber.Ctx) error
		HeadRecipe(c *fiber.Ctx) error
		CreateRecipe(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		AddIngredient(c *fiber.Ctx) error
		RemoveIngredient(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	var (
		res []domain.RecipeResponse
		err error
	)
	if category := c.Query("category"); category != "" {
		res, err = h.recipeService.SearchByCategory(c.Context(), category)
	} else {
		res, err = h.recipeService.GetRecipes(c.Context())
	}
	if err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipe(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, domain.MessageInvalidRecipeID)
	}

	res, err := h.recipeService.GetRecipe(c.Context(), id)
	if err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedGetRecipeDetail, err)
	}
	if res == nil {
		return presenters.FailureResponse(c, domain.MessageFailedGetRecipeDetail, domain.NewNotFound("Recipe", id))
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeHandler) HeadRecipe(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	if !h.recipeService.ValidatePrimaryKey(c.Context(), id) {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return c.SendStatus(fiber.StatusOK)
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	req := new(domain.RecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err)
	}

	res, err := h.recipeService.CreateRecipe(c.Context(), *req)
	if err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedCreateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, domain.MessageInvalidRecipeID)
	}

	req := new(domain.RecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe, err)
	}

	res, err := h.recipeService.UpdateRecipe(c.Context(), id, *req)
	if err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedUpdateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateRecipe)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, domain.MessageInvalidRecipeID)
	}

	if err := h.recipeService.DeleteRecipe(c.Context(), id); err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedDeleteRecipe, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *recipeHandler) AddIngredient(c *fiber.Ctx) error {
	recipeID, ok := pathID(c, "recipeId")
	if !ok {
		return invalidID(c, domain.MessageInvalidRecipeID)
	}

	req := new(domain.AddIngredientRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddIngredient, err)
	}

	res, err := h.recipeService.AddIngredient(c.Context(), recipeID, *req)
	if err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedAddIngredient, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddIngredient)
}

func (h *recipeHandler) RemoveIngredient(c *fiber.Ctx) error {
	recipeID, ok := pathID(c, "recipeId")
	if !ok {
		return invalidID(c, domain.MessageInvalidRecipeID)
	}
	ingredientID, ok := pathID(c, "ingredientId")
	if !ok {
		return invalidID(c, domain.MessageInvalidIngredientID)
	}

	res, err := h.recipeService.RemoveIngredient(c.Context(), recipeID, ingredientID)
	if err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedRemoveIngredient, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRemoveIngredient)
}

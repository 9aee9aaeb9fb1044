package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"recipe-catalog/domain"
	"recipe-catalog/internal/api/presenters"
	"recipe-catalog/pkg/ingredient"
)

type (
	IngredientHandler interface {
		GetIngredients(c *fiber.Ctx) error
		GetIngredient(c *fiber.Ctx) error
		HeadIngredient(c *fiber.Ctx) error
		CreateIngredient(c *fiber.Ctx) error
		UpdateIngredient(c *fiber.Ctx) error
		DeleteIngredient(c *fiber.Ctx) error
	}

	ingredientHandler struct {
		ingredientService ingredient.IngredientService
		validator         *validator.Validate
	}
)

func NewIngredientHandler(ingredientService ingredient.IngredientService, validator *validator.Validate) IngredientHandler {
	return &ingredientHandler{
		ingredientService: ingredientService,
		validator:         validator,
	}
}

func (h *ingredientHandler) GetIngredients(c *fiber.Ctx) error {
	var (
		res []domain.IngredientResponse
		err error
	)
	if ingredientType := c.Query("type"); ingredientType != "" {
		res, err = h.ingredientService.SearchByType(c.Context(), ingredientType)
	} else {
		res, err = h.ingredientService.GetIngredients(c.Context())
	}
	if err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedGetIngredients, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetIngredients)
}

func (h *ingredientHandler) GetIngredient(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, domain.MessageInvalidIngredientID)
	}

	res, err := h.ingredientService.GetIngredient(c.Context(), id)
	if err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedGetIngredient, err)
	}
	if res == nil {
		return presenters.FailureResponse(c, domain.MessageFailedGetIngredient, domain.NewNotFound("Ingredient", id))
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetIngredient)
}

func (h *ingredientHandler) HeadIngredient(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	if !h.ingredientService.ValidatePrimaryKey(c.Context(), id) {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return c.SendStatus(fiber.StatusOK)
}

func (h *ingredientHandler) CreateIngredient(c *fiber.Ctx) error {
	req := new(domain.IngredientRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateIngredient, err)
	}

	res, err := h.ingredientService.CreateIngredient(c.Context(), *req)
	if err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedCreateIngredient, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateIngredient)
}

func (h *ingredientHandler) UpdateIngredient(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, domain.MessageInvalidIngredientID)
	}

	req := new(domain.IngredientRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateIngredient, err)
	}

	res, err := h.ingredientService.UpdateIngredient(c.Context(), id, *req)
	if err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedUpdateIngredient, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateIngredient)
}

func (h *ingredientHandler) DeleteIngredient(c *fiber.Ctx) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, domain.MessageInvalidIngredientID)
	}

	if err := h.ingredientService.DeleteIngredient(c.Context(), id); err != nil {
		return presenters.FailureResponse(c, domain.MessageFailedDeleteIngredient, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

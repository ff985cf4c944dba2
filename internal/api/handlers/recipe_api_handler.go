package handlers

import (
	"errors"
	"strconv"

	"recipe-book/domain"
	"recipe-book/internal/api/presenters"
	"recipe-book/internal/utils"
	"recipe-book/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeAPIHandler interface {
		ListRecipes(c *fiber.Ctx) error
		CreateRecipe(c *fiber.Ctx) error
		GetRecipe(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		PatchRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
	}

	recipeAPIHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeAPIHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeAPIHandler {
	return &recipeAPIHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeAPIHandler) ListRecipes(c *fiber.Ctx) error {
	query := c.Query("q", "")

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	res, err := h.recipeService.ListRecipes(c.Context(), query, page, limit, c.BaseURL())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeAPIHandler) CreateRecipe(c *fiber.Ctx) error {
	req := new(domain.SaveRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if file, err := c.FormFile("image"); err == nil {
		req.Image = file
	}

	req.Sanitize()
	if err := h.validator.Struct(req); err != nil {
		return presenters.ValidationErrorResponse(c, domain.MessageFailedCreateRecipe, utils.FieldErrors(err))
	}

	res, err := h.recipeService.CreateRecipe(c.Context(), *req, c.BaseURL())
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateTitle) {
			return presenters.ValidationErrorResponse(c, domain.MessageFailedCreateRecipe, []domain.FieldError{
				{Field: "title", Message: domain.MessageDuplicateTitle},
			})
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
}

func (h *recipeAPIHandler) GetRecipe(c *fiber.Ctx) error {
	id, err := parseRecipeID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRecipeDetail, domain.ErrRecipeNotFound)
	}

	res, err := h.recipeService.GetRecipe(c.Context(), id, c.BaseURL())
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRecipeDetail, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeAPIHandler) UpdateRecipe(c *fiber.Ctx) error {
	id, err := parseRecipeID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateRecipe, domain.ErrRecipeNotFound)
	}

	req := new(domain.SaveRecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if file, err := c.FormFile("image"); err == nil {
		req.Image = file
	}

	req.Sanitize()
	if err := h.validator.Struct(req); err != nil {
		return presenters.ValidationErrorResponse(c, domain.MessageFailedUpdateRecipe, utils.FieldErrors(err))
	}

	res, err := h.recipeService.UpdateRecipe(c.Context(), id, *req, c.BaseURL())
	if err != nil {
		return h.writeError(c, domain.MessageFailedUpdateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateRecipe)
}

func (h *recipeAPIHandler) PatchRecipe(c *fiber.Ctx) error {
	id, err := parseRecipeID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateRecipe, domain.ErrRecipeNotFound)
	}

	req := new(domain.PatchRecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if file, err := c.FormFile("image"); err == nil {
		req.Image = file
	}

	req.Sanitize()
	if err := h.validator.Struct(req); err != nil {
		return presenters.ValidationErrorResponse(c, domain.MessageFailedUpdateRecipe, utils.FieldErrors(err))
	}

	res, err := h.recipeService.PatchRecipe(c.Context(), id, *req, c.BaseURL())
	if err != nil {
		return h.writeError(c, domain.MessageFailedUpdateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateRecipe)
}

func (h *recipeAPIHandler) DeleteRecipe(c *fiber.Ctx) error {
	id, err := parseRecipeID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteRecipe, domain.ErrRecipeNotFound)
	}

	if err := h.recipeService.DeleteRecipe(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteRecipe, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecipe)
}

func (h *recipeAPIHandler) writeError(c *fiber.Ctx, message string, err error) error {
	switch {
	case errors.Is(err, domain.ErrRecipeNotFound):
		return presenters.ErrorResponse(c, fiber.StatusNotFound, message, err)
	case errors.Is(err, domain.ErrDuplicateTitle):
		return presenters.ValidationErrorResponse(c, message, []domain.FieldError{
			{Field: "title", Message: domain.MessageDuplicateTitle},
		})
	default:
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, message, err)
	}
}

func parseRecipeID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidRecipeID
	}
	return uint(id), nil
}

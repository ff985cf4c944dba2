package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"recipe-book/domain"
	"recipe-book/internal/utils"
	"recipe-book/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	// RecipePageHandler serves the HTML flows: list, detail, create, edit
	// and delete-with-confirmation.
	RecipePageHandler interface {
		RecipeList(c *fiber.Ctx) error
		RecipeDetail(c *fiber.Ctx) error
		NewRecipeForm(c *fiber.Ctx) error
		CreateRecipe(c *fiber.Ctx) error
		EditRecipeForm(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipeForm(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
	}

	recipePageHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipePageHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipePageHandler {
	return &recipePageHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipePageHandler) RecipeList(c *fiber.Ctx) error {
	query := c.Query("q", "")
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	res, err := h.recipeService.ListRecipes(c.Context(), query, page, domain.RecipeListPageSize, "")
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, domain.MessageFailedGetRecipes)
	}

	return c.Render("recipe_list", fiber.Map{
		"Recipes":     res.Recipes,
		"SearchQuery": res.SearchQuery,
		"Page":        res.Page,
		"Total":       res.Total,
		"TotalPages":  res.TotalPages,
		"HasPrev":     res.Page > 1,
		"HasNext":     int64(res.Page) < res.TotalPages,
		"PrevPage":    res.Page - 1,
		"NextPage":    res.Page + 1,
	})
}

func (h *recipePageHandler) RecipeDetail(c *fiber.Ctx) error {
	id, err := parseRecipeID(c)
	if err != nil {
		return h.renderNotFound(c)
	}

	res, err := h.recipeService.GetRecipe(c.Context(), id, "")
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return h.renderNotFound(c)
		}
		return fiber.NewError(fiber.StatusInternalServerError, domain.MessageFailedGetRecipeDetail)
	}

	return c.Render("recipe_detail", fiber.Map{"Recipe": res})
}

func (h *recipePageHandler) NewRecipeForm(c *fiber.Ctx) error {
	return c.Render("recipe_form", fiber.Map{
		"Heading": "Add Recipe",
		"Action":  "/recipes/add",
		"Cancel":  "/recipes/",
		"Form":    domain.SaveRecipeRequest{},
		"Errors":  map[string][]string{},
	})
}

func (h *recipePageHandler) CreateRecipe(c *fiber.Ctx) error {
	req := new(domain.SaveRecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}
	if file, err := c.FormFile("image"); err == nil {
		req.Image = file
	}

	req.Sanitize()
	if err := h.validator.Struct(req); err != nil {
		return h.renderForm(c, "Add Recipe", "/recipes/add", "/recipes/", *req, utils.FieldErrors(err))
	}

	res, err := h.recipeService.CreateRecipe(c.Context(), *req, "")
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateTitle) {
			return h.renderForm(c, "Add Recipe", "/recipes/add", "/recipes/", *req, []domain.FieldError{
				{Field: "title", Message: domain.MessageDuplicateTitle},
			})
		}
		return fiber.NewError(fiber.StatusInternalServerError, domain.MessageFailedCreateRecipe)
	}

	return c.Redirect(fmt.Sprintf("/recipes/%d", res.ID), fiber.StatusFound)
}

func (h *recipePageHandler) EditRecipeForm(c *fiber.Ctx) error {
	id, err := parseRecipeID(c)
	if err != nil {
		return h.renderNotFound(c)
	}

	res, err := h.recipeService.GetRecipe(c.Context(), id, "")
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return h.renderNotFound(c)
		}
		return fiber.NewError(fiber.StatusInternalServerError, domain.MessageFailedGetRecipeDetail)
	}

	form := domain.SaveRecipeRequest{
		Title:       res.Title,
		ImageURL:    res.ImageURL,
		Ingredients: res.Ingredients,
		Steps:       res.Steps,
	}
	return c.Render("recipe_form", fiber.Map{
		"Heading": "Edit Recipe",
		"Action":  fmt.Sprintf("/recipes/%d/edit", id),
		"Cancel":  fmt.Sprintf("/recipes/%d", id),
		"Form":    form,
		"Errors":  map[string][]string{},
	})
}

func (h *recipePageHandler) UpdateRecipe(c *fiber.Ctx) error {
	id, err := parseRecipeID(c)
	if err != nil {
		return h.renderNotFound(c)
	}

	req := new(domain.SaveRecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}
	if file, err := c.FormFile("image"); err == nil {
		req.Image = file
	}

	action := fmt.Sprintf("/recipes/%d/edit", id)
	cancel := fmt.Sprintf("/recipes/%d", id)

	req.Sanitize()
	if err := h.validator.Struct(req); err != nil {
		return h.renderForm(c, "Edit Recipe", action, cancel, *req, utils.FieldErrors(err))
	}

	res, err := h.recipeService.UpdateRecipe(c.Context(), id, *req, "")
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecipeNotFound):
			return h.renderNotFound(c)
		case errors.Is(err, domain.ErrDuplicateTitle):
			return h.renderForm(c, "Edit Recipe", action, cancel, *req, []domain.FieldError{
				{Field: "title", Message: domain.MessageDuplicateTitle},
			})
		default:
			return fiber.NewError(fiber.StatusInternalServerError, domain.MessageFailedUpdateRecipe)
		}
	}

	return c.Redirect(fmt.Sprintf("/recipes/%d", res.ID), fiber.StatusFound)
}

func (h *recipePageHandler) DeleteRecipeForm(c *fiber.Ctx) error {
	id, err := parseRecipeID(c)
	if err != nil {
		return h.renderNotFound(c)
	}

	res, err := h.recipeService.GetRecipe(c.Context(), id, "")
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return h.renderNotFound(c)
		}
		return fiber.NewError(fiber.StatusInternalServerError, domain.MessageFailedGetRecipeDetail)
	}

	return c.Render("recipe_confirm_delete", fiber.Map{"Recipe": res})
}

func (h *recipePageHandler) DeleteRecipe(c *fiber.Ctx) error {
	id, err := parseRecipeID(c)
	if err != nil {
		return h.renderNotFound(c)
	}

	if err := h.recipeService.DeleteRecipe(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return h.renderNotFound(c)
		}
		return fiber.NewError(fiber.StatusInternalServerError, domain.MessageFailedDeleteRecipe)
	}

	return c.Redirect("/recipes/", fiber.StatusFound)
}

func (h *recipePageHandler) renderForm(c *fiber.Ctx, heading, action, cancel string, form domain.SaveRecipeRequest, fieldErrs []domain.FieldError) error {
	errsByField := make(map[string][]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		errsByField[fe.Field] = append(errsByField[fe.Field], fe.Message)
	}
	return c.Status(fiber.StatusBadRequest).Render("recipe_form", fiber.Map{
		"Heading": heading,
		"Action":  action,
		"Cancel":  cancel,
		"Form":    form,
		"Errors":  errsByField,
	})
}

func (h *recipePageHandler) renderNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).Render("not_found", fiber.Map{})
}

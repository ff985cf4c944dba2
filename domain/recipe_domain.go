package domain

import (
	"errors"
	"mime/multipart"
	"strings"
	"time"
)

// RecipeListPageSize is the fixed page size of the server-rendered list.
const RecipeListPageSize = 9

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"

	MessageDuplicateTitle = "Recipe with this title already exists."

	ErrRecipeNotFound = errors.New("recipe not found")
	ErrDuplicateTitle = errors.New("recipe title already taken")
)

type (
	// SaveRecipeRequest carries the writable fields for create and full
	// update. Timestamps are store-managed and deliberately absent.
	SaveRecipeRequest struct {
		Title       string                `json:"title" form:"title" validate:"required,max=200"`
		ImageURL    string                `json:"image_url" form:"image_url" validate:"omitempty,url,max=500"`
		Ingredients string                `json:"ingredients" form:"ingredients" validate:"required"`
		Steps       string                `json:"steps" form:"steps" validate:"required"`
		Image       *multipart.FileHeader `json:"-" form:"-"`
	}

	// PatchRecipeRequest is the partial-update variant; nil fields are
	// left untouched.
	PatchRecipeRequest struct {
		Title       *string               `json:"title" form:"title" validate:"omitnil,required,max=200"`
		ImageURL    *string               `json:"image_url" form:"image_url" validate:"omitnil,omitempty,url,max=500"`
		Ingredients *string               `json:"ingredients" form:"ingredients" validate:"omitnil,required"`
		Steps       *string               `json:"steps" form:"steps" validate:"omitnil,required"`
		Image       *multipart.FileHeader `json:"-" form:"-"`
	}

	RecipeResponse struct {
		ID              uint      `json:"id"`
		Title           string    `json:"title"`
		Image           string    `json:"image"`
		ImageURL        string    `json:"image_url"`
		ImageDisplayURL string    `json:"image_display_url"`
		Ingredients     string    `json:"ingredients"`
		Steps           string    `json:"steps"`
		CreatedAt       time.Time `json:"created_at"`
		UpdatedAt       time.Time `json:"updated_at"`
	}

	RecipeListResponse struct {
		Recipes     []RecipeResponse `json:"recipes"`
		SearchQuery string           `json:"search_query"`
		Page        int              `json:"page"`
		Limit       int              `json:"limit"`
		Total       int64            `json:"total"`
		TotalPages  int64            `json:"total_pages"`
	}
)

// Sanitize trims surrounding whitespace so that blank submissions fail the
// required checks.
func (r *SaveRecipeRequest) Sanitize() {
	r.Title = strings.TrimSpace(r.Title)
	r.ImageURL = strings.TrimSpace(r.ImageURL)
	r.Ingredients = strings.TrimSpace(r.Ingredients)
	r.Steps = strings.TrimSpace(r.Steps)
}

func (r *PatchRecipeRequest) Sanitize() {
	trim := func(s *string) {
		if s != nil {
			*s = strings.TrimSpace(*s)
		}
	}
	trim(r.Title)
	trim(r.ImageURL)
	trim(r.Ingredients)
	trim(r.Steps)
}

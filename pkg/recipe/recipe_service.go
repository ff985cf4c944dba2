package recipe

import (
	"context"
	"errors"
	"strings"

	"recipe-book/domain"
	"recipe-book/entities"
	"recipe-book/internal/utils/storage"

	"gorm.io/gorm"
)

const imageFolder = "recipe_images"

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.SaveRecipeRequest, baseURL string) (domain.RecipeResponse, error)
		GetRecipe(ctx context.Context, id uint, baseURL string) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, id uint, req domain.SaveRecipeRequest, baseURL string) (domain.RecipeResponse, error)
		PatchRecipe(ctx context.Context, id uint, req domain.PatchRecipeRequest, baseURL string) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, id uint) error
		ListRecipes(ctx context.Context, query string, page, limit int, baseURL string) (domain.RecipeListResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		storage          storage.Storage
	}
)

func NewRecipeService(recipeRepository RecipeRepository, storage storage.Storage) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		storage:          storage,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.SaveRecipeRequest, baseURL string) (domain.RecipeResponse, error) {
	recipe := &entities.Recipe{
		Title:       req.Title,
		ImageURL:    req.ImageURL,
		Ingredients: req.Ingredients,
		Steps:       req.Steps,
	}

	if req.Image != nil {
		objectKey, err := s.storage.UploadFile(req.Image, imageFolder, storage.AllowImage...)
		if err != nil {
			return domain.RecipeResponse{}, err
		}
		recipe.Image = objectKey
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		// The record never made it in, so the stored object is orphaned.
		if recipe.Image != "" {
			_ = s.storage.DeleteFile(recipe.Image)
		}
		return domain.RecipeResponse{}, mapWriteError(err)
	}
	return s.toResponse(recipe, baseURL), nil
}

func (s *recipeService) GetRecipe(ctx context.Context, id uint, baseURL string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}
	return s.toResponse(recipe, baseURL), nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id uint, req domain.SaveRecipeRequest, baseURL string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	recipe.Title = req.Title
	recipe.ImageURL = req.ImageURL
	recipe.Ingredients = req.Ingredients
	recipe.Steps = req.Steps

	oldKey := ""
	if req.Image != nil {
		objectKey, err := s.storage.UploadFile(req.Image, imageFolder, storage.AllowImage...)
		if err != nil {
			return domain.RecipeResponse{}, err
		}
		oldKey = recipe.Image
		recipe.Image = objectKey
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		if req.Image != nil {
			_ = s.storage.DeleteFile(recipe.Image)
		}
		return domain.RecipeResponse{}, mapWriteError(err)
	}
	if oldKey != "" && oldKey != recipe.Image {
		_ = s.storage.DeleteFile(oldKey)
	}
	return s.toResponse(recipe, baseURL), nil
}

func (s *recipeService) PatchRecipe(ctx context.Context, id uint, req domain.PatchRecipeRequest, baseURL string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	if req.Title != nil {
		recipe.Title = *req.Title
	}
	if req.ImageURL != nil {
		recipe.ImageURL = *req.ImageURL
	}
	if req.Ingredients != nil {
		recipe.Ingredients = *req.Ingredients
	}
	if req.Steps != nil {
		recipe.Steps = *req.Steps
	}

	oldKey := ""
	if req.Image != nil {
		objectKey, err := s.storage.UploadFile(req.Image, imageFolder, storage.AllowImage...)
		if err != nil {
			return domain.RecipeResponse{}, err
		}
		oldKey = recipe.Image
		recipe.Image = objectKey
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		if req.Image != nil {
			_ = s.storage.DeleteFile(recipe.Image)
		}
		return domain.RecipeResponse{}, mapWriteError(err)
	}
	if oldKey != "" && oldKey != recipe.Image {
		_ = s.storage.DeleteFile(oldKey)
	}
	return s.toResponse(recipe, baseURL), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id uint) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if err := s.recipeRepository.DeleteRecipe(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	if recipe.Image != "" {
		_ = s.storage.DeleteFile(recipe.Image)
	}
	return nil
}

func (s *recipeService) ListRecipes(ctx context.Context, query string, page, limit int, baseURL string) (domain.RecipeListResponse, error) {
	if page < 1 {
		page = 1
	}

	recipes, count, err := s.recipeRepository.SearchRecipes(ctx, query, page, limit)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		result = append(result, s.toResponse(recipe, baseURL))
	}

	totalPages := int64(1)
	if limit > 0 {
		totalPages = (count + int64(limit) - 1) / int64(limit)
		if totalPages < 1 {
			totalPages = 1
		}
	}

	return domain.RecipeListResponse{
		Recipes:     result,
		SearchQuery: query,
		Page:        page,
		Limit:       limit,
		Total:       count,
		TotalPages:  totalPages,
	}, nil
}

// toResponse serializes a record, deriving image_display_url from the
// three-tier fallback: uploaded image, then image_url, then placeholder.
func (s *recipeService) toResponse(recipe *entities.Recipe, baseURL string) domain.RecipeResponse {
	return domain.RecipeResponse{
		ID:              recipe.ID,
		Title:           recipe.Title,
		Image:           recipe.Image,
		ImageURL:        recipe.ImageURL,
		ImageDisplayURL: s.displayImageURL(recipe, baseURL),
		Ingredients:     recipe.Ingredients,
		Steps:           recipe.Steps,
		CreatedAt:       recipe.CreatedAt,
		UpdatedAt:       recipe.UpdatedAt,
	}
}

func (s *recipeService) displayImageURL(recipe *entities.Recipe, baseURL string) string {
	if recipe.HasStoredImage() {
		link := s.storage.GetPublicLink(recipe.Image)
		if baseURL != "" && strings.HasPrefix(link, "/") {
			return strings.TrimRight(baseURL, "/") + link
		}
		return link
	}
	if recipe.ImageURL != "" {
		return recipe.ImageURL
	}
	return entities.PlaceholderImageURL
}

func mapWriteError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateTitle
	}
	return err
}

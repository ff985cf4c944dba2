package recipe

import (
	"context"
	"strings"

	"recipe-book/entities"

	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		DeleteRecipe(ctx context.Context, id uint) error
		SearchRecipes(ctx context.Context, query string, page, limit int) ([]*entities.Recipe, int64, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).First(&recipe, id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entities.Recipe{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SearchRecipes returns the title-ordered collection, optionally narrowed
// to rows where query is a case-insensitive substring of title, ingredients
// or steps. limit <= 0 disables paging.
func (r *recipeRepository) SearchRecipes(ctx context.Context, query string, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64

	filtered := func() *gorm.DB {
		tx := r.db.WithContext(ctx).Model(&entities.Recipe{})
		if query != "" {
			pattern := "%" + strings.ToLower(query) + "%"
			tx = tx.Where(
				"lower(title) LIKE ? OR lower(ingredients) LIKE ? OR lower(steps) LIKE ?",
				pattern, pattern, pattern,
			)
		}
		return tx
	}

	if err := filtered().Count(&count).Error; err != nil {
		return nil, 0, err
	}

	tx := filtered().Order("title asc")
	if limit > 0 {
		if page < 1 {
			page = 1
		}
		tx = tx.Offset((page - 1) * limit).Limit(limit)
	}

	if err := tx.Find(&recipes).Error; err != nil {
		return nil, 0, err
	}
	return recipes, count, nil
}

package recipe

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"recipe-book/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(
		sqlite.Open(filepath.Join(t.TempDir(), "test.db")),
		&gorm.Config{TranslateError: true},
	)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Recipe{}))
	return db
}

func seedSearchFixtures(t *testing.T, repo RecipeRepository) {
	t.Helper()
	fixtures := []*entities.Recipe{
		{
			Title:       "Spicy Chicken Curry",
			Ingredients: "Chicken, Spices, Coconut Milk",
			Steps:       "1. Cook chicken. 2. Add spices. 3. Simmer.",
		},
		{
			Title:       "Simple Salad",
			Ingredients: "Lettuce, Tomato, Cucumber",
			Steps:       "1. Chop veggies. 2. Mix.",
		},
		{
			Title:       "Pasta Primavera",
			Ingredients: "Pasta, Vegetables, Olive Oil",
			Steps:       "1. Boil pasta. 2. Saute veggies.",
		},
	}
	for _, f := range fixtures {
		require.NoError(t, repo.CreateRecipe(context.Background(), f))
	}
}

func TestCreateAndGetRecipe(t *testing.T) {
	repo := NewRecipeRepository(newTestDB(t))
	ctx := context.Background()

	created := &entities.Recipe{
		Title:       "Breakfast Burrito",
		Ingredients: "Eggs, Tortilla, Cheese",
		Steps:       "1. Scramble eggs. 2. Wrap.",
	}
	require.NoError(t, repo.CreateRecipe(ctx, created))
	require.NotZero(t, created.ID)

	got, err := repo.GetRecipeByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Breakfast Burrito", got.Title)
	assert.Equal(t, "Eggs, Tortilla, Cheese", got.Ingredients)
	assert.Equal(t, "1. Scramble eggs. 2. Wrap.", got.Steps)
	assert.False(t, got.CreatedAt.IsZero())
	assert.WithinDuration(t, got.CreatedAt, got.UpdatedAt, time.Second)
	assert.False(t, got.UpdatedAt.Before(got.CreatedAt))
}

func TestGetRecipeByIDNotFound(t *testing.T) {
	repo := NewRecipeRepository(newTestDB(t))

	_, err := repo.GetRecipeByID(context.Background(), 9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDuplicateTitleFailsAtomically(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()

	first := &entities.Recipe{
		Title:       "Spicy Chicken Curry",
		Ingredients: "Chicken, Spices, Coconut Milk",
		Steps:       "1. Cook chicken.",
	}
	require.NoError(t, repo.CreateRecipe(ctx, first))

	dup := &entities.Recipe{
		Title:       "Spicy Chicken Curry",
		Ingredients: "Different ingredients",
		Steps:       "Different steps",
	}
	err := repo.CreateRecipe(ctx, dup)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	var count int64
	require.NoError(t, db.Model(&entities.Recipe{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateRecipeBumpsUpdatedAtOnly(t *testing.T) {
	repo := NewRecipeRepository(newTestDB(t))
	ctx := context.Background()

	created := &entities.Recipe{
		Title:       "Chocolate Chip Cookies",
		Ingredients: "Flour, Sugar, Chocolate Chips",
		Steps:       "1. Mix. 2. Bake.",
	}
	require.NoError(t, repo.CreateRecipe(ctx, created))
	originalCreatedAt := created.CreatedAt
	originalUpdatedAt := created.UpdatedAt

	time.Sleep(20 * time.Millisecond)

	created.Title = "Double Chocolate Chip Cookies"
	require.NoError(t, repo.UpdateRecipe(ctx, created))

	got, err := repo.GetRecipeByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Double Chocolate Chip Cookies", got.Title)
	assert.WithinDuration(t, originalCreatedAt, got.CreatedAt, time.Second)
	assert.True(t, got.UpdatedAt.After(originalUpdatedAt))
	assert.False(t, got.UpdatedAt.Before(got.CreatedAt))
}

func TestDeleteRecipe(t *testing.T) {
	db := newTestDB(t)
	repo := NewRecipeRepository(db)
	ctx := context.Background()
	seedSearchFixtures(t, repo)

	recipes, count, err := repo.SearchRecipes(ctx, "", 1, 0)
	require.NoError(t, err)
	require.EqualValues(t, 3, count)

	require.NoError(t, repo.DeleteRecipe(ctx, recipes[0].ID))

	_, err = repo.GetRecipeByID(ctx, recipes[0].ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var remaining int64
	require.NoError(t, db.Model(&entities.Recipe{}).Count(&remaining).Error)
	assert.EqualValues(t, 2, remaining)

	assert.ErrorIs(t, repo.DeleteRecipe(ctx, recipes[0].ID), gorm.ErrRecordNotFound)
}

func TestSearchRecipesByQuery(t *testing.T) {
	repo := NewRecipeRepository(newTestDB(t))
	ctx := context.Background()
	seedSearchFixtures(t, repo)

	// "pasta" hits both title and ingredients of the same record; it must
	// still come back exactly once.
	recipes, count, err := repo.SearchRecipes(ctx, "pasta", 1, 0)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Pasta Primavera", recipes[0].Title)

	recipes, _, err = repo.SearchRecipes(ctx, "PASTA", 1, 0)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Pasta Primavera", recipes[0].Title)

	recipes, _, err = repo.SearchRecipes(ctx, "coconut", 1, 0)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Spicy Chicken Curry", recipes[0].Title)

	_, count, err = repo.SearchRecipes(ctx, "no such dish", 1, 0)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSearchRecipesOrderedByTitle(t *testing.T) {
	repo := NewRecipeRepository(newTestDB(t))
	ctx := context.Background()
	seedSearchFixtures(t, repo)

	recipes, count, err := repo.SearchRecipes(ctx, "", 1, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
	require.Len(t, recipes, 3)
	assert.Equal(t, "Pasta Primavera", recipes[0].Title)
	assert.Equal(t, "Simple Salad", recipes[1].Title)
	assert.Equal(t, "Spicy Chicken Curry", recipes[2].Title)
}

func TestSearchRecipesPagination(t *testing.T) {
	repo := NewRecipeRepository(newTestDB(t))
	ctx := context.Background()
	seedSearchFixtures(t, repo)

	page1, count, err := repo.SearchRecipes(ctx, "", 1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
	require.Len(t, page1, 2)
	assert.Equal(t, "Pasta Primavera", page1[0].Title)

	page2, count, err := repo.SearchRecipes(ctx, "", 2, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
	require.Len(t, page2, 1)
	assert.Equal(t, "Spicy Chicken Curry", page2[0].Title)
}

package config

import (
	"os"

	"recipe-book/internal/api/handlers"
	"recipe-book/internal/api/routes"
	"recipe-book/internal/middleware"
	"recipe-book/internal/utils"
	"recipe-book/internal/utils/storage"
	"recipe-book/pkg/recipe"
	"recipe-book/views"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		Views:             views.NewEngine(),
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	// utils
	mediaStorage := storage.NewStorage()
	if utils.GetConfig("STORAGE_DRIVER") != "s3" {
		mediaRoot := utils.GetConfig("MEDIA_ROOT")
		if mediaRoot == "" {
			mediaRoot = "./media"
		}
		app.Static(storage.PublicMediaPrefix, mediaRoot)
	}

	// Repository
	recipeRepository := recipe.NewRecipeRepository(db)

	// Service
	recipeService := recipe.NewRecipeService(recipeRepository, mediaStorage)

	// Handler
	recipePageHandler := handlers.NewRecipePageHandler(recipeService, validator)
	recipeAPIHandler := handlers.NewRecipeAPIHandler(recipeService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		RecipePageHandler: recipePageHandler,
		RecipeAPIHandler:  recipeAPIHandler,
		Middleware:        middlewares,
	}
	routesConfig.Setup()
	return app, nil
}

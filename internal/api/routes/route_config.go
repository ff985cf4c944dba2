package routes

import (
	"recipe-book/internal/api/handlers"
	"recipe-book/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	RecipePageHandler handlers.RecipePageHandler
	RecipeAPIHandler  handlers.RecipeAPIHandler
	Middleware        middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Pages()
	c.API()
	c.GuestRoute()
}

func (c *Config) Pages() {
	c.App.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Redirect("/recipes/", fiber.StatusFound)
	})

	recipes := c.App.Group("/recipes")
	{
		recipes.Get("/", c.RecipePageHandler.RecipeList)
		recipes.Get("/add", c.RecipePageHandler.NewRecipeForm)
		recipes.Post("/add", c.RecipePageHandler.CreateRecipe)
		recipes.Get("/:id", c.RecipePageHandler.RecipeDetail)
		recipes.Get("/:id/edit", c.RecipePageHandler.EditRecipeForm)
		recipes.Post("/:id/edit", c.RecipePageHandler.UpdateRecipe)
		recipes.Get("/:id/delete", c.RecipePageHandler.DeleteRecipeForm)
		recipes.Post("/:id/delete", c.RecipePageHandler.DeleteRecipe)
	}
}

func (c *Config) API() {
	api := c.App.Group("/api/v1/recipes")
	{
		api.Get("", c.RecipeAPIHandler.ListRecipes)
		api.Post("", c.RecipeAPIHandler.CreateRecipe)
		api.Get("/:id", c.RecipeAPIHandler.GetRecipe)
		api.Put("/:id", c.RecipeAPIHandler.UpdateRecipe)
		api.Patch("/:id", c.RecipeAPIHandler.PatchRecipe)
		api.Delete("/:id", c.RecipeAPIHandler.DeleteRecipe)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

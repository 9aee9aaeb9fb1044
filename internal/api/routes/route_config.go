package routes

import (
	"github.com/gofiber/fiber/v2"

	"recipe-catalog/domain"
	"recipe-catalog/internal/api/handlers"
	"recipe-catalog/internal/api/presenters"
	"recipe-catalog/internal/middleware"
	"recipe-catalog/pkg/jwt"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	RecipeHandler     handlers.RecipeHandler
	IngredientHandler handlers.IngredientHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Auth()
	c.Recipes()
	c.Ingredients()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(ctx *fiber.Ctx) error {
		return presenters.SuccessResponse(ctx, nil, fiber.StatusOK, domain.MessageSuccessPing)
	})
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth")
	{
		auth.Get("/healthcheck", c.UserHandler.Healthcheck)
		auth.Post("/register", c.UserHandler.Register)
		auth.Post("/login", c.UserHandler.Login)
		auth.Get("/users", c.authenticated(), c.Middleware.RequireRoles(domain.RoleAdmin), c.UserHandler.GetUsers)
		auth.Post("/user/role", c.authenticated(), c.Middleware.RequireRoles(domain.RoleAdmin), c.UserHandler.AddRole)
		auth.Delete("/user/role", c.authenticated(), c.Middleware.RequireRoles(domain.RoleAdmin), c.UserHandler.RemoveRole)
		auth.Delete("/user", c.authenticated(), c.Middleware.RequireRoles(domain.RoleAdmin), c.UserHandler.DeleteUser)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/recipes")
	{
		recipes.Get("", c.RecipeHandler.GetRecipes)
		// fiber also answers HEAD on Get routes, so this must come first
		recipes.Head("/:id", c.RecipeHandler.HeadRecipe)
		recipes.Get("/:id", c.RecipeHandler.GetRecipe)
		recipes.Post("", c.authenticated(), c.writerRoles(), c.RecipeHandler.CreateRecipe)
		recipes.Put("/:id", c.authenticated(), c.writerRoles(), c.RecipeHandler.UpdateRecipe)
		recipes.Delete("/:id", c.authenticated(), c.writerRoles(), c.RecipeHandler.DeleteRecipe)
		recipes.Post("/:recipeId/ingredients", c.authenticated(), c.writerRoles(), c.RecipeHandler.AddIngredient)
		recipes.Delete("/:recipeId/ingredients/:ingredientId", c.authenticated(), c.writerRoles(), c.RecipeHandler.RemoveIngredient)
	}
}

func (c *Config) Ingredients() {
	ingredients := c.App.Group("/api/ingredients")
	{
		ingredients.Get("", c.IngredientHandler.GetIngredients)
		// fiber also answers HEAD on Get routes, so this must come first
		ingredients.Head("/:id", c.IngredientHandler.HeadIngredient)
		ingredients.Get("/:id", c.IngredientHandler.GetIngredient)
		ingredients.Post("", c.authenticated(), c.writerRoles(), c.IngredientHandler.CreateIngredient)
		ingredients.Put("/:id", c.authenticated(), c.writerRoles(), c.IngredientHandler.UpdateIngredient)
		ingredients.Delete("/:id", c.authenticated(), c.writerRoles(), c.IngredientHandler.DeleteIngredient)
	}
}

func (c *Config) authenticated() fiber.Handler {
	return c.Middleware.AuthMiddleware(c.JWTService)
}

func (c *Config) writerRoles() fiber.Handler {
	return c.Middleware.RequireRoles(domain.RoleUser, domain.RoleAdmin)
}

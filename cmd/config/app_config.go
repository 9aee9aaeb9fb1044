package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"recipe-catalog/internal/api/handlers"
	"recipe-catalog/internal/api/routes"
	"recipe-catalog/internal/middleware"
	"recipe-catalog/internal/utils"
	"recipe-catalog/pkg/ingredient"
	"recipe-catalog/pkg/jwt"
	"recipe-catalog/pkg/nutrition"
	"recipe-catalog/pkg/recipe"
	"recipe-catalog/pkg/user"
)

func NewApp(db *gorm.DB, log *zap.Logger) (*fiber.App, error) {
	if log == nil {
		log = zap.NewNop()
	}

	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: utils.GetConfig("APP_ENV") == "development",
		ErrorHandler:      errorHandler(log),
	})
	middlewares := middleware.NewMiddleware(utils.GetConfig("CORS_ALLOW_ORIGINS"))
	validator := utils.Validate

	// setting up request ids, access logging and limiter
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	output, err := accessLogOutput(utils.GetConfig("LOG_FILE"))
	if err != nil {
		return nil, err
	}
	app.Use(logger.New(logger.Config{
		Format:     "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
		Output:     output,
	}))

	if rate := utils.GetConfigInt("RATE_LIMIT_PER_SECOND", 10); rate > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        rate,
			Expiration: 1 * time.Second,
		}))
	}

	// Collaborators
	jwtService := jwt.NewJWTService(
		utils.GetConfig("JWT_SECRET"),
		utils.GetConfig("JWT_ISSUER"),
		time.Duration(utils.GetConfigInt("JWT_TTL_MINUTES", 120))*time.Minute,
	)
	nutritionMerger := nutrition.NewMerger(
		nutrition.NewHTTPProvider(
			utils.GetConfig("NUTRITION_API_URL"),
			utils.GetConfigSeconds("NUTRITION_TIMEOUT_SECONDS", 5*time.Second),
		),
		log,
	)

	// Repository
	userRepository := user.NewUserRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)

	// Service
	userService := user.NewUserService(userRepository, jwtService, log)
	ingredientService := ingredient.NewIngredientService(ingredientRepository, log)
	recipeService := recipe.NewRecipeService(recipeRepository, ingredientRepository, nutritionMerger, log)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		RecipeHandler:     recipeHandler,
		IngredientHandler: ingredientHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}

// errorHandler keeps the status of *fiber.Error and reports anything else
// as 500 with the raw error text.
func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		} else {
			log.Error("unhandled request error",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}
		return c.Status(code).JSON(fiber.Map{
			"status":  code,
			"message": err.Error(),
		})
	}
}

func accessLogOutput(path string) (io.Writer, error) {
	if path == "" {
		return os.Stdout, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
}

package config

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"recipe-catalog/entities"
	"recipe-catalog/internal/testutil"
	"recipe-catalog/internal/utils"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

type client struct {
	t     *testing.T
	app   *fiber.App
	db    *gorm.DB
	token string
}

func (c *client) do(method, path string, body any) (int, envelope) {
	c.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if c.token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+c.token)
	}

	resp, err := c.app.Test(req, -1)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	if len(raw) > 0 {
		require.NoError(c.t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp.StatusCode, env
}

func newTestApp(t *testing.T) *client {
	t.Helper()

	nutritionAPI := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"slug":"egg","calories":155,"protein":13.0,"fat":11.0,"carbs":1.1}]}`))
	}))
	t.Cleanup(nutritionAPI.Close)

	utils.SetConfig(utils.Config{
		AppEnv:                  "test",
		JWTSecret:               "test-secret",
		JWTIssuer:               "TEST",
		JWTTTLMinutes:           10,
		NutritionAPIURL:         nutritionAPI.URL,
		NutritionTimeoutSeconds: 2,
		CORSAllowOrigins:        "*",
	})

	db := testutil.NewDatabase(t)
	app, err := NewApp(db, nil)
	require.NoError(t, err)
	return &client{t: t, app: app, db: db}
}

func (c *client) login(username string) {
	c.t.Helper()
	status, _ := c.do(fiber.MethodPost, "/api/auth/register", map[string]string{"username": username, "password": "pw1234"})
	require.Equal(c.t, fiber.StatusCreated, status)
	c.relogin(username)
}

// loginAdmin registers username and grants it admin directly in the
// database, since no public route hands out that role.
func (c *client) loginAdmin(username string) {
	c.t.Helper()
	c.login(username)
	require.NoError(c.t, c.db.Model(&entities.User{}).
		Where("username = ?", username).
		Update("roles", "user,admin").Error)
	c.relogin(username)
}

func (c *client) relogin(username string) {
	c.t.Helper()
	creds := map[string]string{"username": username, "password": "pw1234"}

	status, env := c.do(fiber.MethodPost, "/api/auth/login", creds)
	require.Equal(c.t, fiber.StatusOK, status)

	var res struct {
		Token string `json:"token"`
	}
	require.NoError(c.t, json.Unmarshal(env.Data, &res))
	c.token = res.Token
}

func TestPingAndHealthcheck(t *testing.T) {
	c := newTestApp(t)

	status, env := c.do(fiber.MethodGet, "/api/ping", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "pong", env.Message)

	status, _ = c.do(fiber.MethodGet, "/api/auth/healthcheck", nil)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestWritesRequireAuthentication(t *testing.T) {
	c := newTestApp(t)

	status, _ := c.do(fiber.MethodPost, "/api/recipes", map[string]string{
		"name": "Omelette", "category": "BREAKFAST", "description": "x",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)

	c.login("alice")
	status, _ = c.do(fiber.MethodGet, "/api/auth/users", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestAdminUserManagement(t *testing.T) {
	c := newTestApp(t)

	c.login("bob")
	bobToken := c.token
	status, _ := c.do(fiber.MethodPost, "/api/auth/user/role", map[string]string{"username": "bob", "role": "admin"})
	assert.Equal(t, fiber.StatusUnauthorized, status)

	c.loginAdmin("root")

	status, env := c.do(fiber.MethodPost, "/api/auth/user/role", map[string]string{"username": "bob", "role": "admin"})
	require.Equal(t, fiber.StatusOK, status, env.Error)
	var res struct {
		Roles []string `json:"roles"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, []string{"user", "admin"}, res.Roles)

	status, env = c.do(fiber.MethodDelete, "/api/auth/user/role", map[string]string{"username": "bob", "role": "user"})
	require.Equal(t, fiber.StatusOK, status, env.Error)
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, []string{"admin"}, res.Roles)

	status, _ = c.do(fiber.MethodPost, "/api/auth/user/role", map[string]string{"username": "bob", "role": "root"})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, env = c.do(fiber.MethodPost, "/api/auth/user/role", map[string]string{"username": "ghost", "role": "admin"})
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "User with username ghost not found", env.Message)

	status, _ = c.do(fiber.MethodDelete, "/api/auth/user/role", map[string]string{"username": "ghost", "role": "admin"})
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = c.do(fiber.MethodDelete, "/api/auth/user", map[string]string{"username": "bob"})
	require.Equal(t, fiber.StatusOK, status)

	status, _ = c.do(fiber.MethodDelete, "/api/auth/user", map[string]string{"username": "bob"})
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = c.do(fiber.MethodPost, "/api/auth/login", map[string]string{"username": "bob", "password": "pw1234"})
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, env = c.do(fiber.MethodGet, "/api/auth/users", nil)
	require.Equal(t, fiber.StatusOK, status)
	var users []struct {
		Username string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &users))
	require.Len(t, users, 1)
	assert.Equal(t, "root", users[0].Username)

	// bob's first token was issued with the user role only
	c.token = bobToken
	status, _ = c.do(fiber.MethodDelete, "/api/auth/user", map[string]string{"username": "root"})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestRecipeScenarioOverHTTP(t *testing.T) {
	c := newTestApp(t)
	c.login("alice")

	status, _ := c.do(fiber.MethodPost, "/api/ingredients", map[string]string{
		"name": "Egg", "type": "PROTEIN", "description": "Chicken eggs", "slug": "egg",
	})
	require.Equal(t, fiber.StatusCreated, status)
	status, _ = c.do(fiber.MethodPost, "/api/ingredients", map[string]string{
		"name": "Bacon", "type": "PROTEIN", "description": "Smoked bacon", "slug": "Bacon",
	})
	require.Equal(t, fiber.StatusCreated, status)

	status, _ = c.do(fiber.MethodPost, "/api/recipes", map[string]string{
		"name": "Omelette", "category": "BREAKFAST", "description": "x",
	})
	require.Equal(t, fiber.StatusCreated, status)

	for _, ingredientID := range []int{1, 2} {
		status, env := c.do(fiber.MethodPost, "/api/recipes/1/ingredients", map[string]any{
			"ingredientId": ingredientID, "quantity": 2, "unit": "pcs",
		})
		require.Equal(t, fiber.StatusCreated, status, env.Error)
	}

	status, env := c.do(fiber.MethodGet, "/api/recipes/1", nil)
	require.Equal(t, fiber.StatusOK, status)

	var recipe struct {
		Ingredients []struct {
			Preparation string `json:"preparation"`
			Ingredient  struct {
				Name      string          `json:"name"`
				Nutrition *map[string]any `json:"nutrition"`
			} `json:"ingredient"`
		} `json:"ingredients"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &recipe))
	require.Len(t, recipe.Ingredients, 2)
	assert.Equal(t, "", recipe.Ingredients[0].Preparation)
	assert.Equal(t, "Egg", recipe.Ingredients[0].Ingredient.Name)
	assert.NotNil(t, recipe.Ingredients[0].Ingredient.Nutrition)
	assert.Nil(t, recipe.Ingredients[1].Ingredient.Nutrition)

	status, env = c.do(fiber.MethodDelete, "/api/recipes/1/ingredients/1", nil)
	require.Equal(t, fiber.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &recipe))
	assert.Len(t, recipe.Ingredients, 1)

	status, _ = c.do(fiber.MethodHead, "/api/recipes/1", nil)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = c.do(fiber.MethodDelete, "/api/recipes/1", nil)
	assert.Equal(t, fiber.StatusNoContent, status)

	status, _ = c.do(fiber.MethodHead, "/api/recipes/1", nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, env = c.do(fiber.MethodGet, "/api/recipes/1", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Recipe with ID 1 not found", env.Message)

	status, env = c.do(fiber.MethodGet, "/api/ingredients/2", nil)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestInvalidInputs(t *testing.T) {
	c := newTestApp(t)
	c.login("alice")

	status, env := c.do(fiber.MethodGet, "/api/recipes/abc", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid recipe ID format. ID must be a positive integer.", env.Message)

	status, env = c.do(fiber.MethodGet, "/api/ingredients/0", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid ingredient ID format. ID must be a positive integer.", env.Message)

	status, env = c.do(fiber.MethodGet, "/api/ingredients?type=not-a-type", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid ingredient type: not-a-type", env.Message)

	status, _ = c.do(fiber.MethodPost, "/api/ingredients", map[string]string{
		"name": "Egg", "type": "MINERAL", "description": "x", "slug": "egg",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = c.do(fiber.MethodPost, "/api/recipes", map[string]string{
		"name": "", "category": "BREAKFAST", "description": "x",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, env = c.do(fiber.MethodPost, "/api/recipes/999/ingredients", map[string]any{
		"ingredientId": 999, "quantity": 1, "unit": "g",
	})
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Recipe with ID 999 not found", env.Message)

	status, env = c.do(fiber.MethodPut, "/api/ingredients/42", map[string]string{
		"name": "Egg", "type": "PROTEIN", "description": "x", "slug": "egg",
	})
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Ingredient with ID 42 not found", env.Message)
}

func TestUnknownRouteUsesErrorHandler(t *testing.T) {
	c := newTestApp(t)

	status, env := c.do(fiber.MethodGet, "/api/nothing-here", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, fiber.StatusNotFound, env.Status)
}

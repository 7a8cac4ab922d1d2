package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/New7ech/API/middlewares"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	app := fiber.New(fiber.Config{ErrorHandler: middlewares.ErrorHandler})
	app.Get("/whoami", middlewares.IsAuthenticatedHeader(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals("userID")})
	})
	return app
}

func TestBearerTokenRoundTrip(t *testing.T) {
	app := authApp(t)

	token, err := middlewares.GenerateJWT("user-42")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMissingAuthorizationHeader(t *testing.T) {
	app := authApp(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMalformedBearerToken(t *testing.T) {
	app := authApp(t)

	for _, header := range []string{
		"Bearer not-a-jwt",
		"Bearer ",
		"Basic dXNlcjpwYXNz",
	} {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header %q", header)
	}
}

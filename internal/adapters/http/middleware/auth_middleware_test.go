package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"cineplus-api/internal/config"
	"cineplus-api/internal/core/domain"
	"cineplus-api/internal/pkg/jwt"
	"cineplus-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func newProtectedApp(t *testing.T, extra ...fiber.Handler) *fiber.App {
	t.Helper()
	cfg := &config.Config{JWT: config.JWTConfig{Secret: testSecret}}

	app := fiber.New()
	handlers := append([]fiber.Handler{AuthMiddleware(cfg)}, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		identity, ok := IdentityFromCtx(c)
		require.True(t, ok)
		return response.Success(c, "OK", identity)
	})
	app.Get("/protected", handlers...)
	return app
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) (*http.Response, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp, body
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	app := newProtectedApp(t)

	resp, body := doRequest(t, app, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid or missing token", body["error"])
}

func TestAuthMiddlewareRejectsNonBearerScheme(t *testing.T) {
	app := newProtectedApp(t)

	resp, body := doRequest(t, app, "Basic dXNlcjpwYXNz")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid or missing token", body["error"])
}

func TestAuthMiddlewareRejectsGarbageTokenWithSameBody(t *testing.T) {
	app := newProtectedApp(t)

	resp, body := doRequest(t, app, "Bearer not.a.token")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Same body as the missing-header case; the reason is not disclosed.
	assert.Equal(t, "Invalid or missing token", body["error"])
}

func TestAuthMiddlewarePassesVerifiedIdentity(t *testing.T) {
	app := newProtectedApp(t)

	token, err := jwt.Generate(42, "Moderator Morgan", domain.LevelModerator, testSecret)
	require.NoError(t, err)

	resp, body := doRequest(t, app, "Bearer "+token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	identity, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 42, identity["ID"])
	assert.Equal(t, "Moderator Morgan", identity["Name"])
	assert.EqualValues(t, domain.LevelModerator, identity["Level"])
}

func TestRequireLevelForbidsLowerLevel(t *testing.T) {
	app := newProtectedApp(t, RequireLevel(domain.LevelModerator))

	token, err := jwt.Generate(7, "Staff", domain.LevelStaff, testSecret)
	require.NoError(t, err)

	resp, _ := doRequest(t, app, "Bearer "+token)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireLevelAdmitsSufficientLevel(t *testing.T) {
	app := newProtectedApp(t, RequireLevel(domain.LevelModerator))

	token, err := jwt.Generate(7, "Manager", domain.LevelManager, testSecret)
	require.NoError(t, err)

	resp, _ := doRequest(t, app, "Bearer "+token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

package assistant

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	NewAssistantService().SetupRoutes(app)
	return app
}

func TestSendMessageRepliesToKeyword(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("POST", "/api/assistant/message",
		strings.NewReader(`{"property_id":"abc","message":"what is the price?"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "$729,000")
}

func TestSendMessageRequiresMessage(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("POST", "/api/assistant/message",
		strings.NewReader(`{"property_id":"abc"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetGreeting(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/assistant/greeting", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "AI assistant")
}

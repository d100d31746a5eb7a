package validation

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(cfg Config) *fiber.App {
	app := fiber.New()
	app.Use(Middleware(cfg))
	app.Post("/api/ask", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	app.Get("/api/topics", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func post(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestValidQuestionPasses(t *testing.T) {
	app := newApp(Config{})

	resp := post(t, app, "/api/ask", `{"question": "What helps with sensory overload?"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestEmptyQuestionRejected(t *testing.T) {
	app := newApp(Config{})

	for _, body := range []string{
		`{}`,
		`{"question": ""}`,
		`{"question": "   "}`,
		`{"question": 42}`,
	} {
		resp := post(t, app, "/api/ask", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "body %s", body)
	}
}

func TestMalformedBodyRejected(t *testing.T) {
	app := newApp(Config{})

	resp := post(t, app, "/api/ask", `not json at all`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var parsed map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	assert.Equal(t, true, parsed["error"])
	assert.NotEmpty(t, parsed["betaNotice"])
}

func TestOversizedQuestionRejected(t *testing.T) {
	app := newApp(Config{MaxQuestionLength: 50})

	long := strings.Repeat("a", 51)
	resp := post(t, app, "/api/ask", `{"question": "`+long+`"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	ok := strings.Repeat("a", 50)
	resp = post(t, app, "/api/ask", `{"question": "`+ok+`"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestOtherRoutesUntouched(t *testing.T) {
	app := newApp(Config{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/topics", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

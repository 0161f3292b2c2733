package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/okarhu/cat-api/internal/httperr"
	"github.com/okarhu/cat-api/internal/middleware"
	"github.com/okarhu/cat-api/internal/models"
)

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: httperr.Handler})
}

// inject plants the actor (and optional upload Locals) the way the auth
// and upload middleware would on a live server.
func inject(actor models.Actor, uploads map[string]any) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(middleware.ActorKey, actor)
		for key, value := range uploads {
			c.Locals(key, value)
		}
		return c.Next()
	}
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, respBody
}

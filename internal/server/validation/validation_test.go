package validation_test

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gitfleet/gitfleet/internal/server/validation"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bodyRequest struct {
	Name string `json:"name" validate:"required,max=5"`
}

type queryRequest struct {
	Page int `query:"page" validate:"gte=0"`
}

type rangeRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

func (r *rangeRequest) Validate() error {
	if r.From > r.To {
		return errors.New("from must not exceed to")
	}
	return nil
}

func newApp() *fiber.App {
	v := validator.New()
	app := fiber.New()

	app.Post("/body", validation.DecorateWithBodyEx(v, func(c *fiber.Ctx, req *bodyRequest) error {
		return c.SendString(req.Name)
	}))
	app.Get("/query", validation.DecorateWithQueryEx(v, func(c *fiber.Ctx, req *queryRequest) error {
		return c.JSON(req.Page)
	}))
	app.Post("/range", validation.DecorateWithBodyEx(v, func(c *fiber.Ctx, _ *rangeRequest) error {
		return c.SendStatus(fiber.StatusNoContent)
	}))

	return app
}

func TestDecorateWithBodyEx(t *testing.T) {
	app := newApp()

	tests := []struct {
		name   string
		path   string
		body   string
		status int
	}{
		{name: "valid", path: "/body", body: `{"name":"abc"}`, status: fiber.StatusOK},
		{name: "missing field", path: "/body", body: `{}`, status: fiber.StatusBadRequest},
		{name: "too long", path: "/body", body: `{"name":"abcdefgh"}`, status: fiber.StatusBadRequest},
		{name: "malformed", path: "/body", body: `{`, status: fiber.StatusBadRequest},
		{name: "custom rule", path: "/range", body: `{"from":2,"to":1}`, status: fiber.StatusBadRequest},
		{name: "custom rule ok", path: "/range", body: `{"from":1,"to":2}`, status: fiber.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodPost, tt.path, strings.NewReader(tt.body))
			req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestDecorateWithQueryEx(t *testing.T) {
	app := newApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/query?page=3", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "3", string(body))

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/query?page=-1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

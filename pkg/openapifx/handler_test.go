package openapifx_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gitfleet/gitfleet/pkg/openapifx"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
	"go.uber.org/zap/zaptest"
)

func newSpec(name string) *swag.Spec {
	spec := &swag.Spec{
		Version:          "1.0.0",
		Host:             "localhost:3000",
		BasePath:         "/api/v1",
		Title:            "test",
		InfoInstanceName: name,
		SwaggerTemplate:  `{"swagger":"2.0","info":{"title":"{{.Title}}"},"host":"{{.Host}}","basePath":"{{.BasePath}}","paths":{}}`,
		LeftDelim:        "{{",
		RightDelim:       "}}",
	}
	swag.Register(spec.InstanceName(), spec)
	return spec
}

func TestNew_OverridesPublicLocation(t *testing.T) {
	spec := newSpec(t.Name())

	openapifx.New(openapifx.Config{PublicHost: "fleet.example.com", PublicPath: "/fleet/api/v1"}, spec, zaptest.NewLogger(t))

	assert.Equal(t, "fleet.example.com", spec.Host)
	assert.Equal(t, "/fleet/api/v1", spec.BasePath)
}

func TestHandler_Register(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		status  int
	}{
		{name: "enabled", enabled: true, status: fiber.StatusOK},
		{name: "disabled", enabled: false, status: fiber.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := newSpec(t.Name())
			h := openapifx.New(openapifx.Config{Enabled: tt.enabled}, spec, zaptest.NewLogger(t))

			app := fiber.New()
			h.Register(app.Group("/docs"))

			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/docs/doc.json", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

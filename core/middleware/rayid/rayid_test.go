package rayid_test

import (
	"net/http/httptest"
	"testing"

	"github.com/UCLALibrary/ftva-mams-data/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("GeneratesID", func(t *testing.T) {
		app := fiber.New()
		app.Use(rayid.New())
		app.Get("/", func(c *fiber.Ctx) error {
			rid, _ := c.Locals(rayid.LocalsKey).(string)
			assert.NotEmpty(t, rid)
			return c.SendStatus(fiber.StatusOK)
		})

		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Header.Get(rayid.Header))
	})

	t.Run("HonorsIncomingID", func(t *testing.T) {
		app := fiber.New()
		app.Use(rayid.New())
		app.Get("/", func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		})

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(rayid.Header, "ray-123")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "ray-123", resp.Header.Get(rayid.Header))
	})
}

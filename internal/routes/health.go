package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RegisterHealthRoutes adds the root status endpoint. It reports the
// connected database and role so an operator can see at a glance which
// environment is serving.
func RegisterHealthRoutes(app *fiber.App, d Deps) {
	app.Get("/", func(c *fiber.Ctx) error {
		if d.DB == nil {
			return c.Status(http.StatusOK).JSON(fiber.Map{
				"status":   "ok",
				"database": "in-memory",
				"user":     "local",
				"time":     time.Now().UTC(),
			})
		}

		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		var dbName, dbUser string
		var now time.Time
		err := d.DB.QueryRow(ctx, `SELECT current_database(), current_user, now()`).Scan(&dbName, &dbUser, &now)
		if err != nil {
			return fiber.NewError(http.StatusInternalServerError, "database unreachable")
		}

		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":   "ok",
			"database": dbName,
			"user":     dbUser,
			"time":     now.UTC(),
		})
	})
}

package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sajeel/daily-tracker/internal/handlers"
	"github.com/sajeel/daily-tracker/internal/middleware"
)

// NewApp builds the fiber app with every route registered. When staticDir
// is set the single-page view is served from it at /.
func NewApp(staticDir string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "daily-tracker",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
	app.Use(middleware.RequestLogger())
	app.Use(recover.New())

	Setup(app)

	if staticDir != "" {
		app.Static("/", staticDir)
	}
	return app
}

func Setup(app *fiber.App) {
	api := app.Group("/api")
	person := middleware.RequirePerson()

	api.Get("/tracker/:person/:date", person, handlers.GetTracker)
	api.Post("/tracker/:person/:date", person, handlers.SaveTracker)
	api.Delete("/tracker/:person/:date", person, handlers.DeleteTracker)
	// Path used by the web client.
	api.Post("/tracker/:person/:date/save", person, handlers.SaveTracker)

	api.Get("/streaks/:person", person, handlers.GetStreaks)
	api.Get("/weekly/:person", person, handlers.GetWeekly)
	api.Get("/partner/:person", person, handlers.GetPartnerSummary)
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}

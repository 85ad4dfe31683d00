package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	app.Post("/habits", handler.CreateHabit)
	app.Patch("/habits/:id/toggle", handler.ToggleHabit)
	app.Get("/day", handler.GetDay)
	app.Get("/summary", handler.GetSummary)
}

package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Get("/setup-status", handler.SetupStatus)
	auth.Post("/setup", handler.Setup)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	records := api.Group("/records", handler.AuthRequired)
	records.Get("", handler.GetRecords)
	records.Get("/:date", handler.GetRecord)
	records.Post("/:date", handler.UpsertRecord)
	records.Delete("/:date", handler.DeleteRecord)

	meals := api.Group("/meals", handler.AuthRequired)
	meals.Get("/:date", handler.GetMeals)
	meals.Post("/:date", handler.AddMeal)
	meals.Delete("/items/:id", handler.DeleteMeal)

	nutrition := api.Group("/nutrition", handler.AuthRequired)
	nutrition.Get("/:date", handler.GetNutritionSummary)

	achievements := api.Group("/achievements", handler.AuthRequired)
	achievements.Get("", handler.GetAchievements)
	achievements.Get("/events", handler.GetRecentUnlocks)
	achievements.Post("/:id/progress", handler.UpdateAchievementProgress)

	stats := api.Group("/stats", handler.AuthRequired)
	stats.Get("/overview", handler.GetStatsOverview)
	stats.Get("/averages", handler.GetAverages)
	stats.Get("/advice", handler.GetAdvice)

	plan := api.Group("/plan", handler.AuthRequired)
	plan.Get("/workout", handler.GetWorkoutPlanWeek)
	plan.Get("/diet", handler.GetDietPlanWeek)

	export := api.Group("/export", handler.AuthRequired)
	export.Get("/summary", handler.ExportSummary)
	export.Get("/csv", handler.ExportCSV)
	export.Get("/json", handler.ExportJSON)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Post("/change-pin", handler.ChangePIN)
	settings.Post("/clear-data", handler.ClearAllData)
}

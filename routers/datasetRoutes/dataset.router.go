package datasetRoutes

import (
	controllers "edugen/controllers/dataset"

	"github.com/gofiber/fiber/v2"
)

// SetupDatasetRoutes sets up the dataset preview endpoints
func SetupDatasetRoutes(app *fiber.App) {
	group := app.Group("/dataset")

	group.Get("/summary", controllers.GetSummary)
	group.Get("/tables", controllers.ListTables)

	app.Get("/health", controllers.Health)
}

package main

import (
	"log"
	"time"

	"edugen/config"
	"edugen/database"
	"edugen/dataset"
	"edugen/generator"
	datasetRoutes "edugen/routers/datasetRoutes"
	"edugen/utils"
	datasetValidator "edugen/validators/dataset"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()

	if err := generateDataset(config.AppConfig.SeedDB); err != nil {
		log.Fatalf("Dataset generation failed: %v", err)
	}

	if config.AppConfig.Serve {
		serveDatasets()
	}
}

// generateDataset runs the pipeline once: generate, validate, assemble,
// persist, and optionally seed the platform database.
func generateDataset(seedDB bool) error {
	cfg := config.AppConfig
	log.Println("Generating datasets...")

	gen := generator.New(cfg, time.Now())
	tables, err := gen.GenerateAll()
	if err != nil {
		return err
	}

	if err := datasetValidator.ValidateTables(tables); err != nil {
		return err
	}

	ml := dataset.Assemble(tables)

	if err := dataset.WriteAll(cfg.OutputDir, tables, ml); err != nil {
		return err
	}
	if err := dataset.WriteSummary(cfg.OutputDir, dataset.BuildSummary(tables, ml, time.Now())); err != nil {
		return err
	}

	log.Println("Datasets generated successfully!")
	log.Printf("Users: %d", len(tables.Users))
	log.Printf("Courses: %d", len(tables.Courses))
	log.Printf("Enrollments: %d", len(tables.Enrollments))
	log.Printf("Progress records: %d", len(tables.Progress))
	log.Printf("Quiz attempts: %d", len(tables.QuizAttempts))
	log.Printf("ML dataset rows: %d", len(ml))

	if seedDB {
		if database.Database.Db == nil {
			database.ConnectDb()
		}
		if err := database.SeedDataset(tables); err != nil {
			return err
		}
	}
	return nil
}

// serveDatasets keeps the process alive serving the generated artifacts and
// regenerating them on a cron schedule. Scheduled refreshes rewrite the CSV
// files only; the database is seeded at most once, at startup.
func serveDatasets() {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve the generated CSV artifacts for download
	app.Static("/files", config.AppConfig.OutputDir)

	datasetRoutes.SetupDatasetRoutes(app)

	refresh := func() error { return generateDataset(false) }
	if _, err := utils.StartRefreshScheduler(config.AppConfig.RefreshCron, refresh); err != nil {
		log.Fatalf("Failed to start refresh scheduler: %v", err)
	}

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}

package controllers

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"edugen/config"
	"edugen/dataset"
	"edugen/middleware"

	"github.com/gofiber/fiber/v2"
)

// GetSummary returns the generation summary of the most recent run.
func GetSummary(c *fiber.Ctx) error {
	path := filepath.Join(config.AppConfig.OutputDir, dataset.SummaryFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No generation summary found!", nil)
	}

	var summary dataset.Summary
	if err := json.Unmarshal(data, &summary); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to parse generation summary!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Summary fetched successfully!", summary)
}

// ListTables lists the CSV artifacts available for download.
func ListTables(c *fiber.Ctx) error {
	entries, err := os.ReadDir(config.AppConfig.OutputDir)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Output directory not found!", nil)
	}

	tables := []fiber.Map{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".csv") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		tables = append(tables, fiber.Map{
			"name":       strings.TrimSuffix(entry.Name(), ".csv"),
			"file":       entry.Name(),
			"size_bytes": info.Size(),
		})
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tables fetched successfully!", tables)
}

// Health reports server liveness.
func Health(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "OK", nil)
}

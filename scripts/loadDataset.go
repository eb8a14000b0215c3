package main

import (
	"encoding/csv"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"edugen/config"
	"edugen/database"
	"edugen/models"
)

// Loads previously generated CSV tables into the platform database. Core
// entities only: users, courses, enrollments.
func main() {
	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()

	dir := config.AppConfig.OutputDir
	importUsers(filepath.Join(dir, "users.csv"))
	importCourses(filepath.Join(dir, "courses.csv"))
	importEnrollments(filepath.Join(dir, "enrollments.csv"))
}

// readCSV returns a header index map and the data rows of a CSV file.
func readCSV(path string) (map[string]int, [][]string) {
	file, err := os.Open(path)
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV %s: %v", path, err)
	}
	if len(records) < 2 {
		log.Printf("%s is empty or has only headers", path)
		return nil, nil
	}

	headerIndex := make(map[string]int)
	for i, h := range records[0] {
		headerIndex[strings.TrimSpace(h)] = i
	}
	log.Printf("%s: %d rows to import", filepath.Base(path), len(records)-1)
	return headerIndex, records[1:]
}

func importUsers(path string) {
	headerIndex, rows := readCSV(path)

	inserted := 0
	skipped := 0
	for i, row := range rows {
		if i%1000 == 0 && i > 0 {
			log.Printf("Processing user row %d...", i)
		}

		user := models.User{
			ID:            parseUint(getField(row, headerIndex, "id")),
			Name:          getField(row, headerIndex, "name"),
			Email:         getField(row, headerIndex, "email"),
			Role:          getField(row, headerIndex, "role"),
			Status:        getField(row, headerIndex, "status"),
			EmailVerified: parseBool(getField(row, headerIndex, "email_verified")),
			CreatedAt:     parseTime(getField(row, headerIndex, "created_at")),
			UpdatedAt:     parseTime(getField(row, headerIndex, "updated_at")),
		}
		if user.ID == 0 || user.Email == "" {
			skipped++
			continue
		}

		var existing models.User
		if err := database.Database.Db.Where("id = ?", user.ID).First(&existing).Error; err == nil {
			skipped++
			continue
		}
		if err := database.Database.Db.Create(&user).Error; err != nil {
			log.Printf("Error inserting user %d: %v", user.ID, err)
			continue
		}
		inserted++
	}
	log.Printf("Users import done: %d inserted, %d skipped", inserted, skipped)
}

func importCourses(path string) {
	headerIndex, rows := readCSV(path)

	inserted := 0
	skipped := 0
	for _, row := range rows {
		course := models.Course{
			ID:           parseUint(getField(row, headerIndex, "id")),
			Title:        getField(row, headerIndex, "title"),
			Description:  getField(row, headerIndex, "description"),
			InstructorID: parseUint(getField(row, headerIndex, "instructor_id")),
			CategoryID:   parseUint(getField(row, headerIndex, "category_id")),
			Status:       getField(row, headerIndex, "status"),
			Visibility:   getField(row, headerIndex, "visibility"),
			Price:        parseFloat(getField(row, headerIndex, "price")),
			IsFree:       parseBool(getField(row, headerIndex, "is_free")),
			ThumbnailURL: getField(row, headerIndex, "thumbnail_url"),
			CreatedAt:    parseTime(getField(row, headerIndex, "created_at")),
			UpdatedAt:    parseTime(getField(row, headerIndex, "updated_at")),
		}
		if course.ID == 0 || course.Title == "" {
			skipped++
			continue
		}

		var existing models.Course
		if err := database.Database.Db.Where("id = ?", course.ID).First(&existing).Error; err == nil {
			skipped++
			continue
		}
		if err := database.Database.Db.Create(&course).Error; err != nil {
			log.Printf("Error inserting course %d: %v", course.ID, err)
			continue
		}
		inserted++
	}
	log.Printf("Courses import done: %d inserted, %d skipped", inserted, skipped)
}

func importEnrollments(path string) {
	headerIndex, rows := readCSV(path)

	inserted := 0
	skipped := 0
	for _, row := range rows {
		enrollment := models.Enrollment{
			ID:         parseUint(getField(row, headerIndex, "id")),
			UserID:     parseUint(getField(row, headerIndex, "user_id")),
			CourseID:   parseUint(getField(row, headerIndex, "course_id")),
			EnrolledAt: parseTime(getField(row, headerIndex, "enrolled_at")),
			IsPaid:     parseBool(getField(row, headerIndex, "is_paid")),
		}
		if enrollment.ID == 0 || enrollment.UserID == 0 || enrollment.CourseID == 0 {
			skipped++
			continue
		}

		var existing models.Enrollment
		if err := database.Database.Db.Where("id = ?", enrollment.ID).First(&existing).Error; err == nil {
			skipped++
			continue
		}
		if err := database.Database.Db.Create(&enrollment).Error; err != nil {
			log.Printf("Error inserting enrollment %d: %v", enrollment.ID, err)
			continue
		}
		inserted++
	}
	log.Printf("Enrollments import done: %d inserted, %d skipped", inserted, skipped)
}

// getField safely extracts a field from a row using the header index
func getField(row []string, headerIndex map[string]int, field string) string {
	idx, ok := headerIndex[field]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseUint(value string) uint {
	v, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0
	}
	return uint(v)
}

func parseFloat(value string) float64 {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseBool(value string) bool {
	v, err := strconv.ParseBool(value)
	if err != nil {
		return false
	}
	return v
}

func parseTime(value string) time.Time {
	t, err := time.Parse("2006-01-02 15:04:05", value)
	if err != nil {
		return time.Time{}
	}
	return t
}

package database

import (
	"fmt"
	"log"

	"edugen/config"
	"edugen/generator"
	"edugen/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

const seedBatchSize = 500

// ConnectDb opens the platform database: PostgreSQL when DB_HOST is set,
// a local sqlite file otherwise.
func ConnectDb() {
	var (
		db  *gorm.DB
		err error
	)

	cfg := config.AppConfig
	if cfg.DBHost != "" {
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
		)
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	} else {
		db, err = gorm.Open(sqlite.Open(cfg.DBName), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	// Run database migrations
	runMigrations(db)

	// Save database instance globally
	Database = DbInstance{Db: db}
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.CourseCategory{},
		&models.User{},
		&models.Course{},
		&models.Enrollment{},
		&models.Progress{},
		&models.Quiz{},
		&models.QuizAttempt{},
		&models.UserInteraction{},
		&models.UserGamification{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}

// SeedDataset loads every generated table into the database in batches,
// parents before children so foreign keys resolve.
func SeedDataset(t *generator.Tables) error {
	db := Database.Db

	tables := []struct {
		name string
		rows interface{}
		size int
	}{
		{"course_categories", t.Categories, len(t.Categories)},
		{"users", t.Users, len(t.Users)},
		{"courses", t.Courses, len(t.Courses)},
		{"enrollments", t.Enrollments, len(t.Enrollments)},
		{"progress", t.Progress, len(t.Progress)},
		{"quizzes", t.Quizzes, len(t.Quizzes)},
		{"quiz_attempts", t.QuizAttempts, len(t.QuizAttempts)},
		{"user_interactions", t.Interactions, len(t.Interactions)},
		{"user_gamification", t.Gamification, len(t.Gamification)},
	}
	for _, table := range tables {
		if table.size == 0 {
			continue
		}
		if err := db.CreateInBatches(table.rows, seedBatchSize).Error; err != nil {
			return fmt.Errorf("failed to seed %s: %w", table.name, err)
		}
	}

	log.Printf("Seeded database with %d users, %d courses, %d enrollments", len(t.Users), len(t.Courses), len(t.Enrollments))
	return nil
}

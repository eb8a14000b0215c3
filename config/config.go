package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	OutputDir string

	// Generation targets. Defaults match the reference dataset.
	Seed            int64
	NumUsers        int
	NumInstructors  int
	NumCourses      int
	NumCategories   int
	NumEnrollments  int
	NumQuizAttempts int

	SeedDB      bool // load generated tables into the platform database
	Serve       bool // keep running and serve generated artifacts over HTTP
	RefreshCron string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	// Initialize AppConfig with values from environment variables
	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		OutputDir: getEnv("OUTPUT_DIR", "./data"),

		Seed:            getEnvInt64("SEED", 42),
		NumUsers:        getEnvInt("NUM_USERS", 2000),
		NumInstructors:  getEnvInt("NUM_INSTRUCTORS", 150),
		NumCourses:      getEnvInt("NUM_COURSES", 800),
		NumCategories:   10, // fixed catalog, see generator.Categories
		NumEnrollments:  getEnvInt("NUM_ENROLLMENTS", 12000),
		NumQuizAttempts: getEnvInt("NUM_QUIZ_ATTEMPTS", 25000),

		SeedDB:      getEnvBool("SEED_DB", false),
		Serve:       getEnvBool("SERVE", false),
		RefreshCron: getEnv("REFRESH_CRON", "0 2 * * *"),

		DBHost:     getEnv("DB_HOST", ""),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "elearning.db"),
		DBPort:     getEnv("DB_PORT", "5432"),
	}

	// Validate critical configuration
	if AppConfig.NumUsers < 0 || AppConfig.NumInstructors < 0 {
		log.Fatalf("NUM_USERS and NUM_INSTRUCTORS must not be negative")
	}
	if AppConfig.SeedDB && AppConfig.DBName == "elearning.db" && AppConfig.DBHost == "" {
		log.Println("Warning: SEED_DB enabled with default sqlite DBName. Update it in your environment.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

// getEnvInt64 retrieves an environment variable as an int64 or returns the default value
func getEnvInt64(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Printf("Error converting environment variable %s to int64: %v", key, err)
		return defaultValue
	}
	return intValue
}

// getEnvBool retrieves an environment variable as a boolean or returns the default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to bool: %v", key, err)
		return defaultValue
	}
	return boolValue
}
